package set

// Equal reports whether a and b hold exactly the same elements,
// regardless of insertion order.
func Equal(a, b *Set) bool {
	return a.Len() == b.Len() && IsSubset(a, b)
}

// Unequal is the negation of Equal.
func Unequal(a, b *Set) bool { return !Equal(a, b) }

// Equivalent is an alias of Equal kept for the report vocabulary.
func Equivalent(a, b *Set) bool { return Equal(a, b) }

// Overlapping reports whether a and b share at least one element.
func Overlapping(a, b *Set) bool {
	for _, e := range a.Elements() {
		if b.Contains(e) {
			return true
		}
	}

	return false
}

// Disjoint reports whether a and b share no element.
func Disjoint(a, b *Set) bool { return !Overlapping(a, b) }

// IsSubset reports whether every element of a is in b.
// The empty set is a subset of every set.
func IsSubset(a, b *Set) bool {
	for _, e := range a.Elements() {
		if !b.Contains(e) {
			return false
		}
	}

	return true
}

// IsSuperset reports whether every element of b is in a.
func IsSuperset(a, b *Set) bool { return IsSubset(b, a) }

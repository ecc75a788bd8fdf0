package set

import "errors"

var (
	// ErrDuplicateElement is returned by NewStrict when the input repeats a value.
	ErrDuplicateElement = errors.New("set: duplicate element")

	// ErrPowerSetTooLarge is returned by PowerSet when the set has more than
	// MaxPowerSetElements elements.
	ErrPowerSetTooLarge = errors.New("set: power set too large")
)

// Package set implements finite sets of distinct integers with membership
// relations and power-set enumeration.
//
// A Set keeps its elements in insertion order. The order carries no meaning
// for the relations (Equal, Overlapping, IsSubset, ...) but it is observable
// in two places: Elements/String, and PowerSet, whose output order is a
// contract:
//
//   - subsets are produced by increasing bitmask i = 0 .. 2ⁿ-1;
//   - subset i contains the element at index j iff bit j of i is set;
//   - elements inside a subset keep the set's index order.
//
// The empty subset is therefore always first and the full set always last.
//
// Every constructor routes elements through Add, so a Set can never hold a
// duplicate. NewStrict is available for callers that prefer to reject
// repeated input (ErrDuplicateElement) rather than normalize it.
//
// Set is not safe for concurrent mutation.
package set

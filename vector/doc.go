// Package vector implements 3-component real vectors and their classical
// operations: componentwise addition and subtraction, the dot product and the
// right-handed cross product.
//
// Vector is a plain value type. Every operation takes its operands by value
// and returns a new result, so there is no aliasing and no error path:
// all operations are total over any two vectors.
//
//	a := vector.New(1, 2, 3)
//	b := vector.New(4, 5, 6)
//	vector.Add(a, b)   // (5, 7, 9)
//	vector.Dot(a, b)   // 32
//	vector.Cross(a, b) // (-3, 6, -3)
package vector

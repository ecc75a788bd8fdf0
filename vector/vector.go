package vector

// Add returns the componentwise sum a + b.
func Add(a, b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the componentwise difference a - b.
func Sub(a, b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Neg returns -v.
func Neg(v Vector) Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns a·b, summed in x, y, z order.
func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b:
//
//	(ay·bz − az·by, az·bx − ax·bz, ax·by − ay·bx)
//
// The result is orthogonal to both operands and Cross(a, b) == -Cross(b, a).
func Cross(a, b Vector) Vector {
	return Vector{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

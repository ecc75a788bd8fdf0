package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/vector"
)

func Example() {
	a := vector.New(1, 2, 3)
	b := vector.New(4, 5, 6)

	fmt.Println(vector.Add(a, b))
	fmt.Println(vector.Sub(a, b))
	fmt.Println(vector.Dot(a, b))
	fmt.Println(vector.Cross(a, b))

	// Output:
	// Vector: (5, 7, 9)
	// Vector: (-3, -3, -3)
	// 32
	// Vector: (-3, 6, -3)
}

package set_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/set"
)

func ExamplePowerSet() {
	ps, _ := set.PowerSet(set.New(1, 2))
	fmt.Println(ps)

	// Output:
	// [[] [1] [2] [1 2]]
}

func ExampleSet_Add() {
	s := set.New(1, 2)
	s.Add(2)
	s.Add(5)
	s.Remove(1)
	fmt.Println(s)

	// Output:
	// {2, 5}
}

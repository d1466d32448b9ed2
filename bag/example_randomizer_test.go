package bag_test

import (
	"fmt"

	"github.com/plus3/piecebag/bag"
)

// ExampleNewRandomizer walks a three-shape, two-color randomizer. The shufflers
// keep catalogue order so the output is stable; each bag still refills on its
// own schedule.
func ExampleNewRandomizer() {
	r, err := bag.NewRandomizer(
		[]string{"A", "B", "C"},
		[]string{"X", "Y"},
		bag.WithShufflers(inOrder{}, inOrder{}),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println("next:", r.PeekNext())
	for range 4 {
		fmt.Println("advance:", r.Advance())
	}

	// Output:
	// next: {A X}
	// advance: {A X}
	// advance: {B Y}
	// advance: {C X}
	// advance: {A Y}
}

// ExampleRandomizer_PeekCurrent shows that current is unset until the first Advance.
func ExampleRandomizer_PeekCurrent() {
	r, err := bag.NewRandomizer([]string{"I"}, []string{"blue"})
	if err != nil {
		panic(err)
	}

	_, ok := r.PeekCurrent()
	fmt.Println(r.State(), ok)

	r.Advance()
	cur, ok := r.PeekCurrent()
	fmt.Println(r.State(), ok, cur.Shape, cur.Color)

	// Output:
	// uninitialized false
	// ready true I blue
}

func ExampleNewRandomizer_emptyCatalogue() {
	_, err := bag.NewRandomizer([]string{}, []string{"X"})
	fmt.Println(err)

	// Output:
	// bag config: shape catalogue is empty
}

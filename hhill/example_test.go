package hhill_test

import (
	"fmt"

	"github.com/katalvlaran/apportion/hhill"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleApportion
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three entities compete for 5 seats with the default floor of 1.
//	  A: 105, B: 100, C: 50
//
// After the floor round, the fourth seat goes to A (priority 105/√2 ≈ 74.2)
// and the fifth to B (100/√2 ≈ 70.7), because A's next priority has already
// dropped to 105/√6 ≈ 42.9.
//
// Use case:
//
//	Any fixed pool of indivisible seats split proportionally to weights.
//
// Complexity: O(N + R·log N) time, O(N) memory
func ExampleApportion() {
	entities := []hhill.Entity{
		{ID: "A", Population: 105},
		{ID: "B", Population: 100},
		{ID: "C", Population: 50},
	}

	seats, err := hhill.Apportion(entities, hhill.WithTotalSeats(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(seats["A"], seats["B"], seats["C"])
	// Output: 2 2 1
}

// ExampleApportion_zeroFloor demonstrates a floor of 0: zero-population
// entities then receive nothing, yet still appear in the result.
func ExampleApportion_zeroFloor() {
	entities := []hhill.Entity{
		{ID: "A", Population: 0},
		{ID: "B", Population: 100},
	}

	seats, err := hhill.Apportion(entities,
		hhill.WithTotalSeats(3),
		hhill.WithMinSeats(0),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(seats["A"], seats["B"])
	// Output: 0 3
}

// ExamplePriority shows the raw ranking score ladder for one entity.
func ExamplePriority() {
	fmt.Printf("%.2f\n", hhill.Priority(100, 1))
	fmt.Printf("%.2f\n", hhill.Priority(100, 2))
	fmt.Printf("%.2f\n", hhill.Priority(100, 3))
	// Output:
	// 70.71
	// 40.82
	// 28.87
}

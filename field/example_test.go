package field_test

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/field"
	"github.com/katalvlaran/tilegrid/walk"
)

// ExampleDigits parses an elevation map and scores its single trailhead:
// starting from height 0, every step must climb by exactly one, and the
// score is how many peaks (height 9) the hike can reach.
func ExampleDigits() {
	f, _ := field.Digits(`0123
1234
8765
9876`)
	uphill := f.Pass(func(from, to uint8) bool { return to == from+1 })

	set, _ := walk.Reachable(f.Tiles, f.FindAll(0), uphill)
	peaks := 0
	for i := range set {
		if f.At(i) == 9 {
			peaks++
		}
	}
	fmt.Println(peaks)
	// Output:
	// 1
}

// ExampleField_Regions fences a garden: each 4-connected patch of equal
// plants is priced at area × perimeter.
func ExampleField_Regions() {
	f, _ := field.Runes(`AAAA
BBCD
BBCC
EEEC`)
	regions, _ := f.Regions()

	price := 0
	for _, r := range regions {
		fmt.Printf("%c: area %d, perimeter %d\n", r.Label, r.Area(), f.Perimeter(r))
		price += r.Area() * f.Perimeter(r)
	}
	fmt.Println("price:", price)
	// Output:
	// A: area 4, perimeter 10
	// B: area 4, perimeter 8
	// C: area 4, perimeter 10
	// D: area 1, perimeter 4
	// E: area 3, perimeter 8
	// price: 140
}

// ExampleField_Find locates the start marker of a maze grid.
func ExampleField_Find() {
	f, _ := field.Runes(`#S#
#.#
#E#`)
	s, _ := f.Find('S')
	e, _ := f.Find('E')
	fmt.Println(s, e)
	// Output:
	// 1 7
}

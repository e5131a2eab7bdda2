package main

import (
	"fmt"
	"slices"

	"github.com/marcodamonte/pitfalls/ui"
)

// fabFour is the fixed input. Both prints in demoSort read the same backing
// array meetTheBeetles sorts, so the second print shows the mutated order.
// No value is returned or reassigned anywhere.
var fabFour = []string{"John", "Paul", "George", "Ringo"}

// meetTheBeetles sorts members in place (lexicographic, case-sensitive)
// and echoes the result. slices.Sort swaps elements through the slice
// header; it never reallocates, so the caller's sequence is reordered.
func meetTheBeetles(members []string) {
	slices.Sort(members)
	fmt.Printf("   ...  %s\n", ui.List(members))
}

func demoSort() {
	fmt.Printf("%s %s\n", ui.Label("Before:"), ui.List(fabFour))
	meetTheBeetles(fabFour)
	fmt.Printf("%s %s\n", ui.Label(" After:"), ui.List(fabFour))
}

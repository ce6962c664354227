package levenshtein_test

import (
	"fmt"

	levenshtein "github.com/cristaloleg/levdist"
)

func ExampleDistance() {
	fmt.Println(levenshtein.Distance("Levenshtein", "Lenvinsten", false))
	fmt.Println(levenshtein.Distance("Levenshtein", "Levensthein", false))

	// Output:
	// 4
	// 2
}

func ExampleFindEditOps() {
	for _, op := range levenshtein.FindEditOps("spam", "park") {
		fmt.Println(op)
	}

	// Output:
	// delete s[0] d[0]
	// insert s[3] d[2]
	// replace s[3] d[3]
}

func ExampleMatchingBlocksFromEditOps() {
	ops := levenshtein.FindEditOps("spam", "park")
	for _, mb := range levenshtein.MatchingBlocksFromEditOps(4, 4, ops) {
		fmt.Printf("(%d,%d,%d)\n", mb.Spos, mb.Dpos, mb.Len)
	}

	// Output:
	// (1,0,2)
	// (4,4,0)
}

func ExampleApplyEditOps() {
	ops := levenshtein.FindEditOps("spam", "park")
	fmt.Println(levenshtein.ApplyEditOps("spam", "park", ops))

	// Output:
	// park
}

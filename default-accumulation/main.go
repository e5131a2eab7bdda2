package main

import (
	"fmt"

	"github.com/marcodamonte/pitfalls/roster"
	"github.com/marcodamonte/pitfalls/ui"
)

// The shared-mutable-default pitfall, part 2: silent accumulation.
//
// Three calls to the same enroll operation:
//
//	1. explicit collection → appends there; the shared default is untouched
//	2. argument omitted    → appends to the shared default: [Moose]
//	3. argument omitted    → SAME default again: [Moose, Cheeseman]
//
// Call 3 sees call 2's entry even though nothing visibly connects them:
// the state hides inside the operation's once-materialized default. That is
// the trap: omitted-argument calls quietly share storage for the life of
// the process.
//
// Run:
//
//	go run ./default-accumulation
func main() {
	party := &[]string{"Spadger", "Morris"}

	fmt.Println(ui.List(*roster.Enroll("Biffa", party)))
	fmt.Println(ui.List(*roster.Enroll("Moose", nil)))
	fmt.Println(ui.List(*roster.Enroll("Cheeseman", nil)))
}

package main

import (
	"fmt"

	"github.com/marcodamonte/pitfalls/roster"
	"github.com/marcodamonte/pitfalls/ui"
)

// The shared-mutable-default pitfall, part 1: identity.
//
// In languages with default argument values evaluated at definition time,
// `enroll(name, collection=[])` creates ONE list when the function is
// defined, and every call that omits `collection` appends into that same
// list. Go has no default arguments, so the roster package rebuilds the
// trap explicitly: nil means "omitted", and nil binds to a default
// materialized once at package init.
//
// This demo proves the aliasing by identity: the sequence an omitted-
// argument call mutates has the same address as the stored default. They
// are one object, not two equal values.
//
// Run:
//
//	go run ./default-identity
func main() {
	got := roster.Enroll("Moose", nil)
	fmt.Printf("%s %s\n", ui.Label("ID of students:"), ui.Ident(roster.ID(got)))

	// Inspect the stored default directly: it now contains Moose, and its
	// identity matches the sequence the call above mutated.
	fmt.Printf("%s %s\n", ui.Label("Function default values:"), ui.List(*roster.Default()))
	fmt.Printf("%s %s\n", ui.Label("ID of stored default:"), ui.Ident(roster.ID(roster.Default())))
}

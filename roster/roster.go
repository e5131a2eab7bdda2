// Package roster reconstructs, on purpose, the "mutable default argument"
// pitfall: an optional collection argument whose fallback value is a single
// shared object, materialized once when the operation is defined rather than
// once per call, so every call that omits the argument appends into the same
// underlying sequence.
//
// Go has no default argument values, so the pitfall cannot happen by
// accident here; it has to be rebuilt deliberately:
//
//	omitted argument → nil sentinel
//	"definition time" → NewEnroller (or package init for the std instance)
//	shared default    → one *[]string captured in the Enroller
//
// Do NOT "fix" this into a fresh-per-call default. The cumulative state is
// the behavior under demonstration.
package roster

import "unsafe"

// Enroller owns one shared default roster. The default is created exactly
// once, inside NewEnroller. Every later Enroll call that passes nil binds
// to that same object.
type Enroller struct {
	def *[]string
}

// NewEnroller materializes the shared default. This call is the analog of
// the moment a Python `def f(x, xs=[])` line executes: the empty sequence
// exists from here on, before any call happens.
func NewEnroller() *Enroller {
	return &Enroller{def: &[]string{}}
}

// Enroll appends name to r and returns the sequence it appended to.
//
// A nil r means "argument omitted": the enroller's stored default is
// substituted: the same object on every omitted call, so results
// accumulate across calls:
//
//	e.Enroll("Moose", nil)     → [Moose]
//	e.Enroll("Cheeseman", nil) → [Moose Cheeseman]   ← same sequence!
//
// An explicit r is appended to directly and the stored default is untouched.
func (e *Enroller) Enroll(name string, r *[]string) *[]string {
	if r == nil {
		r = e.def // the shared singleton, not fresh storage
	}
	*r = append(*r, name)
	return r
}

// Default returns the stored default value, the analog of inspecting
// Python's fn.__defaults__[0]. Comparing it against an Enroll return value
// proves omitted-argument calls mutate the stored default itself.
func (e *Enroller) Default() *[]string {
	return e.def
}

// ID returns a stable identity token for a sequence binding. Two equal IDs
// denote the same underlying object. It identifies the binding (the slice
// variable), not the backing array, so it stays stable while append grows
// the sequence. Python's id() has the same property for a list.
func ID(r *[]string) uintptr {
	return uintptr(unsafe.Pointer(r))
}

// std is the package-level enroller. Its default is materialized at package
// init: once per process, the closest Go gets to module-definition time.
var std = NewEnroller()

// Enroll appends name using the package-level enroller. Pass nil to omit
// the argument and hit the process-wide shared default.
func Enroll(name string, r *[]string) *[]string {
	return std.Enroll(name, r)
}

// Default returns the package-level enroller's stored default.
func Default() *[]string {
	return std.Default()
}

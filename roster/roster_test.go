package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/pitfalls/roster"
)

// TestOmittedArgumentBindsStoredDefault checks the core of the pitfall: the
// sequence returned by an omitted-argument call IS the stored default, not a
// copy and not fresh storage.
func TestOmittedArgumentBindsStoredDefault(t *testing.T) {
	t.Parallel()

	e := roster.NewEnroller()
	got := e.Enroll("Moose", nil)

	require.Equal(t, []string{"Moose"}, *got)
	assert.Same(t, e.Default(), got, "omitted call must mutate the stored default itself")
	assert.Equal(t, roster.ID(e.Default()), roster.ID(got))
}

// TestOmittedCallsAccumulate verifies cumulative state across calls that
// omit the argument, while an explicit argument keeps its call isolated.
// The three calls mirror the classic demonstration sequence.
func TestOmittedCallsAccumulate(t *testing.T) {
	t.Parallel()

	e := roster.NewEnroller()

	party := &[]string{"Spadger", "Morris"}
	require.Equal(t, []string{"Spadger", "Morris", "Biffa"}, *e.Enroll("Biffa", party))
	require.Equal(t, []string{"Moose"}, *e.Enroll("Moose", nil))
	require.Equal(t, []string{"Moose", "Cheeseman"}, *e.Enroll("Cheeseman", nil),
		"second omitted call must see the first call's entry")
}

// TestExplicitArgumentNeverTouchesDefault is the isolation property: passing
// a collection explicitly must leave the shared default exactly as it was.
func TestExplicitArgumentNeverTouchesDefault(t *testing.T) {
	t.Parallel()

	e := roster.NewEnroller()

	own := &[]string{"Spadger", "Morris"}
	got := e.Enroll("Biffa", own)

	assert.Same(t, own, got)
	assert.NotSame(t, e.Default(), got)
	assert.Empty(t, *e.Default(), "explicit-argument call leaked into the default")
}

// TestIdentityDistinguishesBindings: equal IDs for repeated omitted calls,
// a different ID for an explicit sequence, and a stable ID across appends
// even when the backing array reallocates.
func TestIdentityDistinguishesBindings(t *testing.T) {
	t.Parallel()

	e := roster.NewEnroller()

	first := e.Enroll("Moose", nil)
	second := e.Enroll("Cheeseman", nil)
	assert.Equal(t, roster.ID(first), roster.ID(second))

	own := &[]string{}
	assert.NotEqual(t, roster.ID(e.Default()), roster.ID(e.Enroll("Biffa", own)))

	// Growth reallocates the backing array; the binding's identity must not move.
	before := roster.ID(e.Default())
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		e.Enroll(name, nil)
	}
	assert.Equal(t, before, roster.ID(e.Default()))
}

// TestPackageLevelEnrollerIsProcessWide exercises the std instance. Other
// tests build their own enrollers, so only relative accumulation is asserted
// here, since the process-wide default may already hold entries.
func TestPackageLevelEnrollerIsProcessWide(t *testing.T) {
	before := len(*roster.Default())

	got := roster.Enroll("Moose", nil)
	assert.Same(t, roster.Default(), got)
	assert.Len(t, *roster.Default(), before+1)

	roster.Enroll("Cheeseman", nil)
	assert.Len(t, *roster.Default(), before+2)
}

func BenchmarkEnroll(b *testing.B) {
	e := roster.NewEnroller()
	own := &[]string{}
	for i := 0; i < b.N; i++ {
		e.Enroll("Moose", own)
	}
}

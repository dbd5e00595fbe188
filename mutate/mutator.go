// Package mutate implements structure-aware mutation of in-memory values
// for fuzz testing. Given a typed value (primitive, string, fixed array,
// growable sequence, or enum discriminant), it produces a perturbed but
// plausible instance in place, while keeping growable values inside an
// externally imposed serialized-size budget.
//
// Every mutation call threads a *Mutator explicitly; there is no shared
// or global mutation state. All operations are total: degenerate inputs
// (empty sequences, zero-length arrays, exhausted budgets) reduce to
// no-ops instead of errors.
package mutate

import "fmt"

// Rand is the source of randomness consumed by a Mutator. Implementations
// must be uniformly distributed over the requested ranges; seeding and
// stream management belong to the caller.
type Rand interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
	// Uint64 returns a uniform 64-bit value.
	Uint64() uint64
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// Mode selects the numeric mutation strategy applied to primitive values.
type Mode uint8

// Available modes. ModeHavoc additionally permits structural edits
// (sequence resizing); the other modes restrict mutation to per-element
// value edits.
const (
	ModeWalkingBitFlip Mode = iota
	ModeArithmetic
	ModeInterestingValues
	ModeHavoc
)

func (m Mode) String() string {
	switch m {
	case ModeWalkingBitFlip:
		return "bitflip"
	case ModeArithmetic:
		return "arithmetic"
	case ModeInterestingValues:
		return "interesting"
	case ModeHavoc:
		return "havoc"
	}

	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode maps a mode name (as produced by Mode.String) back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "bitflip":
		return ModeWalkingBitFlip, nil
	case "arithmetic":
		return ModeArithmetic, nil
	case "interesting":
		return ModeInterestingValues, nil
	case "havoc":
		return ModeHavoc, nil
	}

	return 0, fmt.Errorf("unknown mutation mode %q", s)
}

// Mutator holds the per-run mutation state: the random source and the
// current mode. It is passed by exclusive reference through every
// mutation call of one pass; callers serialize passes.
type Mutator struct {
	rand Rand
	mode Mode

	// cursor for ModeWalkingBitFlip, advances one bit per primitive
	// mutation so consecutive passes walk the value's bits.
	bitCursor uint
}

// New creates a Mutator in ModeHavoc backed by the given random source.
func New(r Rand) *Mutator {
	return &Mutator{rand: r, mode: ModeHavoc}
}

// Mode reports the current mutation mode.
func (mu *Mutator) Mode() Mode {
	return mu.mode
}

// SetMode switches the mutation mode for subsequent calls.
func (mu *Mutator) SetMode(mode Mode) {
	mu.mode = mode
}

// Range returns a uniform int in [lo, hi). A degenerate range (hi <= lo)
// returns lo without consulting the random source.
func (mu *Mutator) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + mu.rand.IntN(hi-lo)
}

// Chance reports true with the given probability, expressed as a
// percentage: Chance(1.0) is true about once per hundred calls.
// Chance(0) is false without consulting the random source.
func (mu *Mutator) Chance(pct float64) bool {
	if pct <= 0 {
		return false
	}

	return mu.rand.Float64()*100 < pct
}

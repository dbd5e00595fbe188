package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunk is a variable-size element for budget tests: Generate draws its
// size from the random source and SerializedSize reports it back.
type chunk struct {
	size int
}

func (c *chunk) Mutate(_ *Mutator, _ *Constraints) {}

func (c *chunk) Generate(mu *Mutator, _ *Constraints) {
	c.size = mu.Range(1, 9)
}

func (c *chunk) SerializedSize() int { return c.size }
func (c *chunk) MinNonzeroSize() int { return 1 }

func havocMutator(r Rand) *Mutator {
	mu := New(r)
	mu.SetMode(ModeHavoc)

	return mu
}

func TestMutateSliceZeroLength(t *testing.T) {
	// The degenerate fixed-array case: nothing to mutate, and the
	// random source must never be consulted.
	mu := New(&panicRand{t: t})

	var arr [0]U8

	MutateSlice(arr[:], mu, nil)
}

func TestMutateSliceMutatesEveryElement(t *testing.T) {
	mu := New(&lcgRand{state: 7})
	mu.SetMode(ModeWalkingBitFlip)

	s := []U8{0, 0, 0, 0}
	MutateSlice(s, mu, nil)

	// Walking bit flip touches one bit per element, cursor advancing, so
	// every element differs from zero.
	assert.Equal(t, []U8{1, 2, 4, 8}, s)
}

func TestShrinkHalfFromEnd(t *testing.T) {
	// Ten elements, resize forced, policy Half, direction FromEnd,
	// type Shrink: the first five elements survive untouched.
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},  // resize triggers
		ints:   []int{1, 1, 1}, // type=Shrink, policy=Half, direction=FromEnd
	}
	mu := havocMutator(rand)

	seq := []U8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	MutateGrowableSeq(&seq, mu, nil)

	assert.Equal(t, []U8{0, 1, 2, 3, 4}, seq)
	assert.True(t, rand.exhausted())
}

func TestGrowEmptySequence(t *testing.T) {
	// Empty sequence, grow forced, count drawn as three, no budget:
	// exactly three fresh elements, in generation order.
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},
		// type=Grow, policy draw (burned for empty sequences),
		// count-1=2, direction=FromEnd
		ints:  []int{0, 0, 2, 1},
		uints: []uint64{0x11, 0x22, 0x33},
	}
	mu := havocMutator(rand)

	var seq []U8

	MutateGrowableSeq(&seq, mu, nil)

	assert.Equal(t, []U8{0x11, 0x22, 0x33}, seq)
	assert.True(t, rand.exhausted())
}

func TestGrowCappedByBudget(t *testing.T) {
	// Four-byte elements under a ten-byte budget with a candidate count
	// of five: the cap allows only 10/4 = 2 elements.
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},
		// type=Grow, policy=FixedSmall, count-1=4, direction=FromEnd
		ints:  []int{0, 3, 4, 1},
		uints: []uint64{0xAAAA_AAAA, 0xBBBB_BBBB},
	}
	mu := havocMutator(rand)

	seq := []U32{7}
	cs := NewConstraints().WithMaxSize(10)

	MutateGrowableSeq(&seq, mu, cs)

	assert.Equal(t, []U32{7, 0xAAAA_AAAA, 0xBBBB_BBBB}, seq)
	assert.True(t, rand.exhausted())
}

func TestGrowStopsBeforeOversizedElement(t *testing.T) {
	// Budget five: a 3-byte element fits (2 remain), then a 3-byte
	// element exceeds the remainder and growth stops before inserting it.
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},
		// type=Grow, policy burn, count-1=7 (8 candidates),
		// direction=FromEnd, then one size draw per generated element
		ints: []int{0, 0, 7, 1, 2, 2},
	}
	mu := havocMutator(rand)

	var seq []chunk

	MutateGrowableSeq(&seq, mu, NewConstraints().WithMaxSize(5))

	require.Len(t, seq, 1)
	assert.Equal(t, 3, seq[0].size)
	assert.True(t, rand.exhausted())
}

func TestGrowFromBeginningPreservesOrder(t *testing.T) {
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},
		// type=Grow, policy=FixedSmall, count-1=1, direction=FromBeginning
		ints:  []int{0, 3, 1, 0},
		uints: []uint64{0xAA, 0xBB},
	}
	mu := havocMutator(rand)

	seq := []U8{1, 2, 3}
	MutateGrowableSeq(&seq, mu, nil)

	assert.Equal(t, []U8{0xAA, 0xBB, 1, 2, 3}, seq)
	assert.True(t, rand.exhausted())
}

func TestGrowZeroBudgetIsNoop(t *testing.T) {
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},
		// type=Grow, policy=Half: 4/2 = 2 candidates, capped to zero
		ints: []int{0, 1},
	}
	mu := havocMutator(rand)

	seq := []U32{1, 2, 3, 4}
	MutateGrowableSeq(&seq, mu, NewConstraints().WithMaxSize(0))

	assert.Equal(t, []U32{1, 2, 3, 4}, seq)
	assert.True(t, rand.exhausted())
}

func TestShrinkAllClears(t *testing.T) {
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},
		ints:   []int{1, 4}, // type=Shrink, policy=All
	}
	mu := havocMutator(rand)

	seq := []U8{1, 2, 3}
	MutateGrowableSeq(&seq, mu, nil)

	assert.Empty(t, seq)
	assert.True(t, rand.exhausted())
}

func TestShrinkFixedSmallClampsToLength(t *testing.T) {
	// FixedSmall can draw more elements than exist; the sequence is
	// cleared instead of removing past its length.
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},
		ints:   []int{1, 3, 6}, // type=Shrink, policy=FixedSmall, count-1=6 (7 of 3)
	}
	mu := havocMutator(rand)

	seq := []U8{1, 2, 3}
	MutateGrowableSeq(&seq, mu, nil)

	assert.Empty(t, seq)
	assert.True(t, rand.exhausted())
}

func TestShrinkZeroCountRedraws(t *testing.T) {
	// Quarter of three is zero, so shrink re-draws uniformly in
	// [0, len] and still removes something when the re-draw is nonzero.
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},
		// type=Shrink, policy=Quarter, re-draw=2, direction=FromBeginning
		ints: []int{1, 0, 2, 0},
	}
	mu := havocMutator(rand)

	seq := []U8{1, 2, 3}
	MutateGrowableSeq(&seq, mu, nil)

	assert.Equal(t, []U8{3}, seq)
	assert.True(t, rand.exhausted())
}

func TestShrinkEmptyIsNoop(t *testing.T) {
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},
		ints:   []int{1}, // type=Shrink; empty sequence returns before any policy draw
	}
	mu := havocMutator(rand)

	var seq []U8

	MutateGrowableSeq(&seq, mu, nil)

	assert.Empty(t, seq)
	assert.True(t, rand.exhausted())
}

func TestMutateSeqShrinksWithoutGrowCapability(t *testing.T) {
	// The base sequence form never grows: a triggered structural edit
	// goes straight to shrink with no grow/shrink type draw.
	rand := &scriptRand{
		t:      t,
		floats: []float64{0.0},
		ints:   []int{1, 1}, // policy=Half, direction=FromEnd
	}
	mu := havocMutator(rand)

	seq := []U8{1, 2, 3, 4}
	MutateSeq(&seq, mu, nil)

	assert.Equal(t, []U8{1, 2}, seq)
	assert.True(t, rand.exhausted())
}

func TestMutateSeqValueEditsOutsideHavoc(t *testing.T) {
	// Non-destructive modes never make structural edits and never draw
	// the resize chance.
	mu := New(&lcgRand{state: 3})
	mu.SetMode(ModeArithmetic)

	for range 200 {
		seq := []U8{1, 2, 3}
		MutateSeq(&seq, mu, nil)
		require.Len(t, seq, 3)
	}
}

func TestGrowRespectsBudgetProperty(t *testing.T) {
	// Whatever the draws, the bytes added by one grow step never exceed
	// the budget.
	rand := &lcgRand{state: 11}
	mu := havocMutator(rand)

	const budget = 16

	for range 2000 {
		seq := make([]U16, rand.IntN(6))
		before := len(seq)

		growSeq[U16](mu, &seq, budget, true)

		added := (len(seq) - before) * 2
		require.LessOrEqual(t, added, budget)
		require.GreaterOrEqual(t, len(seq), before)
	}
}

func TestShrinkTotalityProperty(t *testing.T) {
	// Shrinking never leaves a sequence longer than it was.
	rand := &lcgRand{state: 13}
	mu := havocMutator(rand)

	for range 2000 {
		seq := make([]U8, rand.IntN(40))
		before := len(seq)

		shrinkSeq(mu, &seq)

		require.LessOrEqual(t, len(seq), before)
	}
}

func TestResizeReplayDeterminism(t *testing.T) {
	run := func() []U8 {
		mu := havocMutator(&lcgRand{state: 1234})

		seq := []U8{10, 20, 30, 40, 50}
		for range 500 {
			MutateGrowableSeq(&seq, mu, NewConstraints().WithMaxSize(64))
		}

		return seq
	}

	require.Equal(t, run(), run())
}

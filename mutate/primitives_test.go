package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolMutate(t *testing.T) {
	mu := New(&scriptRand{t: t, ints: []int{1, 0}})

	var b Bool

	b.Mutate(mu, nil)
	assert.Equal(t, Bool(true), b)

	b.Mutate(mu, nil)
	assert.Equal(t, Bool(false), b)
}

func TestUnsignedMutateDelegatesToNumericStrategy(t *testing.T) {
	mu := New(&panicRand{t: t})
	mu.SetMode(ModeWalkingBitFlip)

	v := U16(0)
	v.Mutate(mu, nil)

	assert.Equal(t, U16(1), v)
}

func TestSignedMutateReinterpretsBitPattern(t *testing.T) {
	// -1 is 0xFF; flipping bit 0 yields 0xFE, which is -2. Sign gets no
	// special treatment.
	mu := New(&panicRand{t: t})
	mu.SetMode(ModeWalkingBitFlip)

	v := I8(-1)
	v.Mutate(mu, nil)

	assert.Equal(t, I8(-2), v)
}

func TestSignedMutateWiderWidths(t *testing.T) {
	mu := New(&panicRand{t: t})
	mu.SetMode(ModeWalkingBitFlip)

	v := I64(0)
	v.Mutate(mu, nil)
	assert.Equal(t, I64(1), v)

	w := I32(-1)
	w.Mutate(mu, nil) // cursor now at bit 1
	assert.Equal(t, I32(-3), w)
}

func TestPrimitiveSizes(t *testing.T) {
	cases := []struct {
		value interface {
			SerializedSize() int
			MinNonzeroSize() int
		}
		size int
	}{
		{new(Bool), 1},
		{new(U8), 1},
		{new(U16), 2},
		{new(U32), 4},
		{new(U64), 8},
		{new(I8), 1},
		{new(I16), 2},
		{new(I32), 4},
		{new(I64), 8},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.size, tc.value.SerializedSize())
		assert.Equal(t, tc.size, tc.value.MinNonzeroSize())
	}
}

func TestPrimitiveGenerate(t *testing.T) {
	mu := New(&scriptRand{t: t, uints: []uint64{0xDEAD_BEEF_CAFE_F00D}})

	var v U32

	v.Generate(mu, nil)
	assert.Equal(t, U32(0xCAFE_F00D), v)
}

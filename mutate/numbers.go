package mutate

// UnsignedInt constrains the raw integer representations the numeric
// strategy operates on.
type UnsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SignedInt constrains the signed integer widths supported by the
// primitive wrapper types.
type SignedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// bitsOf returns the bit width of T.
func bitsOf[T UnsignedInt]() uint {
	var v T
	v--

	var bits uint
	for ; v != 0; v >>= 1 {
		bits++
	}

	return bits
}

// Number mutates a primitive integer according to the Mutator's current
// mode. Signed values are reinterpreted as the same-width unsigned type
// by their callers; the strategy only ever sees raw bit patterns.
func Number[T UnsignedInt](mu *Mutator, v *T) {
	switch mu.mode {
	case ModeWalkingBitFlip:
		flipBit(mu, v)
	case ModeArithmetic:
		arithmeticStep(mu, v)
	case ModeInterestingValues:
		interestingValue(mu, v)
	case ModeHavoc:
		switch mu.Range(0, 3) {
		case 0:
			flipBit(mu, v)
		case 1:
			arithmeticStep(mu, v)
		default:
			interestingValue(mu, v)
		}
	}
}

func flipBit[T UnsignedInt](mu *Mutator, v *T) {
	bits := bitsOf[T]()
	*v ^= T(1) << (mu.bitCursor % bits)
	mu.bitCursor++
}

func arithmeticStep[T UnsignedInt](mu *Mutator, v *T) {
	delta := T(mu.Range(1, 17))
	if mu.Range(0, 2) == 0 {
		*v += delta
	} else {
		*v -= delta
	}
}

func interestingValue[T UnsignedInt](mu *Mutator, v *T) {
	var allOnes T
	allOnes--

	// Boundary values for the value's width: zero, one, max, the signed
	// max/min of the same width, and the off-by-one neighbors of max.
	candidates := []T{
		0,
		1,
		allOnes,
		allOnes >> 1,
		allOnes>>1 + 1,
		allOnes - 1,
	}

	*v = candidates[mu.Range(0, len(candidates))]
}

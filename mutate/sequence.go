package mutate

// Structural resize decisions. Each is drawn uniformly per resize event.

// resizeCount selects how many elements a resize touches: a fraction of
// the current length, a small fixed count in [1, 8], or everything.
type resizeCount uint8

const (
	resizeQuarter resizeCount = iota
	resizeHalf
	resizeThreeQuarters
	resizeFixedSmall
	resizeAll
)

// resizeDirection selects which end of the sequence is affected.
type resizeDirection uint8

const (
	fromBeginning resizeDirection = iota
	fromEnd
)

// resizeType selects between growing and shrinking. Sequences whose
// element type cannot be freshly generated only ever shrink.
type resizeType uint8

const (
	resizeGrow resizeType = iota
	resizeShrink
)

func drawResizeCount(mu *Mutator) resizeCount {
	return resizeCount(mu.Range(0, 5))
}

func drawResizeDirection(mu *Mutator) resizeDirection {
	return resizeDirection(mu.Range(0, 2))
}

func drawResizeType(mu *Mutator) resizeType {
	return resizeType(mu.Range(0, 2))
}

// resizeChance is the probability, in percent, that a Havoc-mode pass
// over a growable sequence performs a structural edit instead of
// per-element mutation.
const resizeChance = 1.0

// countFor computes the element count a policy selects for the given
// length. resizeFixedSmall consults the random source.
func countFor(mu *Mutator, policy resizeCount, length int) int {
	switch policy {
	case resizeQuarter:
		return length / 4
	case resizeHalf:
		return length / 2
	case resizeThreeQuarters:
		return length - length/4
	case resizeFixedSmall:
		return mu.Range(1, 9)
	default:
		return length
	}
}

// MutateSlice mutates every element of a slice in place, in order. Each
// element receives the same constraint: per-element value mutation does
// not consume the byte budget, only structural edits do. Fixed-size
// arrays delegate here via arr[:]; a zero-length view never consults
// the random source.
func MutateSlice[T any, PT Elem[T]](s []T, mu *Mutator, cs *Constraints) {
	for i := range s {
		PT(&s[i]).Mutate(mu, cs)
	}
}

// MutateSeq mutates a growable sequence whose elements satisfy only the
// base capability. In Havoc mode there is a small chance of a shrink;
// growth is impossible without fresh generation, and all other passes
// mutate the elements in place.
func MutateSeq[T any, PT Elem[T]](v *[]T, mu *Mutator, cs *Constraints) {
	if mu.Mode() == ModeHavoc && mu.Chance(resizeChance) {
		shrinkSeq(mu, v)
		return
	}

	MutateSlice[T, PT](*v, mu, cs)
}

// MutateGrowableSeq mutates a growable sequence whose elements also
// support fresh generation and size reporting. In Havoc mode there is a
// small chance of a structural edit, drawn as either a grow or a
// shrink; every other pass mutates the elements in place. Callers with
// rich element types should always prefer this entry point over
// MutateSeq.
func MutateGrowableSeq[T any, PT RichElem[T]](v *[]T, mu *Mutator, cs *Constraints) {
	if mu.Mode() == ModeHavoc && mu.Chance(resizeChance) {
		if drawResizeType(mu) == resizeGrow {
			max, ok := cs.MaxSize()
			growSeq[T, PT](mu, v, max, ok)
		} else {
			shrinkSeq(mu, v)
		}

		return
	}

	MutateSlice[T, PT](*v, mu, cs)
}

// growSeq appends freshly generated elements to one end of the
// sequence. An empty sequence gains a uniform 1-8 elements regardless
// of the drawn policy. With a byte budget, the candidate count is first
// capped by budget / min-nonzero-element-size, and generation stops
// early, before inserting, the first time an element's actual size
// exceeds the remaining budget.
func growSeq[T any, PT RichElem[T]](mu *Mutator, v *[]T, maxSize int, haveMax bool) {
	policy := drawResizeCount(mu)

	var n int
	if len(*v) == 0 {
		n = mu.Range(1, 9)
	} else {
		n = countFor(mu, policy, len(*v))
	}

	if haveMax {
		var zero T

		min := PT(&zero).MinNonzeroSize()
		if min > 0 && n > maxSize/min {
			n = maxSize / min
		}
	}

	if n == 0 {
		return
	}

	switch drawResizeDirection(mu) {
	case fromBeginning:
		// Stage new elements into a fresh buffer and splice the
		// original onto the end, instead of shifting the original
		// prefix once per insertion.
		staged := make([]T, 0, n+len(*v))
		staged = appendFresh[T, PT](mu, staged, n, maxSize, haveMax)
		*v = append(staged, *v...)
	case fromEnd:
		*v = appendFresh[T, PT](mu, *v, n, maxSize, haveMax)
	}
}

// appendFresh generates up to n fresh elements onto dst. Each accepted
// element's actual reported size (not the worst-case minimum) is spent
// from the budget before the next element is generated.
func appendFresh[T any, PT RichElem[T]](mu *Mutator, dst []T, n int, maxSize int, haveMax bool) []T {
	for range n {
		var cs *Constraints
		if haveMax {
			cs = NewConstraints().WithMaxSize(maxSize)
		}

		var elem T

		PT(&elem).Generate(mu, cs)

		if haveMax {
			size := PT(&elem).SerializedSize()
			if size > maxSize {
				break
			}

			maxSize -= size
		}

		dst = append(dst, elem)
	}

	return dst
}

// shrinkSeq removes a contiguous run of elements from one end. An empty
// sequence is left untouched. A policy that computes zero elements
// re-draws a uniform count in [0, len] so short sequences still shrink
// unpredictably, and removing the full length clears the sequence.
func shrinkSeq[T any](mu *Mutator, v *[]T) {
	if len(*v) == 0 {
		return
	}

	n := countFor(mu, drawResizeCount(mu), len(*v))
	if n == 0 {
		n = mu.Range(0, len(*v)+1)
	}

	// The fixed-small policy can exceed a short sequence's length;
	// never remove more elements than exist.
	if n >= len(*v) {
		*v = (*v)[:0]
		return
	}

	switch drawResizeDirection(mu) {
	case fromBeginning:
		*v = (*v)[n:]
	case fromEnd:
		*v = (*v)[:len(*v)-n]
	}
}

package mutate

// EnumRepr constrains the declared enumerator types an UnsafeEnum can
// wrap: any integer-backed enumeration.
type EnumRepr interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// UnsafeEnum wraps an enumerator of type T whose wire representation is
// the unsigned integer I. It starts out holding a well-formed
// enumerator and, on its first mutation, irreversibly decays into a raw
// integer that need not correspond to any declared enumerator. This is
// the designed output, not an error: it exercises target code paths
// that must reject or safely handle unknown discriminants.
//
// The two-state representation has no third variant, so the decayed
// form is the only state reachable after mutation.
type UnsafeEnum[T EnumRepr, I UnsignedInt] struct {
	value T
	raw   I
	valid bool
}

// NewUnsafeEnum wraps a well-formed enumerator.
func NewUnsafeEnum[T EnumRepr, I UnsignedInt](v T) UnsafeEnum[T, I] {
	return UnsafeEnum[T, I]{value: v, valid: true}
}

// IsValid reports whether the wrapper still holds its declared
// enumerator. False after any mutation, forever.
func (e *UnsafeEnum[T, I]) IsValid() bool {
	return e.valid
}

// Value returns the declared enumerator while the wrapper is valid.
func (e *UnsafeEnum[T, I]) Value() (T, bool) {
	return e.value, e.valid
}

// Raw returns the wire representation: the mapped enumerator while
// valid, the mutated raw integer after.
func (e *UnsafeEnum[T, I]) Raw() I {
	if e.valid {
		return I(e.value)
	}

	return e.raw
}

// Mutate decays a valid wrapper into its raw representation, then
// mutates the raw integer with the primitive numeric strategy. The
// transition happens unconditionally on the first call and is one-way.
func (e *UnsafeEnum[T, I]) Mutate(mu *Mutator, _ *Constraints) {
	if e.valid {
		var zero T

		e.raw = I(e.value)
		e.value = zero
		e.valid = false
	}

	Number(mu, &e.raw)
}

// SerializedSize is the byte width of the wire representation.
func (e *UnsafeEnum[T, I]) SerializedSize() int {
	return int(bitsOf[I]() / 8)
}

// MinNonzeroSize equals SerializedSize: the representation is fixed
// width.
func (e *UnsafeEnum[T, I]) MinNonzeroSize() int {
	return int(bitsOf[I]() / 8)
}

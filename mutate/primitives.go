package mutate

// Primitive wrapper types. Each implements the full capability set
// (Mutatable, Sized, Fresh) so primitives work both as standalone fields
// and as elements of growable sequences.

// Bool is a mutation-eligible boolean.
type Bool bool

// Mutate replaces the value with a fresh 0/1 draw.
func (b *Bool) Mutate(mu *Mutator, _ *Constraints) {
	*b = mu.Range(0, 2) != 0
}

// Generate draws a fresh boolean.
func (b *Bool) Generate(mu *Mutator, _ *Constraints) {
	*b = mu.Range(0, 2) != 0
}

func (b *Bool) SerializedSize() int { return 1 }
func (b *Bool) MinNonzeroSize() int { return 1 }

// U8 is a mutation-eligible unsigned 8-bit integer.
type U8 uint8

// U16 is a mutation-eligible unsigned 16-bit integer.
type U16 uint16

// U32 is a mutation-eligible unsigned 32-bit integer.
type U32 uint32

// U64 is a mutation-eligible unsigned 64-bit integer.
type U64 uint64

func (v *U8) Mutate(mu *Mutator, _ *Constraints)  { Number(mu, v) }
func (v *U16) Mutate(mu *Mutator, _ *Constraints) { Number(mu, v) }
func (v *U32) Mutate(mu *Mutator, _ *Constraints) { Number(mu, v) }
func (v *U64) Mutate(mu *Mutator, _ *Constraints) { Number(mu, v) }

func (v *U8) Generate(mu *Mutator, _ *Constraints)  { *v = U8(mu.rand.Uint64()) }
func (v *U16) Generate(mu *Mutator, _ *Constraints) { *v = U16(mu.rand.Uint64()) }
func (v *U32) Generate(mu *Mutator, _ *Constraints) { *v = U32(mu.rand.Uint64()) }
func (v *U64) Generate(mu *Mutator, _ *Constraints) { *v = U64(mu.rand.Uint64()) }

func (v *U8) SerializedSize() int  { return 1 }
func (v *U16) SerializedSize() int { return 2 }
func (v *U32) SerializedSize() int { return 4 }
func (v *U64) SerializedSize() int { return 8 }

func (v *U8) MinNonzeroSize() int  { return 1 }
func (v *U16) MinNonzeroSize() int { return 2 }
func (v *U32) MinNonzeroSize() int { return 4 }
func (v *U64) MinNonzeroSize() int { return 8 }

// I8 is a mutation-eligible signed 8-bit integer.
type I8 int8

// I16 is a mutation-eligible signed 16-bit integer.
type I16 int16

// I32 is a mutation-eligible signed 32-bit integer.
type I32 int32

// I64 is a mutation-eligible signed 64-bit integer.
type I64 int64

// Signed widths mutate through the same-width unsigned bit pattern; the
// sign bit gets no special treatment.

func (v *I8) Mutate(mu *Mutator, _ *Constraints) {
	raw := uint8(*v)
	Number(mu, &raw)
	*v = I8(raw)
}

func (v *I16) Mutate(mu *Mutator, _ *Constraints) {
	raw := uint16(*v)
	Number(mu, &raw)
	*v = I16(raw)
}

func (v *I32) Mutate(mu *Mutator, _ *Constraints) {
	raw := uint32(*v)
	Number(mu, &raw)
	*v = I32(raw)
}

func (v *I64) Mutate(mu *Mutator, _ *Constraints) {
	raw := uint64(*v)
	Number(mu, &raw)
	*v = I64(raw)
}

func (v *I8) Generate(mu *Mutator, _ *Constraints)  { *v = I8(uint8(mu.rand.Uint64())) }
func (v *I16) Generate(mu *Mutator, _ *Constraints) { *v = I16(uint16(mu.rand.Uint64())) }
func (v *I32) Generate(mu *Mutator, _ *Constraints) { *v = I32(uint32(mu.rand.Uint64())) }
func (v *I64) Generate(mu *Mutator, _ *Constraints) { *v = I64(mu.rand.Uint64()) }

func (v *I8) SerializedSize() int  { return 1 }
func (v *I16) SerializedSize() int { return 2 }
func (v *I32) SerializedSize() int { return 4 }
func (v *I64) SerializedSize() int { return 8 }

func (v *I8) MinNonzeroSize() int  { return 1 }
func (v *I16) MinNonzeroSize() int { return 2 }
func (v *I32) MinNonzeroSize() int { return 4 }
func (v *I64) MinNonzeroSize() int { return 8 }

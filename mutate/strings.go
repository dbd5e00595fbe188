package mutate

import "unicode/utf8"

// String containers own an ordered sequence of character units. Mutation
// replaces a random subset of positions with freshly generated
// characters of the appropriate alphabet and never changes the length.
// Containers shorter than two units are left untouched: the mutation
// count is drawn from [1, len-1], which is degenerate below that.

// AsciiString is a mutation-eligible string of single-byte characters.
type AsciiString struct {
	data []byte
}

// NewAsciiString wraps s. Callers are responsible for s being ASCII.
func NewAsciiString(s string) AsciiString {
	return AsciiString{data: []byte(s)}
}

func (s *AsciiString) String() string { return string(s.data) }

// Len reports the number of character units.
func (s *AsciiString) Len() int { return len(s.data) }

// Bytes exposes the raw character units.
func (s *AsciiString) Bytes() []byte { return s.data }

// Mutate replaces a random subset of positions with fresh ASCII
// characters, sampled without replacement.
func (s *AsciiString) Mutate(mu *Mutator, _ *Constraints) {
	if len(s.data) < 2 {
		return
	}

	n := mu.Range(1, len(s.data))
	for _, idx := range sampleIndexes(mu, len(s.data), n) {
		s.data[idx] = asciiChar(mu)
	}
}

// Generate replaces the contents with a fresh string of up to 16
// characters, bounded by the constraint's byte budget when present.
func (s *AsciiString) Generate(mu *Mutator, cs *Constraints) {
	length := mu.Range(0, 17)
	if max, ok := cs.MaxSize(); ok && length > max {
		length = max
	}

	s.data = make([]byte, length)
	for i := range s.data {
		s.data[i] = asciiChar(mu)
	}
}

func (s *AsciiString) SerializedSize() int { return len(s.data) }
func (s *AsciiString) MinNonzeroSize() int { return 1 }

// Utf8String is a mutation-eligible string of Unicode scalar values.
type Utf8String struct {
	data []rune
}

// NewUtf8String wraps s.
func NewUtf8String(s string) Utf8String {
	return Utf8String{data: []rune(s)}
}

func (s *Utf8String) String() string { return string(s.data) }

// Len reports the number of character units (runes, not bytes).
func (s *Utf8String) Len() int { return len(s.data) }

// Runes exposes the raw character units.
func (s *Utf8String) Runes() []rune { return s.data }

// Mutate replaces a random subset of positions with fresh Unicode scalar
// values, sampled without replacement.
func (s *Utf8String) Mutate(mu *Mutator, _ *Constraints) {
	if len(s.data) < 2 {
		return
	}

	n := mu.Range(1, len(s.data))
	for _, idx := range sampleIndexes(mu, len(s.data), n) {
		s.data[idx] = utf8Char(mu)
	}
}

// Generate replaces the contents with a fresh string of up to 16 runes.
// With a byte budget, runes are kept while their encoded size fits.
func (s *Utf8String) Generate(mu *Mutator, cs *Constraints) {
	length := mu.Range(0, 17)
	max, bounded := cs.MaxSize()

	s.data = s.data[:0]

	for range length {
		r := utf8Char(mu)
		if bounded {
			size := utf8.RuneLen(r)
			if size > max {
				break
			}

			max -= size
		}

		s.data = append(s.data, r)
	}
}

// SerializedSize is the UTF-8 encoded byte length, not the rune count.
func (s *Utf8String) SerializedSize() int {
	size := 0
	for _, r := range s.data {
		size += utf8.RuneLen(r)
	}

	return size
}

func (s *Utf8String) MinNonzeroSize() int { return 1 }

// asciiChar draws a printable ASCII character.
func asciiChar(mu *Mutator) byte {
	return byte(mu.Range(0x20, 0x7f))
}

// utf8Char draws a uniform Unicode scalar value: any code point except
// the surrogate range, which cannot be encoded as UTF-8.
func utf8Char(mu *Mutator) rune {
	r := rune(mu.Range(0, 0x110000-0x800))
	if r >= 0xD800 {
		r += 0x800
	}

	return r
}

// sampleIndexes draws k distinct indexes in [0, n) by a partial
// Fisher-Yates shuffle.
func sampleIndexes(mu *Mutator, n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	for i := range k {
		j := mu.Range(i, n)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}

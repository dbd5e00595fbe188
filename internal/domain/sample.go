package domain

import (
	"encoding/binary"

	m "github.com/fuzzbed/mangle/internal/model"
	"github.com/fuzzbed/mangle/mutate"
)

// sample is a mutable in-memory value tree the harness perturbs. Each
// built-in shape seeds a plausible starting value, mutates its fields
// through the engine's per-type entry points, and serializes itself so
// sizes can be tracked and samples written out.
type sample interface {
	mutate(mu *mutate.Mutator, budget int)
	serialize() []byte
}

// newSample seeds the initial value for a shape.
func newSample(shape m.Shape) (sample, bool) {
	switch shape {
	case m.ShapeMessage:
		return newMessage(), true
	case m.ShapePacket:
		return newPacket(), true
	case m.ShapeRecord:
		return newRecord(), true
	}

	return nil, false
}

// shapeInfos describes the built-in shapes for display.
func shapeInfos() []m.ShapeInfo {
	return []m.ShapeInfo{
		{
			Shape:       m.ShapeMessage,
			Description: "framed message: header, discriminant, payload, both string kinds",
			Fields:      8,
			Growable:    1,
		},
		{
			Shape:       m.ShapePacket,
			Description: "binary frame: fixed header, growable 16-bit words, checksum",
			Fields:      3,
			Growable:    1,
		},
		{
			Shape:       m.ShapeRecord,
			Description: "string-heavy record with a growable tag list",
			Fields:      5,
			Growable:    1,
		},
	}
}

// growBudget derives the constraint for a growable field: the remaining
// budget after the bytes the field already occupies. A zero budget
// means unconstrained.
func growBudget(budget, used int) *mutate.Constraints {
	if budget <= 0 {
		return nil
	}

	return mutate.NewConstraints().WithMaxSize(budget).Consume(used)
}

// messageKind is the message discriminant; its wrapper deliberately
// decays to raw values outside this set during fuzzing.
type messageKind uint8

const (
	kindData messageKind = iota + 1
	kindControl
	kindHeartbeat
)

// message exercises every mutation capability the engine has.
type message struct {
	magic   [4]mutate.U8
	version mutate.U16
	kind    mutate.UnsafeEnum[messageKind, uint8]
	seq     mutate.I32
	payload []mutate.U8
	name    mutate.AsciiString
	note    mutate.Utf8String
	ack     mutate.Bool
}

func newMessage() *message {
	payload := make([]mutate.U8, 32)
	for i := range payload {
		payload[i] = mutate.U8(i)
	}

	return &message{
		magic:   [4]mutate.U8{'M', 'N', 'G', 'L'},
		version: 1,
		kind:    mutate.NewUnsafeEnum[messageKind, uint8](kindData),
		seq:     100,
		payload: payload,
		name:    mutate.NewAsciiString("sample-message"),
		note:    mutate.NewUtf8String("seed note ✓"),
		ack:     true,
	}
}

func (msg *message) mutate(mu *mutate.Mutator, budget int) {
	mutate.MutateSlice(msg.magic[:], mu, nil)
	msg.version.Mutate(mu, nil)
	msg.kind.Mutate(mu, nil)
	msg.seq.Mutate(mu, nil)
	mutate.MutateGrowableSeq(&msg.payload, mu, growBudget(budget, len(msg.payload)))
	msg.name.Mutate(mu, nil)
	msg.note.Mutate(mu, nil)
	msg.ack.Mutate(mu, nil)
}

func (msg *message) serialize() []byte {
	out := make([]byte, 0, 64+len(msg.payload))

	for _, b := range msg.magic {
		out = append(out, byte(b))
	}

	out = binary.LittleEndian.AppendUint16(out, uint16(msg.version))
	out = append(out, msg.kind.Raw())
	out = binary.LittleEndian.AppendUint32(out, uint32(msg.seq))

	out = binary.LittleEndian.AppendUint32(out, uint32(len(msg.payload)))
	for _, b := range msg.payload {
		out = append(out, byte(b))
	}

	out = binary.LittleEndian.AppendUint16(out, uint16(msg.name.Len()))
	out = append(out, msg.name.Bytes()...)

	note := []byte(msg.note.String())
	out = binary.LittleEndian.AppendUint16(out, uint16(len(note)))
	out = append(out, note...)

	if msg.ack {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}

	return out
}

// packet is a compact binary frame.
type packet struct {
	header [8]mutate.U8
	words  []mutate.U16
	crc    mutate.U32
}

func newPacket() *packet {
	return &packet{
		header: [8]mutate.U8{0x7E, 0x7E, 0x01, 0x00, 0x00, 0x10, 0x00, 0x7E},
		words:  []mutate.U16{0x0102, 0x0304, 0x0506, 0x0708},
		crc:    0xFFFF_FFFF,
	}
}

func (p *packet) mutate(mu *mutate.Mutator, budget int) {
	mutate.MutateSlice(p.header[:], mu, nil)
	mutate.MutateGrowableSeq(&p.words, mu, growBudget(budget, 2*len(p.words)))
	p.crc.Mutate(mu, nil)
}

func (p *packet) serialize() []byte {
	out := make([]byte, 0, 16+2*len(p.words))

	for _, b := range p.header {
		out = append(out, byte(b))
	}

	out = binary.LittleEndian.AppendUint16(out, uint16(len(p.words)))
	for _, w := range p.words {
		out = binary.LittleEndian.AppendUint16(out, uint16(w))
	}

	out = binary.LittleEndian.AppendUint32(out, uint32(p.crc))

	return out
}

// record is string-heavy: its tag list grows and shrinks whole ASCII
// strings, exercising variable-size elements under a byte budget.
type record struct {
	id     mutate.U64
	key    mutate.AsciiString
	tags   []mutate.AsciiString
	weight mutate.I16
	active mutate.Bool
}

func newRecord() *record {
	return &record{
		id:  0x0102_0304_0506_0708,
		key: mutate.NewAsciiString("record-key"),
		tags: []mutate.AsciiString{
			mutate.NewAsciiString("alpha"),
			mutate.NewAsciiString("beta"),
			mutate.NewAsciiString("gamma"),
		},
		weight: -40,
		active: false,
	}
}

func (r *record) mutate(mu *mutate.Mutator, budget int) {
	r.id.Mutate(mu, nil)
	r.key.Mutate(mu, nil)
	mutate.MutateGrowableSeq(&r.tags, mu, growBudget(budget, r.tagBytes()))
	r.weight.Mutate(mu, nil)
	r.active.Mutate(mu, nil)
}

func (r *record) tagBytes() int {
	total := 0
	for i := range r.tags {
		total += r.tags[i].SerializedSize()
	}

	return total
}

func (r *record) serialize() []byte {
	out := make([]byte, 0, 32)

	out = binary.LittleEndian.AppendUint64(out, uint64(r.id))

	out = binary.LittleEndian.AppendUint16(out, uint16(r.key.Len()))
	out = append(out, r.key.Bytes()...)

	out = binary.LittleEndian.AppendUint16(out, uint16(len(r.tags)))
	for i := range r.tags {
		out = binary.LittleEndian.AppendUint16(out, uint16(r.tags[i].Len()))
		out = append(out, r.tags[i].Bytes()...)
	}

	out = binary.LittleEndian.AppendUint16(out, uint16(r.weight))

	if r.active {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}

	return out
}

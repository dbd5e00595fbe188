package mutate

// Mutatable is the base mutation capability: transform the receiver in
// place, honoring an optional size constraint. Implementations must be
// total; a value that cannot be meaningfully mutated leaves itself
// unchanged instead of failing.
type Mutatable interface {
	Mutate(mu *Mutator, cs *Constraints)
}

// Sized reports serialized sizes so budget-constrained growth can bound
// how many elements still fit.
type Sized interface {
	// SerializedSize is the current serialized byte size of the value.
	SerializedSize() int
	// MinNonzeroSize is the smallest nonzero serialized size any
	// instance of the type can occupy.
	MinNonzeroSize() int
}

// Fresh manufactures a brand-new value into the receiver, independent of
// its prior contents, honoring an optional size constraint.
type Fresh interface {
	Generate(mu *Mutator, cs *Constraints)
}

// Elem is the base capability set required of a sequence element type:
// a pointer to T that can be mutated in place. Sequences whose elements
// satisfy only Elem can shrink but never grow.
type Elem[T any] interface {
	*T
	Mutatable
}

// RichElem extends Elem with fresh generation and size reporting, which
// together enable budget-aware sequence growth. The dispatcher always
// prefers this richer capability set when the element type provides it.
type RichElem[T any] interface {
	*T
	Mutatable
	Sized
	Fresh
}

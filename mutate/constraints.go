package mutate

// Constraints bounds how large a mutated or freshly generated value may
// become. A nil *Constraints means unconstrained. Instances are never
// mutated in place: consuming budget produces a derived, smaller copy,
// so sibling elements each see their own remaining budget.
type Constraints struct {
	maxSize int
	hasMax  bool
}

// NewConstraints returns an empty, unconstrained Constraints value.
func NewConstraints() *Constraints {
	return &Constraints{}
}

// WithMaxSize derives a copy carrying a maximum serialized size in bytes.
func (c *Constraints) WithMaxSize(n int) *Constraints {
	return &Constraints{maxSize: n, hasMax: true}
}

// MaxSize reports the remaining byte budget, if any.
func (c *Constraints) MaxSize() (int, bool) {
	if c == nil || !c.hasMax {
		return 0, false
	}

	return c.maxSize, true
}

// Consume derives a copy with n bytes of budget spent. Without a budget
// it returns the receiver unchanged; the budget never goes negative.
func (c *Constraints) Consume(n int) *Constraints {
	max, ok := c.MaxSize()
	if !ok {
		return c
	}

	remaining := max - n
	if remaining < 0 {
		remaining = 0
	}

	return &Constraints{maxSize: remaining, hasMax: true}
}

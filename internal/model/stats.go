package model

import "time"

// SessionStats aggregates the outcome of mutating one shape for a whole
// session.
type SessionStats struct {
	Shape  Shape
	Passes int

	// Serialized size of the sample across passes.
	MinSize    int
	MaxSize    int
	TotalBytes int

	// Passes in which the serialized size grew or shrank, i.e. passes
	// where a structural edit changed the sample's footprint.
	Grown  int
	Shrunk int
}

// Observe folds one pass's serialized size into the stats.
func (s *SessionStats) Observe(size, prevSize int) {
	s.Passes++
	s.TotalBytes += size

	if s.Passes == 1 || size < s.MinSize {
		s.MinSize = size
	}

	if size > s.MaxSize {
		s.MaxSize = size
	}

	switch {
	case size > prevSize:
		s.Grown++
	case size < prevSize:
		s.Shrunk++
	}
}

// Summary is the result of a full run across all requested shapes.
type Summary struct {
	Sessions    []SessionStats
	TotalPasses int
	Duration    time.Duration
}

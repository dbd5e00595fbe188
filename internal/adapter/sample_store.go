package adapter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	m "github.com/fuzzbed/mangle/internal/model"
)

// SampleStore persists serialized mutated samples so interesting inputs
// can be replayed against a target outside this tool.
type SampleStore interface {
	// WriteSample stores the serialized bytes of one mutation pass.
	WriteSample(dir m.Path, shape m.Shape, pass int, data []byte) error
}

type sampleStore struct{}

// NewSampleStore constructs a SampleStore backed by the local filesystem.
func NewSampleStore() SampleStore {
	return &sampleStore{}
}

func (ss *sampleStore) WriteSample(dir m.Path, shape m.Shape, pass int, data []byte) error {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("failed to create sample dir %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s-%06d.bin", shape, pass)
	path := filepath.Join(string(dir), name)

	// Atomic rename so a crash mid-write never leaves a truncated sample.
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write sample %s: %w", path, err)
	}

	return nil
}

// Package model defines the data structures shared by the mangle CLI.
package model

// Path represents a file system path.
type Path string

// Shape names a built-in sample structure the harness mutates.
type Shape string

// Built-in shapes. Each exercises a different slice of the engine's
// mutation capabilities.
const (
	// ShapeMessage carries every capability: a fixed header array, an
	// enum discriminant, a growable payload, and both string kinds.
	ShapeMessage Shape = "message"

	// ShapePacket is a compact binary frame: fixed header plus a
	// growable sequence of 16-bit words and a checksum.
	ShapePacket Shape = "packet"

	// ShapeRecord is string-heavy: identifiers plus a growable sequence
	// of variable-size ASCII tags.
	ShapeRecord Shape = "record"
)

// ShapeInfo describes a built-in shape for display.
type ShapeInfo struct {
	Shape       Shape
	Description string
	Fields      int
	Growable    int // fields eligible for structural resize
}

// SessionConfig configures one mutation run.
type SessionConfig struct {
	Seed    uint64
	Passes  int
	Workers int
	Mode    string
	MaxSize int // byte budget for growable fields; 0 means unconstrained
	Output  Path
	Shapes  []Shape
}

// DefaultSessionConfig returns the configuration used when no config
// file or flags override it.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Seed:    1,
		Passes:  1000,
		Workers: 1,
		Mode:    "havoc",
		MaxSize: 4096,
	}
}

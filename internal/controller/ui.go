// Package controller provides output surfaces for mutation sessions.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/fuzzbed/mangle/internal/model"
)

// UI defines the interface for displaying session progress and results.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// Start initializes the UI before a run begins.
	Start() error
	// Close finalizes the UI.
	Close()
	// DisplayProgress reports one completed mutation pass. It may be
	// called from concurrent sessions.
	DisplayProgress(shape m.Shape, pass int)
	// DisplaySummary renders the final run summary.
	DisplaySummary(summary m.Summary) error
	// DisplayShapes renders the built-in shape table.
	DisplayShapes(shapes []m.ShapeInfo) error
}

// NewUI creates a UI based on whether TTY mode is enabled: a Bubble Tea
// TUI for interactive terminals, plain text otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal. Returns
// false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

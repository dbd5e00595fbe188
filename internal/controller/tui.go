package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/fuzzbed/mangle/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display of a live
// mutation run.
type TUI struct {
	output io.Writer

	mtx     sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start() error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.program = tea.NewProgram(newSessionModel(), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, err := t.program.Run()

		t.mtx.Lock()
		t.err = err
		t.mtx.Unlock()
	}()

	return nil
}

// Close shuts the program down if it is still running.
func (t *TUI) Close() {
	t.mtx.Lock()
	program, done := t.program, t.done
	t.mtx.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayProgress feeds one completed pass into the live view.
func (t *TUI) DisplayProgress(shape m.Shape, pass int) {
	t.mtx.Lock()
	program := t.program
	t.mtx.Unlock()

	if program != nil {
		program.Send(progressMsg{shape: shape, pass: pass})
	}
}

// DisplaySummary hands the final summary to the view and waits for the
// program to finish rendering it.
func (t *TUI) DisplaySummary(summary m.Summary) error {
	t.mtx.Lock()
	program, done := t.program, t.done
	t.mtx.Unlock()

	if program == nil {
		return fmt.Errorf("summary displayed before Start")
	}

	program.Send(summaryMsg{summary: summary})
	<-done

	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.err
}

// DisplayShapes prints the shape list without entering the live view.
func (t *TUI) DisplayShapes(shapes []m.ShapeInfo) error {
	for _, info := range shapes {
		_, _ = fmt.Fprintf(t.output, "%-10s %d fields (%d growable)  %s\n",
			info.Shape, info.Fields, info.Growable, info.Description)
	}

	return nil
}

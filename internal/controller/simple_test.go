package controller

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/fuzzbed/mangle/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	return cmd, buf
}

func TestSimpleUIDisplaySummary(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	summary := m.Summary{
		Sessions: []m.SessionStats{
			{Shape: m.ShapeMessage, Passes: 100, MinSize: 40, MaxSize: 90, Grown: 3, Shrunk: 2},
			{Shape: m.ShapePacket, Passes: 100, MinSize: 14, MaxSize: 30, Grown: 1, Shrunk: 4},
		},
		TotalPasses: 200,
		Duration:    120 * time.Millisecond,
	}

	require.NoError(t, ui.DisplaySummary(summary))

	out := buf.String()
	assert.Contains(t, out, "message")
	assert.Contains(t, out, "packet")
	assert.Contains(t, out, "200")
	assert.Contains(t, out, "120ms")
}

func TestSimpleUIDisplayShapes(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayShapes([]m.ShapeInfo{
		{Shape: m.ShapeRecord, Description: "string-heavy record", Fields: 5, Growable: 1},
	}))

	out := buf.String()
	assert.Contains(t, out, "record")
	assert.Contains(t, out, "string-heavy record")
}

func TestSimpleUILifecycle(t *testing.T) {
	cmd, _ := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.Start())
	ui.DisplayProgress(m.ShapeMessage, 1)
	ui.Close()
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestNewUIFactory(t *testing.T) {
	cmd, _ := newBufferedCmd()

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, isSimple)

	_, isTUI := NewUI(cmd, true).(*TUI)
	assert.True(t, isTUI)
}

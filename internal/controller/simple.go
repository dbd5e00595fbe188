package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/fuzzbed/mangle/internal/model"
)

// summaryDurationStep bounds the precision of the displayed run time.
const summaryDurationStep = 10 * time.Millisecond

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayProgress is silent in plain-text mode; per-pass output would
// swamp redirected logs.
func (s *SimpleUI) DisplayProgress(_ m.Shape, _ int) {

}

// DisplaySummary prints the per-shape session statistics table.
func (s *SimpleUI) DisplaySummary(summary m.Summary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Shape", "Passes", "Min Size", "Max Size", "Grown", "Shrunk"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, st := range summary.Sessions {
		table.Append([]string{
			string(st.Shape),
			fmt.Sprintf("%d", st.Passes),
			fmt.Sprintf("%d", st.MinSize),
			fmt.Sprintf("%d", st.MaxSize),
			fmt.Sprintf("%d", st.Grown),
			fmt.Sprintf("%d", st.Shrunk),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d shapes", len(summary.Sessions)),
		fmt.Sprintf("%d", summary.TotalPasses),
		"", "", "", summary.Duration.Round(summaryDurationStep).String(),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayShapes prints the built-in shape table.
func (s *SimpleUI) DisplayShapes(shapes []m.ShapeInfo) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Shape", "Fields", "Growable", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, info := range shapes {
		table.Append([]string{
			string(info.Shape),
			fmt.Sprintf("%d", info.Fields),
			fmt.Sprintf("%d", info.Growable),
			info.Description,
		})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

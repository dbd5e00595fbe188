package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/fuzzbed/mangle/internal/model"
)

// Message types.
type progressMsg struct {
	shape m.Shape
	pass  int
}

type summaryMsg struct {
	summary m.Summary
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("5")).
			Bold(true).
			Padding(0, 1)

	shapeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// sessionModel is the live view of a mutation run: a spinner plus a
// per-shape pass counter, replaced by the summary when the run ends.
type sessionModel struct {
	spinner spinner.Model
	passes  map[m.Shape]int

	finished bool
	summary  m.Summary
}

func newSessionModel() sessionModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	return sessionModel{
		spinner: sp,
		passes:  make(map[m.Shape]int),
	}
}

func (mdl sessionModel) Init() tea.Cmd {
	return mdl.spinner.Tick
}

func (mdl sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return mdl, tea.Quit
		}

	case progressMsg:
		mdl.passes[msg.shape] = msg.pass
		return mdl, nil

	case summaryMsg:
		mdl.finished = true
		mdl.summary = msg.summary

		return mdl, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		mdl.spinner, cmd = mdl.spinner.Update(msg)

		return mdl, cmd
	}

	return mdl, nil
}

func (mdl sessionModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mangle"))
	b.WriteString("\n\n")

	if mdl.finished {
		b.WriteString(doneStyle.Render("run complete"))
		b.WriteString("\n\n")

		for _, st := range mdl.summary.Sessions {
			b.WriteString(fmt.Sprintf("  %s %s passes, size %d..%d, %s grown, %s shrunk\n",
				shapeStyle.Render(fmt.Sprintf("%-10s", st.Shape)),
				countStyle.Render(fmt.Sprintf("%6d", st.Passes)),
				st.MinSize, st.MaxSize,
				countStyle.Render(fmt.Sprintf("%d", st.Grown)),
				countStyle.Render(fmt.Sprintf("%d", st.Shrunk)),
			))
		}

		return b.String()
	}

	b.WriteString(mdl.spinner.View())
	b.WriteString(" mutating\n\n")

	shapes := make([]m.Shape, 0, len(mdl.passes))
	for shape := range mdl.passes {
		shapes = append(shapes, shape)
	}

	sort.Slice(shapes, func(i, j int) bool { return shapes[i] < shapes[j] })

	for _, shape := range shapes {
		b.WriteString(fmt.Sprintf("  %s %s passes\n",
			shapeStyle.Render(fmt.Sprintf("%-10s", shape)),
			countStyle.Render(fmt.Sprintf("%6d", mdl.passes[shape])),
		))
	}

	b.WriteString("\npress q to abort\n")

	return b.String()
}

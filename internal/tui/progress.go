// Package tui shows a cross evaluation's progress while it runs.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokearena/arena"
	"golang.org/x/term"
)

var (
	HighlightedColor = lipgloss.Color("33")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(HighlightedColor)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Padding(0, 2)
)

const maxBarWidth = 60

// IsTerminal reports whether f is a terminal the progress view can draw on.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func barWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return maxBarWidth
	}

	return max(10, min(maxBarWidth, width-10))
}

type battleFinishedMsg arena.BattleRecord

type evaluationDoneMsg struct {
	results *arena.Results
	err     error
}

// Model is the progress view: a spinner, a bar of finished battles and the latest result.
type Model struct {
	total int
	done  int
	draws int
	wins  map[string]int
	last  *arena.BattleRecord

	bar     progress.Model
	spinner spinner.Model

	cancel   context.CancelFunc
	results  *arena.Results
	err      error
	finished bool
}

func NewModel(total int, width int, cancel context.CancelFunc) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = width

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	return Model{
		total:   total,
		wins:    make(map[string]int),
		bar:     bar,
		spinner: s,
		cancel:  cancel,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.cancel != nil {
				m.cancel()
			}
		}
	case battleFinishedMsg:
		record := arena.BattleRecord(msg)
		m.done++
		m.last = &record

		if record.Draw() {
			m.draws++
		} else {
			m.wins[record.Winner]++
		}
	case evaluationDoneMsg:
		m.results = msg.results
		m.err = msg.err
		m.finished = true

		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) percent() float64 {
	if m.total == 0 {
		return 1
	}

	return float64(m.done) / float64(m.total)
}

func (m Model) View() string {
	var b strings.Builder

	if m.finished {
		b.WriteString(titleStyle.Render("Evaluation finished"))
	} else {
		b.WriteString(m.spinner.View() + " " + titleStyle.Render("Running battles"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString(fmt.Sprintf("\n%d/%d battles, %d draws\n", m.done, m.total, m.draws))

	if m.last != nil {
		outcome := "draw"
		if !m.last.Draw() {
			outcome = m.last.Winner + " won"
		}

		b.WriteString(dimStyle.Render(fmt.Sprintf("last: %s vs %s, %s in %d turns", m.last.P1, m.last.P2, outcome, m.last.Turns)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if !m.finished {
		b.WriteString(dimStyle.Render("q to stop"))
	}

	return borderStyle.Render(b.String()) + "\n"
}

// EvaluateFunc runs an evaluation, calling progress after every battle.
type EvaluateFunc func(ctx context.Context, progress func(arena.BattleRecord)) (*arena.Results, error)

// Run draws the progress view on out while evaluate runs and returns what evaluate returned.
// Quitting the view cancels the evaluation; the view closes once evaluate has returned.
func Run(ctx context.Context, out *os.File, in io.Reader, total int, evaluate EvaluateFunc) (*arena.Results, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(NewModel(total, barWidth(out), cancel), tea.WithOutput(out), tea.WithInput(in))

	go func() {
		results, err := evaluate(ctx, func(record arena.BattleRecord) {
			program.Send(battleFinishedMsg(record))
		})
		program.Send(evaluationDoneMsg{results: results, err: err})
	}()

	finalModel, err := program.Run()
	if err != nil {
		return nil, err
	}

	final := finalModel.(Model)
	return final.results, final.err
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nathaniel-may/biscuit-packing/pkg/pipeline"
)

// Watch styles
var (
	watchDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	watchHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	watchFailedStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// BatchModel - live view of a running batch
// =============================================================================

type runStatus int

const (
	statusPending runStatus = iota
	statusRunning
	statusDone
	statusFailed
)

func (s runStatus) String() string {
	switch s {
	case statusRunning:
		return "running"
	case statusDone:
		return "done"
	case statusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// runRow is one line of the batch table.
type runRow struct {
	biscuits int
	status   runStatus
	started  time.Time
	elapsed  time.Duration
	result   *pipeline.Result
	err      error
}

// Messages delivered by the batch callbacks.
type (
	runStartedMsg struct {
		index int
		at    time.Time
	}
	runDoneMsg struct {
		index  int
		result *pipeline.Result
	}
	runFailedMsg struct {
		index int
		err   error
		at    time.Time
	}
	batchDoneMsg struct{}
)

// BatchModel is the bubbletea model for the --watch view.
type BatchModel struct {
	Header string
	Rows   []runRow
	Height int
	Done   bool
	// Quit is set when the user left before the batch finished.
	Quit bool
}

// NewBatchModel creates a model with one pending row per run.
func NewBatchModel(p *pipeline.Plan) BatchModel {
	rows := make([]runRow, len(p.Runs))
	for i, run := range p.Runs {
		rows[i] = runRow{biscuits: run.Biscuits}
	}
	return BatchModel{Header: p.Header, Rows: rows, Height: 20}
}

func (m BatchModel) Init() tea.Cmd {
	return nil
}

func (m BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quit = !m.Done
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	case runStartedMsg:
		if r := m.row(msg.index); r != nil {
			r.status = statusRunning
			r.started = msg.at
		}
	case runDoneMsg:
		if r := m.row(msg.index); r != nil {
			r.status = statusDone
			r.result = msg.result
			r.elapsed = msg.result.Stats.SolveTime + msg.result.Stats.RenderTime
		}
	case runFailedMsg:
		if r := m.row(msg.index); r != nil {
			r.status = statusFailed
			r.err = msg.err
			if !r.started.IsZero() {
				r.elapsed = msg.at.Sub(r.started)
			}
		}
	case batchDoneMsg:
		m.Done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *BatchModel) row(i int) *runRow {
	if i < 0 || i >= len(m.Rows) {
		return nil
	}
	return &m.Rows[i]
}

// counts returns how many runs finished and how many failed.
func (m BatchModel) counts() (finished, failed int) {
	for _, r := range m.Rows {
		switch r.status {
		case statusDone:
			finished++
		case statusFailed:
			finished++
			failed++
		}
	}
	return finished, failed
}

func (m BatchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Header))
	b.WriteString("\n")
	b.WriteString(watchDimStyle.Render("q quit"))
	b.WriteString("\n\n")

	end := min(len(m.Rows), m.Height)
	rows := make([][]string, 0, end)
	for _, r := range m.Rows[:end] {
		clearance, source := "—", "—"
		if r.result != nil && r.result.Solution != nil {
			clearance = fmt.Sprintf("%.3f", r.result.Solution.Clearance)
			source = iconFresh
			if r.result.CacheHit {
				source = iconCached
			}
		}
		elapsed := "—"
		if r.elapsed > 0 {
			elapsed = formatElapsed(r.elapsed)
		}
		rows = append(rows, []string{fmt.Sprint(r.biscuits), r.status.String(), clearance, elapsed, source})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Biscuits", "Status", "Clearance", "Time", "Source").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return watchHeaderStyle
			}
			if row < 0 || row >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			switch m.Rows[row].status {
			case statusDone:
				return StyleSuccess
			case statusFailed:
				return watchFailedStyle
			case statusRunning:
				return StyleNumber
			}
			return watchDimStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	finished, failed := m.counts()
	status := fmt.Sprintf("  [%d/%d]", finished, len(m.Rows))
	if failed > 0 {
		status += fmt.Sprintf(" %d failed", failed)
	}
	if hidden := len(m.Rows) - end; hidden > 0 {
		status += fmt.Sprintf(" (%d more not shown)", hidden)
	}
	b.WriteString(watchDimStyle.Render(status))

	return b.String()
}

// =============================================================================
// Program wiring
// =============================================================================

// watchPlan runs the batch behind a live table. Quitting the table cancels
// the runs that have not finished.
func (c *CLI) watchPlan(ctx context.Context, runner *pipeline.Runner, p *pipeline.Plan, opts pipeline.BatchOptions, sink *artifactSink) (*pipeline.BatchResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The program gets its own context so that Send never blocks once the
	// table has exited.
	uiCtx, uiCancel := context.WithCancel(context.Background())
	defer uiCancel()
	prog := tea.NewProgram(NewBatchModel(p), tea.WithContext(uiCtx))

	opts.OnStart = func(i int, _ pipeline.Run) {
		prog.Send(runStartedMsg{index: i, at: time.Now()})
	}
	opts.OnComplete = func(i int, res *pipeline.Result) {
		sink.write(i, res)
		prog.Send(runDoneMsg{index: i, result: res})
	}
	opts.OnError = func(i int, _ pipeline.Run, err error) {
		prog.Send(runFailedMsg{index: i, err: err, at: time.Now()})
	}

	type outcome struct {
		batch *pipeline.BatchResult
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		batch, err := runner.RunBatch(ctx, p.Runs, opts)
		prog.Send(batchDoneMsg{})
		done <- outcome{batch, err}
	}()

	final, err := prog.Run()
	uiCancel()
	if m, ok := final.(BatchModel); err != nil || (ok && m.Quit) {
		cancel()
	}
	out := <-done
	if err != nil {
		return out.batch, fmt.Errorf("watch: %w", err)
	}
	if m, ok := final.(BatchModel); ok && m.Quit {
		return out.batch, context.Canceled
	}
	return out.batch, out.err
}

// =============================================================================
// Helpers
// =============================================================================

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Round(time.Second).String()
	}
}

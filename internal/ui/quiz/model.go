package quiz

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"studyquiz/internal/question"
	"studyquiz/internal/session"
)

// Model renders an interactive quiz session using Bubble Tea.
type Model struct {
	engine   *session.Engine
	title    string
	keys     keyMap
	help     help.Model
	progress progress.Model
	table    table.Model
	cursor   int
	grabbed  bool
	width    int
	noColor  bool
}

// Options configures the quiz UI model.
type Options struct {
	Title   string
	NoColor bool
}

// NewModel constructs a quiz model over an engine, starting a session when
// none is in progress.
func NewModel(engine *session.Engine, opts Options) Model {
	if engine.State().Phase == session.PhaseIdle {
		engine.Start()
	}
	title := opts.Title
	if title == "" {
		title = "Study Quiz"
	}
	progressOpts := []progress.Option{progress.WithWidth(40)}
	if opts.NoColor {
		progressOpts = append(progressOpts, progress.WithColorProfile(termenv.Ascii))
	} else {
		progressOpts = append(progressOpts, progress.WithDefaultGradient())
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		engine:   engine,
		title:    title,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progressOpts...),
		table:    t,
		noColor:  opts.NoColor,
	}
}

// Init has no startup commands; the session is ready on construction.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		m.progress.Width = min(max(typed.Width-4, 10), 60)
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-8, 3))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()
	keys := m.keys.forQuestion(snap.Kind == question.KindReorderLines, snap.Answered, snap.Finished())
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Restart):
		m.engine.Start()
		m.resetCursor()
		return m, nil
	case key.Matches(msg, keys.Up):
		m.moveCursor(snap, -1)
	case key.Matches(msg, keys.Down):
		m.moveCursor(snap, 1)
	case key.Matches(msg, keys.Grab):
		m.grabbed = !m.grabbed
	case key.Matches(msg, keys.Choose):
		m.submit(snap)
	case key.Matches(msg, keys.Next):
		if m.engine.Advance() {
			m.resetCursor()
			if m.engine.Snapshot().Finished() {
				m.table.SetRows(rowsForHistory(m.engine.Snapshot().History, m.noColor))
			}
		}
	}
	return m, nil
}

// moveCursor moves the highlight, carrying a grabbed line with it.
func (m *Model) moveCursor(snap session.Snapshot, delta int) {
	count := len(snap.Options)
	if snap.Kind == question.KindReorderLines {
		count = len(snap.WorkingLines)
	}
	target := m.cursor + delta
	if target < 0 || target >= count {
		return
	}
	if m.grabbed && snap.Kind == question.KindReorderLines {
		if !m.engine.MoveLine(m.cursor, target) {
			return
		}
	}
	m.cursor = target
}

func (m *Model) submit(snap session.Snapshot) {
	switch snap.Kind {
	case question.KindMultipleChoice:
		m.engine.SubmitChoice(m.cursor)
	case question.KindReorderLines:
		m.grabbed = false
		m.engine.SubmitReorder()
	}
}

func (m *Model) resetCursor() {
	m.cursor = 0
	m.grabbed = false
}

// View renders the current question or the results screen.
func (m Model) View() string {
	snap := m.engine.Snapshot()
	keys := m.keys.forQuestion(snap.Kind == question.KindReorderLines, snap.Answered, snap.Finished())
	if snap.Finished() {
		return renderFinished(m.title, snap, m.progress, m.table, m.noColor) + "\n" + m.help.View(keys)
	}
	return renderQuestion(m.title, snap, m.cursor, m.grabbed, m.noColor) + "\n" + m.help.View(keys)
}

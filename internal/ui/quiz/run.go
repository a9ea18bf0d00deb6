package quiz

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"studyquiz/internal/session"
)

// Run drives the engine through an interactive program until the user quits.
func Run(engine *session.Engine, in io.Reader, out io.Writer, opts Options) error {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	program := tea.NewProgram(NewModel(engine, opts),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run quiz ui: %w", err)
	}
	return nil
}

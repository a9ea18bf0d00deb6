package quiz

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"studyquiz/internal/question"
	"studyquiz/internal/session"
)

// tableStyles returns results table styles.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Header = lipgloss.NewStyle().Bold(true).Padding(0, 1)
		styles.Cell = lipgloss.NewStyle().Padding(0, 1)
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = lipgloss.NewStyle()
	return styles
}

// defaultColumns returns the results columns for a standard terminal.
func defaultColumns() []table.Column {
	return columnsForWidth(100)
}

// columnsForWidth sizes the title column to the terminal width.
func columnsForWidth(width int) []table.Column {
	titleWidth := max(width-4-12-10-11-8, 16)
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Category", Width: 12},
		{Title: "Kind", Width: 10},
		{Title: "Question", Width: titleWidth},
		{Title: "Result", Width: 11},
	}
}

// rowsForHistory converts scored outcomes into table rows.
func rowsForHistory(history []session.Outcome, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(history))
	for _, outcome := range history {
		result := formatResult(outcome.Correct)
		color := colorIncorrect
		if outcome.Correct {
			color = colorCorrect
		}
		rows = append(rows, table.Row{
			strconv.Itoa(outcome.Position + 1),
			string(outcome.Category),
			kindLabel(outcome),
			truncate(outcome.Title, 60),
			stylize(result, noColor, color),
		})
	}
	return rows
}

func kindLabel(outcome session.Outcome) string {
	if outcome.Kind == question.KindReorderLines {
		return "reorder"
	}
	return "choice"
}

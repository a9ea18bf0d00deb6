package quiz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"studyquiz/internal/question"
)

var (
	colorTitle     = lipgloss.Color("33")
	colorMuted     = lipgloss.Color("244")
	colorCorrect   = lipgloss.Color("42")
	colorIncorrect = lipgloss.Color("196")
	colorCursor    = lipgloss.Color("39")
	colorGrabbed   = lipgloss.Color("220")
)

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// badge renders a bracketed label, boxed when colors are enabled.
func badge(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return "[" + text + "]"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(color).
		Padding(0, 1).
		Render(text)
}

// categoryColor picks a badge color per category.
func categoryColor(category question.Category) lipgloss.Color {
	switch category {
	case question.CategoryGraphs:
		return lipgloss.Color("75")
	case question.CategoryTrees:
		return lipgloss.Color("114")
	case question.CategoryHashing:
		return lipgloss.Color("176")
	case question.CategoryAlgorithms:
		return lipgloss.Color("215")
	default:
		return lipgloss.Color("250")
	}
}

// formatCounter renders "pos / total".
func formatCounter(number, total int) string {
	return strconv.Itoa(number) + " / " + strconv.Itoa(total)
}

// formatScore renders the final score line.
func formatScore(score, total int) string {
	return "Score: " + strconv.Itoa(score) + " / " + strconv.Itoa(total)
}

// formatResult labels a scored outcome.
func formatResult(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}

// truncate shortens text for table cells.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if limit <= 3 || len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

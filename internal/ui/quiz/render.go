package quiz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"studyquiz/internal/question"
	"studyquiz/internal/session"
)

// renderHeader renders the title and question counter.
func renderHeader(title string, snap session.Snapshot, noColor bool) string {
	line := title + " | " + formatCounter(snap.Number, snap.Total) + " | Score: " + strconv.Itoa(snap.Score)
	return stylize(line, noColor, colorTitle)
}

// renderBadges renders the category badge and the reorder marker.
func renderBadges(snap session.Snapshot, noColor bool) string {
	parts := []string{badge(string(snap.Category), noColor, categoryColor(snap.Category))}
	if snap.Kind == question.KindReorderLines {
		parts = append(parts, badge("Reorder", noColor, colorGrabbed))
	}
	if snap.Title != "" {
		parts = append(parts, snap.Title)
	}
	return strings.Join(parts, " ")
}

// renderOptions lists multiple choice options with cursor and marking.
func renderOptions(snap session.Snapshot, cursor int, noColor bool) string {
	lines := make([]string, 0, len(snap.Options))
	for i, option := range snap.Options {
		marker := "  "
		if !snap.Answered && i == cursor {
			marker = "> "
		}
		text := marker + strconv.Itoa(i+1) + ". " + option
		switch {
		case !snap.Answered && i == cursor:
			text = stylize(text, noColor, colorCursor)
		case snap.Answered && i == snap.Choice && snap.Correct:
			text = stylize(text+"  ✓", noColor, colorCorrect)
		case snap.Answered && i == snap.Choice:
			text = stylize(text+"  ✗", noColor, colorIncorrect)
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

// renderWorkingLines lists the current line order with cursor and grab marker.
func renderWorkingLines(snap session.Snapshot, cursor int, grabbed, noColor bool) string {
	lines := make([]string, 0, len(snap.WorkingLines))
	for i, line := range snap.WorkingLines {
		marker := "   "
		if !snap.Answered && i == cursor {
			marker = " > "
			if grabbed {
				marker = " ≡ "
			}
		}
		text := marker + line
		if !snap.Answered && i == cursor {
			color := colorCursor
			if grabbed {
				color = colorGrabbed
			}
			text = stylize(text, noColor, color)
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

// renderFeedback renders the result, the canonical order when wrong, the
// explanation, and the source reference.
func renderFeedback(snap session.Snapshot, noColor bool) string {
	if !snap.Answered {
		return ""
	}
	var parts []string
	if snap.Correct {
		parts = append(parts, stylize("Correct!", noColor, colorCorrect))
	} else {
		parts = append(parts, stylize("Incorrect.", noColor, colorIncorrect))
		if snap.Kind == question.KindReorderLines && len(snap.CanonicalLines) > 0 {
			parts = append(parts, "Correct order:")
			for _, line := range snap.CanonicalLines {
				parts = append(parts, "   "+line)
			}
		}
	}
	if snap.Explanation != "" {
		parts = append(parts, snap.Explanation)
	}
	if snap.SourceRef != "" {
		parts = append(parts, stylize("Ref: "+snap.SourceRef, noColor, colorMuted))
	}
	parts = append(parts, stylize("Press n for the next question.", noColor, colorMuted))
	return strings.Join(parts, "\n")
}

// renderQuestion renders the in-progress screen.
func renderQuestion(title string, snap session.Snapshot, cursor int, grabbed, noColor bool) string {
	sections := []string{
		renderHeader(title, snap, noColor),
		renderBadges(snap, noColor),
		"",
		snap.Prompt,
		"",
	}
	switch snap.Kind {
	case question.KindMultipleChoice:
		sections = append(sections, renderOptions(snap, cursor, noColor))
	case question.KindReorderLines:
		sections = append(sections, renderWorkingLines(snap, cursor, grabbed, noColor))
	}
	if feedback := renderFeedback(snap, noColor); feedback != "" {
		sections = append(sections, "", feedback)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFinished renders the final score, progress bar, and results table.
func renderFinished(title string, snap session.Snapshot, bar progress.Model, results table.Model, noColor bool) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		stylize(title+" | Finished", noColor, colorTitle),
		"",
		formatScore(snap.Score, snap.Total),
		bar.ViewAs(snap.Progress()),
		"",
		results.View(),
		"",
		stylize("Press r to restart or q to quit.", noColor, colorMuted),
	)
}

package report

import (
	"fmt"

	"studyquiz/internal/question"
)

// formatPercent returns score/total as a whole percentage.
func formatPercent(score, total int) string {
	if total <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.0f", float64(score)/float64(total)*100)
}

// pageTitle falls back to the product name for untitled banks.
func pageTitle(summary Summary) string {
	if summary.Title == "" {
		return "Study Quiz"
	}
	return summary.Title
}

func kindLabel(kind question.Kind) string {
	if kind == question.KindReorderLines {
		return "reorder"
	}
	return "choice"
}

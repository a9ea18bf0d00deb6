// Package report renders finished quiz sessions as standalone HTML pages.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studyquiz/internal/session"
)

// Summary is the data shown on a results page.
type Summary struct {
	Title      string
	SessionID  string
	Score      int
	Total      int
	FinishedAt time.Time
	Outcomes   []session.Outcome
}

// NewSummary builds a summary from a finished session state.
func NewSummary(title string, state session.State, finishedAt time.Time) Summary {
	return Summary{
		Title:      title,
		SessionID:  state.ID,
		Score:      state.Score,
		Total:      state.Total(),
		FinishedAt: finishedAt,
		Outcomes:   append([]session.Outcome(nil), state.History...),
	}
}

// BuildReportHTML renders a results page, returning an empty string on failure.
func BuildReportHTML(summary Summary) string {
	html, err := RenderReportHTML(context.Background(), summary)
	if err != nil {
		return ""
	}
	return html
}

// WriteFile renders the summary and writes it to path, creating parent
// directories as needed.
func WriteFile(ctx context.Context, path string, summary Summary) error {
	html, err := RenderReportHTML(ctx, summary)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

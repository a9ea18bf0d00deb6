package report

import (
	"context"
	"fmt"
	"strings"
)

// RenderReportHTML renders the results page into a string.
func RenderReportHTML(ctx context.Context, summary Summary) (string, error) {
	var builder strings.Builder
	if err := ResultsPage(summary).Render(ctx, &builder); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return builder.String(), nil
}

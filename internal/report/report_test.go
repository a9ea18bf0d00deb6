package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"studyquiz/internal/bank"
	"studyquiz/internal/question"
	"studyquiz/internal/session"
	"studyquiz/internal/testutil"
)

// TestBuildReportHTML verifies report HTML includes score and outcomes.
func TestBuildReportHTML(t *testing.T) {
	summary := Summary{
		Title:      "Graphs <revision>",
		SessionID:  "session-1",
		Score:      1,
		Total:      2,
		FinishedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		Outcomes: []session.Outcome{
			{Position: 0, QuestionID: 4, Title: "BFS", Category: question.CategoryGraphs, Kind: question.KindMultipleChoice, Correct: true},
			{Position: 1, QuestionID: 9, Title: "Relax & update", Category: question.CategoryGraphs, Kind: question.KindReorderLines},
		},
	}
	html := BuildReportHTML(summary)
	for _, want := range []string{
		"<title>Graphs &lt;revision&gt; results</title>",
		"Score: 1 / 2 (50%)",
		"Session session-1 finished 2026-03-01 09:30",
		"<td>BFS</td><td class=\"correct\">correct</td>",
		"Relax &amp; update",
		"<td>reorder</td>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in report, got:\n%s", want, html)
		}
	}
}

// TestWriteFileCreatesDirectories verifies the report is written to disk.
func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.html")
	if err := WriteFile(testutil.Context(t, 0), path, Summary{Total: 0}); err != nil {
		t.Fatalf("write report: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Score: 0 / 0 (0%)") {
		t.Fatalf("unexpected report %s", data)
	}
}

// TestObserverWritesOnFinish verifies finished sessions produce a report.
func TestObserverWritesOnFinish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.html")
	b, err := bank.New("one", []question.Question{
		question.NewMultipleChoice(1, question.CategoryTrees, "pick", []string{"x", "y"}, 0),
	})
	if err != nil {
		t.Fatalf("build bank: %v", err)
	}
	observer := NewObserver(path, "Trees", nil)
	observer.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC) }
	engine := session.NewEngine(b,
		session.WithSource(testutil.IdentitySource{}),
		session.WithIDGenerator(testutil.SequenceIDs()),
		session.WithObserver(observer),
	)
	engine.Start()
	engine.SubmitChoice(0)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no report before the session finishes")
	}
	engine.Advance()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Score: 1 / 1 (100%)") || !strings.Contains(string(data), "2026-01-02 03:04") {
		t.Fatalf("unexpected report %s", data)
	}
}

// TestRenderReportHTMLDefaults verifies the fallback title and rounding.
func TestRenderReportHTMLDefaults(t *testing.T) {
	html, err := RenderReportHTML(context.Background(), Summary{Title: "", Total: 3, Score: 2})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "<h1>Study Quiz</h1>") || !strings.Contains(html, "Score: 2 / 3 (67%)") {
		t.Fatalf("unexpected html %s", html)
	}
}

// TestResultsPageMarksIncorrectAndSkipsMeta verifies row classes and the optional meta line.
func TestResultsPageMarksIncorrectAndSkipsMeta(t *testing.T) {
	summary := Summary{
		Title: "Algorithms",
		Score: 0,
		Total: 1,
		Outcomes: []session.Outcome{
			{Position: 0, QuestionID: 2, Title: "Merge", Category: question.CategoryAlgorithms, Kind: question.KindMultipleChoice},
		},
	}
	html, err := RenderReportHTML(context.Background(), summary)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "<td>Merge</td><td class=\"incorrect\">incorrect</td>") {
		t.Fatalf("expected incorrect row, got:\n%s", html)
	}
	if strings.Contains(html, "class=\"meta\"") {
		t.Fatalf("expected no session line without id or finish time, got:\n%s", html)
	}
}

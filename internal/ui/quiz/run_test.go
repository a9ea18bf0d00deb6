package quiz

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"studyquiz/internal/testutil"
)

func TestRunQuitsOnKey(t *testing.T) {
	ctx := testutil.Context(t, 3*time.Second)
	engine := quizEngine(t)
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Run(engine, strings.NewReader("q"), &out, Options{NoColor: true})
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-ctx.Done():
		t.Fatalf("quiz program did not exit")
	}
	if engine.Snapshot().SessionID != "session-1" {
		t.Fatalf("expected the program to start a session")
	}
}

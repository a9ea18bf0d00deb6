// Package plain runs a quiz session over line-oriented text input and
// output, for pipes and terminals without full-screen support.
package plain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"studyquiz/internal/question"
	"studyquiz/internal/session"
)

// Options configures the plain front end.
type Options struct {
	Title string
}

var errUnknownCommand = errors.New("unknown command")

// Run reads commands from in until quit or EOF. A number picks an option,
// a list of line numbers reorders and submits, n advances, r restarts, and
// q quits.
func Run(engine *session.Engine, in io.Reader, out io.Writer, opts Options) error {
	if engine.State().Phase == session.PhaseIdle {
		engine.Start()
	}
	title := opts.Title
	if title == "" {
		title = "Study Quiz"
	}
	fmt.Fprintln(out, title)
	printQuestion(out, engine.Snapshot())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := handle(engine, out, line); quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// handle applies one command and reports whether the user asked to quit.
func handle(engine *session.Engine, out io.Writer, line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit":
		return true
	case "r", "restart":
		engine.Start()
		printQuestion(out, engine.Snapshot())
		return false
	case "n", "next":
		if engine.Snapshot().Finished() {
			fmt.Fprintln(out, "Session finished. Type r to restart or q to quit.")
			return false
		}
		if !engine.Advance() {
			fmt.Fprintln(out, "Answer the question first.")
			return false
		}
		snap := engine.Snapshot()
		if snap.Finished() {
			printFinished(out, snap)
		} else {
			printQuestion(out, snap)
		}
		return false
	}

	snap := engine.Snapshot()
	if snap.Finished() {
		fmt.Fprintln(out, "Session finished. Type r to restart or q to quit.")
		return false
	}
	if snap.Answered {
		fmt.Fprintln(out, "Already answered. Type n for the next question.")
		return false
	}
	if err := answer(engine, snap, line); err != nil {
		fmt.Fprintln(out, err.Error())
		return false
	}
	printFeedback(out, engine.Snapshot())
	return false
}

func answer(engine *session.Engine, snap session.Snapshot, line string) error {
	switch snap.Kind {
	case question.KindMultipleChoice:
		choice, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("%w %q: enter an option number, n, r, or q", errUnknownCommand, line)
		}
		engine.SubmitChoice(choice - 1)
		return nil
	case question.KindReorderLines:
		order, err := parsePermutation(line, snap.WorkingLines)
		if err != nil {
			return err
		}
		if !engine.Reorder(order) {
			return fmt.Errorf("could not reorder lines")
		}
		engine.SubmitReorder()
		return nil
	}
	return fmt.Errorf("%w %q", errUnknownCommand, line)
}

// parsePermutation maps 1-based line numbers such as "2 1 3" onto the
// working lines.
func parsePermutation(line string, working []string) ([]string, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	if len(fields) != len(working) {
		return nil, fmt.Errorf("enter all %d line numbers in the new order, e.g. %s", len(working), examplePermutation(len(working)))
	}
	seen := make([]bool, len(working))
	order := make([]string, 0, len(working))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(working) {
			return nil, fmt.Errorf("invalid line number %q", field)
		}
		if seen[n-1] {
			return nil, fmt.Errorf("line %d listed twice", n)
		}
		seen[n-1] = true
		order = append(order, working[n-1])
	}
	return order, nil
}

func examplePermutation(n int) string {
	parts := make([]string, 0, n)
	for i := n; i >= 1; i-- {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, " ")
}

func printQuestion(out io.Writer, snap session.Snapshot) {
	fmt.Fprintln(out)
	header := fmt.Sprintf("Question %d / %d [%s]", snap.Number, snap.Total, snap.Category)
	if snap.Kind == question.KindReorderLines {
		header += " [Reorder]"
	}
	if snap.Title != "" {
		header += " " + snap.Title
	}
	fmt.Fprintln(out, header)
	fmt.Fprintln(out, snap.Prompt)
	items := snap.Options
	if snap.Kind == question.KindReorderLines {
		items = snap.WorkingLines
	}
	for i, item := range items {
		fmt.Fprintf(out, "  %d. %s\n", i+1, item)
	}
}

func printFeedback(out io.Writer, snap session.Snapshot) {
	if snap.Correct {
		fmt.Fprintln(out, "Correct!")
	} else {
		fmt.Fprintln(out, "Incorrect.")
		if snap.Kind == question.KindReorderLines {
			fmt.Fprintln(out, "Correct order:")
			for _, line := range snap.CanonicalLines {
				fmt.Fprintf(out, "  %s\n", line)
			}
		}
	}
	if snap.Explanation != "" {
		fmt.Fprintln(out, snap.Explanation)
	}
	if snap.SourceRef != "" {
		fmt.Fprintf(out, "Ref: %s\n", snap.SourceRef)
	}
	fmt.Fprintln(out, "Type n for the next question.")
}

func printFinished(out io.Writer, snap session.Snapshot) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Finished! Score: %d / %d (%.0f%%)\n", snap.Score, snap.Total, snap.Progress()*100)
	for _, outcome := range snap.History {
		result := "incorrect"
		if outcome.Correct {
			result = "correct"
		}
		label := result
		if outcome.Title != "" {
			label = outcome.Title + ": " + result
		}
		fmt.Fprintf(out, "  %2d. [%s] %s\n", outcome.Position+1, outcome.Category, label)
	}
	fmt.Fprintln(out, "Type r to restart or q to quit.")
}

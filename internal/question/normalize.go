package question

import (
	"fmt"
	"sort"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims text fields, validates every record, and converts the
// document into tagged questions. All issues are reported together.
func Normalize(doc Document) (Set, error) {
	collector := &issueCollector{}
	if doc.Version == 0 {
		collector.add("version", "is required")
	} else if doc.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", doc.Version))
	}
	if len(doc.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	set := Set{Title: strings.TrimSpace(doc.Title)}
	seen := map[int]int{}
	for i, record := range doc.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q, ok := normalizeRecord(prefix, record, collector)
		if ok {
			set.Questions = append(set.Questions, q)
		}
		seen[record.ID]++
	}
	for id, count := range seen {
		if count > 1 {
			set.DuplicateIDs = append(set.DuplicateIDs, id)
		}
	}
	sort.Ints(set.DuplicateIDs)

	if err := collector.result(); err != nil {
		return Set{}, err
	}
	return set, nil
}

func normalizeRecord(prefix string, record QuestionRecord, collector *issueCollector) (Question, bool) {
	before := len(collector.issues)
	q := Question{
		ID:          record.ID,
		Kind:        Kind(strings.TrimSpace(record.Kind)),
		Category:    Category(strings.TrimSpace(record.Category)),
		Title:       strings.TrimSpace(record.Title),
		Prompt:      strings.TrimSpace(record.Prompt),
		Explanation: strings.TrimSpace(record.Explanation),
		SourceRef:   strings.TrimSpace(record.SourceRef),
	}
	if q.Prompt == "" {
		collector.add(prefix+".prompt", "is required")
	}
	if !q.Category.Valid() {
		collector.add(prefix+".category", fmt.Sprintf("unknown category %q", record.Category))
	}

	switch q.Kind {
	case KindMultipleChoice:
		options := normalizeStringSlice(record.Options)
		if len(options) < 2 {
			collector.add(prefix+".options", "must include at least two entries")
		}
		for optionIndex, option := range options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}
		if record.CorrectIndex == nil {
			collector.add(prefix+".correct_index", "is required")
		} else if *record.CorrectIndex < 0 || *record.CorrectIndex >= len(options) {
			collector.add(prefix+".correct_index", fmt.Sprintf("index %d out of range", *record.CorrectIndex))
		}
		if len(record.Lines) > 0 {
			collector.add(prefix+".lines", "not allowed for multiple_choice")
		}
		if len(collector.issues) == before {
			q.MultipleChoice = &MultipleChoice{Options: options, CorrectIndex: *record.CorrectIndex}
		}
	case KindReorderLines:
		if len(record.Lines) == 0 {
			collector.add(prefix+".lines", "must include at least one entry")
		}
		for lineIndex, line := range record.Lines {
			if strings.TrimSpace(line) == "" {
				collector.add(fmt.Sprintf("%s.lines[%d]", prefix, lineIndex), "is required")
			}
		}
		if len(record.Options) > 0 {
			collector.add(prefix+".options", "not allowed for reorder_lines")
		}
		if record.CorrectIndex != nil {
			collector.add(prefix+".correct_index", "not allowed for reorder_lines")
		}
		if len(collector.issues) == before {
			// Leading indentation is kept for display; comparisons trim.
			q.Reorder = &ReorderLines{Lines: append([]string(nil), record.Lines...)}
		}
	default:
		collector.add(prefix+".kind", fmt.Sprintf("unknown kind %q (expected %s|%s)", record.Kind, KindMultipleChoice, KindReorderLines))
	}
	return q, len(collector.issues) == before
}

// Validate checks the variant invariant of an already built question.
func Validate(q Question) error {
	collector := &issueCollector{}
	switch q.Kind {
	case KindMultipleChoice:
		if q.MultipleChoice == nil || q.Reorder != nil {
			collector.add("kind", "multiple_choice requires only a multiple choice payload")
			break
		}
		if len(q.MultipleChoice.Options) < 2 {
			collector.add("options", "must include at least two entries")
		}
		if q.MultipleChoice.CorrectIndex < 0 || q.MultipleChoice.CorrectIndex >= len(q.MultipleChoice.Options) {
			collector.add("correct_index", fmt.Sprintf("index %d out of range", q.MultipleChoice.CorrectIndex))
		}
	case KindReorderLines:
		if q.Reorder == nil || q.MultipleChoice != nil {
			collector.add("kind", "reorder_lines requires only a reorder payload")
			break
		}
		if len(q.Reorder.Lines) == 0 {
			collector.add("lines", "must include at least one entry")
		}
	default:
		collector.add("kind", fmt.Sprintf("unknown kind %q", q.Kind))
	}
	return collector.result()
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}

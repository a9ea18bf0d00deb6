package question

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadFileYAML verifies YAML banks load and normalize properly.
func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yml")
	payload := `version: 1
title: " Revision "
questions:
  - id: 1
    kind: multiple_choice
    category: Trees
    prompt: "  What is an AVL tree? "
    options: [" balanced ", "unbalanced"]
    correct_index: 0
    explanation: "Height difference is at most one."
    source_ref: "notes.pdf"
  - id: 2
    kind: reorder_lines
    category: Graphs
    prompt: "Order the loop."
    lines:
      - "for v in graph {"
      - "   visit(v)"
      - "}"
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if set.Title != "Revision" {
		t.Fatalf("expected trimmed title, got %q", set.Title)
	}
	if len(set.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(set.Questions))
	}
	mc := set.Questions[0]
	if mc.Kind != KindMultipleChoice || mc.MultipleChoice == nil || mc.Reorder != nil {
		t.Fatalf("unexpected multiple choice payload: %+v", mc)
	}
	if mc.Prompt != "What is an AVL tree?" {
		t.Fatalf("expected trimmed prompt, got %q", mc.Prompt)
	}
	if mc.MultipleChoice.Options[0] != "balanced" {
		t.Fatalf("expected trimmed option, got %q", mc.MultipleChoice.Options[0])
	}
	reorder := set.Questions[1]
	if reorder.Reorder == nil || reorder.MultipleChoice != nil {
		t.Fatalf("unexpected reorder payload: %+v", reorder)
	}
	if reorder.Reorder.Lines[1] != "   visit(v)" {
		t.Fatalf("expected indentation to be preserved, got %q", reorder.Reorder.Lines[1])
	}
}

// TestLoadFileJSON verifies JSON banks are parsed and validated.
func TestLoadFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")
	payload := `{
  "version": 1,
  "questions": [
    {
      "id": 7,
      "kind": "multiple_choice",
      "category": "Hashing",
      "prompt": "Which collision strategy?",
      "options": ["linear", "tree"],
      "correct_index": 0
    }
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if len(set.Questions) != 1 || set.Questions[0].ID != 7 {
		t.Fatalf("unexpected questions: %+v", set.Questions)
	}
}

// TestLoadFileRejectsUnknownFields verifies strict decoding.
func TestLoadFileRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yaml")
	payload := `version: 1
questions:
  - id: 1
    kind: multiple_choice
    category: Trees
    prompt: "Q"
    options: ["a", "b"]
    correct_index: 0
    answer: "a"
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

// TestLoadFileUnsupportedExtension verifies the format sentinel is returned.
func TestLoadFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.txt")
	if err := os.WriteFile(path, []byte("version: 1"), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	_, err := LoadFile(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

// TestParseValidationErrors verifies every invalid record is reported.
func TestParseValidationErrors(t *testing.T) {
	payload := `version: 1
questions:
  - id: 1
    kind: multiple_choice
    category: Trees
    prompt: "Q1"
    options: ["only"]
    correct_index: 3
  - id: 2
    kind: reorder_lines
    category: Sorting
    prompt: ""
    lines: []
    correct_index: 0
  - id: 3
    kind: essay
    category: General
    prompt: "Q3"
`
	_, err := Parse([]byte(payload), FormatYAML)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, issue := range validationErr.Issues {
		fields[issue.Field] = true
	}
	for _, want := range []string{
		"questions[0].options",
		"questions[0].correct_index",
		"questions[1].category",
		"questions[1].prompt",
		"questions[1].lines",
		"questions[1].correct_index",
		"questions[2].kind",
	} {
		if !fields[want] {
			t.Fatalf("expected issue for %s, got %+v", want, validationErr.Issues)
		}
	}
}

// TestParseKeepsDuplicateIDs verifies repeated ids are reported but kept.
func TestParseKeepsDuplicateIDs(t *testing.T) {
	payload := `version: 1
questions:
  - id: 10
    kind: reorder_lines
    category: Hashing
    prompt: "first"
    lines: ["a", "b"]
  - id: 10
    kind: reorder_lines
    category: Algorithms
    prompt: "second"
    lines: ["c", "d"]
`
	set, err := Parse([]byte(payload), FormatYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(set.Questions) != 2 {
		t.Fatalf("expected both questions to be kept, got %d", len(set.Questions))
	}
	if len(set.DuplicateIDs) != 1 || set.DuplicateIDs[0] != 10 {
		t.Fatalf("expected duplicate id 10, got %v", set.DuplicateIDs)
	}
}

// TestParseRejectsMissingVersion verifies the version header is required.
func TestParseRejectsMissingVersion(t *testing.T) {
	_, err := Parse([]byte(`{"questions": []}`), FormatJSON)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 2 {
		t.Fatalf("expected version and questions issues, got %+v", validationErr.Issues)
	}
}

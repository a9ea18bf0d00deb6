package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"studyquiz/internal/question"
)

// TestDefaultBankLoads verifies the embedded bank is well formed.
func TestDefaultBankLoads(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("default bank: %v", err)
	}
	if b.Len() != 32 {
		t.Fatalf("expected 32 questions, got %d", b.Len())
	}
	if b.Title() == "" {
		t.Fatalf("expected bank title")
	}
	var mc, reorder int
	for _, q := range b.All() {
		switch q.Kind {
		case question.KindMultipleChoice:
			mc++
		case question.KindReorderLines:
			reorder++
		}
	}
	if mc == 0 || reorder == 0 {
		t.Fatalf("expected both kinds, got mc=%d reorder=%d", mc, reorder)
	}
}

// TestDefaultBankKeepsDuplicateIDs verifies repeated ids are not deduped.
func TestDefaultBankKeepsDuplicateIDs(t *testing.T) {
	b := MustDefault()
	dups := b.DuplicateIDs()
	if len(dups) != 2 || dups[0] != 10 || dups[1] != 23 {
		t.Fatalf("expected duplicate ids [10 23], got %v", dups)
	}
	seen := 0
	for _, q := range b.All() {
		if q.ID == 23 {
			seen++
		}
	}
	if seen != 2 {
		t.Fatalf("expected id 23 twice, got %d", seen)
	}
}

// TestAllReturnsCopy verifies callers cannot mutate the bank.
func TestAllReturnsCopy(t *testing.T) {
	b := MustDefault()
	first := b.All()
	for i := range first {
		if first[i].Reorder != nil {
			first[i].Reorder.Lines[0] = "mutated"
		}
		if first[i].MultipleChoice != nil {
			first[i].MultipleChoice.Options[0] = "mutated"
		}
	}
	first[0].Prompt = "mutated"
	for _, q := range b.All() {
		if q.Prompt == "mutated" {
			t.Fatalf("prompt leaked into bank")
		}
		for _, line := range q.CanonicalLines() {
			if line == "mutated" {
				t.Fatalf("lines leaked into bank")
			}
		}
		for _, option := range q.Options() {
			if option == "mutated" {
				t.Fatalf("options leaked into bank")
			}
		}
	}
}

// TestNewRejectsEmptyAndMalformed verifies construction-time checks.
func TestNewRejectsEmptyAndMalformed(t *testing.T) {
	if _, err := New("empty", nil); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("expected empty bank error, got %v", err)
	}
	broken := question.NewMultipleChoice(1, question.CategoryGeneral, "q", []string{"only"}, 0)
	if _, err := New("broken", []question.Question{broken}); err == nil {
		t.Fatalf("expected malformed question error")
	}
}

// TestMustLoadPanicsOnMalformedBank verifies startup assertion behavior.
func TestMustLoadPanicsOnMalformedBank(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yml")
	if err := os.WriteFile(path, []byte("version: 2\nquestions: []\n"), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustLoad(path)
}

// TestLoadEmptyPathUsesDefault verifies the embedded fallback.
func TestLoadEmptyPathUsesDefault(t *testing.T) {
	b, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Len() != MustDefault().Len() {
		t.Fatalf("expected embedded bank")
	}
}

// TestCategories verifies per-category counts.
func TestCategories(t *testing.T) {
	b, err := New("small", []question.Question{
		question.NewMultipleChoice(1, question.CategoryTrees, "a", []string{"x", "y"}, 0),
		question.NewReorder(2, question.CategoryTrees, "b", []string{"l"}),
		question.NewMultipleChoice(3, question.CategoryGeneral, "c", []string{"x", "y"}, 1),
	})
	if err != nil {
		t.Fatalf("new bank: %v", err)
	}
	counts := b.Categories()
	if len(counts) != 2 {
		t.Fatalf("expected 2 categories, got %+v", counts)
	}
	if counts[0].Category != question.CategoryTrees || counts[0].Count != 2 {
		t.Fatalf("unexpected first category %+v", counts[0])
	}
	if counts[1].Category != question.CategoryGeneral || counts[1].Count != 1 {
		t.Fatalf("unexpected second category %+v", counts[1])
	}
}

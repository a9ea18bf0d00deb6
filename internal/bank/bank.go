// Package bank holds the immutable question bank a quiz session draws from.
package bank

import (
	_ "embed"
	"errors"
	"fmt"

	"studyquiz/internal/question"
)

//go:embed default.yml
var defaultBank []byte

// ErrEmptyBank is returned when a bank would contain no questions.
var ErrEmptyBank = errors.New("question bank is empty")

// Bank is an ordered, read-only collection of questions.
type Bank struct {
	title        string
	questions    []question.Question
	duplicateIDs []int
}

// New builds a bank from questions in authoring order. Every question must
// satisfy its variant invariant.
func New(title string, questions []question.Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}
	for i, q := range questions {
		if err := question.Validate(q); err != nil {
			return nil, fmt.Errorf("question %d (id %d): %w", i, q.ID, err)
		}
	}
	return &Bank{
		title:     title,
		questions: cloneQuestions(questions),
	}, nil
}

// FromSet wraps a loaded question set.
func FromSet(set question.Set) (*Bank, error) {
	b, err := New(set.Title, set.Questions)
	if err != nil {
		return nil, err
	}
	b.duplicateIDs = append([]int(nil), set.DuplicateIDs...)
	return b, nil
}

// Load reads a bank file, or the embedded bank when path is empty.
func Load(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	set, err := question.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return FromSet(set)
}

// Default returns the bank compiled into the binary.
func Default() (*Bank, error) {
	set, err := question.Parse(defaultBank, question.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded bank: %w", err)
	}
	return FromSet(set)
}

// MustDefault returns the embedded bank and panics if it is malformed.
func MustDefault() *Bank {
	b, err := Default()
	if err != nil {
		panic(err)
	}
	return b
}

// MustLoad is Load that panics on a malformed bank.
func MustLoad(path string) *Bank {
	b, err := Load(path)
	if err != nil {
		panic(err)
	}
	return b
}

// Title returns the bank title.
func (b *Bank) Title() string {
	return b.title
}

// All returns every question in authoring order. The result is a copy.
func (b *Bank) All() []question.Question {
	return cloneQuestions(b.questions)
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// DuplicateIDs lists ids that appear more than once.
func (b *Bank) DuplicateIDs() []int {
	return append([]int(nil), b.duplicateIDs...)
}

// CategoryCount is the number of questions in a category.
type CategoryCount struct {
	Category question.Category
	Count    int
}

// Categories counts questions per known category in display order,
// skipping empty categories.
func (b *Bank) Categories() []CategoryCount {
	counts := map[question.Category]int{}
	for _, q := range b.questions {
		counts[q.Category]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for _, category := range question.Categories {
		if counts[category] > 0 {
			out = append(out, CategoryCount{Category: category, Count: counts[category]})
		}
	}
	return out
}

// cloneQuestions deep copies the variant payloads so callers cannot reach
// the bank's slices.
func cloneQuestions(in []question.Question) []question.Question {
	out := make([]question.Question, len(in))
	for i, q := range in {
		if q.MultipleChoice != nil {
			mc := *q.MultipleChoice
			mc.Options = append([]string(nil), mc.Options...)
			q.MultipleChoice = &mc
		}
		if q.Reorder != nil {
			q.Reorder = &question.ReorderLines{Lines: append([]string(nil), q.Reorder.Lines...)}
		}
		out[i] = q
	}
	return out
}

package question

// Kind identifies which answer variant a question carries.
type Kind string

const (
	// KindMultipleChoice asks the user to pick one option.
	KindMultipleChoice Kind = "multiple_choice"
	// KindReorderLines asks the user to put code lines back in order.
	KindReorderLines Kind = "reorder_lines"
)

// Category is the display grouping label of a question.
type Category string

const (
	CategoryGraphs     Category = "Graphs"
	CategoryTrees      Category = "Trees"
	CategoryHashing    Category = "Hashing"
	CategoryAlgorithms Category = "Algorithms"
	CategoryGeneral    Category = "General"
)

// Categories lists the known category labels in display order.
var Categories = []Category{
	CategoryGraphs,
	CategoryTrees,
	CategoryHashing,
	CategoryAlgorithms,
	CategoryGeneral,
}

// Valid reports whether the category is one of the known labels.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Question is an immutable study question. Exactly one of MultipleChoice
// or Reorder is set, matching Kind.
type Question struct {
	ID             int
	Kind           Kind
	Category       Category
	Title          string
	Prompt         string
	Explanation    string
	SourceRef      string
	MultipleChoice *MultipleChoice
	Reorder        *ReorderLines
}

// MultipleChoice holds the options of a multiple-choice question.
type MultipleChoice struct {
	Options      []string
	CorrectIndex int
}

// ReorderLines holds the canonical line order of a reorder puzzle.
type ReorderLines struct {
	Lines []string
}

// NewMultipleChoice builds a multiple-choice question.
func NewMultipleChoice(id int, category Category, prompt string, options []string, correct int) Question {
	return Question{
		ID:       id,
		Kind:     KindMultipleChoice,
		Category: category,
		Prompt:   prompt,
		MultipleChoice: &MultipleChoice{
			Options:      append([]string(nil), options...),
			CorrectIndex: correct,
		},
	}
}

// NewReorder builds a reorder-lines question.
func NewReorder(id int, category Category, prompt string, lines []string) Question {
	return Question{
		ID:       id,
		Kind:     KindReorderLines,
		Category: category,
		Prompt:   prompt,
		Reorder:  &ReorderLines{Lines: append([]string(nil), lines...)},
	}
}

// Options returns a copy of the options, or nil for reorder questions.
func (q Question) Options() []string {
	if q.MultipleChoice == nil {
		return nil
	}
	return append([]string(nil), q.MultipleChoice.Options...)
}

// CanonicalLines returns a copy of the correct line order, or nil for
// multiple-choice questions.
func (q Question) CanonicalLines() []string {
	if q.Reorder == nil {
		return nil
	}
	return append([]string(nil), q.Reorder.Lines...)
}

// Document is the on-disk question bank schema loaded from YAML or JSON.
type Document struct {
	Version   int              `json:"version" yaml:"version"`
	Title     string           `json:"title" yaml:"title"`
	Questions []QuestionRecord `json:"questions" yaml:"questions"`
}

// QuestionRecord is the flat authoring form of a question.
type QuestionRecord struct {
	ID           int      `json:"id" yaml:"id"`
	Kind         string   `json:"kind" yaml:"kind"`
	Category     string   `json:"category" yaml:"category"`
	Title        string   `json:"title" yaml:"title"`
	Prompt       string   `json:"prompt" yaml:"prompt"`
	Options      []string `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectIndex *int     `json:"correct_index,omitempty" yaml:"correct_index,omitempty"`
	Lines        []string `json:"lines,omitempty" yaml:"lines,omitempty"`
	Explanation  string   `json:"explanation" yaml:"explanation"`
	SourceRef    string   `json:"source_ref" yaml:"source_ref"`
}

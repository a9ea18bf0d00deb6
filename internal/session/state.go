package session

import "studyquiz/internal/question"

// Phase is the coarse lifecycle state of a session.
type Phase int

const (
	// PhaseIdle is the zero value before the first Start.
	PhaseIdle Phase = iota
	// PhaseInProgress means a question is on screen.
	PhaseInProgress
	// PhaseFinished means every question has been answered.
	PhaseFinished
)

// String returns a readable phase label.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in_progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// AnswerStatus tracks whether the current question has been answered.
type AnswerStatus int

const (
	Unanswered AnswerStatus = iota
	Answered
)

// Answer is the per-question answer state. WorkingLines is only set for
// reorder questions and is frozen once answered.
type Answer struct {
	Status       AnswerStatus
	Correct      bool
	Choice       int
	WorkingLines []string
}

// Outcome records the result of one answered question.
type Outcome struct {
	Position   int
	QuestionID int
	Title      string
	Category   question.Category
	Kind       question.Kind
	Correct    bool
}

// State is the full state of one play-through.
type State struct {
	ID       string
	Order    []question.Question
	Position int
	Score    int
	Phase    Phase
	Answer   Answer
	History  []Outcome
}

// Total returns the session length.
func (s State) Total() int {
	return len(s.Order)
}

// Current returns the question at the current position.
func (s State) Current() (question.Question, bool) {
	if s.Phase != PhaseInProgress || s.Position < 0 || s.Position >= len(s.Order) {
		return question.Question{}, false
	}
	return s.Order[s.Position], true
}

// Answered reports whether the current question has been answered.
func (s State) Answered() bool {
	return s.Answer.Status == Answered
}

// Finished reports whether the session reached its terminal state.
func (s State) Finished() bool {
	return s.Phase == PhaseFinished
}

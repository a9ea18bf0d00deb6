package session

import (
	"slices"

	"studyquiz/internal/question"
)

// Snapshot is a read-only view of session state for rendering. Canonical
// lines are only exposed once the question has been answered.
type Snapshot struct {
	SessionID      string
	Phase          Phase
	Number         int
	Total          int
	Score          int
	QuestionID     int
	Kind           question.Kind
	Category       question.Category
	Title          string
	Prompt         string
	Options        []string
	WorkingLines   []string
	Answered       bool
	Correct        bool
	Choice         int
	Explanation    string
	CanonicalLines []string
	SourceRef      string
	History        []Outcome
}

// NewSnapshot builds a snapshot from state.
func NewSnapshot(state State) Snapshot {
	snap := Snapshot{
		SessionID: state.ID,
		Phase:     state.Phase,
		Total:     state.Total(),
		Score:     state.Score,
		Choice:    -1,
		History:   slices.Clone(state.History),
	}
	q, ok := state.Current()
	if !ok {
		snap.Number = min(state.Position, state.Total())
		return snap
	}
	snap.Number = state.Position + 1
	snap.QuestionID = q.ID
	snap.Kind = q.Kind
	snap.Category = q.Category
	snap.Title = q.Title
	snap.Prompt = q.Prompt
	snap.Options = q.Options()
	snap.WorkingLines = slices.Clone(state.Answer.WorkingLines)
	snap.Answered = state.Answered()
	if snap.Answered {
		snap.Correct = state.Answer.Correct
		snap.Choice = state.Answer.Choice
		snap.Explanation = q.Explanation
		snap.CanonicalLines = q.CanonicalLines()
	}
	snap.SourceRef = q.SourceRef
	return snap
}

// Finished reports whether the snapshot shows the final screen.
func (s Snapshot) Finished() bool {
	return s.Phase == PhaseFinished
}

// Progress returns score / total.
func (s Snapshot) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total)
}

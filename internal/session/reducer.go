package session

import (
	"slices"

	"studyquiz/internal/question"
	"studyquiz/internal/shuffle"
)

// Deps supplies the inputs a transition needs besides the state itself.
type Deps struct {
	Questions []question.Question
	Source    shuffle.Source
	NewID     func() string
}

// Reduce applies an intent to a state and returns the next state. The
// boolean is false when the intent is not valid in the current state, in
// which case the state is returned unchanged. The input state is never
// modified.
func Reduce(state State, intent Intent, deps Deps) (State, bool) {
	switch intent.Kind {
	case IntentStart:
		return start(deps)
	case IntentSubmitChoice:
		return submitChoice(state, intent.Index)
	case IntentReorder:
		return reorder(state, intent.Order)
	case IntentMoveLine:
		return moveLine(state, intent.From, intent.To)
	case IntentSubmitReorder:
		return submitReorder(state)
	case IntentAdvance:
		return advance(state, deps)
	default:
		return state, false
	}
}

// start builds a fresh session from a new shuffle of the bank.
func start(deps Deps) (State, bool) {
	if len(deps.Questions) == 0 {
		return State{}, false
	}
	next := State{
		Order: shuffle.Shuffle(deps.Source, deps.Questions),
		Phase: PhaseInProgress,
	}
	if deps.NewID != nil {
		next.ID = deps.NewID()
	}
	next.Answer = freshAnswer(next.Order[0], deps.Source)
	return next, true
}

// freshAnswer returns unanswered state for q. Reorder questions get a
// newly shuffled working order.
func freshAnswer(q question.Question, src shuffle.Source) Answer {
	answer := Answer{Status: Unanswered, Choice: -1}
	if q.Reorder != nil {
		answer.WorkingLines = shuffle.Shuffle(src, q.Reorder.Lines)
	}
	return answer
}

// unanswered returns the current question when it is open for answers
// and of the given kind.
func unanswered(state State, kind question.Kind) (question.Question, bool) {
	q, ok := state.Current()
	if !ok || q.Kind != kind || state.Answered() {
		return question.Question{}, false
	}
	return q, true
}

func submitChoice(state State, index int) (State, bool) {
	q, ok := unanswered(state, question.KindMultipleChoice)
	if !ok {
		return state, false
	}
	correct := question.CheckChoice(q, index)
	state.Answer = Answer{Status: Answered, Correct: correct, Choice: index}
	return record(state, q, correct), true
}

func reorder(state State, order []string) (State, bool) {
	if _, ok := unanswered(state, question.KindReorderLines); !ok {
		return state, false
	}
	if !question.SameLines(state.Answer.WorkingLines, order) {
		return state, false
	}
	state.Answer.WorkingLines = slices.Clone(order)
	return state, true
}

func moveLine(state State, from, to int) (State, bool) {
	if _, ok := unanswered(state, question.KindReorderLines); !ok {
		return state, false
	}
	lines := state.Answer.WorkingLines
	if from == to || from < 0 || to < 0 || from >= len(lines) || to >= len(lines) {
		return state, false
	}
	moved := make([]string, 0, len(lines))
	moved = append(moved, lines[:from]...)
	moved = append(moved, lines[from+1:]...)
	moved = slices.Insert(moved, to, lines[from])
	state.Answer.WorkingLines = moved
	return state, true
}

func submitReorder(state State) (State, bool) {
	q, ok := unanswered(state, question.KindReorderLines)
	if !ok {
		return state, false
	}
	correct := question.CheckReorder(q, state.Answer.WorkingLines)
	state.Answer = Answer{
		Status:       Answered,
		Correct:      correct,
		Choice:       -1,
		WorkingLines: state.Answer.WorkingLines,
	}
	return record(state, q, correct), true
}

// record bumps the score and appends the outcome to a copy of the history.
func record(state State, q question.Question, correct bool) State {
	if correct {
		state.Score++
	}
	history := make([]Outcome, len(state.History), len(state.History)+1)
	copy(history, state.History)
	state.History = append(history, Outcome{
		Position:   state.Position,
		QuestionID: q.ID,
		Title:      q.Title,
		Category:   q.Category,
		Kind:       q.Kind,
		Correct:    correct,
	})
	return state
}

func advance(state State, deps Deps) (State, bool) {
	if state.Phase != PhaseInProgress || !state.Answered() {
		return state, false
	}
	if state.Position+1 < len(state.Order) {
		state.Position++
		state.Answer = freshAnswer(state.Order[state.Position], deps.Source)
		return state, true
	}
	state.Position = len(state.Order)
	state.Phase = PhaseFinished
	return state, true
}

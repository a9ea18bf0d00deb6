// Package session implements the quiz session state machine.
package session

import (
	"github.com/google/uuid"

	"studyquiz/internal/bank"
	"studyquiz/internal/shuffle"
)

// Observer receives notifications after applied transitions.
type Observer interface {
	OnStart(state State)
	OnAnswer(state State, outcome Outcome)
	OnFinish(state State)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) OnStart(State)           {}
func (NopObserver) OnAnswer(State, Outcome) {}
func (NopObserver) OnFinish(State)          {}

// Observers fans notifications out to several observers in order.
func Observers(observers ...Observer) Observer {
	return multiObserver(observers)
}

type multiObserver []Observer

func (m multiObserver) OnStart(state State) {
	for _, o := range m {
		o.OnStart(state)
	}
}

func (m multiObserver) OnAnswer(state State, outcome Outcome) {
	for _, o := range m {
		o.OnAnswer(state, outcome)
	}
}

func (m multiObserver) OnFinish(state State) {
	for _, o := range m {
		o.OnFinish(state)
	}
}

// Engine owns the mutable state of one quiz and applies intents to it.
// It is not safe for concurrent use; intents must be dispatched one at a
// time.
type Engine struct {
	deps     Deps
	observer Observer
	state    State
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source used for shuffling.
func WithSource(src shuffle.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.deps.Source = src
		}
	}
}

// WithObserver registers an observer for session events.
func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observer = observer
		}
	}
}

// WithIDGenerator overrides how session ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.deps.NewID = fn
		}
	}
}

// NewEngine constructs an engine over a bank. Call Start to begin.
func NewEngine(b *bank.Bank, opts ...Option) *Engine {
	engine := &Engine{
		deps: Deps{
			Questions: b.All(),
			Source:    shuffle.NewSource(0),
			NewID:     uuid.NewString,
		},
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Dispatch applies an intent and reports whether it changed the state.
func (e *Engine) Dispatch(intent Intent) bool {
	prev := e.state
	next, ok := Reduce(prev, intent, e.deps)
	if !ok {
		return false
	}
	e.state = next
	e.notify(prev, next, intent)
	return true
}

// notify forwards the transition to the observer.
func (e *Engine) notify(prev, next State, intent Intent) {
	switch intent.Kind {
	case IntentStart:
		e.observer.OnStart(next)
	case IntentSubmitChoice, IntentSubmitReorder:
		if len(next.History) > len(prev.History) {
			e.observer.OnAnswer(next, next.History[len(next.History)-1])
		}
	case IntentAdvance:
		if next.Finished() {
			e.observer.OnFinish(next)
		}
	}
}

// Start begins a new session from a fresh shuffle.
func (e *Engine) Start() bool {
	return e.Dispatch(Start())
}

// SubmitChoice answers the current multiple-choice question.
func (e *Engine) SubmitChoice(index int) bool {
	return e.Dispatch(SubmitChoice(index))
}

// Reorder replaces the working order of the current reorder question.
func (e *Engine) Reorder(order []string) bool {
	return e.Dispatch(Reorder(order))
}

// MoveLine moves one working line of the current reorder question.
func (e *Engine) MoveLine(from, to int) bool {
	return e.Dispatch(MoveLine(from, to))
}

// SubmitReorder answers the current reorder question.
func (e *Engine) SubmitReorder() bool {
	return e.Dispatch(SubmitReorder())
}

// Advance moves to the next question or finishes the session.
func (e *Engine) Advance() bool {
	return e.Dispatch(Advance())
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// ProgressFraction returns score / total, or 0 before a session starts.
func (e *Engine) ProgressFraction() float64 {
	return ProgressFraction(e.state)
}

// Snapshot returns the render view of the current state.
func (e *Engine) Snapshot() Snapshot {
	return NewSnapshot(e.state)
}

// ProgressFraction returns score / total for a state.
func ProgressFraction(state State) float64 {
	total := state.Total()
	if total == 0 {
		return 0
	}
	return float64(state.Score) / float64(total)
}

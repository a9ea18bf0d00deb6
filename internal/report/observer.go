package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"studyquiz/internal/session"
)

// Observer writes a results page each time a session finishes.
type Observer struct {
	path  string
	title string
	now   func() time.Time
	log   *zap.Logger
}

// NewObserver returns a session observer writing to path.
func NewObserver(path, title string, log *zap.Logger) *Observer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Observer{path: path, title: title, now: time.Now, log: log.Named("report")}
}

// OnStart implements session.Observer.
func (o *Observer) OnStart(session.State) {}

// OnAnswer implements session.Observer.
func (o *Observer) OnAnswer(session.State, session.Outcome) {}

// OnFinish writes the report. Failures are logged; the quiz keeps running.
func (o *Observer) OnFinish(state session.State) {
	summary := NewSummary(o.title, state, o.now())
	if err := WriteFile(context.Background(), o.path, summary); err != nil {
		o.log.Error("write report failed", zap.String("path", o.path), zap.Error(err))
		return
	}
	o.log.Info("report written", zap.String("path", o.path), zap.String("session_id", state.ID))
}

package logging

import (
	"go.uber.org/zap"

	"studyquiz/internal/session"
)

// SessionObserver writes session lifecycle events to a zap logger.
type SessionObserver struct {
	log *zap.Logger
}

// NewSessionObserver wraps a logger as a session observer.
func NewSessionObserver(log *zap.Logger) *SessionObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionObserver{log: log.Named("session")}
}

// OnStart logs a new session.
func (o *SessionObserver) OnStart(state session.State) {
	o.log.Info("session started",
		zap.String("session_id", state.ID),
		zap.Int("total", state.Total()),
	)
}

// OnAnswer logs a scored answer.
func (o *SessionObserver) OnAnswer(state session.State, outcome session.Outcome) {
	o.log.Debug("question answered",
		zap.String("session_id", state.ID),
		zap.Int("position", outcome.Position),
		zap.Int("question_id", outcome.QuestionID),
		zap.String("kind", string(outcome.Kind)),
		zap.Bool("correct", outcome.Correct),
		zap.Int("score", state.Score),
	)
}

// OnFinish logs the final score.
func (o *SessionObserver) OnFinish(state session.State) {
	o.log.Info("session finished",
		zap.String("session_id", state.ID),
		zap.Int("score", state.Score),
		zap.Int("total", state.Total()),
		zap.Float64("progress", session.ProgressFraction(state)),
	)
}

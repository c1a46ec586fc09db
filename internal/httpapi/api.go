package httpapi

import (
	"context"

	"quiz-web/internal/quiz"
	"quiz-web/internal/randomplay"
	"quiz-web/internal/session"
)

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

type API struct {
	quizzes  *quiz.Service
	engine   *randomplay.Engine
	sessions *session.Manager
	health   HealthCheck
}

func NewAPI(quizzes *quiz.Service, engine *randomplay.Engine, sessions *session.Manager) *API {
	return &API{
		quizzes:  quizzes,
		engine:   engine,
		sessions: sessions,
	}
}

// WithHealthCheck makes /healthz report the result of check.
func (a *API) WithHealthCheck(check HealthCheck) *API {
	a.health = check
	return a
}

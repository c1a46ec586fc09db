package httpapi

import (
	"errors"
	"net/http"

	"quiz-web/internal/quiz"
)

// HandleRandomPlay starts, advances or finishes the session's random-play
// walk.
func (a *API) HandleRandomPlay(w http.ResponseWriter, r *http.Request) {
	data, err := a.sessions.Load(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	step, err := a.engine.Next(r.Context(), &data.RandomPlay)
	if err != nil {
		// A quiz deleted mid-session still consumes its position, so the
		// next request moves past it.
		if errors.Is(err, quiz.ErrQuizNotFound) {
			if saveErr := a.sessions.Save(r, data); saveErr != nil {
				writeSessionError(w, saveErr)
				return
			}
		}
		a.fail(w, r, err)
		return
	}

	notices := data.PopFlash()
	if err := a.sessions.Save(r, data); err != nil {
		writeSessionError(w, err)
		return
	}

	if step.Done {
		writeJSON(w, http.StatusOK, randomNoMoreResponse{
			Score:   step.Score,
			NoMore:  true,
			Restart: randomPlayPath,
			Notices: notices,
		})
		return
	}
	writeJSON(w, http.StatusOK, randomPlayResponse{
		Quiz:    newQuestionView(step.Quiz),
		Score:   step.Score,
		Notices: notices,
	})
}

func (a *API) HandleRandomCheck(w http.ResponseWriter, r *http.Request) {
	data, err := a.sessions.Load(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	current := quizFromContext(r.Context())
	check, err := a.engine.Check(&data.RandomPlay, current, r.URL.Query().Get("answer"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := a.sessions.Save(r, data); err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, randomResultResponse{
		Quiz:   current,
		Result: check.Result,
		Score:  check.Score,
		Answer: check.Answer,
	})
}

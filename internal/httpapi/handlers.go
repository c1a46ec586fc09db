package httpapi

import (
	"errors"
	"log"
	"net/http"

	"quiz-web/internal/quiz"
)

func (a *API) HandleIndex(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	listing, err := a.quizzes.List(r.Context(), search, parsePageNo(r), r.URL.RequestURI())
	if err != nil {
		a.fail(w, r, err)
		return
	}

	notices, err := a.popNotices(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, indexResponse{
		Quizzes:    listing.Quizzes,
		Pagination: listing.Pagination,
		Search:     listing.Search,
		Notices:    notices,
	})
}

func (a *API) HandleShow(w http.ResponseWriter, r *http.Request) {
	notices, err := a.popNotices(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quizResponse{Quiz: quizFromContext(r.Context()), Notices: notices})
}

func (a *API) HandleNew(w http.ResponseWriter, r *http.Request) {
	notices, err := a.popNotices(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, formResponse{Notices: notices})
}

func (a *API) HandleCreate(w http.ResponseWriter, r *http.Request) {
	form, err := decodeQuizForm(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	created, notices, err := a.quizzes.Create(r.Context(), form.Question, form.Answer)
	var verr *quiz.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, formResponse{
			Quiz:    quizForm{Question: created.Question, Answer: created.Answer},
			Notices: notices,
		})
		return
	case err != nil:
		a.fail(w, r, err)
		return
	}

	if err := a.flash(r, notices...); err != nil {
		writeSessionError(w, err)
		return
	}
	redirect(w, r, quizPath(created.ID))
}

func (a *API) HandleEdit(w http.ResponseWriter, r *http.Request) {
	current := quizFromContext(r.Context())

	notices, err := a.popNotices(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, formResponse{
		Quiz:    quizForm{Question: current.Question, Answer: current.Answer},
		QuizID:  current.ID,
		Notices: notices,
	})
}

func (a *API) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	form, err := decodeQuizForm(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	updated, notices, err := a.quizzes.Update(r.Context(), quizFromContext(r.Context()), form.Question, form.Answer)
	var verr *quiz.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, formResponse{
			Quiz:    quizForm{Question: updated.Question, Answer: updated.Answer},
			QuizID:  updated.ID,
			Notices: notices,
		})
		return
	case err != nil:
		a.fail(w, r, err)
		return
	}

	if err := a.flash(r, notices...); err != nil {
		writeSessionError(w, err)
		return
	}
	redirect(w, r, quizPath(updated.ID))
}

func (a *API) HandleDestroy(w http.ResponseWriter, r *http.Request) {
	notices, err := a.quizzes.Destroy(r.Context(), quizFromContext(r.Context()))
	if err != nil {
		a.fail(w, r, err)
		return
	}

	if err := a.flash(r, notices...); err != nil {
		writeSessionError(w, err)
		return
	}
	redirect(w, r, "/quizzes")
}

func (a *API) HandlePlay(w http.ResponseWriter, r *http.Request) {
	view := a.quizzes.Play(quizFromContext(r.Context()), r.URL.Query().Get("answer"))

	notices, err := a.popNotices(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playResponse{Quiz: newQuestionView(view.Quiz), Answer: view.Answer, Notices: notices})
}

// HandleCheck also reports the random-play score of the session, which is
// nil when no random-play session is running.
func (a *API) HandleCheck(w http.ResponseWriter, r *http.Request) {
	result := a.quizzes.Check(quizFromContext(r.Context()), r.URL.Query().Get("answer"))

	data, err := a.sessions.Load(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	var score *int
	if data.RandomPlay.Score != nil {
		value := *data.RandomPlay.Score
		score = &value
	}
	notices := data.PopFlash()
	if len(notices) > 0 {
		if err := a.sessions.Save(r, data); err != nil {
			writeSessionError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, checkResponse{
		Quiz:    result.Quiz,
		Result:  result.Result,
		Answer:  result.Answer,
		Score:   score,
		Notices: notices,
	})
}

// popNotices takes the pending flash notices off the session.
func (a *API) popNotices(r *http.Request) ([]quiz.Notice, error) {
	data, err := a.sessions.Load(r)
	if err != nil {
		return nil, err
	}
	notices := data.PopFlash()
	if len(notices) == 0 {
		return nil, nil
	}
	return notices, a.sessions.Save(r, data)
}

func (a *API) flash(r *http.Request, notices ...quiz.Notice) error {
	data, err := a.sessions.Load(r)
	if err != nil {
		return err
	}
	data.AddFlash(notices...)
	return a.sessions.Save(r, data)
}

// fail records store failures as a flash notice before writing the error
// response.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	var serr *quiz.StoreError
	if errors.As(err, &serr) {
		log.Printf("store error: %v", err)
		if flashErr := a.flash(r, quiz.Notice{Kind: quiz.NoticeError, Message: serr.Notice}); flashErr != nil {
			log.Printf("failed to flash store error: %v", flashErr)
		}
	}
	writeServiceError(w, err)
}

func writeSessionError(w http.ResponseWriter, err error) {
	log.Printf("session error: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "session unavailable"})
}

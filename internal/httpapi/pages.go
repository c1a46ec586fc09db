package httpapi

import "net/http"

func (a *API) HandleHome(w http.ResponseWriter, r *http.Request) {
	a.writePage(w, r, pageResponse{
		Title: "Quiz",
		Body:  "Create, browse and play quizzes.",
		Links: []string{"/quizzes", randomPlayPath, "/author", "/help"},
	})
}

func (a *API) HandleAuthor(w http.ResponseWriter, r *http.Request) {
	a.writePage(w, r, pageResponse{
		Title: "Author",
		Body:  "quiz-web is maintained by the quiz-web contributors.",
	})
}

func (a *API) HandleHelp(w http.ResponseWriter, r *http.Request) {
	a.writePage(w, r, pageResponse{
		Title: "Help",
		Body: "List quizzes at /quizzes (search, pageno). Play one at /quizzes/{id}/play and check it at " +
			"/quizzes/{id}/check?answer=... Random play walks every quiz once in random order: " +
			"GET /quizzes/randomplay for the next quiz and /quizzes/randomcheck/{id}?answer=... to answer it. " +
			"A wrong answer ends the run.",
	})
}

func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if a.health != nil {
		if err := a.health(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (a *API) writePage(w http.ResponseWriter, r *http.Request, page pageResponse) {
	notices, err := a.popNotices(r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	page.Notices = notices
	writeJSON(w, http.StatusOK, page)
}

package httpapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"quiz-web/internal/quiz"
	"quiz-web/internal/randomplay"
)

const randomPlayPath = "/quizzes/randomplay"

func writeServiceError(w http.ResponseWriter, err error) {
	var (
		verr *quiz.ValidationError
		serr *quiz.StoreError
	)
	switch {
	case errors.Is(err, quiz.ErrQuizNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, randomplay.ErrNoActiveSession):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Hint: randomPlayPath})
	case errors.As(err, &serr):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: serr.Notice})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

// parsePageNo follows the listing's lenient rule: anything that is not a
// positive integer means page 1.
func parsePageNo(r *http.Request) int {
	value, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("pageno")))
	if err != nil || value < 1 {
		return 1
	}
	return value
}

// decodeQuizForm reads question and answer from a JSON body or from form
// fields, depending on the content type.
func decodeQuizForm(r *http.Request) (quizForm, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		defer r.Body.Close()

		var form quizForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return quizForm{}, errors.New("invalid JSON body")
		}
		return form, nil
	}

	if err := r.ParseForm(); err != nil {
		return quizForm{}, errors.New("invalid form body")
	}
	return quizForm{
		Question: r.PostForm.Get("question"),
		Answer:   r.PostForm.Get("answer"),
	}, nil
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethod string) {
	w.Header().Set("Allow", allowedMethod)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func quizPath(id int64) string {
	return "/quizzes/" + strconv.FormatInt(id, 10)
}

package httpapi

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"quiz-web/internal/quiz"
)

const defaultMaxLogBytes = 2048

type quizContextKey struct{}

// loadQuiz resolves the {id} route parameter into a quiz for the handlers
// below it. Unknown ids end the request with 404.
func (a *API) loadQuiz(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: quiz.ErrQuizNotFound.Error()})
			return
		}

		found, err := a.quizzes.Find(r.Context(), id)
		if err != nil {
			a.fail(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), quizContextKey{}, found)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func quizFromContext(ctx context.Context) quiz.Quiz {
	found, _ := ctx.Value(quizContextKey{}).(quiz.Quiz)
	return found
}

// methodOverride lets HTML forms reach PUT and DELETE routes by posting a
// _method field (or query parameter).
func methodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		override := r.URL.Query().Get("_method")
		if override == "" && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err == nil {
				override = r.PostForm.Get("_method")
			}
		}
		override = strings.ToUpper(strings.TrimSpace(override))

		switch override {
		case "":
		case http.MethodPut, http.MethodDelete:
			r.Method = override
		default:
			writeMethodNotAllowed(w, "PUT, DELETE")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	maxLogBytes  int
	bytesWritten int
	logBody      bytes.Buffer
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytesWritten += n

	if room := r.maxLogBytes - r.logBody.Len(); room > 0 {
		if len(p) > room {
			r.logBody.Write(p[:room])
			r.truncated = true
		} else {
			r.logBody.Write(p)
		}
	} else if len(p) > 0 {
		r.truncated = true
	}
	return n, err
}

// logServerErrors logs the body of every 5xx response.
func logServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    defaultMaxLogBytes,
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode < http.StatusInternalServerError {
			return
		}
		body := strings.TrimSpace(recorder.logBody.String())
		if recorder.truncated {
			body += "...(truncated)"
		}
		log.Printf("%s %s -> %d (%d bytes): %s", r.Method, r.URL.Path, recorder.statusCode, recorder.bytesWritten, body)
	})
}

package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterOptions struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

func NewRouter(api *API, opts RouterOptions) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(logServerErrors)
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type"},
			ExposedHeaders:   []string{"Content-Length", "Location"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(methodOverride)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	r.Get("/healthz", api.HandleHealth)

	r.Group(func(sr chi.Router) {
		sr.Use(api.sessions.Middleware)

		sr.Get("/", api.HandleHome)
		sr.Get("/author", api.HandleAuthor)
		sr.Get("/help", api.HandleHelp)

		sr.Route("/quizzes", func(qr chi.Router) {
			qr.Get("/", api.HandleIndex)
			qr.Post("/", api.HandleCreate)
			qr.Get("/new", api.HandleNew)
			qr.Get("/randomplay", api.HandleRandomPlay)
			qr.With(api.loadQuiz).Get("/randomcheck/{id:[0-9]+}", api.HandleRandomCheck)

			qr.Route("/{id:[0-9]+}", func(ir chi.Router) {
				ir.Use(api.loadQuiz)
				ir.Get("/", api.HandleShow)
				ir.Put("/", api.HandleUpdate)
				ir.Delete("/", api.HandleDestroy)
				ir.Get("/edit", api.HandleEdit)
				ir.Get("/play", api.HandlePlay)
				ir.Get("/check", api.HandleCheck)
			})
		})
	})

	return r
}

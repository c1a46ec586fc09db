package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"quiz-web/internal/config"
	"quiz-web/internal/httpapi"
	"quiz-web/internal/quiz"
	"quiz-web/internal/quiz/sqlstore"
	"quiz-web/internal/randomplay"
	"quiz-web/internal/session"
)

func main() {
	cfg := config.FromEnv()

	addr := flag.String("addr", cfg.HTTPAddr, "HTTP listen address")
	dbDriver := flag.String("db-driver", cfg.DBDriver, "quiz store driver (sqlite|postgres)")
	dbDSN := flag.String("db-dsn", cfg.DBDSN, "quiz store DSN (empty uses the driver default)")
	sessionBackend := flag.String("session-backend", string(cfg.Session.Backend), "session backend (memory|redis)")
	flag.Parse()

	cfg.Session.Backend = config.SessionBackend(*sessionBackend)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := sqlstore.Open(ctx, sqlstore.Driver(*dbDriver), *dbDSN)
	cancel()
	if err != nil {
		log.Fatalf("open quiz store: %v", err)
	}
	defer store.Close()

	sessions, closeSessions, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer closeSessions()

	if cfg.UsesDefaultSecret() {
		log.Printf("SESSION_SECRET not set, signing sessions with the development secret")
	}

	api := httpapi.NewAPI(
		quiz.NewService(store, cfg.PageSize),
		randomplay.NewEngine(store, randomplay.NewRandShuffler(time.Now().UnixNano())),
		session.NewManager(sessions, cfg.Session.Secret, cfg.Session.TTL),
	).WithHealthCheck(store.Ping)

	server := &http.Server{
		Addr: *addr,
		Handler: httpapi.NewRouter(api, httpapi.RouterOptions{
			CORSOrigins:    cfg.CORSOrigins,
			RequestTimeout: cfg.RequestTimeout,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("quiz-service listening on %s (store=%s, sessions=%s)", *addr, store.Driver(), cfg.Session.Backend)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

func newSessionStore(cfg config.Config) (session.Store, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionMemory, "":
		return session.NewMemoryStore(cfg.Session.TTL), func() {}, nil
	case config.SessionRedis:
		client, err := session.NewRedisClient(session.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		store := session.NewRedisStore(client, cfg.Session.TTL)
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported session backend: %s", cfg.Session.Backend)
	}
}

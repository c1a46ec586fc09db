package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"quiz-web/internal/config"
	"quiz-web/internal/opentdb"
	"quiz-web/internal/quiz"
	"quiz-web/internal/quiz/sqlstore"
	"quiz-web/internal/seed"
)

func main() {
	cfg := config.FromEnv()

	dbDriver := flag.String("db-driver", cfg.DBDriver, "quiz store driver (sqlite|postgres)")
	dbDSN := flag.String("db-dsn", cfg.DBDSN, "quiz store DSN (empty uses the driver default)")
	amount := flag.Int("amount", 10, "number of trivia questions to import (max 50)")
	apiURL := flag.String("api-url", "", "OpenTriviaDB-compatible endpoint (empty uses opentdb.com)")
	timeout := flag.Duration("timeout", 10*time.Second, "HTTP timeout")
	flag.Parse()

	ctx := context.Background()
	store, err := sqlstore.Open(ctx, sqlstore.Driver(*dbDriver), *dbDSN)
	if err != nil {
		log.Fatalf("open quiz store: %v", err)
	}
	defer store.Close()

	client := opentdb.NewClient(&http.Client{Timeout: *timeout})
	if *apiURL != "" {
		client = client.WithURL(*apiURL)
	}

	report, err := seed.Run(ctx, client, quiz.NewService(store, cfg.PageSize), *amount)
	if err != nil {
		store.Close()
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("imported %d quizzes, skipped %d", report.Imported, report.Skipped)
}

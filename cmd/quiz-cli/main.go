package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"quiz-web/internal/cli"
	"quiz-web/internal/config"
	"quiz-web/internal/quiz/sqlstore"
	"quiz-web/internal/randomplay"
)

func main() {
	cfg := config.FromEnv()

	dbDriver := flag.String("db-driver", cfg.DBDriver, "quiz store driver (sqlite|postgres)")
	dbDSN := flag.String("db-dsn", cfg.DBDSN, "quiz store DSN (empty uses the driver default)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "shuffle seed")
	flag.Parse()

	ctx := context.Background()
	store, err := sqlstore.Open(ctx, sqlstore.Driver(*dbDriver), *dbDSN)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer store.Close()

	engine := randomplay.NewEngine(store, randomplay.NewRandShuffler(*seed))
	if err := cli.Run(ctx, engine, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		store.Close()
		os.Exit(1)
	}
}

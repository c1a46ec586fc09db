// Package sqlstore keeps quizzes in SQLite or Postgres through database/sql.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "github.com/mattn/go-sqlite3"    // driver: sqlite3
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

type Store struct {
	db     *sql.DB
	driver Driver
}

// Open connects with the given driver and makes sure the schema exists. An
// empty dsn selects a local default for the driver.
func Open(ctx context.Context, driver Driver, dsn string) (*Store, error) {
	var driverName string
	switch driver {
	case DriverSQLite, "":
		driver = DriverSQLite
		driverName = "sqlite3"
		if strings.TrimSpace(dsn) == "" {
			dsn = "quiz.db"
		}
	case DriverPostgres:
		driverName = "pgx"
		if strings.TrimSpace(dsn) == "" {
			dsn = "postgres://localhost:5432/quizzes?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &Store{db: db, driver: driver}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Driver() Driver {
	return s.driver
}

// rebind rewrites ? placeholders into $n for Postgres.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var builder strings.Builder
	builder.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			builder.WriteByte('$')
			builder.WriteString(strconv.Itoa(n))
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

package sqlstore

import (
	"context"
)

func (s *Store) initSchema(ctx context.Context) error {
	var statements []string
	switch s.driver {
	case DriverPostgres:
		statements = []string{
			`CREATE TABLE IF NOT EXISTS quizzes (
				id BIGSERIAL PRIMARY KEY,
				question TEXT NOT NULL,
				answer TEXT NOT NULL,
				created_at_unix BIGINT NOT NULL,
				updated_at_unix BIGINT NOT NULL
			);`,
		}
	default:
		statements = []string{
			`CREATE TABLE IF NOT EXISTS quizzes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				question TEXT NOT NULL,
				answer TEXT NOT NULL,
				created_at_unix INTEGER NOT NULL,
				updated_at_unix INTEGER NOT NULL
			);`,
		}
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

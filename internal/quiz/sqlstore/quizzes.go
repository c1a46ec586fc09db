package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quiz-web/internal/quiz"
)

const quizColumns = `id, question, answer, created_at_unix, updated_at_unix`

func whereClause(filter quiz.Filter) (string, []any) {
	if filter.IsZero() {
		return "", nil
	}
	return ` WHERE LOWER(question) LIKE LOWER(?) ESCAPE '\'`, []any{filter.QuestionLike}
}

func (s *Store) Count(ctx context.Context, filter quiz.Filter) (int, error) {
	where, args := whereClause(filter)

	var count int
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT COUNT(*) FROM quizzes`+where), args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindAll returns matching quizzes ordered by id. limit <= 0 disables paging.
func (s *Store) FindAll(ctx context.Context, filter quiz.Filter, offset, limit int) ([]quiz.Quiz, error) {
	where, args := whereClause(filter)
	query := `SELECT ` + quizColumns + ` FROM quizzes` + where + ` ORDER BY id ASC`
	if limit > 0 {
		if offset < 0 {
			offset = 0
		}
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := make([]quiz.Quiz, 0)
	for rows.Next() {
		item, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, item)
	}

	return quizzes, rows.Err()
}

func (s *Store) FindByID(ctx context.Context, id int64) (quiz.Quiz, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`SELECT `+quizColumns+` FROM quizzes WHERE id = ?`), id)
	item, err := scanQuiz(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Quiz{}, quiz.ErrQuizNotFound
		}
		return quiz.Quiz{}, err
	}
	return item, nil
}

func (s *Store) Create(ctx context.Context, q quiz.Quiz) (quiz.Quiz, error) {
	now := time.Now().UTC()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	if q.UpdatedAt.IsZero() {
		q.UpdatedAt = q.CreatedAt
	}

	err := s.db.QueryRowContext(
		ctx,
		s.rebind(`INSERT INTO quizzes (question, answer, created_at_unix, updated_at_unix)
		 VALUES (?, ?, ?, ?)
		 RETURNING id`),
		q.Question,
		q.Answer,
		q.CreatedAt.UnixNano(),
		q.UpdatedAt.UnixNano(),
	).Scan(&q.ID)
	if err != nil {
		return quiz.Quiz{}, err
	}
	return q, nil
}

// Update writes only question, answer and the update timestamp.
func (s *Store) Update(ctx context.Context, q quiz.Quiz) (quiz.Quiz, error) {
	if q.UpdatedAt.IsZero() {
		q.UpdatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(
		ctx,
		s.rebind(`UPDATE quizzes SET question = ?, answer = ?, updated_at_unix = ? WHERE id = ?`),
		q.Question,
		q.Answer,
		q.UpdatedAt.UnixNano(),
		q.ID,
	)
	if err != nil {
		return quiz.Quiz{}, err
	}
	if err := expectOneRow(result); err != nil {
		return quiz.Quiz{}, err
	}
	return s.FindByID(ctx, q.ID)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM quizzes WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuiz(row rowScanner) (quiz.Quiz, error) {
	var (
		item          quiz.Quiz
		createdAtUnix int64
		updatedAtUnix int64
	)
	if err := row.Scan(&item.ID, &item.Question, &item.Answer, &createdAtUnix, &updatedAtUnix); err != nil {
		return quiz.Quiz{}, err
	}
	item.CreatedAt = time.Unix(0, createdAtUnix).UTC()
	item.UpdatedAt = time.Unix(0, updatedAtUnix).UTC()
	return item, nil
}

func expectOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return quiz.ErrQuizNotFound
	}
	return nil
}

package quiz

import (
	"context"
	"time"
)

type Quiz struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows Count and FindAll. The zero value matches every quiz.
type Filter struct {
	// QuestionLike is a LIKE pattern matched case-insensitively against the
	// question column only.
	QuestionLike string
}

func (f Filter) IsZero() bool {
	return f.QuestionLike == ""
}

// Store is the durable collection of quizzes. FindAll with limit <= 0 returns
// every matching row.
type Store interface {
	Count(ctx context.Context, filter Filter) (int, error)
	FindAll(ctx context.Context, filter Filter, offset, limit int) ([]Quiz, error)
	FindByID(ctx context.Context, id int64) (Quiz, error)
	Create(ctx context.Context, quiz Quiz) (Quiz, error)
	Update(ctx context.Context, quiz Quiz) (Quiz, error)
	Delete(ctx context.Context, id int64) error
}

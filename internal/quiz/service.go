package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quiz-web/internal/pagination"
)

type Service struct {
	store    Store
	pageSize int
	now      func() time.Time
}

func NewService(store Store, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = pagination.DefaultItemsPerPage
	}
	return &Service{
		store:    store,
		pageSize: pageSize,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type Listing struct {
	Quizzes    []Quiz
	Pagination pagination.Pagination
	Search     string
}

type CheckResult struct {
	Quiz   Quiz
	Result bool
	Answer string
}

type ImportReport struct {
	Imported int
	Skipped  int
}

// Find resolves a quiz by id. Unknown ids yield an error wrapping
// ErrQuizNotFound.
func (s *Service) Find(ctx context.Context, id int64) (Quiz, error) {
	q, err := s.store.FindByID(ctx, id)
	if err == nil {
		return q, nil
	}
	if errors.Is(err, ErrQuizNotFound) {
		return Quiz{}, fmt.Errorf("%w: id=%d", ErrQuizNotFound, id)
	}
	return Quiz{}, &StoreError{Op: "find", Notice: "Error loading quiz: " + err.Error(), Err: err}
}

// List counts the quizzes matching search, paginates over that count and
// fetches the requested page with the same filter.
func (s *Service) List(ctx context.Context, search string, pageNo int, baseURL string) (Listing, error) {
	filter := SearchFilter(search)

	count, err := s.store.Count(ctx, filter)
	if err != nil {
		return Listing{}, &StoreError{Op: "count", Notice: "Error listing quizzes: " + err.Error(), Err: err}
	}

	page := pagination.Paginate(count, s.pageSize, pageNo, baseURL)
	quizzes, err := s.store.FindAll(ctx, filter, page.Offset, page.ItemsPerPage)
	if err != nil {
		return Listing{}, &StoreError{Op: "list", Notice: "Error listing quizzes: " + err.Error(), Err: err}
	}

	return Listing{
		Quizzes:    quizzes,
		Pagination: page,
		Search:     search,
	}, nil
}

// Create persists a new quiz built from question and answer only. On a
// validation failure the unsaved quiz is returned for re-display.
func (s *Service) Create(ctx context.Context, question, answer string) (Quiz, []Notice, error) {
	now := s.now()
	draft := Quiz{
		Question:  question,
		Answer:    answer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var verr *ValidationError
	if err := validate(draft); errors.As(err, &verr) {
		return draft, formErrorNotices(verr), err
	}

	created, err := s.store.Create(ctx, draft)
	if err != nil {
		notice := "Error creating quiz: " + err.Error()
		return draft, []Notice{{Kind: NoticeError, Message: notice}}, &StoreError{Op: "create", Notice: notice, Err: err}
	}
	return created, []Notice{{Kind: NoticeSuccess, Message: "Quiz created successfully."}}, nil
}

// Update overwrites the question and answer of an existing quiz.
func (s *Service) Update(ctx context.Context, q Quiz, question, answer string) (Quiz, []Notice, error) {
	q.Question = question
	q.Answer = answer
	q.UpdatedAt = s.now()

	var verr *ValidationError
	if err := validate(q); errors.As(err, &verr) {
		return q, formErrorNotices(verr), err
	}

	updated, err := s.store.Update(ctx, q)
	if err != nil {
		notice := "Error editing quiz: " + err.Error()
		return q, []Notice{{Kind: NoticeError, Message: notice}}, &StoreError{Op: "update", Notice: notice, Err: err}
	}
	return updated, []Notice{{Kind: NoticeSuccess, Message: "Quiz edited successfully."}}, nil
}

func (s *Service) Destroy(ctx context.Context, q Quiz) ([]Notice, error) {
	if err := s.store.Delete(ctx, q.ID); err != nil {
		notice := "Error deleting quiz: " + err.Error()
		return []Notice{{Kind: NoticeError, Message: notice}}, &StoreError{Op: "delete", Notice: notice, Err: err}
	}
	return []Notice{{Kind: NoticeSuccess, Message: "Quiz deleted successfully."}}, nil
}

type PlayView struct {
	Quiz   Quiz
	Answer string
}

// Play presents a quiz with the answer submitted last time, if any.
func (s *Service) Play(q Quiz, answer string) PlayView {
	return PlayView{Quiz: q, Answer: answer}
}

// Check compares a submitted answer against the quiz.
func (s *Service) Check(q Quiz, submitted string) CheckResult {
	result, normalized := CheckAnswer(q, submitted)
	return CheckResult{
		Quiz:   q,
		Result: result,
		Answer: normalized,
	}
}

// Import creates one quiz per draft. Drafts that fail validation are skipped;
// a store failure stops the import.
func (s *Service) Import(ctx context.Context, drafts []Draft) (ImportReport, error) {
	var report ImportReport
	for _, draft := range drafts {
		_, _, err := s.Create(ctx, strings.TrimSpace(draft.Question), strings.TrimSpace(draft.Answer))
		var verr *ValidationError
		switch {
		case err == nil:
			report.Imported++
		case errors.As(err, &verr):
			report.Skipped++
		default:
			return report, err
		}
	}
	return report, nil
}

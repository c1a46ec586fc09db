// Package randomplay drives a per-session walk over every quiz in shuffled
// order, scoring consecutive correct answers.
package randomplay

import (
	"context"
	"errors"

	"quiz-web/internal/quiz"
)

// QuizSource is the part of the quiz store the engine reads.
type QuizSource interface {
	FindAll(ctx context.Context, filter quiz.Filter, offset, limit int) ([]quiz.Quiz, error)
	FindByID(ctx context.Context, id int64) (quiz.Quiz, error)
}

type Engine struct {
	quizzes  QuizSource
	shuffler Shuffler
}

func NewEngine(quizzes QuizSource, shuffler Shuffler) *Engine {
	return &Engine{
		quizzes:  quizzes,
		shuffler: shuffler,
	}
}

// Step is what a play request presents. Done steps carry the final score and
// no quiz.
type Step struct {
	Phase Phase
	Quiz  quiz.Quiz
	Score int
	Done  bool
}

type CheckStep struct {
	Result bool
	Score  int
	Answer string
}

// Next advances the session by one quiz, reshuffling first when the session
// is fresh and ending it when the sequence is used up.
//
// An empty store ends the session immediately with score 0.
func (e *Engine) Next(ctx context.Context, state *State) (Step, error) {
	switch state.Phase() {
	case PhaseFresh:
		return e.start(ctx, state)
	case PhaseInProgress:
		state.Position++
		next, err := e.quizzes.FindByID(ctx, state.IDs[state.Position])
		if err != nil {
			return Step{}, findError(err)
		}
		return Step{Phase: PhaseInProgress, Quiz: next, Score: state.CurrentScore()}, nil
	default:
		final := state.CurrentScore()
		state.Score = nil
		return Step{Phase: PhaseExhausted, Score: final, Done: true}, nil
	}
}

func (e *Engine) start(ctx context.Context, state *State) (Step, error) {
	all, err := e.quizzes.FindAll(ctx, quiz.Filter{}, 0, 0)
	if err != nil {
		return Step{}, findError(err)
	}

	if len(all) == 0 {
		*state = State{}
		return Step{Phase: PhaseExhausted, Done: true}, nil
	}

	byID := make(map[int64]quiz.Quiz, len(all))
	ids := make([]int64, 0, len(all))
	for _, item := range all {
		byID[item.ID] = item
		ids = append(ids, item.ID)
	}
	e.shuffler.Shuffle(ids)

	state.IDs = ids
	state.Position = 0
	state.setScore(0)

	return Step{Phase: PhaseFresh, Quiz: byID[ids[0]], Score: 0}, nil
}

// Check scores an answer for q: a match adds one point, a miss resets the
// score to 0 so the next Next call starts over.
func (e *Engine) Check(state *State, q quiz.Quiz, answer string) (CheckStep, error) {
	if !state.Active() {
		return CheckStep{}, ErrNoActiveSession
	}

	result, _ := quiz.CheckAnswer(q, answer)
	if result {
		state.setScore(state.CurrentScore() + 1)
	} else {
		state.setScore(0)
	}

	return CheckStep{
		Result: result,
		Score:  state.CurrentScore(),
		Answer: answer,
	}, nil
}

// findError gives store failures the same notice quiz.Service uses for a
// failed lookup. A missing quiz passes through untouched.
func findError(err error) error {
	var serr *quiz.StoreError
	if errors.Is(err, quiz.ErrQuizNotFound) || errors.As(err, &serr) {
		return err
	}
	return &quiz.StoreError{Op: "find", Notice: "Error loading quiz: " + err.Error(), Err: err}
}

package httpapi

import (
	"quiz-web/internal/pagination"
	"quiz-web/internal/quiz"
)

type quizForm struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type indexResponse struct {
	Quizzes    []quiz.Quiz           `json:"quizzes"`
	Pagination pagination.Pagination `json:"pagination"`
	Search     string                `json:"search"`
	Notices    []quiz.Notice         `json:"notices,omitempty"`
}

type quizResponse struct {
	Quiz    quiz.Quiz     `json:"quiz"`
	Notices []quiz.Notice `json:"notices,omitempty"`
}

type formResponse struct {
	Quiz    quizForm      `json:"quiz"`
	QuizID  int64         `json:"quiz_id,omitempty"`
	Notices []quiz.Notice `json:"notices,omitempty"`
}

// questionView is what play pages show: the answer stays on the server until
// the player checks.
type questionView struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
}

func newQuestionView(q quiz.Quiz) questionView {
	return questionView{ID: q.ID, Question: q.Question}
}

type playResponse struct {
	Quiz    questionView  `json:"quiz"`
	Answer  string        `json:"answer"`
	Notices []quiz.Notice `json:"notices,omitempty"`
}

type checkResponse struct {
	Quiz    quiz.Quiz     `json:"quiz"`
	Result  bool          `json:"result"`
	Answer  string        `json:"answer"`
	Score   *int          `json:"score"`
	Notices []quiz.Notice `json:"notices,omitempty"`
}

type randomPlayResponse struct {
	Quiz    questionView  `json:"quiz"`
	Score   int           `json:"score"`
	Notices []quiz.Notice `json:"notices,omitempty"`
}

type randomNoMoreResponse struct {
	Score   int           `json:"score"`
	NoMore  bool          `json:"no_more"`
	Restart string        `json:"restart"`
	Notices []quiz.Notice `json:"notices,omitempty"`
}

type randomResultResponse struct {
	Quiz   quiz.Quiz `json:"quiz"`
	Result bool      `json:"result"`
	Score  int       `json:"score"`
	Answer string    `json:"answer"`
}

type pageResponse struct {
	Title   string        `json:"title"`
	Body    string        `json:"body"`
	Links   []string      `json:"links,omitempty"`
	Notices []quiz.Notice `json:"notices,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

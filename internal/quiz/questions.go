package quiz

import (
	"html"
	"regexp"
	"strings"

	"quiz-web/internal/opentdb"
)

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a one-shot, human-readable message for the next rendered view.
type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Draft is an unsaved question/answer pair.
type Draft struct {
	Question string
	Answer   string
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeAnswer lower-cases and trims an answer. No other folding is applied,
// so punctuation still matters.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// CheckAnswer reports whether submitted matches the stored answer after
// normalizing both, and returns the normalized submission.
func CheckAnswer(q Quiz, submitted string) (bool, string) {
	normalized := NormalizeAnswer(submitted)
	return normalized == NormalizeAnswer(q.Answer), normalized
}

// likeEscaper makes user text literal inside a LIKE pattern that declares
// ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SearchFilter turns free text into a question filter: every whitespace run
// becomes a single wildcard and the whole term is wrapped in wildcards.
// Wildcard characters typed by the user match themselves.
func SearchFilter(search string) Filter {
	search = strings.TrimSpace(search)
	if search == "" {
		return Filter{}
	}
	return Filter{QuestionLike: "%" + whitespaceRun.ReplaceAllString(likeEscaper.Replace(search), "%") + "%"}
}

// DraftsFromTrivia keeps the prompt and the correct answer of each trivia
// question, with HTML entities decoded.
func DraftsFromTrivia(raw []opentdb.RawQuestion) []Draft {
	drafts := make([]Draft, 0, len(raw))
	for _, item := range raw {
		drafts = append(drafts, Draft{
			Question: html.UnescapeString(item.Question),
			Answer:   html.UnescapeString(item.CorrectAnswer),
		})
	}
	return drafts
}

func validate(q Quiz) error {
	var fields []FieldError
	if strings.TrimSpace(q.Question) == "" {
		fields = append(fields, FieldError{Field: "question", Message: "Missing question"})
	}
	if strings.TrimSpace(q.Answer) == "" {
		fields = append(fields, FieldError{Field: "answer", Message: "Missing answer"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func formErrorNotices(verr *ValidationError) []Notice {
	notices := make([]Notice, 0, len(verr.Fields)+1)
	notices = append(notices, Notice{Kind: NoticeError, Message: "Form errors:"})
	for _, field := range verr.Fields {
		notices = append(notices, Notice{Kind: NoticeError, Message: field.Message})
	}
	return notices
}

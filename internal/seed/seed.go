// Package seed fills the quiz store with OpenTriviaDB questions.
package seed

import (
	"context"
	"fmt"

	"quiz-web/internal/opentdb"
	"quiz-web/internal/quiz"
)

// Fetcher is satisfied by *opentdb.Client.
type Fetcher interface {
	FetchQuestions(ctx context.Context, amount int) ([]opentdb.RawQuestion, error)
}

// Importer is satisfied by *quiz.Service.
type Importer interface {
	Import(ctx context.Context, drafts []quiz.Draft) (quiz.ImportReport, error)
}

// Run fetches amount trivia questions and stores each as a question/answer
// quiz.
func Run(ctx context.Context, fetcher Fetcher, importer Importer, amount int) (quiz.ImportReport, error) {
	raw, err := fetcher.FetchQuestions(ctx, amount)
	if err != nil {
		return quiz.ImportReport{}, fmt.Errorf("fetch trivia: %w", err)
	}

	report, err := importer.Import(ctx, quiz.DraftsFromTrivia(raw))
	if err != nil {
		return report, fmt.Errorf("import trivia: %w", err)
	}
	return report, nil
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"quiz-web/internal/quiz"
	"quiz-web/internal/randomplay"
)

type fakeSource struct {
	quizzes []quiz.Quiz
}

func (f *fakeSource) FindAll(context.Context, quiz.Filter, int, int) ([]quiz.Quiz, error) {
	return append([]quiz.Quiz(nil), f.quizzes...), nil
}

func (f *fakeSource) FindByID(_ context.Context, id int64) (quiz.Quiz, error) {
	for _, item := range f.quizzes {
		if item.ID == id {
			return item, nil
		}
	}
	return quiz.Quiz{}, quiz.ErrQuizNotFound
}

func newEngine(quizzes ...quiz.Quiz) *randomplay.Engine {
	// Keep store order so the transcript is predictable.
	keep := randomplay.ShufflerFunc(func([]int64) {})
	return randomplay.NewEngine(&fakeSource{quizzes: quizzes}, keep)
}

var capitals = []quiz.Quiz{
	{ID: 1, Question: "Capital of Italy?", Answer: "Rome"},
	{ID: 2, Question: "Capital of Spain?", Answer: "Madrid"},
}

func TestRunPlaysUntilExhausted(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("rome\n  MADRID \nn\n")

	if err := Run(context.Background(), newEngine(capitals...), in, &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	transcript := out.String()
	for _, want := range []string{
		"Q1/2 (score 0): Capital of Italy?",
		"Correct! Score: 1",
		"Q2/2 (score 1): Capital of Spain?",
		"Correct! Score: 2",
		"No more quizzes. Final score: 2/2",
		"Play again? [y/n]: ",
	} {
		if !strings.Contains(transcript, want) {
			t.Fatalf("transcript missing %q:\n%s", want, transcript)
		}
	}
}

func TestRunWrongAnswerOffersRestart(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("paris\ny\nrome\n")

	if err := Run(context.Background(), newEngine(capitals...), in, &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	transcript := out.String()
	if !strings.Contains(transcript, "Wrong. Correct answer was Rome") {
		t.Fatalf("expected wrong-answer message:\n%s", transcript)
	}
	if strings.Count(transcript, "Q1/2 (score 0): Capital of Italy?") != 2 {
		t.Fatalf("expected the session to restart from the first quiz:\n%s", transcript)
	}
	if !strings.Contains(transcript, "Correct! Score: 1") {
		t.Fatalf("expected a correct answer after restart:\n%s", transcript)
	}
	if !strings.HasSuffix(strings.TrimSpace(transcript), "Final score: 1") {
		t.Fatalf("expected the run to end at end of input:\n%s", transcript)
	}
}

func TestRunEmptyStore(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), newEngine(), strings.NewReader(""), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "No quizzes available") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestGetAnswerRetriesBlankLines(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("\n   \nrome\n"))

	answer, ok := getAnswer(reader, &out)
	if !ok || answer != "rome" {
		t.Fatalf("getAnswer = (%q, %v), want (rome, true)", answer, ok)
	}

	reader = bufio.NewReader(strings.NewReader("\n\n\nrome\n"))
	if _, ok := getAnswer(reader, &out); ok {
		t.Fatalf("expected getAnswer to give up after %d blank lines", maxAttempts)
	}
}

func TestPromptYesNo(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("maybe\nYES\n"))

	got, err := promptYesNo(reader, &out, "? ")
	if err != nil || !got {
		t.Fatalf("promptYesNo = (%v, %v), want (true, nil)", got, err)
	}
	if !strings.Contains(out.String(), "Please answer yes or no.") {
		t.Fatalf("expected a retry message, got %q", out.String())
	}

	if _, err := promptYesNo(bufio.NewReader(strings.NewReader("")), &out, "? "); err != io.EOF {
		t.Fatalf("expected io.EOF on empty input, got %v", err)
	}
}

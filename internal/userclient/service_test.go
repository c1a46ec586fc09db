package userclient

import (
	"bufio"
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quiz-web/internal/httpapi"
	"quiz-web/internal/quiz"
	"quiz-web/internal/quiz/sqlstore"
	"quiz-web/internal/randomplay"
	"quiz-web/internal/session"
)

func newQuizServer(t *testing.T, pairs ...string) *httptest.Server {
	t.Helper()

	store, err := sqlstore.Open(context.Background(), sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "quizzes.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	for idx := 0; idx+1 < len(pairs); idx += 2 {
		if _, err := store.Create(context.Background(), quiz.Quiz{Question: pairs[idx], Answer: pairs[idx+1]}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	keepOrder := randomplay.ShufflerFunc(func([]int64) {})
	api := httpapi.NewAPI(
		quiz.NewService(store, 10),
		randomplay.NewEngine(store, keepOrder),
		session.NewManager(session.NewMemoryStore(time.Hour), "test-secret", time.Hour),
	)
	server := httptest.NewServer(httpapi.NewRouter(api, httpapi.RouterOptions{}))
	t.Cleanup(server.Close)
	return server
}

func TestRunListsAndPlaysRemotely(t *testing.T) {
	server := newQuizServer(t, "Capital of Italy?", "Rome", "Capital of Spain?", "Madrid")

	in := strings.NewReader("quizzes\nquizzes spain\nplay\nrome\nmadrid\nexit\n")
	var out bytes.Buffer
	if err := Run(context.Background(), in, &out, Config{ServerURL: server.URL}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	transcript := out.String()
	for _, want := range []string{
		"   1  Capital of Italy?",
		"page 1/1, 2 quizzes",
		"page 1/1, 1 quizzes",
		"(score 0) Capital of Italy?",
		"Correct! Score: 1",
		"(score 1) Capital of Spain?",
		"Correct! Score: 2",
		"No more quizzes. Final score: 2",
	} {
		if !strings.Contains(transcript, want) {
			t.Fatalf("transcript missing %q:\n%s", want, transcript)
		}
	}
}

func TestRunPlayStopsOnWrongAnswer(t *testing.T) {
	server := newQuizServer(t, "Capital of Italy?", "Rome")

	in := strings.NewReader("play\nmilan\n")
	var out bytes.Buffer
	if err := Run(context.Background(), in, &out, Config{ServerURL: server.URL}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Wrong. Correct answer was Rome") {
		t.Fatalf("expected wrong-answer message:\n%s", out.String())
	}
}

func TestRunReportsUnavailableServer(t *testing.T) {
	in := strings.NewReader("quizzes\nexit\n")
	var out bytes.Buffer
	err := Run(context.Background(), in, &out, Config{ServerURL: "http://127.0.0.1:1", HTTPTimeout: time.Second})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "quiz service unavailable at http://127.0.0.1:1") {
		t.Fatalf("expected unavailable message:\n%s", out.String())
	}
}

func TestParseListArgs(t *testing.T) {
	cases := []struct {
		args   []string
		page   int
		search string
		err    bool
	}{
		{args: nil, page: 1},
		{args: []string{"3"}, page: 3},
		{args: []string{"2", "capital", "of"}, page: 2, search: "capital of"},
		{args: []string{"capital", "2"}, page: 1, search: "capital 2"},
		{args: []string{"0"}, err: true},
	}
	for _, tc := range cases {
		page, search, err := parseListArgs(tc.args)
		if tc.err {
			if err == nil {
				t.Fatalf("parseListArgs(%v): expected error", tc.args)
			}
			continue
		}
		if err != nil || page != tc.page || search != tc.search {
			t.Fatalf("parseListArgs(%v) = (%d, %q, %v)", tc.args, page, search, err)
		}
	}
}

func TestPromptAnswer(t *testing.T) {
	var out bytes.Buffer
	answer, ok := promptAnswer(bufio.NewReader(strings.NewReader("  Rome \n")), &out)
	if !ok || answer != "Rome" {
		t.Fatalf("promptAnswer = (%q, %v)", answer, ok)
	}
	if _, ok := promptAnswer(bufio.NewReader(strings.NewReader("")), &out); ok {
		t.Fatalf("expected end of input to stop")
	}
}

// Package userclient is an interactive terminal client for a running
// quiz-service.
package userclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultServer      = "http://127.0.0.1:8080"
	defaultHTTPTimeout = 5 * time.Second
)

type Config struct {
	ServerURL   string
	HTTPTimeout time.Duration
}

func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		serverURL = defaultServer
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := NewHTTPClient(serverURL, &http.Client{Timeout: timeout})
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "quiz-client\nserver=%s\n\n", serverURL)
	printHelp(out)

	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		command := strings.ToLower(args[0])

		switch command {
		case "help":
			printHelp(out)
		case "exit":
			return nil
		case "quizzes":
			page, search, parseErr := parseListArgs(args[1:])
			if parseErr != nil {
				fmt.Fprintf(out, "invalid page: %v\n", parseErr)
				continue
			}
			if err := runList(ctx, out, client, search, page, serverURL); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "play":
			if err := runPlay(ctx, reader, out, client, serverURL); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		default:
			fmt.Fprintln(out, "unknown command. type 'help' for usage.")
		}
	}
}

func runList(ctx context.Context, out io.Writer, client *HTTPClient, search string, page int, serverURL string) error {
	listing, err := client.ListQuizzes(ctx, search, page)
	if err != nil {
		return describeClientError(err, serverURL)
	}

	if len(listing.Quizzes) == 0 {
		fmt.Fprintln(out, "No quizzes.")
		return nil
	}

	for _, item := range listing.Quizzes {
		fmt.Fprintf(out, "%4d  %s\n", item.ID, item.Question)
	}
	fmt.Fprintf(out, "page %d/%d, %d quizzes\n", listing.Pagination.PageNo, listing.Pagination.TotalPages, listing.Pagination.Count)
	return nil
}

// runPlay continues the server-side random-play session until the player
// misses, the quizzes run out or input ends.
func runPlay(ctx context.Context, reader *bufio.Reader, out io.Writer, client *HTTPClient, serverURL string) error {
	for {
		step, err := client.RandomPlay(ctx)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
				fmt.Fprintln(out, "A quiz was removed, skipping it.")
				continue
			}
			return describeClientError(err, serverURL)
		}

		if step.NoMore {
			fmt.Fprintf(out, "No more quizzes. Final score: %d\n", step.Score)
			return nil
		}

		fmt.Fprintf(out, "\n(score %d) %s\n", step.Score, step.Quiz.Question)
		answer, ok := promptAnswer(reader, out)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		result, err := client.RandomCheck(ctx, step.Quiz.ID, answer)
		if err != nil {
			return describeClientError(err, serverURL)
		}
		if result.Result {
			fmt.Fprintf(out, "Correct! Score: %d\n", result.Score)
			continue
		}

		fmt.Fprintf(out, "Wrong. Correct answer was %s\n", result.Quiz.Answer)
		fmt.Fprintf(out, "Final score: %d\n", step.Score)
		return nil
	}
}

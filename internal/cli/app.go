// Package cli plays random-play sessions in the terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"quiz-web/internal/quiz"
	"quiz-web/internal/randomplay"
)

const maxAttempts = 3

// Run walks every quiz in random order until the player misses an answer or
// the quizzes run out, then offers another round.
func Run(ctx context.Context, engine *randomplay.Engine, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	var state randomplay.State

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		step, err := engine.Next(ctx, &state)
		if err != nil {
			if errors.Is(err, quiz.ErrQuizNotFound) {
				// Deleted while playing; its position is already consumed.
				continue
			}
			return err
		}

		if step.Done {
			if len(state.IDs) == 0 {
				fmt.Fprintln(out, "No quizzes available. Add some first.")
				return nil
			}
			fmt.Fprintf(out, "\nNo more quizzes. Final score: %d/%d\n", step.Score, len(state.IDs))
			if !playAgain(reader, out) {
				return nil
			}
			continue
		}

		printQuiz(out, state.Position+1, len(state.IDs), step)

		answer, ok := getAnswer(reader, out)
		if !ok {
			fmt.Fprintf(out, "\nFinal score: %d\n", step.Score)
			return nil
		}

		check, err := engine.Check(&state, step.Quiz, answer)
		if err != nil {
			return err
		}
		if check.Result {
			fmt.Fprintf(out, "Correct! Score: %d\n", check.Score)
			continue
		}

		fmt.Fprintf(out, "Wrong. Correct answer was %s\n", step.Quiz.Answer)
		fmt.Fprintf(out, "Final score: %d\n", step.Score)
		if !playAgain(reader, out) {
			return nil
		}
	}
}

func printQuiz(out io.Writer, number, total int, step randomplay.Step) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d/%d (score %d): %s\n", number, total, step.Score, step.Quiz.Question)
	fmt.Fprint(out, "> ")
}

// getAnswer reads one non-blank line. Blank lines are retried a few times;
// end of input gives up.
func getAnswer(reader *bufio.Reader, out io.Writer) (string, bool) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		line, err := reader.ReadString('\n')
		if answer := strings.TrimSpace(line); answer != "" {
			return answer, true
		}
		if err != nil {
			return "", false
		}

		if attempt < maxAttempts {
			fmt.Fprint(out, "Please type an answer.\n> ")
		}
	}
	return "", false
}

func playAgain(reader *bufio.Reader, out io.Writer) bool {
	again, err := promptYesNo(reader, out, "Play again? [y/n]: ")
	return err == nil && again
}

func promptYesNo(reader *bufio.Reader, out io.Writer, prompt string) (bool, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, "Please answer yes or no.")
	}
}

package userclient

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func promptAnswer(reader *bufio.Reader, out io.Writer) (string, bool) {
	fmt.Fprint(out, "Your answer: ")

	line, err := reader.ReadString('\n')
	answer := strings.TrimSpace(line)
	if answer == "" && err != nil {
		return "", false
	}
	return answer, true
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  help")
	fmt.Fprintln(out, "  quizzes [page] [search words]")
	fmt.Fprintln(out, "  play")
	fmt.Fprintln(out, "  exit")
}

// parseListArgs reads an optional leading page number; everything else is
// the search text.
func parseListArgs(args []string) (int, string, error) {
	if len(args) == 0 {
		return 1, "", nil
	}

	page, err := strconv.Atoi(args[0])
	if err != nil {
		return 1, strings.Join(args, " "), nil
	}
	if page <= 0 {
		return 0, "", errors.New("must be a positive integer")
	}
	return page, strings.Join(args[1:], " "), nil
}

func describeClientError(err error, serverURL string) error {
	if errors.Is(err, ErrServiceUnavailable) {
		return fmt.Errorf("quiz service unavailable at %s", serverURL)
	}
	return err
}

package adminclient

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/navalnorth/back-chillz/internal/quiz"
)

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  login <username> <password>  authenticate against the server")
	fmt.Fprintln(out, "  quizzes                      list every quiz")
	fmt.Fprintln(out, "  available                    list quizzes with dispo=1")
	fmt.Fprintln(out, "  dispo <quiz_id> <0|1>        toggle a quiz's availability")
	fmt.Fprintln(out, "  check <username>             list quizzes the user has not answered")
	fmt.Fprintln(out, "  help                         show this help")
	fmt.Fprintln(out, "  exit                         quit")
}

func printQuizzes(out io.Writer, quizzes []quiz.Quiz) {
	if len(quizzes) == 0 {
		fmt.Fprintln(out, "No quizzes.")
		return
	}
	for _, q := range quizzes {
		fmt.Fprintf(out, "%d. %s (theme=%s, dispo=%d)\n", q.ID, q.Name, q.Theme, q.Dispo)
	}
}

func parseDispoArgs(rawID, rawDispo string) (int64, int, error) {
	quizID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || quizID <= 0 {
		return 0, 0, errors.New("quiz_id must be a positive integer")
	}

	dispo, err := strconv.Atoi(rawDispo)
	if err != nil || (dispo != 0 && dispo != 1) {
		return 0, 0, errors.New("dispo must be 0 or 1")
	}

	return quizID, dispo, nil
}

package adminclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fatih/color"
)

const (
	defaultServer      = "http://127.0.0.1:8080"
	defaultHTTPTimeout = 5 * time.Second
)

type Config struct {
	ServerURL   string
	HTTPTimeout time.Duration
}

// Run drives the interactive admin console until EOF or "exit".
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

	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed)

	fmt.Fprintf(out, "chillz admin console\nserver=%s\n\n", serverURL)
	printHelp(out)

	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
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
		case "login":
			if len(args) != 3 {
				fmt.Fprintln(out, "usage: login <username> <password>")
				continue
			}
			if err := client.Login(ctx, args[1], args[2]); err != nil {
				failure.Fprintf(out, "login failed: %v\n", err)
				continue
			}
			success.Fprintf(out, "logged in as %s\n", args[1])
		case "quizzes":
			quizzes, err := client.ListQuizzes(ctx)
			if err != nil {
				failure.Fprintf(out, "error: %v\n", err)
				continue
			}
			printQuizzes(out, quizzes)
		case "available":
			quizzes, err := client.ListAvailable(ctx)
			if err != nil {
				var apiErr *APIError
				if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
					fmt.Fprintln(out, "No available quizzes.")
					continue
				}
				failure.Fprintf(out, "error: %v\n", err)
				continue
			}
			printQuizzes(out, quizzes)
		case "dispo":
			if len(args) != 3 {
				fmt.Fprintln(out, "usage: dispo <quiz_id> <0|1>")
				continue
			}
			quizID, dispo, parseErr := parseDispoArgs(args[1], args[2])
			if parseErr != nil {
				fmt.Fprintf(out, "invalid arguments: %v\n", parseErr)
				continue
			}
			if err := client.SetAvailability(ctx, quizID, dispo); err != nil {
				failure.Fprintf(out, "error: %v\n", err)
				continue
			}
			success.Fprintf(out, "quiz %d dispo set to %d\n", quizID, dispo)
		case "check":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: check <username>")
				continue
			}
			quizzes, message, err := client.CheckUser(ctx, args[1])
			if err != nil {
				failure.Fprintf(out, "error: %v\n", err)
				continue
			}
			if message != "" {
				fmt.Fprintln(out, message)
				continue
			}
			fmt.Fprintf(out, "Unanswered quizzes for %s:\n", args[1])
			printQuizzes(out, quizzes)
		default:
			fmt.Fprintln(out, "unknown command. type 'help' for usage.")
		}
	}
}

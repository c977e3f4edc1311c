package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/navalnorth/back-chillz/internal/adminclient"
)

func main() {
	defaultServer := os.Getenv("CHILLZ_SERVER")
	if defaultServer == "" {
		defaultServer = "http://127.0.0.1:8080"
	}

	server := flag.String("server", defaultServer, "base URL of the chillz server")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP request timeout")
	flag.Parse()

	err := adminclient.Run(context.Background(), os.Stdin, os.Stdout, adminclient.Config{
		ServerURL:   *server,
		HTTPTimeout: *timeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/navalnorth/back-chillz/internal/auth"
	"github.com/navalnorth/back-chillz/internal/config"
	"github.com/navalnorth/back-chillz/internal/history"
	"github.com/navalnorth/back-chillz/internal/httpapi"
	"github.com/navalnorth/back-chillz/internal/movies"
	"github.com/navalnorth/back-chillz/internal/quiz"
	"github.com/navalnorth/back-chillz/internal/storage/sqlite"
	"github.com/navalnorth/back-chillz/internal/user"
)

func main() {
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	dbPath := flag.String("db", cfg.DBPath, "path to the SQLite database file")
	flag.Parse()

	log := setupLogger()
	slog.SetDefault(log)

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Error("opening database failed", "path", *dbPath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	userService := user.NewService(store, tokens, auth.HashPassword, auth.CheckPassword)
	quizService := quiz.NewService(store, store, store)
	historyService := history.NewService(store)
	movieClient := movies.NewClient(cfg.RapidAPIKey, cfg.RapidAPIHost, nil)

	api := httpapi.NewAPI(userService, quizService, historyService, movieClient, log)

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(api, tokens, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("chillz-server listening", "addr", *addr, "db", *dbPath)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func setupLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

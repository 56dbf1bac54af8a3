package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/hy461283-sudo/pulseX/internal/app"
	"github.com/hy461283-sudo/pulseX/internal/config"
	"github.com/hy461283-sudo/pulseX/internal/domain"
	"github.com/hy461283-sudo/pulseX/internal/feed"
	"github.com/hy461283-sudo/pulseX/internal/logging"
	"github.com/hy461283-sudo/pulseX/internal/sentiment"
	"github.com/hy461283-sudo/pulseX/internal/server"
	"github.com/hy461283-sudo/pulseX/internal/twitter"
	"github.com/hy461283-sudo/pulseX/internal/version"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupScorer(cfg *config.Config) domain.Scorer {
	lexicon, err := sentiment.LoadLexiconFile(cfg.LexiconFile)
	if err != nil {
		if errors.Is(err, domain.ErrLexiconMissing) {
			slog.Error("Sentiment lexicon not found, run the fetch-lexicon command first",
				"path", cfg.LexiconFile)
		} else {
			slog.Error("Failed to load sentiment lexicon", "path", cfg.LexiconFile, "error", err)
		}
		os.Exit(1)
	}

	analyzer := sentiment.NewAnalyzer(lexicon)
	slog.Info("Sentiment lexicon loaded", "path", cfg.LexiconFile, "entries", analyzer.LexiconSize())
	return analyzer
}

// setupDataset loads the cached tweet file. A missing or empty file is
// not fatal: the dashboard starts degraded and the UI tells the user
// how to generate data.
func setupDataset(cfg *config.Config) domain.Dataset {
	policy := feed.PolicyAbort
	if cfg.MalformedPolicy == "skip" {
		policy = feed.PolicySkip
	}

	result, err := feed.Load(cfg.TweetsFile, policy)
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			slog.Warn("No tweet data available, run the generate-sample command to create it",
				"path", cfg.TweetsFile)
			return nil
		}
		slog.Error("Failed to load tweet data", "path", cfg.TweetsFile, "error", err)
		os.Exit(1)
	}

	slog.Info("Tweet data loaded",
		"path", cfg.TweetsFile,
		"tweets", len(result.Dataset),
		"lines", result.Lines,
		"skipped", result.Skipped)
	return result.Dataset
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "build", version.Get().String())

	scorer := setupScorer(cfg)
	dataset := setupDataset(cfg)

	// Live search is optional. Without a bearer token the dashboard
	// serves cached data only.
	var live domain.TweetSource
	if cfg.TwitterBearerToken != "" {
		live = twitter.NewClient(cfg.TwitterBearerToken)
		slog.Info("Live search enabled", "max_results", cfg.SearchMaxResults)
	} else {
		slog.Info("Live search disabled, no bearer token configured")
	}

	appSvc := app.NewService(dataset, scorer, live, cfg.SearchMaxResults, clock)

	srv, err := server.NewServer(cfg, appSvc, clock)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

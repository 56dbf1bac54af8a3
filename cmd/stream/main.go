package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hy461283-sudo/pulseX/internal/config"
	"github.com/hy461283-sudo/pulseX/internal/domain"
	"github.com/hy461283-sudo/pulseX/internal/feed"
	"github.com/hy461283-sudo/pulseX/internal/logging"
	"github.com/hy461283-sudo/pulseX/internal/twitter"
)

func main() {
	var (
		keyword = flag.String("keyword", "", "Stream rule, e.g. \"#google lang:en\" (required)")
		out     = flag.String("out", "tweets.json", "Output file (line-delimited JSON)")
		max     = flag.Int("max", 0, "Stop after this many tweets (0 = config default)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if *keyword == "" {
		log.Fatal("A stream keyword is required (--keyword)")
	}
	if cfg.TwitterBearerToken == "" {
		log.Fatal("TWITTER_BEARER_TOKEN is required for streaming")
	}

	limit := *max
	if limit <= 0 {
		limit = cfg.StreamMaxTweets
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := twitter.NewClient(cfg.TwitterBearerToken)

	rulesCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := client.ReplaceRules(rulesCtx, *keyword); err != nil {
		log.Fatalf("Failed to configure stream rules: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("Failed to close output file", "error", err)
		}
	}()

	slog.Info("Stream capture starting", "keyword", *keyword, "out", *out, "max", limit)

	count := 0
	err = client.Stream(ctx, func(t domain.Tweet) bool {
		if err := feed.WriteTweet(f, t); err != nil {
			slog.Error("Failed to write tweet", "error", err)
			return false
		}
		count++
		if count%100 == 0 {
			slog.Info("Capture progress", "tweets", count)
		}
		return count < limit
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.WithError(err).Error("Stream ended with error", "tweets", count)
		os.Exit(1)
	}

	slog.Info("Stream capture finished", "tweets", count, "out", *out)
}

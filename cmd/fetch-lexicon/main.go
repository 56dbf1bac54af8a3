package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hy461283-sudo/pulseX/internal/sentiment"
)

func main() {
	var (
		out   = flag.String("out", "vader_lexicon.txt", "Destination path for the lexicon file")
		url   = flag.String("url", sentiment.DefaultLexiconURL, "Lexicon download URL")
		force = flag.Bool("force", false, "Re-download even if the file already exists")
	)
	flag.Parse()

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	if *force {
		if err := os.Remove(*out); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove existing lexicon: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := &http.Client{Timeout: 30 * time.Second}
	fetched, err := sentiment.FetchLexicon(ctx, client, *url, *out)
	if err != nil {
		log.Fatalf("Failed to fetch lexicon: %v", err)
	}

	if fetched {
		slog.Info("Lexicon downloaded", "path", *out)
	} else {
		slog.Info("Lexicon already present, nothing to do", "path", *out)
	}
}

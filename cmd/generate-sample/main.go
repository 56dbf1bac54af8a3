package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hy461283-sudo/pulseX/internal/feed"
)

func main() {
	var (
		out  = flag.String("out", "tweets.json", "Output file (line-delimited JSON)")
		n    = flag.Int("n", feed.DefaultSampleSize, "Number of tweets to generate")
		seed = flag.Int64("seed", 0, "Random seed (0 = time-based)")
	)
	flag.Parse()

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	if *n <= 0 {
		log.Fatalf("Invalid sample size: %d", *n)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}

	written, err := feed.GenerateSample(f, *n, time.Now().UTC(), rng)
	if err != nil {
		_ = f.Close()
		log.Fatalf("Failed to generate sample data: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close output file: %v", err)
	}

	slog.Info("Sample data written", "path", *out, "tweets", written, "seed", s)
}

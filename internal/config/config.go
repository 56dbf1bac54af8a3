package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	TweetsFile  string `env:"TWEETS_FILE" default:"tweets.json"`
	LexiconFile string `env:"LEXICON_FILE" default:"vader_lexicon.txt"`

	// MalformedPolicy decides what happens when a line of the tweet file
	// fails to decode: "abort" fails the whole load, "skip" counts and
	// logs the bad lines.
	MalformedPolicy string `env:"MALFORMED_POLICY" default:"abort"`

	// TwitterBearerToken enables live search when set. Absence is not an
	// error; the dashboard falls back to the cached file.
	TwitterBearerToken string `env:"TWITTER_BEARER_TOKEN"`
	SearchMaxResults   int    `env:"SEARCH_MAX_RESULTS" default:"100"`

	StreamMaxTweets int `env:"STREAM_MAX_TWEETS" default:"20000"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.MalformedPolicy != "abort" && cfg.MalformedPolicy != "skip" {
		return fmt.Errorf("MALFORMED_POLICY must be \"abort\" or \"skip\", got %q", cfg.MalformedPolicy)
	}
	if cfg.SearchMaxResults < 1 || cfg.SearchMaxResults > 100 {
		return fmt.Errorf("SEARCH_MAX_RESULTS must be between 1 and 100, got %d", cfg.SearchMaxResults)
	}
	if cfg.StreamMaxTweets < 1 {
		return fmt.Errorf("STREAM_MAX_TWEETS must be positive, got %d", cfg.StreamMaxTweets)
	}
	return nil
}

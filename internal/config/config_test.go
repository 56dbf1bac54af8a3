package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "tweets.json", cfg.TweetsFile)
	assert.Equal(t, "vader_lexicon.txt", cfg.LexiconFile)
	assert.Equal(t, "abort", cfg.MalformedPolicy)
	assert.Equal(t, 100, cfg.SearchMaxResults)
	assert.Empty(t, cfg.TwitterBearerToken)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TWEETS_FILE", "/data/tweets.json")
	t.Setenv("MALFORMED_POLICY", "skip")
	t.Setenv("SEARCH_MAX_RESULTS", "25")
	t.Setenv("TWITTER_BEARER_TOKEN", "token-123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/tweets.json", cfg.TweetsFile)
	assert.Equal(t, "skip", cfg.MalformedPolicy)
	assert.Equal(t, 25, cfg.SearchMaxResults)
	assert.Equal(t, "token-123", cfg.TwitterBearerToken)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"bad malformed policy", "MALFORMED_POLICY", "ignore", "MALFORMED_POLICY"},
		{"search limit too high", "SEARCH_MAX_RESULTS", "500", "SEARCH_MAX_RESULTS"},
		{"search limit zero", "SEARCH_MAX_RESULTS", "0", "SEARCH_MAX_RESULTS"},
		{"stream cap zero", "STREAM_MAX_TWEETS", "0", "STREAM_MAX_TWEETS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

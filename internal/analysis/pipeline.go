package analysis

import (
	"log/slog"
	"strings"

	"github.com/hy461283-sudo/pulseX/internal/domain"
	"github.com/hy461283-sudo/pulseX/internal/metrics"
)

// FilterByKeyword returns the tweets whose text contains keyword,
// case-insensitively. An empty keyword matches everything. An empty
// result is a normal state, not an error.
func FilterByKeyword(ds domain.Dataset, keyword string) domain.Dataset {
	if keyword == "" {
		out := make(domain.Dataset, len(ds))
		copy(out, ds)
		return out
	}

	needle := strings.ToLower(keyword)
	out := make(domain.Dataset, 0, len(ds))
	for _, t := range ds {
		if strings.Contains(strings.ToLower(t.Text), needle) {
			out = append(out, t)
		}
	}
	return out
}

// Annotate returns a copy of ds with SentimentScore and SentimentLabel
// set on every tweet. After Annotate, the invariant holds that each
// record carries both derived fields.
func Annotate(ds domain.Dataset, scorer domain.Scorer) domain.Dataset {
	out := make(domain.Dataset, len(ds))
	for i, t := range ds {
		t.SentimentScore = safeScore(scorer, t.Text)
		t.SentimentLabel = domain.LabelFor(t.SentimentScore)
		out[i] = t
	}
	metrics.TweetsScoredTotal.Add(float64(len(ds)))
	return out
}

// safeScore shields the pipeline from a misbehaving scorer: a panic on
// unscorable text becomes the neutral score 0.0.
func safeScore(scorer domain.Scorer, text string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("Scorer panicked, defaulting to neutral", "panic", r)
			score = 0
		}
	}()
	return scorer.Score(text)
}

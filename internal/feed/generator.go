package feed

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/hy461283-sudo/pulseX/internal/domain"
)

// Sample generation shape: tweets spread over the 30 days before "now",
// the window the dashboard's widest period selector covers.
const (
	DefaultSampleSize = 1000
	sampleSpanDays    = 30
	sampleBaseID      = 1000000000000000000
)

var sampleKeywords = []string{"#google", "#apple"}

var sampleWords = map[string][]string{
	"positive": {"great", "awesome", "love", "excellent", "amazing", "fantastic", "wonderful", "brilliant"},
	"negative": {"bad", "terrible", "hate", "awful", "disappointing", "poor", "worst", "horrible"},
	"neutral":  {"okay", "fine", "normal", "average", "standard", "decent", "acceptable"},
}

var sampleMoods = []string{"positive", "negative", "neutral"}

// GenerateSample writes n synthetic tweets to w, one JSON object per
// line in the loader's wire format. Returns the number of lines
// written. Deterministic for a fixed rng seed and now value.
func GenerateSample(w io.Writer, n int, now time.Time, rng *rand.Rand) (int, error) {
	bw := bufio.NewWriter(w)
	base := now.AddDate(0, 0, -sampleSpanDays)

	written := 0
	for i := 0; i < n; i++ {
		keyword := sampleKeywords[rng.Intn(len(sampleKeywords))]
		mood := sampleMoods[rng.Intn(len(sampleMoods))]
		words := sampleWords[mood]
		word := words[rng.Intn(len(words))]

		text := fmt.Sprintf("This is a sample tweet about %s. It is %s! %s", keyword, word, keyword)
		createdAt := base.Add(time.Duration(rng.Intn(sampleSpanDays*24*60)) * time.Minute)

		userN := rng.Intn(100) + 1
		wire := wireTweet{
			ID:        sampleBaseID + int64(i),
			CreatedAt: createdAt.UTC().Format(domain.CreatedAtLayout),
			Text:      text,
			User: &wireUser{
				ID:         int64(rng.Intn(900000) + 100000),
				ScreenName: fmt.Sprintf("user%d", userN),
				Name:       fmt.Sprintf("Test User %d", userN),
			},
			RetweetCount:  rng.Intn(101),
			FavoriteCount: rng.Intn(201),
			Lang:          "en",
		}

		line, err := json.Marshal(wire)
		if err != nil {
			return written, fmt.Errorf("failed to marshal sample tweet: %w", err)
		}
		if _, err := bw.Write(line); err != nil {
			return written, fmt.Errorf("failed to write sample tweet: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return written, fmt.Errorf("failed to write sample tweet: %w", err)
		}
		written++
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("failed to flush sample data: %w", err)
	}
	return written, nil
}

// WriteTweet appends one tweet to w in the wire format. Used by the
// stream capture command.
func WriteTweet(w io.Writer, t domain.Tweet) error {
	wire := wireTweet{
		ID:            t.ID,
		Text:          t.Text,
		RetweetCount:  t.RetweetCount,
		FavoriteCount: t.FavoriteCount,
		Lang:          t.Lang,
	}
	if !t.CreatedAt.IsZero() {
		wire.CreatedAt = t.CreatedAt.UTC().Format(domain.CreatedAtLayout)
	}
	if t.AuthorID != 0 || t.AuthorHandle != "" {
		wire.User = &wireUser{ID: t.AuthorID, ScreenName: t.AuthorHandle, Name: t.AuthorName}
	}

	line, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("failed to marshal tweet: %w", err)
	}
	if _, err := w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write tweet: %w", err)
	}
	return nil
}

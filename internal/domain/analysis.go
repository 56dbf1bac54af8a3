package domain

import (
	"context"
	"time"
)

// Scorer maps a text to a compound polarity score in [-1,1].
// Implementations must be pure: the same text always yields the same score.
type Scorer interface {
	Score(text string) float64
}

// Bucket is one hour-aligned interval of the time series.
type Bucket struct {
	HourStart     time.Time `json:"hour_start"`
	Count         int       `json:"count"`
	MeanSentiment float64   `json:"mean_sentiment"`
}

// Source marks where the analyzed tweets came from.
type Source string

const (
	SourceCached Source = "cached"
	SourceLive   Source = "live"
)

// Analysis is the fully-materialized result of one pipeline run. The
// presentation layer always receives a complete Analysis, never a
// half-filtered one.
type Analysis struct {
	Keyword       string                 `json:"keyword"`
	WindowDays    int                    `json:"window_days"`
	Source        Source                 `json:"source"`
	Notice        string                 `json:"notice,omitempty"`
	Total         int                    `json:"total"`
	DatasetSize   int                    `json:"dataset_size"`
	MeanSentiment float64                `json:"mean_sentiment"`
	LabelCounts   map[SentimentLabel]int `json:"label_counts"`
	TotalRetweets int                    `json:"total_retweets"`
	TotalFavs     int                    `json:"total_favorites"`
	Hourly        []Bucket               `json:"hourly"`
	Top           []Tweet                `json:"top"`
}

// Empty reports whether the run matched no tweets at all. Callers use it
// together with DatasetSize to distinguish "no results for this keyword"
// from "no data loaded in the first place".
func (a Analysis) Empty() bool {
	return a.Total == 0
}

// TweetSource fetches live tweets matching a keyword. Implementations are
// synchronous and perform a single request per call; limit is capped at 100.
type TweetSource interface {
	Search(ctx context.Context, keyword string, since time.Time, limit int) (Dataset, error)
}

// AnalysisService is the application layer contract — handlers route all
// operations through here.
type AnalysisService interface {
	Analyze(ctx context.Context, keyword string, days int) (*Analysis, error)
	DatasetSize() int
	LiveConfigured() bool
}

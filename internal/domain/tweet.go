package domain

import "time"

// CreatedAtLayout is the classic Twitter timestamp layout used in the
// line-delimited tweet file ("Mon Jan 02 15:04:05 +0000 2006").
const CreatedAtLayout = "Mon Jan 02 15:04:05 -0700 2006"

// SentimentLabel is the three-way partition of the compound score axis.
type SentimentLabel string

const (
	LabelPositive SentimentLabel = "Positive"
	LabelNeutral  SentimentLabel = "Neutral"
	LabelNegative SentimentLabel = "Negative"
)

// Sentiment label thresholds over the compound score, boundaries inclusive
// on the Positive/Negative side.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// LabelFor maps a compound score in [-1,1] to its sentiment label.
// Exactly one label per score, no overlap, no gaps.
func LabelFor(score float64) SentimentLabel {
	switch {
	case score >= PositiveThreshold:
		return LabelPositive
	case score <= NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Tweet is one social-media post. CreatedAt's zero value is the
// unknown-time sentinel: the timestamp could not be parsed.
type Tweet struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Text          string    `json:"text"`
	AuthorID      int64     `json:"author_id"`
	AuthorHandle  string    `json:"author_handle"`
	AuthorName    string    `json:"author_name"`
	RetweetCount  int       `json:"retweet_count"`
	FavoriteCount int       `json:"favorite_count"`
	Lang          string    `json:"lang"`

	// Derived fields, set by the annotator before aggregation.
	SentimentScore float64        `json:"sentiment_score"`
	SentimentLabel SentimentLabel `json:"sentiment_label"`
}

// Engagement is the sum of the retweet and favorite counters.
func (t Tweet) Engagement() int {
	return t.RetweetCount + t.FavoriteCount
}

// Dataset is an ordered collection of tweets. Order is irrelevant to
// semantics except as the tie-breaker for top-K selection. Stages never
// mutate a Dataset in place; each filter/annotate step returns a new one.
type Dataset []Tweet

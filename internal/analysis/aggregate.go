package analysis

import (
	"sort"
	"time"

	"github.com/hy461283-sudo/pulseX/internal/domain"
)

// TopK is how many top-engagement tweets the dashboard shows.
const TopK = 5

// HourlyBuckets partitions ds by truncating CreatedAt to the hour (UTC)
// and emits count and mean sentiment per non-empty bucket, ascending by
// hour start. The representation is sparse: zero-count hours are never
// emitted; zero-filling for continuous axes is the presentation layer's
// concern. Tweets with the unknown-time sentinel are skipped.
func HourlyBuckets(ds domain.Dataset) []domain.Bucket {
	type acc struct {
		count int
		sum   float64
	}

	byHour := make(map[time.Time]*acc)
	for _, t := range ds {
		if t.CreatedAt.IsZero() {
			continue
		}
		hour := t.CreatedAt.UTC().Truncate(time.Hour)
		a := byHour[hour]
		if a == nil {
			a = &acc{}
			byHour[hour] = a
		}
		a.count++
		a.sum += t.SentimentScore
	}

	buckets := make([]domain.Bucket, 0, len(byHour))
	for hour, a := range byHour {
		buckets = append(buckets, domain.Bucket{
			HourStart:     hour,
			Count:         a.count,
			MeanSentiment: a.sum / float64(a.count),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].HourStart.Before(buckets[j].HourStart)
	})
	return buckets
}

// TopByEngagement returns the k tweets with highest engagement
// (retweets + favorites), descending, ties broken by original dataset
// order. When the dataset carries no engagement counters at all, it
// falls back to ranking by sentiment score descending.
func TopByEngagement(ds domain.Dataset, k int) domain.Dataset {
	if k <= 0 || len(ds) == 0 {
		return domain.Dataset{}
	}

	out := make(domain.Dataset, len(ds))
	copy(out, ds)

	if hasEngagement(ds) {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Engagement() > out[j].Engagement()
		})
	} else {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SentimentScore > out[j].SentimentScore
		})
	}

	if k < len(out) {
		out = out[:k]
	}
	return out
}

// hasEngagement reports whether any tweet carries a non-zero counter.
// An all-zero dataset is indistinguishable from one whose source never
// supplied the counters, so both take the sentiment fallback.
func hasEngagement(ds domain.Dataset) bool {
	for _, t := range ds {
		if t.RetweetCount > 0 || t.FavoriteCount > 0 {
			return true
		}
	}
	return false
}

// MeanSentiment is the arithmetic mean of the dataset's scores, 0 for
// an empty dataset.
func MeanSentiment(ds domain.Dataset) float64 {
	if len(ds) == 0 {
		return 0
	}
	var sum float64
	for _, t := range ds {
		sum += t.SentimentScore
	}
	return sum / float64(len(ds))
}

// LabelCounts tallies tweets per sentiment label.
func LabelCounts(ds domain.Dataset) map[domain.SentimentLabel]int {
	counts := map[domain.SentimentLabel]int{
		domain.LabelPositive: 0,
		domain.LabelNeutral:  0,
		domain.LabelNegative: 0,
	}
	for _, t := range ds {
		counts[t.SentimentLabel]++
	}
	return counts
}

// EngagementTotals sums the retweet and favorite counters.
func EngagementTotals(ds domain.Dataset) (retweets, favorites int) {
	for _, t := range ds {
		retweets += t.RetweetCount
		favorites += t.FavoriteCount
	}
	return retweets, favorites
}

package analysis

import (
	"testing"
	"time"

	"github.com/hy461283-sudo/pulseX/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyBuckets(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ds := domain.Dataset{
		{ID: 1, CreatedAt: base.Add(5 * time.Minute), SentimentScore: 0.5},
		{ID: 2, CreatedAt: base.Add(45 * time.Minute), SentimentScore: -0.5},
		{ID: 3, CreatedAt: base.Add(2 * time.Hour), SentimentScore: 0.3},
	}

	buckets := HourlyBuckets(ds)
	require.Len(t, buckets, 2)

	assert.Equal(t, base, buckets[0].HourStart)
	assert.Equal(t, 2, buckets[0].Count)
	assert.InDelta(t, 0.0, buckets[0].MeanSentiment, 1e-9)

	assert.Equal(t, base.Add(2*time.Hour), buckets[1].HourStart)
	assert.Equal(t, 1, buckets[1].Count)
	assert.InDelta(t, 0.3, buckets[1].MeanSentiment, 1e-9)
}

func TestHourlyBuckets_SparseAndComplete(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	ds := make(domain.Dataset, 0, 60)
	for i := 0; i < 60; i++ {
		// Cluster into a few hours with gaps between them.
		ds = append(ds, domain.Tweet{
			ID:        int64(i),
			CreatedAt: base.Add(time.Duration(i%5) * 3 * time.Hour).Add(time.Duration(i) * time.Minute),
		})
	}

	buckets := HourlyBuckets(ds)

	total := 0
	for i, b := range buckets {
		assert.Positive(t, b.Count, "no bucket may have count 0")
		total += b.Count
		if i > 0 {
			assert.True(t, buckets[i-1].HourStart.Before(b.HourStart), "buckets ascend by hour start")
		}
	}
	assert.Equal(t, len(ds), total, "bucket counts sum to the dataset size")
}

func TestHourlyBuckets_SkipsSentinel(t *testing.T) {
	ds := domain.Dataset{
		{ID: 1, CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 2}, // unknown time
	}

	buckets := HourlyBuckets(ds)
	require.Len(t, buckets, 1)
	assert.Equal(t, 1, buckets[0].Count)
}

func TestTopByEngagement(t *testing.T) {
	ds := domain.Dataset{
		{ID: 1, RetweetCount: 1, FavoriteCount: 1},
		{ID: 2, RetweetCount: 50, FavoriteCount: 50},
		{ID: 3, RetweetCount: 10, FavoriteCount: 0},
		{ID: 4, RetweetCount: 0, FavoriteCount: 70},
		{ID: 5, RetweetCount: 30, FavoriteCount: 30},
		{ID: 6, RetweetCount: 2, FavoriteCount: 2},
		{ID: 7, RetweetCount: 90, FavoriteCount: 30},
	}

	top := TopByEngagement(ds, TopK)
	require.Len(t, top, TopK)

	// Every returned engagement dominates every non-returned one.
	returned := make(map[int64]bool, len(top))
	minReturned := top[len(top)-1].Engagement()
	for _, tw := range top {
		returned[tw.ID] = true
	}
	for _, tw := range ds {
		if !returned[tw.ID] {
			assert.LessOrEqual(t, tw.Engagement(), minReturned)
		}
	}

	assert.Equal(t, int64(7), top[0].ID)
	assert.Equal(t, int64(2), top[1].ID)
}

func TestTopByEngagement_SmallerDataset(t *testing.T) {
	ds := domain.Dataset{
		{ID: 1, RetweetCount: 1},
		{ID: 2, RetweetCount: 2},
	}

	top := TopByEngagement(ds, TopK)
	assert.Len(t, top, 2, "result size is min(K, dataset size)")
}

func TestTopByEngagement_TiesKeepDatasetOrder(t *testing.T) {
	ds := domain.Dataset{
		{ID: 1, RetweetCount: 5},
		{ID: 2, RetweetCount: 5},
		{ID: 3, RetweetCount: 9},
	}

	top := TopByEngagement(ds, 3)
	assert.Equal(t, int64(3), top[0].ID)
	assert.Equal(t, int64(1), top[1].ID, "tie broken by original order")
	assert.Equal(t, int64(2), top[2].ID)
}

func TestTopByEngagement_SentimentFallback(t *testing.T) {
	ds := domain.Dataset{
		{ID: 1, SentimentScore: 0.1},
		{ID: 2, SentimentScore: 0.9},
		{ID: 3, SentimentScore: -0.4},
	}

	top := TopByEngagement(ds, 2)
	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].ID)
	assert.Equal(t, int64(1), top[1].ID)
}

func TestTopByEngagement_Empty(t *testing.T) {
	assert.Empty(t, TopByEngagement(domain.Dataset{}, TopK))
	assert.Empty(t, TopByEngagement(nil, 0))
}

func TestMeanSentiment(t *testing.T) {
	assert.Zero(t, MeanSentiment(nil))

	ds := domain.Dataset{
		{SentimentScore: 0.5},
		{SentimentScore: -0.5},
		{SentimentScore: 0.3},
	}
	assert.InDelta(t, 0.1, MeanSentiment(ds), 1e-9)
}

func TestLabelCounts(t *testing.T) {
	ds := domain.Dataset{
		{SentimentLabel: domain.LabelPositive},
		{SentimentLabel: domain.LabelPositive},
		{SentimentLabel: domain.LabelNegative},
		{SentimentLabel: domain.LabelNeutral},
	}

	counts := LabelCounts(ds)
	assert.Equal(t, 2, counts[domain.LabelPositive])
	assert.Equal(t, 1, counts[domain.LabelNegative])
	assert.Equal(t, 1, counts[domain.LabelNeutral])
}

func TestEngagementTotals(t *testing.T) {
	ds := domain.Dataset{
		{RetweetCount: 2, FavoriteCount: 3},
		{RetweetCount: 4, FavoriteCount: 1},
	}

	retweets, favorites := EngagementTotals(ds)
	assert.Equal(t, 6, retweets)
	assert.Equal(t, 4, favorites)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hy461283-sudo/pulseX/internal/analysis"
	"github.com/hy461283-sudo/pulseX/internal/domain"
	"github.com/hy461283-sudo/pulseX/internal/logging"
	"github.com/hy461283-sudo/pulseX/internal/metrics"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// User-facing notices for the degraded live-search paths. Each failure
// category gets its own remediation message; all of them fall back to
// the cached file, never to a failed request.
const (
	noticeAuthFailed  = "Twitter API authentication failed: the bearer token is invalid or expired. Showing cached data."
	noticeRateLimited = "Twitter API rate limit exceeded: wait a few minutes before searching again. Showing cached data."
	noticeNoAccess    = "Twitter API access denied: this endpoint may require elevated access. Showing cached data."
	noticeLiveFailed  = "Live search is unavailable right now. Showing cached data."
	noticeLiveEmpty   = "No live tweets found for this keyword. Showing cached data."
)

// Service is the application layer. It owns the read-only cached
// dataset, the injected scorer, and the optional live source, and
// collapses concurrent identical recomputations with singleflight.
type Service struct {
	dataset     domain.Dataset
	scorer      domain.Scorer
	live        domain.TweetSource
	searchLimit int
	clock       clockwork.Clock
	group       singleflight.Group
}

// NewService creates the application layer service. dataset may be
// empty when the tweet file was missing; live may be nil when no
// bearer token is configured.
func NewService(dataset domain.Dataset, scorer domain.Scorer, live domain.TweetSource, searchLimit int, clock clockwork.Clock) *Service {
	metrics.DatasetSize.Set(float64(len(dataset)))
	return &Service{
		dataset:     dataset,
		scorer:      scorer,
		live:        live,
		searchLimit: searchLimit,
		clock:       clock,
	}
}

// DatasetSize returns the size of the cached dataset.
func (s *Service) DatasetSize() int {
	return len(s.dataset)
}

// LiveConfigured reports whether a live tweet source is wired in.
func (s *Service) LiveConfigured() bool {
	return s.live != nil
}

// Analyze runs one full pipeline recomputation for the given keyword
// and window. Concurrent identical requests share a single run. The
// caller always receives a fully-materialized Analysis or an error;
// never a partial result.
//
// Returns domain.ErrDataUnavailable when there is no data to analyze
// at all (no cached file and no usable live result).
func (s *Service) Analyze(ctx context.Context, keyword string, days int) (*domain.Analysis, error) {
	if days <= 0 {
		return nil, fmt.Errorf("window days must be positive, got %d", days)
	}

	key := fmt.Sprintf("%s|%d", keyword, days)
	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.analyze(ctx, keyword, days)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Analysis), nil
}

func (s *Service) analyze(ctx context.Context, keyword string, days int) (*domain.Analysis, error) {
	start := s.clock.Now()
	now := start

	working, source, notice := s.selectSource(ctx, keyword, days, now)

	if source == domain.SourceCached {
		if len(s.dataset) == 0 {
			metrics.AnalysisRequestsTotal.WithLabelValues(string(source), "unavailable").Inc()
			return nil, fmt.Errorf("%w: generate sample data first", domain.ErrDataUnavailable)
		}
		working = analysis.FilterByKeyword(s.dataset, keyword)
	}

	working = analysis.FilterByWindow(working, now, days)
	working = analysis.Annotate(working, s.scorer)

	retweets, favorites := analysis.EngagementTotals(working)
	result := &domain.Analysis{
		Keyword:       keyword,
		WindowDays:    days,
		Source:        source,
		Notice:        notice,
		Total:         len(working),
		DatasetSize:   len(s.dataset),
		MeanSentiment: analysis.MeanSentiment(working),
		LabelCounts:   analysis.LabelCounts(working),
		TotalRetweets: retweets,
		TotalFavs:     favorites,
		Hourly:        analysis.HourlyBuckets(working),
		Top:           analysis.TopByEngagement(working, analysis.TopK),
	}

	metrics.AnalysisRequestsTotal.WithLabelValues(string(source), "ok").Inc()
	metrics.AnalysisDuration.Observe(s.clock.Since(start).Seconds())
	return result, nil
}

// selectSource decides between the live API and the cached file. Any
// live failure degrades to the cached path with a category-specific
// notice; it never fails the analysis.
func (s *Service) selectSource(ctx context.Context, keyword string, days int, now time.Time) (domain.Dataset, domain.Source, string) {
	if keyword == "" || s.live == nil {
		return nil, domain.SourceCached, ""
	}

	since := now.AddDate(0, 0, -days)
	ds, err := s.live.Search(ctx, keyword, since, s.searchLimit)
	if err != nil {
		cause, notice := classifyLiveError(err)
		logging.WithKeyword(keyword).Warn("Live search failed, falling back to cached data", "cause", cause, "error", err)
		metrics.LiveSearchFallbacksTotal.WithLabelValues(cause).Inc()
		return nil, domain.SourceCached, notice
	}

	if len(ds) == 0 {
		metrics.LiveSearchFallbacksTotal.WithLabelValues("empty").Inc()
		return nil, domain.SourceCached, noticeLiveEmpty
	}

	return ds, domain.SourceLive, ""
}

func classifyLiveError(err error) (cause, notice string) {
	switch {
	case errors.Is(err, domain.ErrAuthentication):
		return "authentication", noticeAuthFailed
	case errors.Is(err, domain.ErrRateLimited):
		return "rate_limited", noticeRateLimited
	case errors.Is(err, domain.ErrPermission):
		return "permission", noticeNoAccess
	default:
		return "error", noticeLiveFailed
	}
}

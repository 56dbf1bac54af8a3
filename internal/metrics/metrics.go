// Package metrics defines the prometheus collectors shared across the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis pipeline metrics
var (
	// AnalysisRequestsTotal tracks analysis runs by data source and outcome
	AnalysisRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total analysis pipeline runs by source and status",
		},
		[]string{"source", "status"},
	)

	// AnalysisDuration tracks full pipeline latency in seconds
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "Analysis pipeline duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	// TweetsScoredTotal tracks tweets run through the sentiment scorer
	TweetsScoredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tweets_scored_total",
			Help: "Total tweets annotated with a sentiment score",
		},
	)

	// DatasetSize tracks the size of the cached dataset
	DatasetSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_size_tweets",
			Help: "Number of tweets in the cached dataset",
		},
	)

	// MalformedLinesTotal tracks skipped lines when the loader runs in skip mode
	MalformedLinesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loader_malformed_lines_total",
			Help: "Total malformed lines skipped by the loader",
		},
	)
)

// Live search metrics
var (
	// LiveSearchRequestsTotal tracks recent-search API calls by status
	LiveSearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_search_requests_total",
			Help: "Total live search API calls by status",
		},
		[]string{"status"},
	)

	// LiveSearchFallbacksTotal tracks degradations to the cached-file path by cause
	LiveSearchFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_search_fallbacks_total",
			Help: "Total fallbacks to cached data by cause",
		},
		[]string{"cause"},
	)
)

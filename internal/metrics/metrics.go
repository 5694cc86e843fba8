// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
)

var (
	// QueriesTotal counts filter queries by outcome.
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wordfinder",
		Name:      "queries_total",
		Help:      "Number of filter queries by outcome.",
	}, []string{"outcome"})

	// ScanDuration observes the time spent scanning the dictionary.
	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wordfinder",
		Name:      "scan_duration_seconds",
		Help:      "Time spent scanning the dictionary for one query.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	// MatchCount observes the total number of matches per query.
	MatchCount = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wordfinder",
		Name:      "matches",
		Help:      "Number of words matched by one query.",
		Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000, 10000},
	})

	// DictionaryWords reports the size of the loaded dictionary.
	DictionaryWords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "wordfinder",
		Name:      "dictionary_words",
		Help:      "Number of words in the loaded dictionary.",
	})
)

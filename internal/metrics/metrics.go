// Package metrics defines the Prometheus instruments for the send pipeline
// and the classifier call chain.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Message pipeline metrics
var (
	// MessagesSentTotal tracks persisted messages by sentiment label
	MessagesSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_sent_total",
			Help: "Total messages persisted by sentiment label",
		},
		[]string{"sentiment"},
	)

	// ConversationsCreatedTotal tracks first-contact conversation creations
	ConversationsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "conversations_created_total",
			Help: "Total two-party conversations created",
		},
	)
)

// Classifier metrics
var (
	// ClassifierRequestsTotal tracks classifier HTTP attempts by endpoint and outcome
	ClassifierRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_requests_total",
			Help: "Classifier HTTP attempts by endpoint (primary/fallback) and outcome (success/transient/failure)",
		},
		[]string{"endpoint", "outcome"},
	)

	// ClassifierFallbacksTotal tracks sends that exhausted all attempts and defaulted to neutral
	ClassifierFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classifier_defaults_total",
			Help: "Total classifications that defaulted to neutral after all attempts failed",
		},
	)

	// ClassifierRequestDuration tracks classifier attempt latency in seconds
	ClassifierRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classifier_request_duration_seconds",
			Help:    "Classifier HTTP attempt duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 25},
		},
		[]string{"endpoint"},
	)
)

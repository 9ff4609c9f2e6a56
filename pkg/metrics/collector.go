// Package metrics exposes Prometheus collectors for bot activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zargram/pricebot/internal/conversation"
)

var (
	updatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Total number of bot updates handled labeled by kind and status",
		},
		[]string{"kind", "status"},
	)
	updateDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bot_update_duration_seconds",
			Help:    "Duration of bot update handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
	stepTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_step_transitions_total",
			Help: "Total number of price-entry wizard step transitions",
		},
		[]string{"from", "to"},
	)
	announcementsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "announcements_published_total",
			Help: "Total number of price announcements published to the channel",
		},
	)
	journalAppendFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "journal_append_failures_total",
			Help: "Total number of failed price journal appends",
		},
	)
	inputRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "price_input_rejections_total",
			Help: "Total number of rejected price inputs",
		},
	)
)

func init() {
	conversation.RegisterTransitionRecorder(RecordStepTransition)
}

// RecordUpdate increments update counters and records handling duration.
func RecordUpdate(kind, status string, duration time.Duration) {
	if kind == "" {
		kind = "unknown"
	}
	if status == "" {
		status = "unknown"
	}

	updatesTotal.WithLabelValues(kind, status).Inc()
	updateDurationSeconds.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordStepTransition counts one wizard step transition.
func RecordStepTransition(from, to string) {
	stepTransitionsTotal.WithLabelValues(from, to).Inc()
}

// RecordAnnouncementPublished counts one published announcement.
func RecordAnnouncementPublished() {
	announcementsPublishedTotal.Inc()
}

// RecordJournalAppendFailure counts one failed journal append.
func RecordJournalAppendFailure() {
	journalAppendFailuresTotal.Inc()
}

// RecordInputRejection counts one rejected price input.
func RecordInputRejection() {
	inputRejectionsTotal.Inc()
}

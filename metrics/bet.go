package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	betsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bets_placed_total",
			Help: "Total bet placements by result and bet_option",
		},
		[]string{"result", "bet_option"},
	)

	betsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bets_resolved_total",
			Help: "Total bet resolutions by outcome",
		},
		[]string{"outcome"},
	)

	betDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bet_request_duration_ms",
			Help:    "Bet request duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"op", "result"},
	)
)

// RecordPlace records a placement attempt. result is "success" or "fail".
func RecordPlace(result, betOption string, started time.Time) {
	betsPlaced.WithLabelValues(result, strings.ToLower(betOption)).Inc()
	betDuration.WithLabelValues("place", result).Observe(float64(time.Since(started).Milliseconds()))
}

// RecordResolve records a resolution. outcome is "won", "lost" or "fail".
func RecordResolve(outcome string, started time.Time) {
	betsResolved.WithLabelValues(outcome).Inc()
	result := "success"
	if outcome == "fail" {
		result = "fail"
	}
	betDuration.WithLabelValues("resolve", result).Observe(float64(time.Since(started).Milliseconds()))
}

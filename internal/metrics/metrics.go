package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	EggsBroken = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEggsBroken,
			Help: HelpTextEggsBroken,
		},
		[]string{LabelOutcome, LabelSource},
	)

	RewardsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsAwarded,
			Help: HelpTextRewardsAwarded,
		},
	)

	LinksUsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLinksUsed,
			Help: HelpTextLinksUsed,
		},
	)

	RewardsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
	)

	ClaimedAmount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClaimedAmount,
			Help: HelpTextClaimedAmount,
		},
	)

	GameResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGameResets,
			Help: HelpTextGameResets,
		},
	)

	LedgerWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLedgerWriteErrs,
			Help: HelpTextLedgerWriteErrs,
		},
	)
)

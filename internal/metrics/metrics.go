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
			Help: "Total number of HTTP requests",
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    "HTTP request latency in seconds",
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: "Number of HTTP requests currently being served",
		},
	)
)

// Business Metrics
var (
	DailySubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDailySubmissions,
			Help: "Daily song submissions by outcome",
		},
		[]string{LabelOutcome},
	)

	RantsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRantsCreated,
			Help: "Rants posted",
		},
	)

	MemoriesUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMemoriesUploaded,
			Help: "Memory photos uploaded",
		},
	)

	WishlistItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWishlistItems,
			Help: "Wishlist item operations",
		},
		[]string{LabelAction},
	)
)

package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "campuslife_http_requests_total"
	MetricNameHTTPRequestDuration  = "campuslife_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "campuslife_http_requests_in_flight"

	MetricNameDailySubmissions = "campuslife_daily_submissions_total"
	MetricNameRantsCreated     = "campuslife_rants_created_total"
	MetricNameMemoriesUploaded = "campuslife_memories_uploaded_total"
	MetricNameWishlistItems    = "campuslife_wishlist_items_total"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelAction  = "action"
)

// Daily submission outcomes
const (
	OutcomeWon      = "won"
	OutcomeRejected = "rejected"
)

// Wishlist actions
const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
)

// HTTPLatencyBuckets are the histogram buckets for request durations
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

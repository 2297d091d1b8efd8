package obs

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP metrics.
var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Domain metrics.
var (
	roleSelections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verifind_role_selections_total",
			Help: "Role selections by role.",
		},
		[]string{"role"},
	)

	viewResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verifind_view_resolutions_total",
			Help: "Resolved views by view.",
		},
		[]string{"view"},
	)

	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verifind_submissions_total",
			Help: "Accepted case and tip drafts by kind.",
		},
		[]string{"kind"},
	)
)

var (
	initOnce     sync.Once
	sessionsOnce sync.Once
)

// Init registers metrics in the default registry. Safe to call repeatedly.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			httpInFlight, httpRequestsTotal, httpRequestDuration,
			roleSelections, viewResolutions, submissions,
		)
	})
}

// RegisterActiveSessions exposes verifind_active_sessions backed by count.
// Only the first call has an effect.
func RegisterActiveSessions(count func() int) {
	sessionsOnce.Do(func() {
		prometheus.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "verifind_active_sessions",
			Help: "Sessions currently held in memory.",
		}, func() float64 { return float64(count()) }))
	})
}

// RoleSelected counts a role selection.
func RoleSelected(role string) { roleSelections.WithLabelValues(role).Inc() }

// ViewResolved counts a resolved view.
func ViewResolved(view string) { viewResolutions.WithLabelValues(view).Inc() }

// Submitted counts an accepted draft of kind "case" or "tip".
func Submitted(kind string) { submissions.WithLabelValues(kind).Inc() }

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

var routes = map[string]struct{}{
	"/":                   {},
	"/healthz":            {},
	"/readyz":             {},
	"/metrics":            {},
	"/v1/info":            {},
	"/v1/sessions":        {},
	"/v1/session":         {},
	"/v1/session/role":    {},
	"/v1/session/section": {},
	"/v1/session/logout":  {},
	"/v1/view":            {},
	"/v1/landing":         {},
	"/v1/cases":           {},
	"/v1/tips":            {},
	"/v1/alerts":          {},
	"/v1/dashboard":       {},
	"/v1/analytics":       {},
	"/v1/stream":          {},
}

// CanonicalPath maps a request path to a bounded label value. Query strings
// and trailing slashes are dropped; unrouted paths collapse to "other".
func CanonicalPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if _, ok := routes[path]; ok {
		return path
	}
	return "other"
}

// Instrument records in-flight, total and latency metrics.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := CanonicalPath(r.URL.Path)
		method := r.Method

		httpInFlight.Inc()
		defer httpInFlight.Dec()
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(sw.code)

		httpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

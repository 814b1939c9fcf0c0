// Package metrics provides Prometheus metrics for the play-assignment
// classification service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Classification metrics - the core business signal.
	classificationsTotal   *prometheus.CounterVec
	classificationDuration *prometheus.HistogramVec
	degeneratePaths        *prometheus.CounterVec
	pathPoints             *prometheus.HistogramVec
	suggestionCount        prometheus.Histogram

	// Bulk pipeline metrics.
	jobsAccepted  prometheus.Counter
	jobsDuplicate prometheus.Counter
	jobsDropped   prometheus.Counter
	queueSize     prometheus.Gauge
	queueCapacity prometheus.Gauge
	workerCount   prometheus.Gauge
	workerLatency prometheus.Histogram
	workerErrors  prometheus.Counter
	outcomeWrites prometheus.Counter
	storedTotal   prometheus.Gauge

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance on a custom registry, keeping the
// default Go collectors out of the exposition.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(prometheus.NewRegistry()))
}

// NewManager creates a new metrics manager with configuration options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "playbook",
		subsystem:        "classifier",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics registers every metric family on the manager's
// registry.
func (m *Manager) initializeMetrics() {
	factory := func(name, help string) prometheus.Opts {
		return prometheus.Opts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      name,
			Help:      help,
		}
	}

	m.classificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts(factory("classifications_total", "Classifications by kind, label, and confidence.")),
		[]string{"kind", "label", "confidence"},
	)
	m.classificationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "classification_duration_ms",
		Help:      "Classification latency in milliseconds by kind.",
		Buckets:   m.histogramBuckets,
	}, []string{"kind"})
	m.degeneratePaths = prometheus.NewCounterVec(
		prometheus.CounterOpts(factory("degenerate_paths_total", "Paths with fewer than two points by kind.")),
		[]string{"kind"},
	)
	m.pathPoints = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "path_points",
		Help:      "Point count of classified paths by kind.",
		Buckets:   []float64{2, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"kind"})
	m.suggestionCount = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "suggestion_count",
		Help:      "Number of route options returned per suggestion list.",
		Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
	})

	m.jobsAccepted = prometheus.NewCounter(prometheus.CounterOpts(factory("jobs_accepted_total", "Assignment jobs accepted for bulk classification.")))
	m.jobsDuplicate = prometheus.NewCounter(prometheus.CounterOpts(factory("jobs_duplicate_total", "Assignment jobs rejected as duplicates.")))
	m.jobsDropped = prometheus.NewCounter(prometheus.CounterOpts(factory("jobs_dropped_total", "Assignment jobs dropped by queue backpressure.")))
	m.queueSize = prometheus.NewGauge(prometheus.GaugeOpts(factory("queue_size", "Current assignment queue depth.")))
	m.queueCapacity = prometheus.NewGauge(prometheus.GaugeOpts(factory("queue_capacity", "Configured assignment queue capacity.")))
	m.workerCount = prometheus.NewGauge(prometheus.GaugeOpts(factory("worker_count", "Configured classification worker count.")))
	m.workerLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_processing_ms",
		Help:      "Worker job processing latency in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
	m.workerErrors = prometheus.NewCounter(prometheus.CounterOpts(factory("worker_errors_total", "Worker job failures.")))
	m.outcomeWrites = prometheus.NewCounter(prometheus.CounterOpts(factory("outcome_writes_total", "Classification outcomes written to the store.")))
	m.storedTotal = prometheus.NewGauge(prometheus.GaugeOpts(factory("outcomes_stored", "Classification outcomes currently stored.")))

	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts(factory("http_requests_total", "HTTP requests by endpoint, method, and status.")),
		[]string{"endpoint", "method", "status"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.registry.MustRegister(
		m.classificationsTotal,
		m.classificationDuration,
		m.degeneratePaths,
		m.pathPoints,
		m.suggestionCount,
		m.jobsAccepted,
		m.jobsDuplicate,
		m.jobsDropped,
		m.queueSize,
		m.queueCapacity,
		m.workerCount,
		m.workerLatency,
		m.workerErrors,
		m.outcomeWrites,
		m.storedTotal,
		m.httpRequests,
		m.httpRequestDuration,
	)
}

// GetRegistry returns the registry backing the global manager, for
// serving via promhttp.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}

// Package-level helpers recording on the global manager.

// RecordClassification counts one classification result.
func RecordClassification(kind, label, confidence string) {
	globalManager.classificationsTotal.WithLabelValues(kind, label, confidence).Inc()
}

// RecordClassificationDuration records classification latency.
func RecordClassificationDuration(kind string, ms float64) {
	globalManager.classificationDuration.WithLabelValues(kind).Observe(ms)
}

// RecordDegeneratePath counts a path too short to classify.
func RecordDegeneratePath(kind string) {
	globalManager.degeneratePaths.WithLabelValues(kind).Inc()
}

// ObservePathPoints records the point count of a classified path.
func ObservePathPoints(kind string, points int) {
	globalManager.pathPoints.WithLabelValues(kind).Observe(float64(points))
}

// RecordSuggestionCount records the length of a route option list.
func RecordSuggestionCount(n int) {
	globalManager.suggestionCount.Observe(float64(n))
}

// RecordJobAccepted counts an accepted bulk job.
func RecordJobAccepted() { globalManager.jobsAccepted.Inc() }

// RecordJobDuplicate counts a duplicate bulk job.
func RecordJobDuplicate() { globalManager.jobsDuplicate.Inc() }

// RecordJobDropped counts a job dropped by backpressure.
func RecordJobDropped() { globalManager.jobsDropped.Inc() }

// UpdateQueueSize sets the current queue depth.
func UpdateQueueSize(n int) { globalManager.queueSize.Set(float64(n)) }

// UpdateQueueCapacity sets the configured queue capacity.
func UpdateQueueCapacity(n int) { globalManager.queueCapacity.Set(float64(n)) }

// UpdateWorkerCount sets the configured worker count.
func UpdateWorkerCount(n int) { globalManager.workerCount.Set(float64(n)) }

// RecordWorkerProcessingLatency records worker job latency.
func RecordWorkerProcessingLatency(ms float64) { globalManager.workerLatency.Observe(ms) }

// RecordWorkerError counts a worker job failure.
func RecordWorkerError() { globalManager.workerErrors.Inc() }

// RecordOutcomeStored counts an outcome write.
func RecordOutcomeStored() { globalManager.outcomeWrites.Inc() }

// UpdateStoredOutcomes sets the current stored outcome count.
func UpdateStoredOutcomes(n int) { globalManager.storedTotal.Set(float64(n)) }

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records HTTP request latency.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry holds every collector exposed on /api/metrics
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	// Buckets tuned for third-party API latency, from a few milliseconds up to the client timeout
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Platform Client Metrics
	PlatformRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "platform_client_operation_duration_seconds",
			Help:    "External mentor platform call duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"platform", "operation", "status"},
	)

	PlatformRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_client_operation_total",
			Help: "Total number of external mentor platform calls",
		},
		[]string{"platform", "operation", "status"},
	)

	FallbackResponses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentors_fallback_responses_total",
			Help: "Total number of responses served from fallback data",
		},
		[]string{"platform", "operation", "reason"},
	)

	CircuitBreakerState = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "platform_circuit_breaker_state",
			Help: "Circuit breaker state per platform (0 closed, 1 half-open, 2 open)",
		},
		[]string{"platform"},
	)

	// Business Metrics
	MentorsReturned = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mentors_aggregated_results",
			Help:    "Number of mentors returned by an aggregation",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 200},
		},
	)

	MeetingBookings = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentors_meeting_bookings_total",
			Help: "Total number of meeting booking requests",
		},
		[]string{"platform", "mode"},
	)

	MentorMessages = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentors_messages_total",
			Help: "Total number of messages sent to mentors",
		},
		[]string{"platform", "mode"},
	)

	// Infrastructure Metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects infrastructure metrics periodically until ctx is done
func RecordInfrastructureMetrics(ctx context.Context) {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				var m runtime.MemStats
				runtime.ReadMemStats(&m)

				GoRoutines.Set(float64(runtime.NumGoroutine()))
				HeapAlloc.Set(float64(m.HeapAlloc))
			}
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// ObservePlatformCall records duration and count for one external platform call
func ObservePlatformCall(platform, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	PlatformRequestDuration.WithLabelValues(platform, operation, status).Observe(MeasureDuration(start))
	PlatformRequestTotal.WithLabelValues(platform, operation, status).Inc()
}

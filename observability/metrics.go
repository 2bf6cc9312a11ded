package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "district", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "district", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ForecastResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "district", Name: "forecast_resolutions_total", Help: "Crowd forecast lookups by outcome."},
		[]string{"source"}, // found|default
	)
	ProviderCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "district", Name: "provider_calls_total", Help: "Data provider reads."},
		[]string{"record", "status"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "district", Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"endpoint", "status"},
	)
	IndexedShelters = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "district", Name: "indexed_shelters", Help: "Shelters present in the geo index after the last run."},
	)
)

// InitRegistry registers the app collectors on a private registry.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ForecastResolutions, ProviderCalls, ExternalRequests, IndexedShelters)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveForecast(source string) {
	ForecastResolutions.WithLabelValues(source).Inc()
}

func ObserveProvider(record string, err error) {
	ProviderCalls.WithLabelValues(record, statusLabel(err)).Inc()
}

func ObserveExternal(endpoint string, status int) {
	ExternalRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

func statusLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}

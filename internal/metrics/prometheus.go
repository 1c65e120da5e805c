package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Tool metrics
	ToolExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcp_tool_executions_total",
			Help: "Total number of tool executions",
		},
		[]string{"tool", "status"}, // status: success|error
	)

	ToolLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mcp_tool_latency_seconds",
			Help:    "Tool execution latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"tool"},
	)

	// Upstream API metrics
	UpstreamAPICalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcp_upstream_api_calls_total",
			Help: "Total number of upstream API calls",
		},
		[]string{"api", "status"}, // api: openweather|exchangerate|worldtime
	)

	UpstreamAPILatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mcp_upstream_api_latency_seconds",
			Help:    "Upstream API latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"api"},
	)
)

// Init registers all metrics with Prometheus
func Init() {
	prometheus.MustRegister(ToolExecutions)
	prometheus.MustRegister(ToolLatency)
	prometheus.MustRegister(UpstreamAPICalls)
	prometheus.MustRegister(UpstreamAPILatency)
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordToolExecution records a tool invocation outcome
func RecordToolExecution(tool, status string, duration time.Duration) {
	ToolExecutions.WithLabelValues(tool, status).Inc()
	ToolLatency.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordUpstreamCall records an upstream API call
func RecordUpstreamCall(api string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	UpstreamAPICalls.WithLabelValues(api, status).Inc()
	UpstreamAPILatency.WithLabelValues(api).Observe(duration.Seconds())
}

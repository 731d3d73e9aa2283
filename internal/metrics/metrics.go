// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "obras_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	CronogramasGerados = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "obras_cronogramas_gerados_total",
			Help: "Schedule generation requests by outcome",
		},
		[]string{"resultado"}, // gerado | sem_capacidade
	)

	CustosRegistrados = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "obras_custos_registrados_total",
			Help: "Cost entries appended by class",
		},
		[]string{"classe"},
	)

	ObrasExcluidas = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "obras_excluidas_total",
			Help: "Projects deleted with their stages and costs",
		},
	)
)

// RecordHTTPRequest observes one finished request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// RecordCronograma counts a generation attempt.
func RecordCronograma(gerado bool) {
	resultado := "gerado"
	if !gerado {
		resultado = "sem_capacidade"
	}
	CronogramasGerados.WithLabelValues(resultado).Inc()
}

func RecordCusto(classe string) { CustosRegistrados.WithLabelValues(classe).Inc() }

func RecordObraExcluida() { ObrasExcluidas.Inc() }

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	DBQueryDuration      *prometheus.HistogramVec
	DBOpenConnections    prometheus.Gauge
	AvailableSlots       prometheus.Histogram
	SkippedReservations  *prometheus.CounterVec
	SnapshotCacheResults *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: labels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: labels,
		}),

		AvailableSlots: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "available_slots_resolved",
			Help:        "Number of available slots returned per resolution",
			Buckets:     []float64{0, 1, 2, 4, 8, 16, 32},
			ConstLabels: labels,
		}),

		SkippedReservations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_skipped_reservations_total",
			Help:        "Reservations excluded from conflict checks",
			ConstLabels: labels,
		}, []string{"reason"}),

		SnapshotCacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "snapshot_cache_results_total",
			Help:        "Station snapshot cache lookups by result",
			ConstLabels: labels,
		}, []string{"kind", "result"}),
	}
}

// ReservationSkipped учитывает бронирование, исключённое из проверки пересечений
func (m *Metrics) ReservationSkipped(reason string) {
	m.SkippedReservations.WithLabelValues(reason).Inc()
}

// SlotsResolved учитывает размер результата вычисления доступности
func (m *Metrics) SlotsResolved(count int) {
	m.AvailableSlots.Observe(float64(count))
}

// CacheResult учитывает результат обращения к кэшу снапшотов
func (m *Metrics) CacheResult(kind, result string) {
	m.SnapshotCacheResults.WithLabelValues(kind, result).Inc()
}

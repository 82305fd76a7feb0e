package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded      *prometheus.CounterVec
	budgetStatuses            *prometheus.CounterVec
	fireCalculations          *prometheus.CounterVec
	fireCalculationDuration   prometheus.Histogram
	netWorthRecorded          prometheus.Gauge
	demoTransactionsGenerated prometheus.Counter
	maintenanceRowsPurged     *prometheus.CounterVec
	maintenanceDuration       prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors with reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		budgetStatuses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_overview_status_total",
				Help: "Budget overview items by computed status",
			},
			[]string{"status"},
		),
		fireCalculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fire_calculations_total",
				Help: "Total number of FIRE progress calculations",
			},
			[]string{"outcome"},
		),
		fireCalculationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fire_calculation_duration_milliseconds",
				Help:    "FIRE progress calculation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		netWorthRecorded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "net_worth_last_recorded",
				Help: "Net worth of the most recently recorded snapshot",
			},
		),
		demoTransactionsGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "demo_transactions_generated_total",
				Help: "Total number of demo transactions generated",
			},
		),
		maintenanceRowsPurged: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maintenance_rows_purged_total",
				Help: "Rows removed by maintenance runs",
			},
			[]string{"kind"},
		),
		maintenanceDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "maintenance_run_duration_milliseconds",
				Help:    "Maintenance run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction_recorded":
		if txType := tags["type"]; txType != "" {
			m.transactionsRecorded.WithLabelValues(txType).Inc()
		}
	case "budget_overview_status":
		if status := tags["status"]; status != "" {
			m.budgetStatuses.WithLabelValues(status).Inc()
		}
	case "fire_calculation":
		if outcome := tags["outcome"]; outcome != "" {
			m.fireCalculations.WithLabelValues(outcome).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "fire_calculation":
		m.fireCalculationDuration.Observe(float64(duration.Milliseconds()))
	case "maintenance_run":
		m.maintenanceDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "net_worth_recorded":
		m.netWorthRecorded.Set(value)
	case "demo_transactions_generated":
		if value > 0 {
			m.demoTransactionsGenerated.Add(value)
		}
	case "maintenance_rows_purged":
		if kind := tags["kind"]; kind != "" && value > 0 {
			m.maintenanceRowsPurged.WithLabelValues(kind).Add(value)
		}
	}
}

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records Prometheus counters and histograms for the fund
// transfer engine and the CRUD surfaces around it.
type Metrics struct {
	transfersTotal     *prometheus.CounterVec
	transferDuration   prometheus.Histogram
	transferAmount     prometheus.Histogram
	accountsCreated    prometheus.Counter
	accountsDeleted    prometheus.Counter
	beneficiariesTotal *prometheus.CounterVec
	customersCreated   prometheus.Counter
	passwordChanges    *prometheus.CounterVec
}

var (
	instance *Metrics
	once     sync.Once
)

// New returns the process-wide metrics recorder. Collectors register
// with the default registry exactly once.
func New() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			transfersTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "fund_transfers_total",
					Help: "Total number of fund transfers processed",
				},
				[]string{"status"},
			),
			transferDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "fund_transfer_duration_milliseconds",
					Help:    "Fund transfer processing duration in milliseconds",
					Buckets: prometheus.ExponentialBuckets(1, 2, 12),
				},
			),
			transferAmount: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "fund_transfer_amount",
					Help:    "Fund transfer amount in base currency units",
					Buckets: prometheus.ExponentialBuckets(1, 10, 8),
				},
			),
			accountsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "accounts_created_total",
					Help: "Total number of accounts opened",
				},
			),
			accountsDeleted: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "accounts_deleted_total",
					Help: "Total number of accounts soft deleted",
				},
			),
			beneficiariesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "beneficiaries_total",
					Help: "Total number of beneficiary operations",
				},
				[]string{"operation"},
			),
			customersCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "customers_created_total",
					Help: "Total number of customers created",
				},
			),
			passwordChanges: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "password_changes_total",
					Help: "Total number of password change attempts",
				},
				[]string{"status"},
			),
		}
	})
	return instance
}

func (m *Metrics) RecordTransfer(status string, amount float64, duration time.Duration) {
	m.transfersTotal.WithLabelValues(status).Inc()
	m.transferDuration.Observe(float64(duration.Milliseconds()))
	if status == "success" {
		m.transferAmount.Observe(amount)
	}
}

func (m *Metrics) AccountCreated() {
	m.accountsCreated.Inc()
}

func (m *Metrics) AccountDeleted() {
	m.accountsDeleted.Inc()
}

func (m *Metrics) BeneficiaryOperation(operation string) {
	m.beneficiariesTotal.WithLabelValues(operation).Inc()
}

func (m *Metrics) CustomerCreated() {
	m.customersCreated.Inc()
}

func (m *Metrics) PasswordChange(status string) {
	m.passwordChanges.WithLabelValues(status).Inc()
}

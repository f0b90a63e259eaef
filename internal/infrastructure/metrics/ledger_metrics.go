package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// LedgerMetrics counts cascade side effects. A nil *LedgerMetrics records nothing.
type LedgerMetrics struct {
	serviceOrdersCreated prometheus.Counter
	invoicesPaid         *prometheus.CounterVec
	commissionsCreated   prometheus.Counter
	settlements          *prometheus.CounterVec
}

var (
	ledgerMetricsOnce sync.Once
	ledgerMetrics     *LedgerMetrics
)

// Ledger returns the process-wide instance registered on the default registerer.
func Ledger() *LedgerMetrics {
	ledgerMetricsOnce.Do(func() {
		ledgerMetrics = NewLedgerMetrics(prometheus.DefaultRegisterer)
	})
	return ledgerMetrics
}

func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	m := &LedgerMetrics{
		serviceOrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledger_service_orders_created_total",
			Help: "Service orders created, each with its pending invoice.",
		}),
		invoicesPaid: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_invoices_paid_total",
			Help: "Mark-as-paid requests by outcome.",
		}, []string{"outcome"}),
		commissionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledger_commissions_created_total",
			Help: "Commissions generated from paid invoices.",
		}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_invoice_settlements_total",
			Help: "Invoice settlements through the payment gateway by provider status.",
		}, []string{"provider_status"}),
	}
	if reg != nil {
		reg.MustRegister(m.serviceOrdersCreated, m.invoicesPaid, m.commissionsCreated, m.settlements)
	}
	return m
}

func (m *LedgerMetrics) IncServiceOrderCreated() {
	if m == nil {
		return
	}
	m.serviceOrdersCreated.Inc()
}

func (m *LedgerMetrics) IncInvoicePaid(outcome string) {
	if m == nil {
		return
	}
	m.invoicesPaid.WithLabelValues(outcome).Inc()
}

func (m *LedgerMetrics) IncCommissionCreated() {
	if m == nil {
		return
	}
	m.commissionsCreated.Inc()
}

func (m *LedgerMetrics) IncSettlement(providerStatus string) {
	if m == nil {
		return
	}
	if providerStatus == "" {
		providerStatus = "unknown"
	}
	m.settlements.WithLabelValues(providerStatus).Inc()
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLedgerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedgerMetrics(reg)

	m.IncServiceOrderCreated()
	m.IncInvoicePaid("newly_paid")
	m.IncInvoicePaid("already_paid")
	m.IncInvoicePaid("already_paid")
	m.IncCommissionCreated()
	m.IncSettlement("")

	if got := testutil.ToFloat64(m.serviceOrdersCreated); got != 1 {
		t.Fatalf("expected 1 service order, got %v", got)
	}
	if got := testutil.ToFloat64(m.invoicesPaid.WithLabelValues("already_paid")); got != 2 {
		t.Fatalf("expected 2 already_paid, got %v", got)
	}
	if got := testutil.ToFloat64(m.settlements.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected unknown provider status, got %v", got)
	}
}

func TestLedgerMetrics_NilSafe(t *testing.T) {
	var m *LedgerMetrics
	m.IncServiceOrderCreated()
	m.IncInvoicePaid("newly_paid")
	m.IncCommissionCreated()
	m.IncSettlement("approved")
}

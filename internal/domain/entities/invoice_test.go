package entities

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestInvoice_MarkPaid(t *testing.T) {
	created := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	first := created.Add(time.Hour)

	inv := Invoice{ID: "fat-1", ServiceOrderID: "os-1", Amount: 200, Status: InvoiceStatusPending, CreatedAt: created}

	paid := inv.MarkPaid(first)
	if !paid.IsPaid() || paid.PaidAt == nil || !paid.PaidAt.Equal(first) {
		t.Fatalf("unexpected paid invoice: %+v", paid)
	}
	if inv.IsPaid() || inv.PaidAt != nil {
		t.Fatalf("original invoice must not change: %+v", inv)
	}

	again := paid.MarkPaid(first.Add(time.Hour))
	if !again.PaidAt.Equal(first) {
		t.Fatalf("expected paidAt of first payment, got %v", again.PaidAt)
	}
}

func TestInvoice_JSONOmitsPaidAtWhilePending(t *testing.T) {
	inv := Invoice{ID: "fat-1", ServiceOrderID: "os-1", Amount: 10, Status: InvoiceStatusPending}
	b, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(b), "paidAt") {
		t.Fatalf("pending invoice must not carry paidAt: %s", b)
	}
	if !strings.Contains(string(b), `"serviceOrderId":"os-1"`) {
		t.Fatalf("unexpected layout: %s", b)
	}

	b, _ = json.Marshal(inv.MarkPaid(time.Now().UTC()))
	if !strings.Contains(string(b), "paidAt") {
		t.Fatalf("paid invoice must carry paidAt: %s", b)
	}
}

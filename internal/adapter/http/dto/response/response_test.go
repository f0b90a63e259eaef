package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"mecanica_ledger/internal/domain/entities"
	"mecanica_ledger/internal/usecase"
)

func TestFromServiceOrderCreation(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := usecase.ServiceOrderCreation{
		ServiceOrder: entities.ServiceOrder{ID: "os-1", Client: "Acme", ServiceType: "Oil Change", Amount: 200, Status: entities.ServiceOrderStatusOpen, CreatedAt: now},
		Invoice:      entities.Invoice{ID: "fat-1", ServiceOrderID: "os-1", Amount: 200, Status: entities.InvoiceStatusPending, CreatedAt: now},
	}

	res := FromServiceOrderCreation(c)
	if res.ServiceOrder.ID != "os-1" || res.ServiceOrder.Status != "open" || res.ServiceOrder.ServiceType != "Oil Change" {
		t.Fatalf("unexpected service order: %+v", res.ServiceOrder)
	}
	if res.Invoice.ServiceOrderID != "os-1" || res.Invoice.Status != "pending" || res.Invoice.PaidAt != nil {
		t.Fatalf("unexpected invoice: %+v", res.Invoice)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(b), "paid_at") {
		t.Fatalf("pending invoice must not carry paid_at: %s", b)
	}
}

func TestFromInvoicePayment(t *testing.T) {
	paidAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	inv := entities.Invoice{ID: "fat-1", ServiceOrderID: "os-1", Amount: 200, Status: entities.InvoiceStatusPaid, PaidAt: &paidAt}
	com := entities.Commission{ID: "com-1", InvoiceID: "fat-1", BaseAmount: 200, Rate: 10, CommissionAmount: 20}

	res := FromInvoicePayment(usecase.InvoicePayment{Invoice: &inv, Commission: &com, Outcome: usecase.PaymentOutcomeNewlyPaid})
	if res.Outcome != "newly_paid" || res.Invoice.Status != "paid" || !res.Invoice.PaidAt.Equal(paidAt) {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Commission == nil || res.Commission.CommissionAmount != 20 || res.Commission.InvoiceID != "fat-1" {
		t.Fatalf("unexpected commission: %+v", res.Commission)
	}

	empty := FromInvoicePayment(usecase.InvoicePayment{Outcome: usecase.PaymentOutcomeNotFound})
	if empty.Commission != nil || empty.Invoice.ID != "" {
		t.Fatalf("expected empty response, got %+v", empty)
	}
}

func TestFromCommissions(t *testing.T) {
	res := FromCommissions(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}

	res = FromCommissions([]entities.Commission{{ID: "com-1", Rate: 10}, {ID: "com-2", Rate: 10}})
	if len(res) != 2 || res[1].ID != "com-2" {
		t.Fatalf("unexpected commissions: %+v", res)
	}
}

func TestFromInvoiceSettlement(t *testing.T) {
	now := time.Now().UTC()
	p := entities.PaymentRecord{
		ID:                "pag-1",
		InvoiceID:         "fat-1",
		ProviderPaymentID: "123",
		ProviderStatus:    "approved",
		Date:              now,
		PayloadRaw:        json.RawMessage(`{"id":123,"status":"approved"}`),
	}

	res := FromInvoiceSettlement(usecase.InvoiceSettlement{Payment: p})
	if res.Ledger != nil {
		t.Fatalf("expected no ledger result")
	}
	if res.Payment.ID != "pag-1" || res.Payment.MPPayload["status"] != "approved" {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}

	inv := entities.Invoice{ID: "fat-1", Status: entities.InvoiceStatusPaid}
	res = FromInvoiceSettlement(usecase.InvoiceSettlement{Payment: p, Ledger: &usecase.InvoicePayment{Invoice: &inv, Outcome: usecase.PaymentOutcomeNewlyPaid}})
	if res.Ledger == nil || res.Ledger.Invoice.ID != "fat-1" {
		t.Fatalf("unexpected ledger: %+v", res.Ledger)
	}

	bad := FromPaymentRecord(entities.PaymentRecord{ID: "pag-2", PayloadRaw: json.RawMessage(`[1]`)})
	if bad.MPPayload != nil || bad.MPPayloadRaw != "[1]" {
		t.Fatalf("unexpected payload mapping: %+v", bad)
	}
}

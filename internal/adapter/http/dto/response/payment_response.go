package response

import (
	"encoding/json"
	"time"

	"mecanica_ledger/internal/domain/entities"
	"mecanica_ledger/internal/usecase"
)

type PaymentResponse struct {
	ID                string    `json:"id"`
	InvoiceID         string    `json:"invoice_id"`
	ProviderPaymentID string    `json:"provider_payment_id"`
	ProviderStatus    string    `json:"provider_status"`
	Date              time.Time `json:"date"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

// SettlementResponse carries the stored payment and, once approved, the paid cascade.
type SettlementResponse struct {
	Payment PaymentResponse         `json:"payment"`
	Ledger  *InvoicePaymentResponse `json:"ledger,omitempty"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentResponse {
	res := PaymentResponse{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		Date:              p.Date,
		MPPayloadRaw:      string(p.PayloadRaw),
	}
	if len(p.PayloadRaw) > 0 {
		var m map[string]any
		if err := json.Unmarshal(p.PayloadRaw, &m); err == nil {
			res.MPPayload = m
		}
	}
	return res
}

func FromPaymentRecords(payments []entities.PaymentRecord) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPaymentRecord(p))
	}
	return out
}

func FromInvoiceSettlement(s usecase.InvoiceSettlement) SettlementResponse {
	res := SettlementResponse{Payment: FromPaymentRecord(s.Payment)}
	if s.Ledger != nil {
		l := FromInvoicePayment(*s.Ledger)
		res.Ledger = &l
	}
	return res
}

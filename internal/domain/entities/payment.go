package entities

import (
	"encoding/json"
	"time"
)

// PaymentRecord keeps the provider response of an invoice settlement.
//
// Storage model: one record inside the "pagamentos" collection. PayloadRaw holds
// the original provider body for traceability.
type PaymentRecord struct {
	ID                string          `json:"id"`
	InvoiceID         string          `json:"invoiceId"`
	ProviderPaymentID string          `json:"providerPaymentId"`
	ProviderStatus    string          `json:"providerStatus"`
	Date              time.Time       `json:"date"`
	PayloadRaw        json.RawMessage `json:"payloadRaw,omitempty"`
}

func (p PaymentRecord) GetID() string { return p.ID }

func (p PaymentRecord) Approved() bool { return p.ProviderStatus == "approved" }

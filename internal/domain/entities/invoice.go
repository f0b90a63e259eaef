package entities

import "time"

// InvoiceStatus is monotonic: pending -> paid, never back.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice (fatura) is created together with its ServiceOrder and settled once.
//
// Storage model: one record inside the "faturas" collection.
//   - Amount is copied from the service order at creation and never recomputed.
//   - PaidAt is omitted while the invoice is pending.
type Invoice struct {
	ID             string        `json:"id"`
	ServiceOrderID string        `json:"serviceOrderId"`
	Amount         float64       `json:"amount"`
	Status         InvoiceStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	PaidAt         *time.Time    `json:"paidAt,omitempty"`
}

func (i Invoice) GetID() string { return i.ID }

func (i Invoice) IsPaid() bool { return i.Status == InvoiceStatusPaid }

// MarkPaid returns a paid copy stamped with at. An already paid invoice is
// returned unchanged so the first payment time is kept.
func (i Invoice) MarkPaid(at time.Time) Invoice {
	if i.IsPaid() {
		return i
	}
	paidAt := at
	i.Status = InvoiceStatusPaid
	i.PaidAt = &paidAt
	return i
}

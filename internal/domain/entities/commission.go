package entities

import "time"

// Commission (comissão) is derived from an invoice when it becomes paid.
//
// Rate is a human readable percentage (10 means 10%), so
// CommissionAmount = BaseAmount * Rate / 100.
type Commission struct {
	ID               string    `json:"id"`
	InvoiceID        string    `json:"invoiceId"`
	BaseAmount       float64   `json:"baseAmount"`
	Rate             float64   `json:"rate"`
	CommissionAmount float64   `json:"commissionAmount"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (c Commission) GetID() string { return c.ID }

package response

import (
	"time"

	"mecanica_ledger/internal/domain/entities"
)

type CommissionResponse struct {
	ID               string    `json:"id"`
	InvoiceID        string    `json:"invoice_id"`
	BaseAmount       float64   `json:"base_amount"`
	Rate             float64   `json:"rate"`
	CommissionAmount float64   `json:"commission_amount"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromCommission(c entities.Commission) CommissionResponse {
	return CommissionResponse{
		ID:               c.ID,
		InvoiceID:        c.InvoiceID,
		BaseAmount:       c.BaseAmount,
		Rate:             c.Rate,
		CommissionAmount: c.CommissionAmount,
		CreatedAt:        c.CreatedAt,
	}
}

func FromCommissions(commissions []entities.Commission) []CommissionResponse {
	out := make([]CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		out = append(out, FromCommission(c))
	}
	return out
}

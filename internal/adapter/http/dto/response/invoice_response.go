package response

import (
	"time"

	"mecanica_ledger/internal/domain/entities"
	"mecanica_ledger/internal/usecase"
)

type InvoiceResponse struct {
	ID             string     `json:"id"`
	ServiceOrderID string     `json:"service_order_id"`
	Amount         float64    `json:"amount"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

// InvoicePaymentResponse reports the paid cascade. Outcome is newly_paid when
// this call settled the invoice and already_paid when it was settled before.
type InvoicePaymentResponse struct {
	Invoice    InvoiceResponse     `json:"invoice"`
	Commission *CommissionResponse `json:"commission,omitempty"`
	Outcome    string              `json:"outcome"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		ServiceOrderID: i.ServiceOrderID,
		Amount:         i.Amount,
		Status:         string(i.Status),
		CreatedAt:      i.CreatedAt,
		PaidAt:         i.PaidAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, FromInvoice(i))
	}
	return out
}

// FromInvoicePayment expects a resolved payment; not_found is answered by the handler.
func FromInvoicePayment(p usecase.InvoicePayment) InvoicePaymentResponse {
	res := InvoicePaymentResponse{Outcome: string(p.Outcome)}
	if p.Invoice != nil {
		res.Invoice = FromInvoice(*p.Invoice)
	}
	if p.Commission != nil {
		c := FromCommission(*p.Commission)
		res.Commission = &c
	}
	return res
}

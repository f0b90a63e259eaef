package response

import (
	"time"

	"mecanica_ledger/internal/domain/entities"
	"mecanica_ledger/internal/usecase"
)

type ServiceOrderResponse struct {
	ID          string    `json:"id"`
	Client      string    `json:"client"`
	ServiceType string    `json:"service_type"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceOrderCreatedResponse is returned by the creation route: the order and
// the invoice opened for it.
type ServiceOrderCreatedResponse struct {
	ServiceOrder ServiceOrderResponse `json:"service_order"`
	Invoice      InvoiceResponse      `json:"invoice"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:          o.ID,
		Client:      o.Client,
		ServiceType: o.ServiceType,
		Amount:      o.Amount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

func FromServiceOrderCreation(c usecase.ServiceOrderCreation) ServiceOrderCreatedResponse {
	return ServiceOrderCreatedResponse{
		ServiceOrder: FromServiceOrder(c.ServiceOrder),
		Invoice:      FromInvoice(c.Invoice),
	}
}

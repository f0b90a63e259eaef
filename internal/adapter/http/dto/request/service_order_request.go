package request

import "strings"

// CreateServiceOrderRequest is the payload for opening a service order. The
// pending invoice is created from the same amount.
type CreateServiceOrderRequest struct {
	Client      string   `json:"client" binding:"required"`
	ServiceType string   `json:"service_type" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
}

func (r CreateServiceOrderRequest) ResolveClient() string {
	return strings.TrimSpace(r.Client)
}

func (r CreateServiceOrderRequest) ResolveServiceType() string {
	return strings.TrimSpace(r.ServiceType)
}

// ResolveAmount returns 0 when amount was omitted; binding already rejects that case.
func (r CreateServiceOrderRequest) ResolveAmount() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

package entities

import "time"

// ServiceOrderStatus is informational only; the ledger never mutates it.
type ServiceOrderStatus string

const (
	ServiceOrderStatusOpen       ServiceOrderStatus = "open"
	ServiceOrderStatusInProgress ServiceOrderStatus = "in_progress"
	ServiceOrderStatusClosed     ServiceOrderStatus = "closed"
)

// ServiceOrder (OS) is the root of the ledger cascade.
//
// Storage model: one record inside the "osList" collection, serialized with the
// camelCase field names below. Records are never updated or deleted once created.
type ServiceOrder struct {
	ID          string             `json:"id"`
	Client      string             `json:"client"`
	ServiceType string             `json:"serviceType"`
	Amount      float64            `json:"amount"`
	Status      ServiceOrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (o ServiceOrder) GetID() string { return o.ID }

package interfaces

// ILedgerMetrics receives cascade counters. Implementations must accept calls
// on a nil receiver.
type ILedgerMetrics interface {
	IncServiceOrderCreated()
	IncInvoicePaid(outcome string)
	IncCommissionCreated()
	IncSettlement(providerStatus string)
}

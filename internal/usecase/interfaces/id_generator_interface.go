package interfaces

// Identifier prefixes per collection.
const (
	IDPrefixServiceOrder = "os"
	IDPrefixInvoice      = "fat"
	IDPrefixCommission   = "com"
	IDPrefixPayment      = "pag"
)

// IIDGenerator produces unique record identifiers of the form "<prefix>-<fragment>".
type IIDGenerator interface {
	NewID(prefix string) string
}

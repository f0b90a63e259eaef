package interfaces

import "time"

// IClock is the ledger time source.
type IClock interface {
	Now() time.Time
}

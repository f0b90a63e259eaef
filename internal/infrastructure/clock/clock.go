package clock

import (
	"time"

	"mecanica_ledger/internal/usecase/interfaces"
)

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

var _ interfaces.IClock = SystemClock{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

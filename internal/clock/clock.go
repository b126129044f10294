package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock abstracts wall time so ledger timestamps stay testable.
type Clock interface {
	Now() time.Time
}

var Module = fx.Provide(New)

// New returns the system clock. Timestamps are always UTC.
func New() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

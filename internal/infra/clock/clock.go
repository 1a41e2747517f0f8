// Package clock provides the system wall-clock implementation of the
// domain Clock interface.
package clock

import (
	"time"

	"panel/internal/domain/service"
)

type systemClock struct{}

// New returns a Clock backed by time.Now.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

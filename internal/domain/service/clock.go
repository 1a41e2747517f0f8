package service

import "time"

// Clock is the wall-clock source for expiry and age computations,
// injected so policy boundaries can be tested exactly.
type Clock interface {
	Now() time.Time
}

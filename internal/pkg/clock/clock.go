// Package clock abstracts time access so rules that depend on the current
// instant (coupon windows, idempotency expiry) stay testable.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock delegates to the system clock.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed instant.
type MockClock struct {
	fixed time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixed: t}
}

func (c *MockClock) Now() time.Time {
	return c.fixed
}

package port

import "time"

//go:generate mockgen -source=clock.go -destination=mock/clock.go -package=mock

// Clock abstracts time so week-boundary math and timeout checks are
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

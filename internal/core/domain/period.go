package domain

import "time"

type PeriodStatus string

const (
	PeriodStatusActive  PeriodStatus = "active"
	PeriodStatusClosed  PeriodStatus = "closed"
	PeriodStatusSettled PeriodStatus = "settled"
)

// WeeklyPeriod is a fixed Saturday-to-Friday accounting window. Exactly one
// period is active at any time; a period only moves forward
// (active -> closed -> settled).
type WeeklyPeriod struct {
	ID         uint64
	Year       int
	WeekNumber int
	StartDate  time.Time
	EndDate    time.Time
	Status     PeriodStatus
	ClosedAt   *time.Time
	SettledAt  *time.Time
	Version    uint64
}

// Contains reports whether t falls inside the period window.
func (p *WeeklyPeriod) Contains(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}

package domain

import "time"

// Account is any authenticated party: customer, shop, rider or admin. The
// role is fixed at registration and drives transition authority.
type Account struct {
	ID         uint64
	Login      string
	Password   string
	Role       ActorRole
	ReferredBy *uint64
	CreatedAt  time.Time
}

// CustomerPoints is a customer's loyalty balance. Balance changes only
// through the closure-update store method so credit and order completion
// commit together.
type CustomerPoints struct {
	CustomerID    uint64
	Balance       int64
	TotalEarned   int64
	TotalRedeemed int64
}

// Referral links a referred customer to their referrer. PointsAwarded is a
// one-shot guard: the referrer bonus is credited exactly once, on the
// referred customer's first completed order.
type Referral struct {
	ID            uint64
	ReferrerID    uint64
	ReferredID    uint64
	PointsAwarded bool
	CreatedAt     time.Time
}

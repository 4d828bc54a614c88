package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type SettlementStatus string

const (
	SettlementStatusPending SettlementStatus = "pending"
	SettlementStatusSettled SettlementStatus = "settled"
)

// ShopSettlement is one shop's reconciliation for one weekly period, uniquely
// keyed by (ShopID, PeriodID). Immutable after creation except Status and
// SettledAt.
type ShopSettlement struct {
	ID       string
	ShopID   uint64
	PeriodID uint64

	TotalOrders     int
	CompletedOrders int
	CancelledOrders int

	GrossSales         decimal.Decimal
	TotalCommission    decimal.Decimal
	PointsDiscounts    decimal.Decimal
	FreeDeliveryCosts  decimal.Decimal
	AdsCost            decimal.Decimal
	NetPayable         decimal.Decimal
	AdminNetCommission decimal.Decimal

	Status    SettlementStatus
	CreatedAt time.Time
	SettledAt *time.Time
}

// RiderSettlement is one rider's reconciliation for one weekly period,
// uniquely keyed by (RiderID, PeriodID).
type RiderSettlement struct {
	ID       string
	RiderID  uint64
	PeriodID uint64

	TotalDeliveries    int
	TotalDeliveryFees  decimal.Decimal
	TotalCashHandled   decimal.Decimal
	CommissionDeducted decimal.Decimal
	NetEarnings        decimal.Decimal

	Status    SettlementStatus
	CreatedAt time.Time
	SettledAt *time.Time
}

// AdminSettlementSummary is the platform-wide roll-up for one period. Not
// persisted; recomputed from the settlement records on demand.
type AdminSettlementSummary struct {
	PeriodID uint64

	ShopCount  int
	RiderCount int

	TotalGrossSales        decimal.Decimal
	TotalCommission        decimal.Decimal
	TotalPointsDiscounts   decimal.Decimal
	TotalFreeDeliveryCosts decimal.Decimal
	TotalDeliveryFees      decimal.Decimal
	TotalRiderEarnings     decimal.Decimal
	AdsRevenue             decimal.Decimal
	PointsRedeemed         int64
	AdminNetRevenue        decimal.Decimal

	// ReferralOverlay is an informational reporting stream (a share of
	// subtotal and delivery fees) that never participates in the
	// conservation arithmetic above.
	ReferralOverlay decimal.Decimal
}

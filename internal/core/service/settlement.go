package service

import (
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/govalues/decimal"
)

// SettlementCalculator aggregates one period's orders into per-shop and
// per-rider summaries. Pure: no stores, no side effects.
//
// Conservation is the contract: for every shop, every period,
// netPayable + adminNetCommission == grossSales, exactly. To honor it
// together with the rule that discounts are funded solely from the platform's
// commission, netPayable carries the discount amounts back to the shop side
// (the shop collected that much less cash from customers) while
// adminNetCommission carries them as platform cost.
type SettlementCalculator struct{}

func NewSettlementCalculator() *SettlementCalculator {
	return &SettlementCalculator{}
}

type ShopAggregates struct {
	GrossSales        decimal.Decimal
	CommissionRate    decimal.Decimal
	PointsDiscounts   decimal.Decimal
	FreeDeliveryCosts decimal.Decimal
	AdsCost           decimal.Decimal
	TotalOrders       int
	CompletedOrders   int
	CancelledOrders   int
}

type ShopSettlementSummary struct {
	TotalCommission    decimal.Decimal
	NetPayable         decimal.Decimal
	AdminNetCommission decimal.Decimal
}

type RiderAggregates struct {
	TotalDeliveries    int
	TotalDeliveryFees  decimal.Decimal
	TotalCashHandled   decimal.Decimal
	CommissionDeducted decimal.Decimal
}

type RiderSettlementSummary struct {
	NetEarnings decimal.Decimal
}

// ShopSettlement computes one shop's summary for a period. Negative inputs
// signal an upstream data-integrity bug and are rejected, never clamped.
func (c *SettlementCalculator) ShopSettlement(in ShopAggregates) (*ShopSettlementSummary, error) {
	if err := c.validateShopInput(in); err != nil {
		return nil, err
	}

	totalCommission, err := in.GrossSales.Mul(in.CommissionRate)
	if err != nil {
		return nil, err
	}

	// adminNetCommission = commission - pointsDiscounts - freeDeliveryCosts + adsCost
	adminNet, err := totalCommission.Sub(in.PointsDiscounts)
	if err != nil {
		return nil, err
	}
	adminNet, err = adminNet.Sub(in.FreeDeliveryCosts)
	if err != nil {
		return nil, err
	}
	adminNet, err = adminNet.Add(in.AdsCost)
	if err != nil {
		return nil, err
	}

	// netPayable = grossSales - commission + pointsDiscounts + freeDeliveryCosts - adsCost
	netPayable, err := in.GrossSales.Sub(totalCommission)
	if err != nil {
		return nil, err
	}
	netPayable, err = netPayable.Add(in.PointsDiscounts)
	if err != nil {
		return nil, err
	}
	netPayable, err = netPayable.Add(in.FreeDeliveryCosts)
	if err != nil {
		return nil, err
	}
	netPayable, err = netPayable.Sub(in.AdsCost)
	if err != nil {
		return nil, err
	}

	return &ShopSettlementSummary{
		TotalCommission:    totalCommission,
		NetPayable:         netPayable,
		AdminNetCommission: adminNet,
	}, nil
}

// RiderSettlement computes one rider's summary for a period.
func (c *SettlementCalculator) RiderSettlement(in RiderAggregates) (*RiderSettlementSummary, error) {
	if in.TotalDeliveries < 0 {
		return nil, &domain.AggregateError{Field: "total_deliveries", Err: domain.ErrInvalidAggregateInput}
	}
	if in.TotalDeliveryFees.IsNeg() {
		return nil, &domain.AggregateError{Field: "total_delivery_fees", Err: domain.ErrInvalidAggregateInput}
	}
	if in.TotalCashHandled.IsNeg() {
		return nil, &domain.AggregateError{Field: "total_cash_handled", Err: domain.ErrInvalidAggregateInput}
	}
	if in.CommissionDeducted.IsNeg() {
		return nil, &domain.AggregateError{Field: "commission_deducted", Err: domain.ErrInvalidAggregateInput}
	}

	net, err := in.TotalDeliveryFees.Sub(in.CommissionDeducted)
	if err != nil {
		return nil, err
	}
	return &RiderSettlementSummary{NetEarnings: net}, nil
}

// AdminSummary rolls all shop and rider settlements of a period into the
// platform-wide report. adminNetRevenue reconciles with the sum of each
// shop's adminNetCommission plus external ads revenue.
func (c *SettlementCalculator) AdminSummary(
	shops []*domain.ShopSettlement,
	riders []*domain.RiderSettlement,
	adsRevenue decimal.Decimal,
	pointsRedeemed int64,
) (*domain.AdminSettlementSummary, error) {
	sum := &domain.AdminSettlementSummary{
		ShopCount:              len(shops),
		RiderCount:             len(riders),
		TotalGrossSales:        decimal.Zero,
		TotalCommission:        decimal.Zero,
		TotalPointsDiscounts:   decimal.Zero,
		TotalFreeDeliveryCosts: decimal.Zero,
		TotalDeliveryFees:      decimal.Zero,
		TotalRiderEarnings:     decimal.Zero,
		AdsRevenue:             adsRevenue,
		PointsRedeemed:         pointsRedeemed,
		AdminNetRevenue:        adsRevenue,
		ReferralOverlay:        decimal.Zero,
	}

	var err error
	for _, s := range shops {
		if sum.TotalGrossSales, err = sum.TotalGrossSales.Add(s.GrossSales); err != nil {
			return nil, err
		}
		if sum.TotalCommission, err = sum.TotalCommission.Add(s.TotalCommission); err != nil {
			return nil, err
		}
		if sum.TotalPointsDiscounts, err = sum.TotalPointsDiscounts.Add(s.PointsDiscounts); err != nil {
			return nil, err
		}
		if sum.TotalFreeDeliveryCosts, err = sum.TotalFreeDeliveryCosts.Add(s.FreeDeliveryCosts); err != nil {
			return nil, err
		}
		if sum.AdminNetRevenue, err = sum.AdminNetRevenue.Add(s.AdminNetCommission); err != nil {
			return nil, err
		}
	}
	for _, r := range riders {
		if sum.TotalDeliveryFees, err = sum.TotalDeliveryFees.Add(r.TotalDeliveryFees); err != nil {
			return nil, err
		}
		if sum.TotalRiderEarnings, err = sum.TotalRiderEarnings.Add(r.NetEarnings); err != nil {
			return nil, err
		}
	}

	return sum, nil
}

func (c *SettlementCalculator) validateShopInput(in ShopAggregates) error {
	if in.GrossSales.IsNeg() {
		return &domain.AggregateError{Field: "gross_sales", Err: domain.ErrInvalidAggregateInput}
	}
	if in.PointsDiscounts.IsNeg() {
		return &domain.AggregateError{Field: "points_discounts", Err: domain.ErrInvalidAggregateInput}
	}
	if in.FreeDeliveryCosts.IsNeg() {
		return &domain.AggregateError{Field: "free_delivery_costs", Err: domain.ErrInvalidAggregateInput}
	}
	if in.AdsCost.IsNeg() {
		return &domain.AggregateError{Field: "ads_cost", Err: domain.ErrInvalidAggregateInput}
	}
	if in.TotalOrders < 0 || in.CompletedOrders < 0 || in.CancelledOrders < 0 {
		return &domain.AggregateError{Field: "order_counts", Err: domain.ErrInvalidAggregateInput}
	}
	if in.CompletedOrders+in.CancelledOrders > in.TotalOrders {
		return &domain.AggregateError{Field: "order_counts", Err: domain.ErrInvalidAggregateInput}
	}
	return nil
}

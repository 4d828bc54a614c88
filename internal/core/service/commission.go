package service

import (
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/govalues/decimal"
)

// CommissionEngine computes the per-order commission split. All discounts are
// funded exclusively from the platform's share: shop earnings depend only on
// subtotal and rate, never on what the customer redeemed.
type CommissionEngine struct{}

func NewCommissionEngine() *CommissionEngine {
	return &CommissionEngine{}
}

// ShopCommission returns subtotal * rate, the gross fee the shop owes the
// platform for one order.
func (e *CommissionEngine) ShopCommission(subtotal, rate decimal.Decimal) (decimal.Decimal, error) {
	return subtotal.Mul(rate)
}

// ShopEarnings returns subtotal - shopCommission.
func (e *CommissionEngine) ShopEarnings(subtotal, shopCommission decimal.Decimal) (decimal.Decimal, error) {
	return subtotal.Sub(shopCommission)
}

// PlatformCommission returns the platform's net take after funding the
// points discount and the free-delivery cost, floored at zero.
func (e *CommissionEngine) PlatformCommission(shopCommission, pointsDiscount, freeDeliveryCost decimal.Decimal) (decimal.Decimal, error) {
	net, err := shopCommission.Sub(pointsDiscount)
	if err != nil {
		return decimal.Decimal{}, err
	}
	net, err = net.Sub(freeDeliveryCost)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if net.IsNeg() {
		return decimal.Zero, nil
	}
	return net, nil
}

// CanApplyDiscount reports whether totalDiscount fits inside shopCommission,
// i.e. the platform commission would not go negative.
func (e *CommissionEngine) CanApplyDiscount(shopCommission, totalDiscount decimal.Decimal) bool {
	return totalDiscount.Cmp(shopCommission) <= 0
}

// Breakdown computes the full commission split for one order.
func (e *CommissionEngine) Breakdown(subtotal, rate, pointsDiscount, freeDeliveryCost decimal.Decimal) (*domain.CommissionBreakdown, error) {
	shopCommission, err := e.ShopCommission(subtotal, rate)
	if err != nil {
		return nil, err
	}
	platformCommission, err := e.PlatformCommission(shopCommission, pointsDiscount, freeDeliveryCost)
	if err != nil {
		return nil, err
	}
	shopEarnings, err := e.ShopEarnings(subtotal, shopCommission)
	if err != nil {
		return nil, err
	}
	return &domain.CommissionBreakdown{
		ShopCommission:     shopCommission,
		PlatformCommission: platformCommission,
		ShopEarnings:       shopEarnings,
	}, nil
}

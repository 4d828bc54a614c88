package domain

import "github.com/govalues/decimal"

// CommissionBreakdown is the per-order commission split. Transient value
// object computed at order placement, never persisted on its own.
type CommissionBreakdown struct {
	ShopCommission     decimal.Decimal
	PlatformCommission decimal.Decimal
	ShopEarnings       decimal.Decimal
}

// DiscountResult is the outcome of applying points redemption and the
// free-delivery promotion against the commission cap.
type DiscountResult struct {
	ShopCommission        decimal.Decimal
	FreeDeliveryCost      decimal.Decimal
	PointsUsed            int64
	PointsDiscount        decimal.Decimal
	TotalPlatformDiscount decimal.Decimal
	PlatformCommission    decimal.Decimal
	CustomerPayable       decimal.Decimal
}

// OrderBreakdown is the full financial picture of one order: what the
// customer pays and how it distributes across shop, rider and platform.
type OrderBreakdown struct {
	Subtotal           decimal.Decimal
	DeliveryFee        decimal.Decimal
	IsFreeDelivery     bool
	PointsUsed         int64
	PointsDiscount     decimal.Decimal
	CustomerPayable    decimal.Decimal
	ShopCommission     decimal.Decimal
	PlatformCommission decimal.Decimal
	ShopEarnings       decimal.Decimal
	RiderEarnings      decimal.Decimal
	PointsEarned       int64
}

// Breakdown derives the distribution view from the order's persisted
// financial fields. The rider always earns the delivery fee; on free-delivery
// orders the platform funds it instead of the customer.
func (o *Order) Breakdown() (*OrderBreakdown, error) {
	shopEarnings, err := o.Subtotal.Sub(o.ShopCommission)
	if err != nil {
		return nil, err
	}
	return &OrderBreakdown{
		Subtotal:           o.Subtotal,
		DeliveryFee:        o.DeliveryFee,
		IsFreeDelivery:     o.IsFreeDelivery,
		PointsUsed:         o.PointsUsed,
		PointsDiscount:     o.PointsDiscount,
		CustomerPayable:    o.TotalAmount,
		ShopCommission:     o.ShopCommission,
		PlatformCommission: o.PlatformCommission,
		ShopEarnings:       shopEarnings,
		RiderEarnings:      o.DeliveryFee,
		PointsEarned:       o.PointsEarned,
	}, nil
}

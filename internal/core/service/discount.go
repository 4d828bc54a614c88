package service

import (
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/govalues/decimal"
)

// DiscountApplier orchestrates points redemption and the free-delivery
// promotion against the commission cap. Free delivery consumes commission
// headroom first; points are capped by whatever remains.
type DiscountApplier struct {
	ledger     *PointsLedger
	commission *CommissionEngine
}

func NewDiscountApplier(ledger *PointsLedger, commission *CommissionEngine) *DiscountApplier {
	return &DiscountApplier{ledger: ledger, commission: commission}
}

type DiscountInput struct {
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	CommissionRate  decimal.Decimal
	RequestedPoints int64
	CustomerBalance int64
	IsFreeDelivery  bool
}

// Apply computes the full discount outcome for one order. The redemption cap
// is re-derived here even if the caller pre-validated: a balance observed
// across an async boundary is not trusted.
func (a *DiscountApplier) Apply(in DiscountInput) (*domain.DiscountResult, error) {
	shopCommission, err := a.commission.ShopCommission(in.Subtotal, in.CommissionRate)
	if err != nil {
		return nil, err
	}

	freeDeliveryCost := decimal.Zero
	if in.IsFreeDelivery {
		freeDeliveryCost = in.DeliveryFee
	}

	remaining, err := shopCommission.Sub(freeDeliveryCost)
	if err != nil {
		return nil, err
	}
	if remaining.IsNeg() {
		remaining = decimal.Zero
	}

	// A redemption request against zero headroom is an explicit rejection,
	// not a silent zero-point redemption.
	if in.RequestedPoints > 0 && !remaining.IsPos() {
		return nil, &domain.RedemptionError{
			Requested: in.RequestedPoints,
			Available: in.CustomerBalance,
			Cap:       0,
			Err:       domain.ErrNoCommissionHeadroom,
		}
	}

	pointsUsed := in.RequestedPoints
	if maxPoints := a.ledger.MaxRedeemablePoints(in.CustomerBalance, remaining); pointsUsed > maxPoints {
		pointsUsed = maxPoints
	}
	if pointsUsed < 0 {
		pointsUsed = 0
	}

	pointsDiscount, err := a.ledger.DiscountValue(pointsUsed)
	if err != nil {
		return nil, err
	}

	totalDiscount, err := pointsDiscount.Add(freeDeliveryCost)
	if err != nil {
		return nil, err
	}

	platformCommission, err := a.commission.PlatformCommission(shopCommission, pointsDiscount, freeDeliveryCost)
	if err != nil {
		return nil, err
	}

	payable := in.Subtotal
	if !in.IsFreeDelivery {
		payable, err = payable.Add(in.DeliveryFee)
		if err != nil {
			return nil, err
		}
	}
	payable, err = payable.Sub(pointsDiscount)
	if err != nil {
		return nil, err
	}
	if payable.IsNeg() {
		payable = decimal.Zero
	}

	return &domain.DiscountResult{
		ShopCommission:        shopCommission,
		FreeDeliveryCost:      freeDeliveryCost,
		PointsUsed:            pointsUsed,
		PointsDiscount:        pointsDiscount,
		TotalPlatformDiscount: totalDiscount,
		PlatformCommission:    platformCommission,
		CustomerPayable:       payable,
	}, nil
}

// ValidateRedemption is the pre-flight check a UI calls before placing an
// order, so a doomed redemption fails fast with a typed reason.
func (a *DiscountApplier) ValidateRedemption(in DiscountInput) error {
	if in.RequestedPoints <= 0 {
		return nil
	}
	shopCommission, err := a.commission.ShopCommission(in.Subtotal, in.CommissionRate)
	if err != nil {
		return err
	}
	freeDeliveryCost := decimal.Zero
	if in.IsFreeDelivery {
		freeDeliveryCost = in.DeliveryFee
	}
	remaining, err := shopCommission.Sub(freeDeliveryCost)
	if err != nil {
		return err
	}
	if !remaining.IsPos() {
		return &domain.RedemptionError{
			Requested: in.RequestedPoints,
			Available: in.CustomerBalance,
			Cap:       0,
			Err:       domain.ErrNoCommissionHeadroom,
		}
	}
	return a.ledger.ValidateRedemption(in.RequestedPoints, in.CustomerBalance, remaining)
}

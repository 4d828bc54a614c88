package service

import (
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/govalues/decimal"
)

// Loyalty constants: 1 point per 100 currency units spent, redeemed 1:1
// against currency, 2 bonus points to a referrer on the referred customer's
// first completed order.
const ReferralBonusPoints = 2

var (
	earnDivisor = decimal.Hundred
	pointValue  = decimal.One
)

// PointsLedger is the pure points/currency arithmetic. Stateless; balances
// live in the account store.
type PointsLedger struct{}

func NewPointsLedger() *PointsLedger {
	return &PointsLedger{}
}

// PointsEarned returns floor(subtotal / 100). Never negative.
func (l *PointsLedger) PointsEarned(subtotal decimal.Decimal) int64 {
	if !subtotal.IsPos() {
		return 0
	}
	q, _, err := subtotal.QuoRem(earnDivisor)
	if err != nil {
		return 0
	}
	whole, _, ok := q.Int64(0)
	if !ok {
		return 0
	}
	return whole
}

// DiscountValue converts points to their currency discount.
func (l *PointsLedger) DiscountValue(points int64) (decimal.Decimal, error) {
	p, err := decimal.New(points, 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return p.Mul(pointValue)
}

// CurrencyToPoints returns floor(amount / pointValue). Never negative.
func (l *PointsLedger) CurrencyToPoints(amount decimal.Decimal) int64 {
	if !amount.IsPos() {
		return 0
	}
	q, _, err := amount.QuoRem(pointValue)
	if err != nil {
		return 0
	}
	whole, _, ok := q.Int64(0)
	if !ok {
		return 0
	}
	return whole
}

// MaxRedeemablePoints caps redemption at both the customer's balance and the
// points the platform commission can absorb. Shop and rider earnings are
// never reduced by a redemption, so the commission cap is a hard ceiling.
func (l *PointsLedger) MaxRedeemablePoints(available int64, commissionCap decimal.Decimal) int64 {
	capPoints := l.CurrencyToPoints(commissionCap)
	if available < capPoints {
		return available
	}
	return capPoints
}

// ValidateRedemption is the pre-flight check for a points redemption request.
func (l *PointsLedger) ValidateRedemption(requested, available int64, commissionCap decimal.Decimal) error {
	if requested <= 0 {
		return nil
	}
	maxPoints := l.MaxRedeemablePoints(available, commissionCap)
	if requested > available {
		return &domain.RedemptionError{
			Requested: requested,
			Available: available,
			Cap:       maxPoints,
			Err:       domain.ErrInsufficientBalance,
		}
	}
	if requested > maxPoints {
		return &domain.RedemptionError{
			Requested: requested,
			Available: available,
			Cap:       maxPoints,
			Err:       domain.ErrExceedsCommissionCap,
		}
	}
	return nil
}

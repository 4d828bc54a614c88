package service_test

import (
	"testing"

	"github.com/balady/orderledger/internal/core/service"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCommissionEngine_ShopCommission(t *testing.T) {
	engine := service.NewCommissionEngine()

	tests := []struct {
		name     string
		subtotal string
		rate     string
		expected string
	}{
		{"default rate", "200", "0.10", "20"},
		{"fractional subtotal", "99.90", "0.10", "9.99"},
		{"zero subtotal", "0", "0.10", "0"},
		{"higher rate", "200", "0.15", "30"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := engine.ShopCommission(decimal.MustParse(test.subtotal), decimal.MustParse(test.rate))
			assert.NoError(t, err)
			assertDecimal(t, test.expected, got)
		})
	}
}

func TestCommissionEngine_PlatformCommission(t *testing.T) {
	engine := service.NewCommissionEngine()

	tests := []struct {
		name           string
		shopCommission string
		pointsDiscount string
		freeDelivery   string
		expected       string
	}{
		{"no discounts", "20", "0", "0", "20"},
		{"points only", "20", "10", "0", "10"},
		{"free delivery only", "20", "0", "15", "5"},
		{"both discounts", "20", "10", "10", "0"},
		{"floored at zero", "20", "15", "15", "0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := engine.PlatformCommission(
				decimal.MustParse(test.shopCommission),
				decimal.MustParse(test.pointsDiscount),
				decimal.MustParse(test.freeDelivery),
			)
			assert.NoError(t, err)
			assertDecimal(t, test.expected, got)
		})
	}
}

func TestCommissionEngine_CanApplyDiscount(t *testing.T) {
	engine := service.NewCommissionEngine()

	assert.True(t, engine.CanApplyDiscount(decimal.MustParse("20"), decimal.MustParse("20")))
	assert.True(t, engine.CanApplyDiscount(decimal.MustParse("20"), decimal.MustParse("19.99")))
	assert.False(t, engine.CanApplyDiscount(decimal.MustParse("20"), decimal.MustParse("20.01")))
}

func TestCommissionEngine_Breakdown(t *testing.T) {
	engine := service.NewCommissionEngine()

	// Shop earnings never depend on the discounts: the platform funds them
	// alone.
	breakdown, err := engine.Breakdown(
		decimal.MustParse("200"),
		decimal.MustParse("0.10"),
		decimal.MustParse("10"),
		decimal.MustParse("15"),
	)
	assert.NoError(t, err)
	assertDecimal(t, "20", breakdown.ShopCommission)
	assertDecimal(t, "0", breakdown.PlatformCommission)
	assertDecimal(t, "180", breakdown.ShopEarnings)
}

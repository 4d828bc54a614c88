package port

import (
	"context"
	"time"

	"github.com/balady/orderledger/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

// OrderStore persists orders. SaveOrder is version-checked: it must fail with
// domain.ErrStaleState when the stored version differs from order.Version.
// CompleteOrder writes the order and the customer's points credit in one
// transaction, with the same version check; a nil credit skips the points
// write.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, number string) (*domain.Order, error)
	SaveOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	CompleteOrder(ctx context.Context, order *domain.Order, credit UpdatePointsFn) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error)
	ListOrdersByShop(ctx context.Context, shopID uint64) ([]*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, statuses []domain.OrderStatus) ([]*domain.Order, error)
	ListOrdersInPeriod(ctx context.Context, periodID uint64) ([]*domain.Order, error)
}

// SettlementStore persists weekly settlement records. Upserts are keyed by
// (party, period) so a retried period close never duplicates records.
type SettlementStore interface {
	UpsertShopSettlement(ctx context.Context, s *domain.ShopSettlement) (*domain.ShopSettlement, error)
	UpsertRiderSettlement(ctx context.Context, s *domain.RiderSettlement) (*domain.RiderSettlement, error)
	ReadShopSettlement(ctx context.Context, id string) (*domain.ShopSettlement, error)
	ReadRiderSettlement(ctx context.Context, id string) (*domain.RiderSettlement, error)
	ListShopSettlementsByPeriod(ctx context.Context, periodID uint64) ([]*domain.ShopSettlement, error)
	ListRiderSettlementsByPeriod(ctx context.Context, periodID uint64) ([]*domain.RiderSettlement, error)
	MarkShopSettlementSettled(ctx context.Context, id string, at time.Time) (*domain.ShopSettlement, error)
	MarkRiderSettlementSettled(ctx context.Context, id string, at time.Time) (*domain.RiderSettlement, error)
}

// PeriodStore persists weekly periods. SavePeriod is version-checked like
// SaveOrder.
type PeriodStore interface {
	GetActivePeriod(ctx context.Context) (*domain.WeeklyPeriod, error)
	ReadPeriod(ctx context.Context, id uint64) (*domain.WeeklyPeriod, error)
	CreatePeriod(ctx context.Context, p *domain.WeeklyPeriod) (*domain.WeeklyPeriod, error)
	SavePeriod(ctx context.Context, p *domain.WeeklyPeriod) (*domain.WeeklyPeriod, error)
}

// AccountStore persists accounts, customer points and referrals.
type AccountStore interface {
	CreateAccount(ctx context.Context, a *domain.Account) (*domain.Account, error)
	GetAccountByLogin(ctx context.Context, login string) (*domain.Account, error)
	ReadCustomerPoints(ctx context.Context, customerID uint64) (*domain.CustomerPoints, error)
	UpdateCustomerPoints(ctx context.Context, customerID uint64, updateFn UpdatePointsFn) (*domain.CustomerPoints, error)
	GetReferralByReferred(ctx context.Context, referredID uint64) (*domain.Referral, error)
	SaveReferral(ctx context.Context, r *domain.Referral) (*domain.Referral, error)
}

// UpdatePointsFn mutates a points record inside the store's transaction.
type UpdatePointsFn func(*domain.CustomerPoints) error

// Repository is the full persistence surface, implemented by one postgres
// adapter.
type Repository interface {
	OrderStore
	SettlementStore
	PeriodStore
	AccountStore
}

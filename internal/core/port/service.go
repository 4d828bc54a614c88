package port

import (
	"context"

	"github.com/balady/orderledger/internal/core/domain"
)

// PlaceOrderInput is everything the order-placement flow supplies. The
// financial breakdown is computed by the core, never trusted from a client.
type PlaceOrderInput struct {
	CustomerID      uint64
	ShopID          uint64
	Items           []domain.OrderItem
	RequestedPoints int64
	IsFreeDelivery  bool
}

type Service interface {
	RegisterAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	LoginAccount(ctx context.Context, login string, password string) (string, error)

	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, number string) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error)
	ListOrdersByShop(ctx context.Context, shopID uint64) ([]*domain.Order, error)
	TransitionOrder(ctx context.Context, number string, newStatus domain.OrderStatus, actor domain.ActorRole, actorID uint64) (*domain.Order, error)
	CancelOrder(ctx context.Context, number string, reason string, actor domain.ActorRole) (*domain.Order, error)

	GetCustomerPoints(ctx context.Context, customerID uint64) (*domain.CustomerPoints, error)

	CloseCurrentWeek(ctx context.Context) (*domain.WeeklyPeriod, []*domain.ShopSettlement, []*domain.RiderSettlement, error)
	GetSettlementReport(ctx context.Context, periodID uint64) (*domain.AdminSettlementSummary, error)
	MarkShopSettlementPaid(ctx context.Context, settlementID string) (*domain.ShopSettlement, error)
	MarkRiderSettlementPaid(ctx context.Context, settlementID string) (*domain.RiderSettlement, error)
}

package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusShopPaid  OrderStatus = "shop_paid"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type ActorRole string

const (
	RoleCustomer ActorRole = "customer"
	RoleShop     ActorRole = "shop"
	RoleRider    ActorRole = "rider"
	RoleAdmin    ActorRole = "admin"
)

// forwardTransitions is the single source of truth for the linear order
// lifecycle: each status maps to the only status it may advance to and the
// role allowed to perform that advance. Cancellation is handled separately.
var forwardTransitions = map[OrderStatus]struct {
	Next  OrderStatus
	Actor ActorRole
}{
	OrderStatusPending:   {OrderStatusAccepted, RoleShop},
	OrderStatusAccepted:  {OrderStatusPreparing, RoleShop},
	OrderStatusPreparing: {OrderStatusPickedUp, RoleRider},
	OrderStatusPickedUp:  {OrderStatusShopPaid, RoleRider},
	OrderStatusShopPaid:  {OrderStatusCompleted, RoleShop},
}

var cancelRoles = map[ActorRole]bool{
	RoleCustomer: true,
	RoleShop:     true,
	RoleAdmin:    true,
}

// NextStatus returns the only forward status reachable from s and the role
// allowed to perform the move. ok is false for terminal and unknown statuses.
func (s OrderStatus) NextStatus() (next OrderStatus, actor ActorRole, ok bool) {
	t, ok := forwardTransitions[s]
	return t.Next, t.Actor, ok
}

// IsCancellable reports whether an order in status s may still be cancelled.
// Once a shop starts preparing, the order is committed.
func (s OrderStatus) IsCancellable() bool {
	return s == OrderStatusPending || s == OrderStatusAccepted
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanCancel reports whether role may cancel an order (riders never cancel).
func CanCancel(role ActorRole) bool {
	return cancelRoles[role]
}

type Order struct {
	ID           uint64
	Number       string
	CustomerID   uint64
	ShopID       uint64
	RiderID      *uint64
	WeekPeriodID *uint64
	Status       OrderStatus

	Subtotal           decimal.Decimal
	DeliveryFee        decimal.Decimal
	IsFreeDelivery     bool
	PointsUsed         int64
	PointsDiscount     decimal.Decimal
	TotalAmount        decimal.Decimal
	ShopCommission     decimal.Decimal
	PlatformCommission decimal.Decimal
	PointsEarned       int64

	// Cash moves customer -> rider -> shop in that order; each hop is
	// confirmed independently.
	CashCollected     bool
	CashToShop        bool
	ShopConfirmedCash bool

	CreatedAt          time.Time
	AcceptedAt         *time.Time
	PreparingAt        *time.Time
	PickedUpAt         *time.Time
	ShopPaidAt         *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string

	// Version guards concurrent read-modify-write cycles; the store rejects
	// a save whose version does not match the stored row.
	Version uint64
}

type OrderItem struct {
	ProductName string
	Price       decimal.Decimal
	Quantity    int64
}

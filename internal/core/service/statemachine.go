package service

import (
	"time"

	"github.com/balady/orderledger/internal/core/domain"
)

// PendingTimeout is how long a shop gets to accept an order before the
// scheduler auto-rejects it.
const PendingTimeout = 10 * time.Minute

// OrderStateMachine is the transition authority for every order. Its methods
// are side-effect free: they validate and return an updated copy, and the
// caller persists with a version check.
type OrderStateMachine struct{}

func NewOrderStateMachine() *OrderStateMachine {
	return &OrderStateMachine{}
}

// Transition validates and applies a forward status change, stamping the
// timestamp that corresponds to the new status. actorID identifies who runs
// the step; the pickup transition records it as the order's rider.
func (m *OrderStateMachine) Transition(order *domain.Order, newStatus domain.OrderStatus, actor domain.ActorRole, actorID uint64, now time.Time) (*domain.Order, error) {
	if order.Status.IsTerminal() {
		return nil, &domain.TransitionError{
			From: order.Status, To: newStatus, Actor: actor,
			Err: domain.ErrTerminalState,
		}
	}
	if newStatus == domain.OrderStatusCancelled {
		return nil, &domain.TransitionError{
			From: order.Status, To: newStatus, Actor: actor,
			Err: domain.ErrInvalidTransition,
		}
	}

	next, allowedActor, ok := order.Status.NextStatus()
	if !ok || newStatus != next {
		return nil, &domain.TransitionError{
			From: order.Status, To: newStatus, Actor: actor,
			Err: domain.ErrInvalidTransition,
		}
	}
	if actor != allowedActor {
		return nil, &domain.TransitionError{
			From: order.Status, To: newStatus, Actor: actor,
			Err: domain.ErrForbidden,
		}
	}

	updated := *order
	updated.Status = newStatus
	stamp := now

	switch newStatus {
	case domain.OrderStatusAccepted:
		updated.AcceptedAt = &stamp
	case domain.OrderStatusPreparing:
		updated.PreparingAt = &stamp
	case domain.OrderStatusPickedUp:
		updated.PickedUpAt = &stamp
		rider := actorID
		updated.RiderID = &rider
	case domain.OrderStatusShopPaid:
		updated.ShopPaidAt = &stamp
		updated.CashCollected = true
		updated.CashToShop = true
	case domain.OrderStatusCompleted:
		updated.CompletedAt = &stamp
		updated.ShopConfirmedCash = true
	}

	return &updated, nil
}

// Cancel validates and applies a cancellation. A non-empty reason is
// mandatory; cancelled orders stay on record.
func (m *OrderStateMachine) Cancel(order *domain.Order, reason string, actor domain.ActorRole, now time.Time) (*domain.Order, error) {
	if order.Status.IsTerminal() {
		return nil, &domain.TransitionError{
			From: order.Status, To: domain.OrderStatusCancelled, Actor: actor,
			Err: domain.ErrTerminalState,
		}
	}
	if !order.Status.IsCancellable() {
		return nil, &domain.TransitionError{
			From: order.Status, To: domain.OrderStatusCancelled, Actor: actor,
			Err: domain.ErrInvalidTransition,
		}
	}
	if !domain.CanCancel(actor) {
		return nil, &domain.TransitionError{
			From: order.Status, To: domain.OrderStatusCancelled, Actor: actor,
			Err: domain.ErrForbidden,
		}
	}
	if reason == "" {
		return nil, domain.ErrEmptyCancelReason
	}

	updated := *order
	updated.Status = domain.OrderStatusCancelled
	stamp := now
	updated.CancelledAt = &stamp
	updated.CancellationReason = reason

	return &updated, nil
}

// HasTimedOut reports whether a still-pending order has outlived the
// acceptance window. Advisory: the scheduler polls this and then runs the
// normal cancellation transition; the state machine owns no timers.
func (m *OrderStateMachine) HasTimedOut(order *domain.Order, now time.Time) bool {
	return order.Status == domain.OrderStatusPending &&
		now.Sub(order.CreatedAt) > PendingTimeout
}

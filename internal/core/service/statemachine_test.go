package service_test

import (
	"testing"
	"time"

	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/service"
	"github.com/stretchr/testify/assert"
)

var allStatuses = []domain.OrderStatus{
	domain.OrderStatusPending,
	domain.OrderStatusAccepted,
	domain.OrderStatusPreparing,
	domain.OrderStatusPickedUp,
	domain.OrderStatusShopPaid,
	domain.OrderStatusCompleted,
	domain.OrderStatusCancelled,
}

var allRoles = []domain.ActorRole{
	domain.RoleCustomer,
	domain.RoleShop,
	domain.RoleRider,
	domain.RoleAdmin,
}

func TestOrderStateMachine_TransitionTable(t *testing.T) {
	sm := service.NewOrderStateMachine()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	type move struct {
		from  domain.OrderStatus
		to    domain.OrderStatus
		actor domain.ActorRole
	}
	allowed := map[move]bool{
		{domain.OrderStatusPending, domain.OrderStatusAccepted, domain.RoleShop}:    true,
		{domain.OrderStatusAccepted, domain.OrderStatusPreparing, domain.RoleShop}:  true,
		{domain.OrderStatusPreparing, domain.OrderStatusPickedUp, domain.RoleRider}: true,
		{domain.OrderStatusPickedUp, domain.OrderStatusShopPaid, domain.RoleRider}:  true,
		{domain.OrderStatusShopPaid, domain.OrderStatusCompleted, domain.RoleShop}:  true,
	}

	// Every (from, to, actor) combination either matches the single allowed
	// move or fails with a typed reason. No panics, no silent fallthrough.
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			for _, actor := range allRoles {
				order := &domain.Order{Number: "ORD-1", Status: from, CreatedAt: now}
				updated, err := sm.Transition(order, to, actor, 7, now)

				if allowed[move{from, to, actor}] {
					assert.NoErrorf(t, err, "%s -> %s by %s", from, to, actor)
					assert.Equal(t, to, updated.Status)
					assert.Equal(t, from, order.Status, "input order must not be mutated")
					if to == domain.OrderStatusPickedUp {
						assert.NotNil(t, updated.RiderID)
						assert.Equal(t, uint64(7), *updated.RiderID)
					}
					continue
				}

				assert.Errorf(t, err, "%s -> %s by %s must fail", from, to, actor)
				assert.Nil(t, updated)
				switch {
				case from.IsTerminal():
					assert.ErrorIs(t, err, domain.ErrTerminalState)
				case to == domain.OrderStatusCancelled:
					assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				default:
					next, _, _ := from.NextStatus()
					if to == next {
						assert.ErrorIs(t, err, domain.ErrForbidden)
					} else {
						assert.ErrorIs(t, err, domain.ErrInvalidTransition)
					}
				}
			}
		}
	}
}

func TestOrderStateMachine_TransitionStamps(t *testing.T) {
	sm := service.NewOrderStateMachine()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	order := &domain.Order{Number: "ORD-1", Status: domain.OrderStatusPreparing}
	pickedUp, err := sm.Transition(order, domain.OrderStatusPickedUp, domain.RoleRider, 7, now)
	assert.NoError(t, err)
	assert.NotNil(t, pickedUp.PickedUpAt)
	assert.NotNil(t, pickedUp.RiderID, "pickup must record the acting rider")
	assert.Equal(t, uint64(7), *pickedUp.RiderID)
	assert.Nil(t, order.RiderID, "input order must not be mutated")

	updated, err := sm.Transition(pickedUp, domain.OrderStatusShopPaid, domain.RoleRider, 7, now)
	assert.NoError(t, err)
	assert.NotNil(t, updated.ShopPaidAt)
	assert.Equal(t, now, *updated.ShopPaidAt)
	assert.True(t, updated.CashCollected)
	assert.True(t, updated.CashToShop)
	assert.False(t, updated.ShopConfirmedCash)

	completed, err := sm.Transition(updated, domain.OrderStatusCompleted, domain.RoleShop, 2, now)
	assert.NoError(t, err)
	assert.NotNil(t, completed.CompletedAt)
	assert.True(t, completed.ShopConfirmedCash)
	assert.Equal(t, uint64(7), *completed.RiderID, "rider survives later transitions")
}

func TestOrderStateMachine_Cancel(t *testing.T) {
	sm := service.NewOrderStateMachine()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	type cancelTest struct {
		name     string
		status   domain.OrderStatus
		reason   string
		actor    domain.ActorRole
		expError error
	}

	tests := []cancelTest{
		{"customer cancels pending", domain.OrderStatusPending, "changed my mind", domain.RoleCustomer, nil},
		{"shop cancels accepted", domain.OrderStatusAccepted, "out of stock", domain.RoleShop, nil},
		{"admin cancels pending", domain.OrderStatusPending, "timed out", domain.RoleAdmin, nil},
		{"rider may never cancel", domain.OrderStatusPending, "whatever", domain.RoleRider, domain.ErrForbidden},
		{"preparing is committed", domain.OrderStatusPreparing, "too late", domain.RoleCustomer, domain.ErrInvalidTransition},
		{"picked up is committed", domain.OrderStatusPickedUp, "too late", domain.RoleShop, domain.ErrInvalidTransition},
		{"completed is terminal", domain.OrderStatusCompleted, "no", domain.RoleAdmin, domain.ErrTerminalState},
		{"cancelled is terminal", domain.OrderStatusCancelled, "again", domain.RoleCustomer, domain.ErrTerminalState},
		{"reason is mandatory", domain.OrderStatusPending, "", domain.RoleCustomer, domain.ErrEmptyCancelReason},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := &domain.Order{Number: "ORD-1", Status: test.status}
			updated, err := sm.Cancel(order, test.reason, test.actor, now)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, updated)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.OrderStatusCancelled, updated.Status)
			assert.Equal(t, test.reason, updated.CancellationReason)
			assert.NotNil(t, updated.CancelledAt)
			assert.Equal(t, test.status, order.Status, "input order must not be mutated")
		})
	}
}

func TestOrderStateMachine_HasTimedOut(t *testing.T) {
	sm := service.NewOrderStateMachine()
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	pending := &domain.Order{Status: domain.OrderStatusPending, CreatedAt: created}
	accepted := &domain.Order{Status: domain.OrderStatusAccepted, CreatedAt: created}

	assert.False(t, sm.HasTimedOut(pending, created.Add(service.PendingTimeout)))
	assert.True(t, sm.HasTimedOut(pending, created.Add(service.PendingTimeout+time.Second)))
	assert.False(t, sm.HasTimedOut(accepted, created.Add(time.Hour)))
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrForbidden                  = errors.New("actor is forbidden to perform the operation")

	// * Order lifecycle errors.
	ErrInvalidTransition = errors.New("status transition is not permitted from current status")
	ErrTerminalState     = errors.New("order is already completed or cancelled")
	ErrStaleState        = errors.New("order was modified by another actor")
	ErrEmptyCancelReason = errors.New("cancellation requires a reason")

	// * Points redemption errors.
	ErrInsufficientBalance  = errors.New("points balance is not enough")
	ErrExceedsCommissionCap = errors.New("requested points exceed the commission cap")
	ErrNoCommissionHeadroom = errors.New("no commission headroom left for points redemption")

	// * Settlement errors.
	ErrInvalidAggregateInput = errors.New("negative or inconsistent settlement input")
	ErrPeriodAlreadyClosed   = errors.New("weekly period is already closed")
	ErrPeriodNotClosed       = errors.New("weekly period is not closed yet")
)

// TransitionError wraps a lifecycle sentinel with the attempted move so
// callers can render a precise message.
type TransitionError struct {
	From  OrderStatus
	To    OrderStatus
	Actor ActorRole
	Err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s by %s", e.Err, e.From, e.To, e.Actor)
}

func (e *TransitionError) Unwrap() error { return e.Err }

// RedemptionError wraps a points sentinel with the figures that drove the
// rejection.
type RedemptionError struct {
	Requested int64
	Available int64
	Cap       int64
	Err       error
}

func (e *RedemptionError) Error() string {
	return fmt.Sprintf("%s: requested %d, available %d, cap %d",
		e.Err, e.Requested, e.Available, e.Cap)
}

func (e *RedemptionError) Unwrap() error { return e.Err }

// AggregateError wraps ErrInvalidAggregateInput with the offending field.
type AggregateError struct {
	Field string
	Err   error
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Field)
}

func (e *AggregateError) Unwrap() error { return e.Err }

package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// NewOrderNumber builds a short human-readable order number:
// ORD-YYMMDD-XXXXXX. Uniqueness is enforced by the orders table; a duplicate
// insert surfaces as a conflict and the caller may retry.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%06d", now.Format("060102"), rand.Intn(1000000))
}

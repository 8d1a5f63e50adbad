// Package persist keeps JSON snapshots under fixed keys and the order
// status audit trail.
package persist

import (
	"context"
	"time"

	"cafe-admin-api/models"
)

// Fixed keys collections and the session live under
const (
	KeyFoodItems       = "foodItems"
	KeyOrders          = "orders"
	KeyReservations    = "reservations"
	KeySupportTickets  = "supportTickets"
	KeyFeedbacks       = "customerFeedbacks"
	KeyFeedbackReviews = "feedbackReviews"
	KeyUser            = "user"
)

// CheckoutTTL bounds how long an unpaid checkout is remembered where the
// backend supports expiry.
const CheckoutTTL = 24 * time.Hour

// CheckoutKey is where the order awaiting payment link linkID is parked
func CheckoutKey(linkID string) string {
	return "checkout:" + linkID
}

// KV stores one JSON document per key
type KV interface {
	// Load decodes the value under key into v and reports whether it existed
	Load(ctx context.Context, key string, v any) (bool, error)
	Save(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

// Expirer is implemented by backends that can drop keys on their own
type Expirer interface {
	SaveFor(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Audit records order status transitions
type Audit interface {
	RecordStatusChange(ctx context.Context, h *models.OrderStatusHistory) error
	StatusHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error)
}

// SaveWithTTL uses expiry when kv supports it and a plain save otherwise
func SaveWithTTL(ctx context.Context, kv KV, key string, v any, ttl time.Duration) error {
	if e, ok := kv.(Expirer); ok {
		return e.SaveFor(ctx, key, v, ttl)
	}
	return kv.Save(ctx, key, v)
}

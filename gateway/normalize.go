package gateway

import (
	"fmt"

	"github.com/goccy/go-json"

	"cafe-admin-api/logger"
	"cafe-admin-api/models"
)

// decodeList decodes each element on its own so one bad record cannot
// sink a whole collection. Records that fail to decode or come without an
// id are dropped and logged.
func decodeList[T any](log *logger.Logger, resource string, raw []json.RawMessage, id func(T) string) []T {
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			log.Warn("GATEWAY", fmt.Sprintf("dropping %s #%d: %v", resource, i, err))
			continue
		}
		if id(v) == "" {
			log.Warn("GATEWAY", fmt.Sprintf("dropping %s #%d: missing id", resource, i))
			continue
		}
		out = append(out, v)
	}
	return out
}

// normalizeOrder fills gaps the remote API is known to leave: a zero total
// with line items, a missing status and missing update time.
func normalizeOrder(o models.Order) models.Order {
	if o.TotalAmount == 0 && len(o.Items) > 0 {
		o.TotalAmount = o.ItemsTotal()
	}
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	return o
}

func normalizeFood(f models.FoodItem) models.FoodItem {
	return f.WithDefaults()
}

func normalizeTicket(t models.SupportTicket) models.SupportTicket {
	if t.Status == "" {
		t.Status = models.TicketOpen
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	return t
}

func normalizeFeedback(f models.CustomerFeedback) models.CustomerFeedback {
	if f.Status == "" {
		f.Status = models.FeedbackNew
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = f.CreatedAt
	}
	return f
}

func mapEach[T any](items []T, fn func(T) T) []T {
	for i := range items {
		items[i] = fn(items[i])
	}
	return items
}

// Package store owns the dashboard's collections and is the only place they
// change. Every successful fetch or mutation ends with a full recompute of
// the dashboard statistics.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cafe-admin-api/apperr"
	"cafe-admin-api/gateway"
	"cafe-admin-api/logger"
	"cafe-admin-api/models"
	"cafe-admin-api/persist"
	"cafe-admin-api/stats"
	"cafe-admin-api/validation"
)

// Mode selects where collections are authoritative
type Mode string

const (
	// ModeRemote treats the café API as the source of truth: no optimistic
	// updates, re-fetch after every successful mutation.
	ModeRemote Mode = "remote"
	// ModeLocal keeps every collection in the KV store and applies
	// mutations in memory straight away.
	ModeLocal Mode = "local"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeRemote, ModeLocal:
		return Mode(s), nil
	case "":
		return ModeRemote, nil
	}
	return "", fmt.Errorf("unknown data mode %q (want remote or local)", s)
}

// Gateway is the slice of the remote API the store needs
type Gateway interface {
	ListFood(ctx context.Context) ([]models.FoodItem, error)
	AddFood(ctx context.Context, item models.FoodItem) error
	UpdateFood(ctx context.Context, item models.FoodItem) error
	DeleteFood(ctx context.Context, id string) error

	ListOrders(ctx context.Context) ([]models.Order, error)
	AddOrder(ctx context.Context, order models.Order) error
	EditOrder(ctx context.Context, order models.Order) error
	CancelOrder(ctx context.Context, id string) error
	DeleteOrder(ctx context.Context, id string) error
	CreatePaymentLink(ctx context.Context, req gateway.PaymentRequest) (string, error)
	CheckPayment(ctx context.Context, linkID string) (string, error)

	ListTickets(ctx context.Context) ([]models.SupportTicket, error)
	AddTicket(ctx context.Context, t models.SupportTicket) error
	UpdateTicket(ctx context.Context, t models.SupportTicket) error
	DeleteTicket(ctx context.Context, id string) error

	ListFeedback(ctx context.Context) ([]models.CustomerFeedback, error)
	AddFeedback(ctx context.Context, f models.CustomerFeedback) error
}

type Options struct {
	Mode        Mode
	DailyTarget float64
	Now         func() time.Time
	NewID       func() string
}

type Store struct {
	gw       Gateway
	kv       persist.KV
	audit    persist.Audit
	log      *logger.Logger
	validate *validation.Validator

	mode        Mode
	dailyTarget float64
	now         func() time.Time
	newID       func() string

	// writeMu serialises mutations and refreshes; mu guards the fields below
	writeMu sync.Mutex
	mu      sync.RWMutex

	food         []models.FoodItem
	orders       []models.Order
	reservations []models.Reservation
	tickets      []models.SupportTicket
	feedbacks    []models.CustomerFeedback
	reviews      map[string]models.FeedbackReview
	dashboard    stats.Dashboard
	refreshedAt  time.Time
}

// New builds a store. audit may be nil when the backend keeps no history.
func New(gw Gateway, kv persist.KV, audit persist.Audit, log *logger.Logger, opts Options) *Store {
	if opts.Mode == "" {
		opts.Mode = ModeRemote
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	s := &Store{
		gw:          gw,
		kv:          kv,
		audit:       audit,
		log:         log,
		validate:    validation.New(),
		mode:        opts.Mode,
		dailyTarget: opts.DailyTarget,
		now:         opts.Now,
		newID:       opts.NewID,
		reviews:     map[string]models.FeedbackReview{},
	}
	s.recomputeLocked()
	return s
}

func (s *Store) Mode() Mode { return s.mode }

func (s *Store) remote() bool { return s.mode == ModeRemote }

func (s *Store) stamp() models.Timestamp {
	return models.NewTimestamp(s.now())
}

// Refresh reloads every collection. In remote mode the four API-backed
// collections are fetched in parallel and applied only if all succeed.
func (s *Store) Refresh(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var (
		food         []models.FoodItem
		orders       []models.Order
		tickets      []models.SupportTicket
		feedbacks    []models.CustomerFeedback
		reservations []models.Reservation
		reviews      = map[string]models.FeedbackReview{}
	)

	if _, err := s.kv.Load(ctx, persist.KeyReservations, &reservations); err != nil {
		return apperr.Storage("Refresh Failed", err)
	}

	if s.remote() {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { food, err = s.gw.ListFood(gctx); return })
		g.Go(func() (err error) { orders, err = s.gw.ListOrders(gctx); return })
		g.Go(func() (err error) { tickets, err = s.gw.ListTickets(gctx); return })
		g.Go(func() (err error) { feedbacks, err = s.gw.ListFeedback(gctx); return })
		if err := g.Wait(); err != nil {
			return apperr.Network("Refresh Failed", "Failed to load dashboard data. Please try again.", err)
		}
		if _, err := s.kv.Load(ctx, persist.KeyFeedbackReviews, &reviews); err != nil {
			return apperr.Storage("Refresh Failed", err)
		}
	} else {
		loads := []struct {
			key string
			v   any
		}{
			{persist.KeyFoodItems, &food},
			{persist.KeyOrders, &orders},
			{persist.KeySupportTickets, &tickets},
			{persist.KeyFeedbacks, &feedbacks},
		}
		for _, l := range loads {
			if _, err := s.kv.Load(ctx, l.key, l.v); err != nil {
				return apperr.Storage("Refresh Failed", err)
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.food = food
	s.orders = orders
	s.tickets = tickets
	s.reservations = reservations
	s.reviews = reviews
	s.feedbacks = overlayReviews(feedbacks, reviews)
	s.refreshedAt = s.now()
	s.recomputeLocked()

	s.log.LogProcess("REFRESH", fmt.Sprintf("%s mode: %d food, %d orders, %d reservations, %d tickets, %d feedbacks",
		s.mode, len(food), len(orders), len(reservations), len(tickets), len(feedbacks)))
	return nil
}

// recomputeLocked rebuilds the dashboard; callers hold mu for writing
func (s *Store) recomputeLocked() {
	s.dashboard = stats.Build(stats.Input{
		Orders:       s.orders,
		Reservations: s.reservations,
		Tickets:      s.tickets,
		Feedbacks:    s.feedbacks,
	}, s.now(), s.dailyTarget)
}

// reload fetches one collection after a successful remote mutation. A
// failure here leaves the previous snapshot in place; the mutation itself
// already succeeded, so it is logged rather than returned.
func reload[T any](ctx context.Context, s *Store, what string, fetch func(context.Context) ([]T, error), assign func([]T)) {
	items, err := fetch(ctx)
	if err != nil {
		s.log.Warn("STORE", fmt.Sprintf("re-fetching %s after mutation: %v", what, err))
		return
	}
	s.mu.Lock()
	assign(items)
	s.recomputeLocked()
	s.mu.Unlock()
}

// commitLocal swaps in next, persists it and recomputes. If persistence
// fails the previous collection is restored. Callers hold writeMu.
func commitLocal[T any](ctx context.Context, s *Store, key, title string, coll *[]T, next []T) error {
	s.mu.Lock()
	prev := *coll
	*coll = next
	s.recomputeLocked()
	s.mu.Unlock()

	if err := s.kv.Save(ctx, key, next); err != nil {
		s.mu.Lock()
		*coll = prev
		s.recomputeLocked()
		s.mu.Unlock()
		s.log.Error("STORE", fmt.Sprintf("persisting %s: %v", key, err))
		return apperr.Storage(title, err)
	}
	return nil
}

func find[T any](items []T, id string, key func(T) string) (int, bool) {
	i := slices.IndexFunc(items, func(v T) bool { return key(v) == id })
	return i, i >= 0
}

func replaced[T any](items []T, i int, v T) []T {
	out := slices.Clone(items)
	out[i] = v
	return out
}

func removed[T any](items []T, i int) []T {
	return slices.Delete(slices.Clone(items), i, i+1)
}

func appended[T any](items []T, v T) []T {
	return append(slices.Clone(items), v)
}

// ── Reads ───────────────────────────────────────────────────────────────────

func (s *Store) Dashboard() stats.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dashboard
}

func (s *Store) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}

func (s *Store) FoodItems() []models.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.food)
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.orders)
}

func (s *Store) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.reservations)
}

func (s *Store) Tickets() []models.SupportTicket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.tickets)
}

func (s *Store) Feedbacks() []models.CustomerFeedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.feedbacks)
}

func (s *Store) FoodItem(id string) (models.FoodItem, error) {
	return lookup(s.FoodItems(), id, "Food Item", func(f models.FoodItem) string { return f.ID })
}

func (s *Store) Order(id string) (models.Order, error) {
	return lookup(s.Orders(), id, "Order", func(o models.Order) string { return o.ID })
}

func (s *Store) Reservation(id string) (models.Reservation, error) {
	return lookup(s.Reservations(), id, "Reservation", func(r models.Reservation) string { return r.ID })
}

func (s *Store) Ticket(id string) (models.SupportTicket, error) {
	return lookup(s.Tickets(), id, "Support Ticket", func(t models.SupportTicket) string { return t.ID })
}

func (s *Store) Feedback(id string) (models.CustomerFeedback, error) {
	return lookup(s.Feedbacks(), id, "Feedback", func(f models.CustomerFeedback) string { return f.ID })
}

func lookup[T any](items []T, id, what string, key func(T) string) (T, error) {
	if i, ok := find(items, id, key); ok {
		return items[i], nil
	}
	var zero T
	return zero, apperr.NotFound(what, id)
}

func cloneOrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}

// StatusHistory returns the recorded transitions of an order
func (s *Store) StatusHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error) {
	if s.audit == nil {
		return []models.OrderStatusHistory{}, nil
	}
	return s.audit.StatusHistory(ctx, orderID)
}

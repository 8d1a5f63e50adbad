package listing

import (
	"cmp"
	"strconv"
	"time"

	"cafe-admin-api/models"
)

// DateLayout is the calendar-date form reservations are stored in
const DateLayout = "2006-01-02"

// RecentLimit is how many rows each dashboard widget shows
const RecentLimit = 5

// ── Orders ──────────────────────────────────────────────────────────────────

func OrdersOldest(a, b models.Order) int {
	return a.CreatedAt.Compare(b.CreatedAt.Time)
}

var OrdersNewest = Desc[models.Order](OrdersOldest)

// OrderSort resolves the "sortBy" option of the orders table
func OrderSort(sortBy string) Compare[models.Order] {
	if sortBy == "oldest" {
		return OrdersOldest
	}
	return OrdersNewest
}

func OrderStatusIs(status string) Predicate[models.Order] {
	return Equals(status, func(o models.Order) models.OrderStatus { return o.Status })
}

// ── Food ────────────────────────────────────────────────────────────────────

func FoodCategoryIs(category string) Predicate[models.FoodItem] {
	return Equals(category, func(f models.FoodItem) models.FoodCategory { return f.Category })
}

// FoodAvailability accepts all, available or unavailable
func FoodAvailability(filter string) Predicate[models.FoodItem] {
	switch filter {
	case "available":
		return func(f models.FoodItem) bool { return f.Available }
	case "unavailable":
		return func(f models.FoodItem) bool { return !f.Available }
	}
	return nil
}

// FoodCategoryOptions is "all" followed by the categories present, in
// first-appearance order.
func FoodCategoryOptions(items []models.FoodItem) []string {
	opts := []string{"all"}
	for _, c := range Distinct(items, func(f models.FoodItem) models.FoodCategory { return f.Category }) {
		opts = append(opts, string(c))
	}
	return opts
}

// ── Reservations ────────────────────────────────────────────────────────────

// ReservationsBySchedule orders by (date, time) ascending
func ReservationsBySchedule(a, b models.Reservation) int {
	if c := cmp.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.Time, b.Time)
}

func ReservationStatusIs(status string) Predicate[models.Reservation] {
	return Equals(status, func(r models.Reservation) models.ReservationStatus { return r.Status })
}

// ReservationDate filters by today, tomorrow or upcoming relative to now.
// Dates compare as YYYY-MM-DD strings.
func ReservationDate(bucket string, now time.Time) Predicate[models.Reservation] {
	today := now.Format(DateLayout)
	switch bucket {
	case "today":
		return func(r models.Reservation) bool { return r.Date == today }
	case "tomorrow":
		tomorrow := now.AddDate(0, 0, 1).Format(DateLayout)
		return func(r models.Reservation) bool { return r.Date == tomorrow }
	case "upcoming":
		return func(r models.Reservation) bool { return r.Date >= today }
	}
	return nil
}

// ── Support tickets ─────────────────────────────────────────────────────────

func ticketsOldest(a, b models.SupportTicket) int {
	return a.CreatedAt.Compare(b.CreatedAt.Time)
}

func ticketsByPriority(a, b models.SupportTicket) int {
	return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
}

// TicketsByUrgency puts urgent first, newest first within a priority
var TicketsByUrgency = Then(Desc[models.SupportTicket](ticketsByPriority), Desc[models.SupportTicket](ticketsOldest))

func TicketStatusIs(status string) Predicate[models.SupportTicket] {
	return Equals(status, func(t models.SupportTicket) models.TicketStatus { return t.Status })
}

func TicketPriorityIs(priority string) Predicate[models.SupportTicket] {
	return Equals(priority, func(t models.SupportTicket) models.TicketPriority { return t.Priority })
}

func TicketProblemIs(problem string) Predicate[models.SupportTicket] {
	return Equals(problem, func(t models.SupportTicket) models.ProblemType { return t.ProblemType })
}

// ── Feedback ────────────────────────────────────────────────────────────────

func feedbackOldest(a, b models.CustomerFeedback) int {
	return a.CreatedAt.Compare(b.CreatedAt.Time)
}

func feedbackByRating(a, b models.CustomerFeedback) int {
	return cmp.Compare(a.Rating, b.Rating)
}

func feedbackByStatus(a, b models.CustomerFeedback) int {
	return cmp.Compare(a.Status.Rank(), b.Status.Rank())
}

// FeedbackByRating is the feedback table order: best rated, then newest
var FeedbackByRating = Then(Desc[models.CustomerFeedback](feedbackByRating), Desc[models.CustomerFeedback](feedbackOldest))

// FeedbackByAttention is the recent-feedback widget order: unhandled
// statuses first, then newest.
var FeedbackByAttention = Then(Desc[models.CustomerFeedback](feedbackByStatus), Desc[models.CustomerFeedback](feedbackOldest))

func FeedbackStatusIs(status string) Predicate[models.CustomerFeedback] {
	return Equals(status, func(f models.CustomerFeedback) models.FeedbackStatus { return f.Status })
}

func FeedbackCategoryIs(category string) Predicate[models.CustomerFeedback] {
	return Equals(category, func(f models.CustomerFeedback) models.FeedbackCategory { return f.Category })
}

// FeedbackRatingIs matches the rating rendered as a string, "1" through "5"
func FeedbackRatingIs(rating string) Predicate[models.CustomerFeedback] {
	if rating == "" || rating == "all" {
		return nil
	}
	return func(f models.CustomerFeedback) bool { return strconv.Itoa(f.Rating) == rating }
}

// FeedbackRecommends accepts all, yes or no
func FeedbackRecommends(filter string) Predicate[models.CustomerFeedback] {
	switch filter {
	case "yes":
		return func(f models.CustomerFeedback) bool { return f.WouldRecommend }
	case "no":
		return func(f models.CustomerFeedback) bool { return !f.WouldRecommend }
	}
	return nil
}

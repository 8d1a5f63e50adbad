package stats

import (
	"strconv"
	"time"

	"cafe-admin-api/models"
)

type ReservationSummary struct {
	TotalReservations   int `json:"totalReservations"`
	PendingReservations int `json:"pendingReservations"`
}

func Reservations(res []models.Reservation) ReservationSummary {
	s := ReservationSummary{TotalReservations: len(res)}
	for _, r := range res {
		if r.Status == models.ReservationPending {
			s.PendingReservations++
		}
	}
	return s
}

// OrderStatusDistribution counts orders per status; every status is present
func OrderStatusDistribution(orders []models.Order) map[models.OrderStatus]int {
	out := make(map[models.OrderStatus]int, len(models.OrderStatuses))
	for _, s := range models.OrderStatuses {
		out[s] = 0
	}
	for _, o := range orders {
		out[o.Status]++
	}
	return out
}

type SupportMetrics struct {
	Total          int                           `json:"total"`
	Open           int                           `json:"open"`
	Resolved       int                           `json:"resolved"`
	Urgent         int                           `json:"urgent"`
	ResolutionRate float64                       `json:"resolutionRate"`
	Satisfaction   float64                       `json:"estimatedSatisfaction"`
	ByStatus       map[models.TicketStatus]int   `json:"byStatus"`
	ByPriority     map[models.TicketPriority]int `json:"byPriority"`
	ByProblemType  map[models.ProblemType]int    `json:"byProblemType"`
}

// Support summarises tickets. Urgent here counts every urgent ticket
// regardless of status, unlike DashboardStats.UrgentTickets.
func Support(tickets []models.SupportTicket) SupportMetrics {
	m := SupportMetrics{
		Total:         len(tickets),
		ByStatus:      zeroed(models.TicketStatuses),
		ByPriority:    zeroed(models.TicketPriorities),
		ByProblemType: zeroed(models.ProblemTypes),
	}
	for _, t := range tickets {
		m.ByStatus[t.Status]++
		m.ByPriority[t.Priority]++
		m.ByProblemType[t.ProblemType]++
		if t.Priority == models.PriorityUrgent {
			m.Urgent++
		}
	}
	m.Open = m.ByStatus[models.TicketOpen]
	m.Resolved = m.ByStatus[models.TicketResolved]
	m.ResolutionRate = percent(m.Resolved, m.Total)
	// estimate shown on the card, clamped to 60–95
	m.Satisfaction = min(95, max(60, m.ResolutionRate+20))
	return m
}

type FeedbackMetrics struct {
	Total              int                             `json:"total"`
	AverageRating      float64                         `json:"averageRating"`
	RecommendationRate float64                         `json:"recommendationRate"`
	New                int                             `json:"new"`
	Responded          int                             `json:"responded"`
	ResponseRate       float64                         `json:"responseRate"`
	ByRating           map[string]int                  `json:"byRating"`
	ByCategory         map[models.FeedbackCategory]int `json:"byCategory"`
	ByStatus           map[models.FeedbackStatus]int   `json:"byStatus"`
}

func Feedback(feedbacks []models.CustomerFeedback) FeedbackMetrics {
	headline := Compute(nil, nil, feedbacks)
	m := FeedbackMetrics{
		Total:              headline.TotalFeedbacks,
		AverageRating:      headline.AverageRating,
		RecommendationRate: headline.RecommendationRate,
		ByRating:           map[string]int{},
		ByCategory:         zeroed(models.FeedbackCategories),
		ByStatus:           zeroed(models.FeedbackStatuses),
	}
	for r := 1; r <= 5; r++ {
		m.ByRating[strconv.Itoa(r)] = 0
	}
	for _, f := range feedbacks {
		m.ByRating[strconv.Itoa(f.Rating)]++
		m.ByCategory[f.Category]++
		m.ByStatus[f.Status]++
	}
	m.New = m.ByStatus[models.FeedbackNew]
	m.Responded = m.ByStatus[models.FeedbackResponded]
	m.ResponseRate = percent(m.Responded, m.Total)
	return m
}

func zeroed[K comparable](keys []K) map[K]int {
	m := make(map[K]int, len(keys))
	for _, k := range keys {
		m[k] = 0
	}
	return m
}

// Input is one consistent snapshot of every collection
type Input struct {
	Orders       []models.Order
	Reservations []models.Reservation
	Tickets      []models.SupportTicket
	Feedbacks    []models.CustomerFeedback
}

// Dashboard is everything the dashboard page renders, computed at once
type Dashboard struct {
	Stats        DashboardStats             `json:"stats"`
	Reservations ReservationSummary         `json:"reservations"`
	OrderStatus  map[models.OrderStatus]int `json:"orderStatus"`
	Support      SupportMetrics             `json:"support"`
	Feedback     FeedbackMetrics            `json:"feedback"`
	Popular      PopularItems               `json:"popularItems"`
	Revenue      RevenueBreakdown           `json:"revenue"`
	ComputedAt   time.Time                  `json:"computedAt"`
}

func Build(in Input, now time.Time, dailyTarget float64) Dashboard {
	return Dashboard{
		Stats:        Compute(in.Orders, in.Tickets, in.Feedbacks),
		Reservations: Reservations(in.Reservations),
		OrderStatus:  OrderStatusDistribution(in.Orders),
		Support:      Support(in.Tickets),
		Feedback:     Feedback(in.Feedbacks),
		Popular:      Popular(in.Orders),
		Revenue:      Revenue(in.Orders, now, dailyTarget),
		ComputedAt:   now,
	}
}

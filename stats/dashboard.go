// Package stats is the aggregation engine: every dashboard number is a
// pure function of the current collections, recomputed in full on each
// change. Division by zero yields 0.
package stats

import (
	"github.com/shopspring/decimal"

	"cafe-admin-api/models"
)

// DashboardStats are the headline cards of the dashboard
type DashboardStats struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	CompletionRate  float64 `json:"completionRate"`
	AvgOrderValue   float64 `json:"avgOrderValue"`

	TotalSupportTickets   int `json:"totalSupportTickets"`
	PendingSupportTickets int `json:"pendingSupportTickets"`
	UrgentTickets         int `json:"urgentTickets"`

	TotalFeedbacks     int     `json:"totalFeedbacks"`
	AverageRating      float64 `json:"averageRating"`
	RecommendationRate float64 `json:"recommendationRate"`
}

// Compute derives the headline stats from orders, tickets and feedbacks.
func Compute(orders []models.Order, tickets []models.SupportTicket, feedbacks []models.CustomerFeedback) DashboardStats {
	var s DashboardStats

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(decimal.NewFromFloat(o.TotalAmount))
		switch o.Status {
		case models.StatusPending, models.StatusPreparing:
			s.PendingOrders++
		case models.StatusDelivered:
			s.CompletedOrders++
		}
	}
	s.TotalOrders = len(orders)
	s.TotalRevenue = money(revenue)
	s.CompletionRate = percent(s.CompletedOrders, s.TotalOrders)
	s.AvgOrderValue = average(revenue, s.TotalOrders)

	for _, t := range tickets {
		if t.Status.IsPending() {
			s.PendingSupportTickets++
			if t.Priority == models.PriorityUrgent {
				s.UrgentTickets++
			}
		}
	}
	s.TotalSupportTickets = len(tickets)

	ratingSum, recommended := 0, 0
	for _, f := range feedbacks {
		ratingSum += f.Rating
		if f.WouldRecommend {
			recommended++
		}
	}
	s.TotalFeedbacks = len(feedbacks)
	if s.TotalFeedbacks > 0 {
		s.AverageRating = float64(ratingSum) / float64(s.TotalFeedbacks)
	}
	s.RecommendationRate = percent(recommended, s.TotalFeedbacks)

	return s
}

// percent is n/total×100, or 0 when total is 0
func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// average divides a money sum by a count, or 0 when the count is 0
func average(sum decimal.Decimal, n int) float64 {
	if n == 0 {
		return 0
	}
	return money(sum.Div(decimal.NewFromInt(int64(n))))
}

// money converts a decimal sum to float64; rounding is left to whoever
// renders it
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

package stats

import (
	"testing"
	"time"

	"cafe-admin-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOrderScenario(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusPending, TotalAmount: 10},
		{Status: models.StatusDelivered, TotalAmount: 20},
	}
	s := Compute(orders, nil, nil)

	assert.Equal(t, 2, s.TotalOrders)
	assert.Equal(t, 1, s.PendingOrders)
	assert.Equal(t, 1, s.CompletedOrders)
	assert.Equal(t, 50.0, s.CompletionRate)
	assert.Equal(t, 30.0, s.TotalRevenue)
	assert.Equal(t, 15.0, s.AvgOrderValue)
}

func TestComputeFeedbackScenario(t *testing.T) {
	fbs := []models.CustomerFeedback{
		{Rating: 5, WouldRecommend: true},
		{Rating: 3, WouldRecommend: false},
	}
	s := Compute(nil, nil, fbs)
	assert.Equal(t, 4.0, s.AverageRating)
	assert.Equal(t, 50.0, s.RecommendationRate)
}

func TestComputeEmptyIsAllZero(t *testing.T) {
	assert.Equal(t, DashboardStats{}, Compute(nil, nil, nil))
}

func TestPreparingCountsAsPending(t *testing.T) {
	s := Compute([]models.Order{
		{Status: models.StatusPreparing}, {Status: models.StatusReady}, {Status: models.StatusCancelled},
	}, nil, nil)
	assert.Equal(t, 1, s.PendingOrders)
	assert.Equal(t, 0, s.CompletedOrders)
	assert.Equal(t, 0.0, s.CompletionRate)
}

func TestRevenueInvariants(t *testing.T) {
	thirds := make([]float64, 999)
	for i := range thirds {
		if i%3 == 0 {
			thirds[i] = 1
		}
	}
	amounts := [][]float64{{}, {9.99}, {0.1, 0.2, 0.3}, {12.5, 7.25, 3, 100}, {1, 1, 0}, {0.004, 0.004}, thirds}
	for _, set := range amounts {
		var orders []models.Order
		sum := 0.0
		for _, a := range set {
			orders = append(orders, models.Order{TotalAmount: a})
			sum += a
		}
		s := Compute(orders, nil, nil)
		assert.InDelta(t, sum, s.TotalRevenue, 1e-9)
		assert.InDelta(t, s.TotalRevenue, s.AvgOrderValue*float64(s.TotalOrders), 1e-9)

		r := Revenue(orders, time.Now(), 0)
		assert.InDelta(t, sum, r.TotalRevenue, 1e-9)
		assert.InDelta(t, r.TotalRevenue, r.AvgOrderValue*float64(len(orders)), 1e-9)
	}
}

func TestRevenueKeepsFractionsOfCents(t *testing.T) {
	orders := []models.Order{
		{TotalAmount: 0.004, Items: []models.OrderItem{{FoodID: "a", Price: 0.004, Quantity: 1}}},
		{TotalAmount: 0.004, Items: []models.OrderItem{{FoodID: "a", Price: 0.004, Quantity: 1}}},
	}
	assert.InDelta(t, 0.008, Compute(orders, nil, nil).TotalRevenue, 1e-12)
	assert.InDelta(t, 0.008, Popularity(orders)[0].TotalRevenue, 1e-12)
}

func TestTicketCounts(t *testing.T) {
	tickets := []models.SupportTicket{
		{Status: models.TicketOpen, Priority: models.PriorityUrgent},
		{Status: models.TicketInProgress, Priority: models.PriorityLow},
		{Status: models.TicketResolved, Priority: models.PriorityUrgent},
		{Status: models.TicketClosed, Priority: models.PriorityHigh},
	}
	s := Compute(nil, tickets, nil)
	assert.Equal(t, 4, s.TotalSupportTickets)
	assert.Equal(t, 2, s.PendingSupportTickets)
	assert.Equal(t, 1, s.UrgentTickets)
	assert.LessOrEqual(t, s.PendingSupportTickets, s.TotalSupportTickets)
	assert.LessOrEqual(t, s.UrgentTickets, s.PendingSupportTickets)

	m := Support(tickets)
	assert.Equal(t, 2, m.Urgent)
	assert.Equal(t, 1, m.Open)
	assert.Equal(t, 25.0, m.ResolutionRate)
	assert.Equal(t, 60.0, m.Satisfaction)
	assert.Equal(t, 0, m.ByProblemType[models.ProblemBilling])
}

func TestPopularitySameFood(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{{FoodID: "latte", Name: "Latte", Quantity: 2, Price: 4}}},
		{Items: []models.OrderItem{{FoodID: "latte", Name: "Latte", Quantity: 3, Price: 4}}},
	}
	items := Popularity(orders)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].TotalOrdered)
	assert.Equal(t, 2, items[0].OrderCount)
	assert.Equal(t, 20.0, items[0].TotalRevenue)
}

func TestPopularTiesKeepEncounterOrder(t *testing.T) {
	var lines []models.OrderItem
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		lines = append(lines, models.OrderItem{FoodID: id, Quantity: 1, Price: 1})
	}
	lines = append(lines, models.OrderItem{FoodID: "f", Quantity: 1, Price: 10})

	p := Popular([]models.Order{{Items: lines}})

	require.Len(t, p.TopByQuantity, 5)
	assert.Equal(t, "f", p.TopByQuantity[0].FoodID)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{
		p.TopByQuantity[1].FoodID, p.TopByQuantity[2].FoodID, p.TopByQuantity[3].FoodID, p.TopByQuantity[4].FoodID,
	})
	require.Len(t, p.TopByRevenue, 3)
	assert.Equal(t, "f", p.TopByRevenue[0].FoodID)
	assert.Equal(t, 11.0, p.TopByRevenue[0].TotalRevenue)
	assert.Equal(t, "a", p.TopByRevenue[1].FoodID)
}

func TestRevenueBreakdown(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) models.Timestamp {
		return models.NewTimestamp(now.AddDate(0, 0, -offset).Add(-time.Hour))
	}
	orders := []models.Order{
		{TotalAmount: 100, CreatedAt: day(0)},
		{TotalAmount: 150, CreatedAt: day(0)},
		{TotalAmount: 200, CreatedAt: day(1)},
		{TotalAmount: 50, CreatedAt: day(6)},
		{TotalAmount: 999, CreatedAt: day(9)},
	}
	r := Revenue(orders, now, 0)

	require.Len(t, r.Daily, ChartDays)
	assert.Equal(t, "2024-06-04", r.Daily[0].Date)
	assert.Equal(t, "Jun 10", r.Daily[6].Label)
	assert.Equal(t, 250.0, r.TodayRevenue)
	assert.Equal(t, 2, r.Daily[6].Orders)
	assert.Equal(t, 200.0, r.YesterdayRevenue)
	assert.Equal(t, 25.0, r.RevenueChange)
	assert.Equal(t, "2024-06-10", r.PeakDay.Date)
	// days 0-2 sum to 50, days 4-6 to 450
	assert.Equal(t, 800.0, r.WeeklyGrowth)
	assert.Equal(t, 50.0, r.TargetProgress)
	assert.False(t, r.TargetMet)
	assert.Equal(t, 1499.0, r.TotalRevenue)
}

func TestRevenueWithoutBaselines(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	r := Revenue([]models.Order{{TotalAmount: 40, CreatedAt: models.NewTimestamp(now)}}, now, 40)
	assert.Equal(t, 0.0, r.RevenueChange)
	assert.Equal(t, 0.0, r.WeeklyGrowth)
	assert.True(t, r.TargetMet)
	assert.Equal(t, 100.0, r.TargetProgress)
}

func TestFeedbackMetrics(t *testing.T) {
	m := Feedback([]models.CustomerFeedback{
		{Rating: 4, Status: models.FeedbackNew, Category: models.FeedbackService},
		{Rating: 4, Status: models.FeedbackResponded, Category: models.FeedbackService, WouldRecommend: true},
	})
	assert.Equal(t, 2, m.ByRating["4"])
	assert.Equal(t, 0, m.ByRating["1"])
	assert.Equal(t, 1, m.New)
	assert.Equal(t, 50.0, m.ResponseRate)
	assert.Equal(t, 2, m.ByCategory[models.FeedbackService])
}

func TestBuildCarriesReservations(t *testing.T) {
	d := Build(Input{Reservations: []models.Reservation{
		{Status: models.ReservationPending}, {Status: models.ReservationConfirmed},
	}}, time.Now(), 0)
	assert.Equal(t, ReservationSummary{TotalReservations: 2, PendingReservations: 1}, d.Reservations)
	assert.Equal(t, 0, d.OrderStatus[models.StatusDelivered])
	assert.NotNil(t, d.Popular.TopByQuantity)
}

package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"cafe-admin-api/models"
)

// ChartDays is the width of the revenue and orders charts
const ChartDays = 7

// DefaultDailyTarget is the revenue goal shown on the dashboard
const DefaultDailyTarget = 500.0

type DayRevenue struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type RevenueBreakdown struct {
	Daily            []DayRevenue `json:"daily"`
	TotalRevenue     float64      `json:"totalRevenue"`
	TodayRevenue     float64      `json:"todayRevenue"`
	YesterdayRevenue float64      `json:"yesterdayRevenue"`
	RevenueChange    float64      `json:"revenueChange"`
	AvgOrderValue    float64      `json:"avgOrderValue"`
	PeakDay          DayRevenue   `json:"peakDay"`
	WeeklyGrowth     float64      `json:"weeklyGrowth"`
	DailyTarget      float64      `json:"dailyTarget"`
	TargetProgress   float64      `json:"targetProgress"`
	TargetMet        bool         `json:"targetMet"`
}

// Days buckets orders into the last ChartDays calendar days ending today
// (in now's location), oldest first. Orders outside the window are ignored.
func Days(orders []models.Order, now time.Time) []DayRevenue {
	today := startOfDay(now)
	first := today.AddDate(0, 0, -(ChartDays - 1))

	days := make([]DayRevenue, ChartDays)
	sums := make([]decimal.Decimal, ChartDays)
	for i := range days {
		d := first.AddDate(0, 0, i)
		days[i] = DayRevenue{Date: d.Format("2006-01-02"), Label: d.Format("Jan 2")}
		sums[i] = decimal.Zero
	}

	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		created := startOfDay(o.CreatedAt.In(now.Location()))
		for i := range days {
			if created.Equal(first.AddDate(0, 0, i)) {
				days[i].Orders++
				sums[i] = sums[i].Add(decimal.NewFromFloat(o.TotalAmount))
				break
			}
		}
	}
	for i := range days {
		days[i].Revenue = money(sums[i])
	}
	return days
}

// Revenue builds the revenue analytics card. A target of 0 falls back to
// DefaultDailyTarget.
func Revenue(orders []models.Order, now time.Time, target float64) RevenueBreakdown {
	if target <= 0 {
		target = DefaultDailyTarget
	}
	days := Days(orders, now)

	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(decimal.NewFromFloat(o.TotalAmount))
	}

	r := RevenueBreakdown{
		Daily:            days,
		TotalRevenue:     money(total),
		TodayRevenue:     days[ChartDays-1].Revenue,
		YesterdayRevenue: days[ChartDays-2].Revenue,
		AvgOrderValue:    average(total, len(orders)),
		PeakDay:          days[0],
		DailyTarget:      target,
	}
	r.RevenueChange = growth(r.YesterdayRevenue, r.TodayRevenue)

	for _, d := range days[1:] {
		if d.Revenue > r.PeakDay.Revenue {
			r.PeakDay = d
		}
	}

	// first three days against the last three; the middle day is left out
	var firstHalf, secondHalf float64
	for _, d := range days[:3] {
		firstHalf += d.Revenue
	}
	for _, d := range days[ChartDays-3:] {
		secondHalf += d.Revenue
	}
	r.WeeklyGrowth = growth(firstHalf, secondHalf)

	r.TargetProgress = r.TodayRevenue / target * 100
	r.TargetMet = r.TodayRevenue >= target
	return r
}

// growth is the percentage change from before to after, 0 without a base
func growth(before, after float64) float64 {
	if before <= 0 {
		return 0
	}
	return (after - before) / before * 100
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

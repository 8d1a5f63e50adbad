package stats

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"cafe-admin-api/models"
)

const (
	topByQuantity = 5
	topByRevenue  = 3
)

type ItemPopularity struct {
	FoodID       string  `json:"foodId"`
	Name         string  `json:"name"`
	TotalOrdered int     `json:"totalOrdered"`
	TotalRevenue float64 `json:"totalRevenue"`
	OrderCount   int     `json:"orderCount"`
}

type PopularItems struct {
	TopByQuantity []ItemPopularity `json:"topByQuantity"`
	TopByRevenue  []ItemPopularity `json:"topByRevenue"`
}

// Popularity accumulates every line item by foodId, in first-encounter order.
func Popularity(orders []models.Order) []ItemPopularity {
	index := map[string]int{}
	var items []ItemPopularity
	revenue := []decimal.Decimal{}

	for _, o := range orders {
		for _, li := range o.Items {
			i, ok := index[li.FoodID]
			if !ok {
				i = len(items)
				index[li.FoodID] = i
				items = append(items, ItemPopularity{FoodID: li.FoodID, Name: li.Name})
				revenue = append(revenue, decimal.Zero)
			}
			items[i].TotalOrdered += li.Quantity
			items[i].OrderCount++
			revenue[i] = revenue[i].Add(li.LineTotal())
		}
	}
	for i := range items {
		items[i].TotalRevenue = money(revenue[i])
	}
	return items
}

// Popular ranks items by quantity (top 5) and by revenue (top 3). Ties keep
// first-encounter order.
func Popular(orders []models.Order) PopularItems {
	all := Popularity(orders)

	byQty := slices.Clone(all)
	slices.SortStableFunc(byQty, func(a, b ItemPopularity) int {
		return cmp.Compare(b.TotalOrdered, a.TotalOrdered)
	})
	byRev := slices.Clone(all)
	slices.SortStableFunc(byRev, func(a, b ItemPopularity) int {
		return cmp.Compare(b.TotalRevenue, a.TotalRevenue)
	})

	return PopularItems{
		TopByQuantity: head(byQty, topByQuantity),
		TopByRevenue:  head(byRev, topByRevenue),
	}
}

func head(items []ItemPopularity, n int) []ItemPopularity {
	if len(items) > n {
		items = items[:n]
	}
	if items == nil {
		return []ItemPopularity{}
	}
	return items
}

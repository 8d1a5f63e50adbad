package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a café order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{
	StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled,
}

// IsTerminal reports whether no further transition is possible
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Editable reports whether the order contents may still be changed
func (s OrderStatus) Editable() bool {
	return s == StatusPending || s == StatusPreparing
}

type Order struct {
	ID                  string      `json:"id"`
	CustomerName        string      `json:"customerName" validate:"required"`
	TableNumber         string      `json:"tableNumber" validate:"required"`
	CustomerEmail       string      `json:"customerEmail,omitempty" validate:"omitempty,looseemail"`
	CustomerPhoneNumber string      `json:"customerPhoneNumber,omitempty"`
	Items               []OrderItem `json:"items" validate:"required,min=1,dive"`
	TotalAmount         float64     `json:"totalAmount"`
	Status              OrderStatus `json:"status" validate:"omitempty,orderstatus"`
	From                string      `json:"from,omitempty"`
	CreatedAt           Timestamp   `json:"createdAt"`
	UpdatedAt           Timestamp   `json:"updatedAt"`
}

// OrderItem is a line item; name and price are snapshots taken when ordered
type OrderItem struct {
	FoodID   string  `json:"foodId" validate:"required"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity" validate:"gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// LineTotal is price × quantity
func (i OrderItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemsTotal recomputes the order total from its line items.
func (o Order) ItemsTotal() float64 {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum.Round(2).InexactFloat64()
}

// References reports whether any line item points at the given food item
func (o Order) References(foodID string) bool {
	for _, item := range o.Items {
		if item.FoodID == foodID {
			return true
		}
	}
	return false
}

// OrderStatusHistory tracks every status change of an order
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    string      `json:"orderId" gorm:"index;not null"`
	FromStatus OrderStatus `json:"fromStatus"`
	ToStatus   OrderStatus `json:"toStatus" gorm:"not null"`
	ChangedBy  string      `json:"changedBy"` // email of the admin who triggered it
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"createdAt"`
}

package models

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

var ReservationStatuses = []ReservationStatus{
	ReservationPending, ReservationConfirmed, ReservationCancelled,
}

// Reservation dates are calendar strings (YYYY-MM-DD) and times are HH:MM,
// so lexical comparison matches chronological order.
type Reservation struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customerName" validate:"required"`
	Email        string            `json:"email" validate:"required,looseemail"`
	Phone        string            `json:"phone" validate:"required"`
	Date         string            `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string            `json:"time" validate:"required,datetime=15:04"`
	PartySize    int               `json:"partySize" validate:"gte=1"`
	Status       ReservationStatus `json:"status" validate:"omitempty,reservationstatus"`
	Notes        string            `json:"notes"`
	CreatedAt    Timestamp         `json:"createdAt"`
	UpdatedAt    Timestamp         `json:"updatedAt"`
}

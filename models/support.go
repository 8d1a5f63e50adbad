package models

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in-progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

var TicketStatuses = []TicketStatus{TicketOpen, TicketInProgress, TicketResolved, TicketClosed}

// IsPending reports whether the ticket still needs attention
func (s TicketStatus) IsPending() bool {
	return s == TicketOpen || s == TicketInProgress
}

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

var TicketPriorities = []TicketPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Rank orders priorities low=1 through urgent=4; unknown values rank 0
func (p TicketPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type ProblemType string

const (
	ProblemFoodQuality ProblemType = "food-quality"
	ProblemService     ProblemType = "service"
	ProblemBilling     ProblemType = "billing"
	ProblemCleanliness ProblemType = "cleanliness"
	ProblemOther       ProblemType = "other"
)

var ProblemTypes = []ProblemType{
	ProblemFoodQuality, ProblemService, ProblemBilling, ProblemCleanliness, ProblemOther,
}

type SupportTicket struct {
	ID            string         `json:"id"`
	CustomerName  string         `json:"customerName" validate:"required"`
	CustomerEmail string         `json:"customerEmail" validate:"required,looseemail"`
	TableNumber   string         `json:"tableNumber" validate:"required"`
	ProblemType   ProblemType    `json:"problemType" validate:"required,problemtype"`
	Priority      TicketPriority `json:"priority" validate:"required,priority"`
	Status        TicketStatus   `json:"status" validate:"omitempty,ticketstatus"`
	Description   string         `json:"problemDesc" validate:"required"`
	CreatedAt     Timestamp      `json:"createdAt"`
	UpdatedAt     Timestamp      `json:"updatedAt"`
}

package models

type FeedbackStatus string

const (
	FeedbackNew       FeedbackStatus = "new"
	FeedbackReviewed  FeedbackStatus = "reviewed"
	FeedbackResponded FeedbackStatus = "responded"
	FeedbackArchived  FeedbackStatus = "archived"
)

var FeedbackStatuses = []FeedbackStatus{FeedbackNew, FeedbackReviewed, FeedbackResponded, FeedbackArchived}

// Rank is the attention weight used by the recent-feedback widget:
// new=4, reviewed=3, responded=2, archived=1.
func (s FeedbackStatus) Rank() int {
	switch s {
	case FeedbackNew:
		return 4
	case FeedbackReviewed:
		return 3
	case FeedbackResponded:
		return 2
	case FeedbackArchived:
		return 1
	}
	return 0
}

type FeedbackCategory string

const (
	FeedbackFoodQuality FeedbackCategory = "food-quality"
	FeedbackService     FeedbackCategory = "service"
	FeedbackAmbiance    FeedbackCategory = "ambiance"
	FeedbackValue       FeedbackCategory = "value"
	FeedbackCleanliness FeedbackCategory = "cleanliness"
	FeedbackOverall     FeedbackCategory = "overall"
)

var FeedbackCategories = []FeedbackCategory{
	FeedbackFoodQuality, FeedbackService, FeedbackAmbiance,
	FeedbackValue, FeedbackCleanliness, FeedbackOverall,
}

type CustomerFeedback struct {
	ID             string           `json:"id"`
	CustomerName   string           `json:"customerName" validate:"required"`
	Email          string           `json:"email" validate:"required,looseemail"`
	OrderNumber    string           `json:"orderNumber,omitempty"`
	Rating         int              `json:"rating" validate:"min=1,max=5"`
	Category       FeedbackCategory `json:"category" validate:"required,feedbackcategory"`
	Description    string           `json:"description" validate:"required"`
	WouldRecommend bool             `json:"wouldRecommend"`
	Suggestions    string           `json:"suggestions,omitempty"`
	Status         FeedbackStatus   `json:"status" validate:"omitempty,feedbackstatus"`
	AdminResponse  string           `json:"adminResponse,omitempty"`
	CreatedAt      Timestamp        `json:"createdAt"`
	UpdatedAt      Timestamp        `json:"updatedAt"`
}

// FeedbackReview is the admin-side state kept for a feedback record that
// the remote API cannot update.
type FeedbackReview struct {
	Status        FeedbackStatus `json:"status"`
	AdminResponse string         `json:"adminResponse,omitempty"`
	UpdatedAt     Timestamp      `json:"updatedAt"`
}

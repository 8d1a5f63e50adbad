package models

// FoodCategory is the menu section a food item is listed under
type FoodCategory string

const (
	CategoryBeverages FoodCategory = "Beverages"
	CategoryBreakfast FoodCategory = "Breakfast"
	CategoryLunch     FoodCategory = "Lunch"
	CategoryDinner    FoodCategory = "Dinner"
	CategoryPastries  FoodCategory = "Pastries"
	CategoryDesserts  FoodCategory = "Desserts"
)

var FoodCategories = []FoodCategory{
	CategoryBeverages,
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategoryPastries,
	CategoryDesserts,
}

// Mood is a tag describing how a dish feels to eat
type Mood string

const (
	MoodHealthy    Mood = "Healthy"
	MoodRelaxing   Mood = "Relaxing"
	MoodEnergizing Mood = "Energizing"
	MoodIndulgent  Mood = "Indulgent"
	MoodLight      Mood = "Light"
	MoodSweet      Mood = "Sweet"
	MoodSavory     Mood = "Savory"
	MoodHappy      Mood = "Happy"
	MoodFocused    Mood = "Focused"
)

var Moods = []Mood{
	MoodHealthy, MoodRelaxing, MoodEnergizing, MoodIndulgent, MoodLight,
	MoodSweet, MoodSavory, MoodHappy, MoodFocused,
}

// DefaultFoodImage is used when an item is saved without an image URL
const DefaultFoodImage = "https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg"

type FoodItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	Price        float64      `json:"price" validate:"gt=0"`
	Category     FoodCategory `json:"category" validate:"required,foodcategory"`
	Available    bool         `json:"available"`
	IsVegetarian bool         `json:"isVegetarian"`
	IsFeatured   bool         `json:"isFeatured"`
	Moods        []Mood       `json:"moods" validate:"dive,mood"`
	Image        string       `json:"image" validate:"omitempty,url"`
}

// WithDefaults fills in the placeholder image and an empty mood set.
func (f FoodItem) WithDefaults() FoodItem {
	if f.Image == "" {
		f.Image = DefaultFoodImage
	}
	if f.Moods == nil {
		f.Moods = []Mood{}
	}
	return f
}

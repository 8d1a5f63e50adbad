package validation

import (
	"testing"

	"cafe-admin-api/apperr"
	"cafe-admin-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
	return apperr.As(err).Fields
}

func TestFoodItemMessages(t *testing.T) {
	v := New()
	fields := fieldsOf(t, v.Struct("Add Failed", models.FoodItem{Price: -1, Category: "Brunch", Moods: []models.Mood{"Grumpy"}}))

	assert.Equal(t, "Name is required", fields["name"])
	assert.Equal(t, "Description is required", fields["description"])
	assert.Equal(t, "Price must be a positive number", fields["price"])
	assert.Equal(t, "Category is not a valid option", fields["category"])
	assert.Equal(t, "Moods is not a valid option", fields["moods[0]"])
}

func TestValidFoodItemPasses(t *testing.T) {
	v := New()
	item := models.FoodItem{
		Name: "Latte", Description: "Milky", Price: 3.5,
		Category: models.CategoryBeverages, Moods: []models.Mood{models.MoodRelaxing},
	}
	assert.NoError(t, v.Struct("Add Failed", item))
}

func TestOrderLineItems(t *testing.T) {
	v := New()
	fields := fieldsOf(t, v.Struct("Add Failed", models.Order{CustomerName: "Ann", TableNumber: "4"}))
	assert.Equal(t, "At least one item is required", fields["items"])

	fields = fieldsOf(t, v.Struct("Add Failed", models.Order{
		CustomerName: "Ann", TableNumber: "4",
		Items: []models.OrderItem{{FoodID: "f1", Quantity: 0, Price: 2}},
	}))
	assert.Equal(t, "Quantity must be greater than 0", fields["items[0].quantity"])
}

func TestReservationRules(t *testing.T) {
	v := New()
	fields := fieldsOf(t, v.Struct("Add Failed", models.Reservation{
		CustomerName: "Bo", Email: "not-an-email", Phone: "555",
		Date: "2024-13-40", Time: "19:00", PartySize: 0,
	}))
	assert.Equal(t, "Email is invalid", fields["email"])
	assert.Equal(t, "Date is invalid", fields["date"])
	assert.Equal(t, "Valid party size is required", fields["partySize"])
	assert.NotContains(t, fields, "time")
}

func TestLooseEmailMatchesAnywhere(t *testing.T) {
	v := New()
	ticket := models.SupportTicket{
		CustomerName: "Cy", CustomerEmail: "cy@cafe.io", TableNumber: "2",
		ProblemType: models.ProblemBilling, Priority: models.PriorityHigh, Description: "Overcharged",
	}
	assert.NoError(t, v.Struct("Add Failed", ticket))

	ticket.Description = ""
	ticket.Priority = "critical"
	fields := fieldsOf(t, v.Struct("Add Failed", ticket))
	assert.Equal(t, "Problem description is required", fields["problemDesc"])
	assert.Equal(t, "Priority is not a valid option", fields["priority"])
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Customer name", Label("customerName"))
	assert.Equal(t, "Email", Label("email"))
}

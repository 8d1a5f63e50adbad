package statemachine

import (
	"testing"

	"cafe-admin-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHappyPath(t *testing.T) {
	path := []models.OrderStatus{models.StatusPending, models.StatusPreparing, models.StatusReady, models.StatusDelivered}
	for i := 0; i < len(path)-1; i++ {
		assert.NoError(t, CanTransition(path[i], path[i+1]))
	}
}

func TestOrderCancellation(t *testing.T) {
	for _, from := range []models.OrderStatus{models.StatusPending, models.StatusPreparing, models.StatusReady} {
		assert.NoError(t, CanTransition(from, models.StatusCancelled), from)
	}
	assert.ErrorIs(t, CanTransition(models.StatusDelivered, models.StatusCancelled), ErrInvalidTransition)
	assert.ErrorIs(t, CanTransition(models.StatusCancelled, models.StatusCancelled), ErrInvalidTransition)
}

func TestCancelledIsTerminal(t *testing.T) {
	err := CanTransition(models.StatusCancelled, models.StatusPreparing)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), "none (terminal state)")
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestNoSkippingOrGoingBack(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusPending, models.StatusReady))
	assert.Error(t, CanTransition(models.StatusReady, models.StatusPreparing))
	assert.Error(t, CanTransition(models.StatusPending, models.StatusPending))
}

func TestTerminalStates(t *testing.T) {
	assert.ElementsMatch(t, []models.OrderStatus{models.StatusDelivered, models.StatusCancelled}, TerminalStates())
	assert.Equal(t, []models.OrderStatus{models.StatusReady, models.StatusCancelled}, ValidTransitionsFrom(models.StatusPreparing))
}

func TestTicketProgression(t *testing.T) {
	assert.NoError(t, TicketProgression.Check(models.TicketOpen, models.TicketInProgress))
	assert.NoError(t, TicketProgression.Check(models.TicketOpen, models.TicketClosed))
	assert.ErrorIs(t, TicketProgression.Check(models.TicketResolved, models.TicketOpen), ErrInvalidTransition)
	assert.ErrorIs(t, TicketProgression.Check(models.TicketClosed, models.TicketClosed), ErrInvalidTransition)
	assert.ErrorIs(t, TicketProgression.Check(models.TicketOpen, "escalated"), ErrInvalidTransition)
	assert.Equal(t, models.TicketClosed, TicketProgression.Terminal())
	assert.Empty(t, TicketProgression.Next(models.TicketClosed))
}

func TestFeedbackProgression(t *testing.T) {
	assert.NoError(t, FeedbackProgression.Check(models.FeedbackNew, models.FeedbackResponded))
	assert.Error(t, FeedbackProgression.Check(models.FeedbackArchived, models.FeedbackNew))
	assert.Equal(t,
		[]models.FeedbackStatus{models.FeedbackResponded, models.FeedbackArchived},
		FeedbackProgression.Next(models.FeedbackReviewed))
}

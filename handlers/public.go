package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/models"
	"cafe-admin-api/statemachine"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"service":      "Café Admin Dashboard API",
		"version":      "1.0.0",
		"mode":         h.store.Mode(),
		"refreshed_at": h.store.RefreshedAt(),
	})
}

// GetStateMachineInfo returns the order lifecycle and the forward-only
// ticket and feedback progressions
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	info := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	ok(c, http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": statemachine.TerminalStates(),
		"editable_states": editableStates(),
		"ticket_flow":     statemachine.TicketProgression.Next(models.TicketOpen),
		"feedback_flow":   statemachine.FeedbackProgression.Next(models.FeedbackNew),
		"description":     "Café Order Lifecycle State Machine",
	})
}

func editableStates() []models.OrderStatus {
	var out []models.OrderStatus
	for _, s := range models.OrderStatuses {
		if s.Editable() {
			out = append(out, s)
		}
	}
	return out
}

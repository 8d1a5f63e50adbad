package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/listing"
	"cafe-admin-api/models"
)

// ListTickets filters by ?status=, ?priority= and ?problemType=; most
// urgent first
func (h *Handler) ListTickets(c *gin.Context) {
	items := listing.Sort(
		listing.Filter(h.store.Tickets(),
			listing.TicketStatusIs(c.Query("status")),
			listing.TicketPriorityIs(c.Query("priority")),
			listing.TicketProblemIs(c.Query("problemType")),
		),
		listing.TicketsByUrgency,
	)
	listed(c, items, gin.H{"metrics": h.store.Dashboard().Support})
}

func (h *Handler) GetTicket(c *gin.Context) {
	t, err := h.store.Ticket(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, t)
}

func (h *Handler) AddTicket(c *gin.Context) {
	var req models.SupportTicket
	if !bind(c, "Add Failed", &req) {
		return
	}
	t, err := h.store.AddTicket(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, t)
}

func (h *Handler) UpdateTicket(c *gin.Context) {
	var req models.SupportTicket
	if !bind(c, "Update Failed", &req) {
		return
	}
	req.ID = c.Param("id")
	t, err := h.store.UpdateTicket(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, t)
}

func (h *Handler) UpdateTicketStatus(c *gin.Context) {
	var req struct {
		Status models.TicketStatus `json:"status"`
	}
	if !bind(c, "Update Failed", &req) {
		return
	}
	t, err := h.store.UpdateTicketStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, t)
}

func (h *Handler) DeleteTicket(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteTicket(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id, "message": "Support ticket deleted"})
}

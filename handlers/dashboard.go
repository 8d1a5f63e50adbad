package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/listing"
)

// GetDashboard returns every widget computed from the current snapshot
func (h *Handler) GetDashboard(c *gin.Context) {
	ok(c, http.StatusOK, h.store.Dashboard())
}

func (h *Handler) GetStats(c *gin.Context) {
	ok(c, http.StatusOK, h.store.Dashboard().Stats)
}

func (h *Handler) GetRevenue(c *gin.Context) {
	ok(c, http.StatusOK, h.store.Dashboard().Revenue)
}

func (h *Handler) GetPopularItems(c *gin.Context) {
	ok(c, http.StatusOK, h.store.Dashboard().Popular)
}

// GetRecent feeds the "recent activity" widgets, five rows each
func (h *Handler) GetRecent(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{
		"orders":       listing.Recent(h.store.Orders(), listing.OrdersNewest, listing.RecentLimit),
		"reservations": listing.Recent(h.store.Reservations(), listing.ReservationsBySchedule, listing.RecentLimit),
		"tickets":      listing.Recent(h.store.Tickets(), listing.TicketsByUrgency, listing.RecentLimit),
		"feedbacks":    listing.Recent(h.store.Feedbacks(), listing.FeedbackByAttention, listing.RecentLimit),
	})
}

// Refresh re-fetches every collection and recomputes the dashboard
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.store.Refresh(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, h.store.Dashboard())
}

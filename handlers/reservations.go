package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/listing"
	"cafe-admin-api/models"
)

// ListReservations filters by ?status= and ?date= (today, tomorrow,
// upcoming) and orders by date then time
func (h *Handler) ListReservations(c *gin.Context) {
	items := listing.Sort(
		listing.Filter(h.store.Reservations(),
			listing.ReservationStatusIs(c.Query("status")),
			listing.ReservationDate(c.Query("date"), h.now()),
		),
		listing.ReservationsBySchedule,
	)
	listed(c, items, gin.H{"summary": h.store.Dashboard().Reservations})
}

func (h *Handler) AddReservation(c *gin.Context) {
	var req models.Reservation
	if !bind(c, "Add Failed", &req) {
		return
	}
	r, err := h.store.AddReservation(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, r)
}

func (h *Handler) UpdateReservation(c *gin.Context) {
	var req models.Reservation
	if !bind(c, "Update Failed", &req) {
		return
	}
	req.ID = c.Param("id")
	r, err := h.store.UpdateReservation(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, r)
}

func (h *Handler) SetReservationStatus(c *gin.Context) {
	var req struct {
		Status models.ReservationStatus `json:"status"`
	}
	if !bind(c, "Update Failed", &req) {
		return
	}
	r, err := h.store.SetReservationStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, r)
}

func (h *Handler) DeleteReservation(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteReservation(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id, "message": "Reservation deleted"})
}

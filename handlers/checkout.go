package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/models"
)

// StartCheckout creates a payment link for a new order; the order is only
// placed once CompleteCheckout sees it paid
func (h *Handler) StartCheckout(c *gin.Context) {
	var req models.Order
	if !bind(c, "Checkout Failed", &req) {
		return
	}
	checkout, err := h.store.StartCheckout(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, checkout)
}

func (h *Handler) CompleteCheckout(c *gin.Context) {
	order, err := h.store.CompleteCheckout(c.Request.Context(), c.Param("linkId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"title": "Order Placed", "order": order})
}

// Reorder sends a copy of an existing order through checkout
func (h *Handler) Reorder(c *gin.Context) {
	checkout, err := h.store.Reorder(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, checkout)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/apperr"
	"cafe-admin-api/listing"
	"cafe-admin-api/middleware"
	"cafe-admin-api/models"
	"cafe-admin-api/statemachine"
)

// ListOrders returns orders filtered by ?status= and sorted by ?sortBy=
// (newest, the default, or oldest) with a per-status summary
func (h *Handler) ListOrders(c *gin.Context) {
	all := h.store.Orders()
	orders := listing.Sort(
		listing.Filter(all, listing.OrderStatusIs(c.Query("status"))),
		listing.OrderSort(c.Query("sortBy")),
	)
	listed(c, orders, gin.H{"order_summary": h.store.Dashboard().OrderStatus})
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.store.Order(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"order":             order,
		"editable":          order.Status.Editable(),
		"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
	})
}

func (h *Handler) AddOrder(c *gin.Context) {
	var req models.Order
	if !bind(c, "Add Failed", &req) {
		return
	}
	order, err := h.store.AddOrder(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, order)
}

func (h *Handler) EditOrder(c *gin.Context) {
	var req models.Order
	if !bind(c, "Update Failed", &req) {
		return
	}
	req.ID = c.Param("id")
	order, err := h.store.EditOrder(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, order)
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,orderstatus"`
}

// UpdateOrderStatus moves an order through the lifecycle
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if !bind(c, "Update Failed", &req) {
		return
	}
	if err := h.validate.Struct("Update Failed", req); err != nil {
		fail(c, err)
		return
	}
	h.transition(c, req.Status)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	h.transition(c, models.StatusCancelled)
}

func (h *Handler) transition(c *gin.Context, to models.OrderStatus) {
	id := c.Param("id")
	current, err := h.store.Order(id)
	if err != nil {
		fail(c, err)
		return
	}

	order, err := h.store.UpdateOrderStatus(c.Request.Context(), id, to, middleware.GetEmail(c))
	if errors.Is(err, statemachine.ErrInvalidTransition) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"ok":                false,
			"error":             apperr.As(err),
			"current_status":    current.Status,
			"requested":         to,
			"valid_next_states": statemachine.ValidTransitionsFrom(current.Status),
		})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"order":           order,
		"previous_status": current.Status,
		"current_status":  order.Status,
	})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteOrder(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id, "message": "Order deleted"})
}

// GetOrderHistory lists the recorded status changes of an order
func (h *Handler) GetOrderHistory(c *gin.Context) {
	history, err := h.store.StatusHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	listed(c, history, nil)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/listing"
	"cafe-admin-api/models"
)

// ListFood returns the menu, filtered by ?category= and ?availability=
func (h *Handler) ListFood(c *gin.Context) {
	all := h.store.FoodItems()
	items := listing.Filter(all,
		listing.FoodCategoryIs(c.Query("category")),
		listing.FoodAvailability(c.Query("availability")),
	)
	listed(c, items, gin.H{"categories": listing.FoodCategoryOptions(all)})
}

func (h *Handler) GetFood(c *gin.Context) {
	item, err := h.store.FoodItem(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

func (h *Handler) AddFood(c *gin.Context) {
	var req models.FoodItem
	if !bind(c, "Add Failed", &req) {
		return
	}
	item, err := h.store.AddFood(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"title": "Item Added", "item": item})
}

func (h *Handler) UpdateFood(c *gin.Context) {
	var req models.FoodItem
	if !bind(c, "Update Failed", &req) {
		return
	}
	req.ID = c.Param("id")
	item, err := h.store.UpdateFood(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

func (h *Handler) DeleteFood(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteFood(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id, "message": "Menu item deleted"})
}

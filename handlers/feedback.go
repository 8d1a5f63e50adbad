package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/listing"
	"cafe-admin-api/models"
)

// ListFeedback filters by ?status=, ?category=, ?rating= and ?recommend=.
// ?sortBy=attention puts unreviewed feedback first; the default is by rating.
func (h *Handler) ListFeedback(c *gin.Context) {
	sortBy := listing.FeedbackByRating
	if c.Query("sortBy") == "attention" {
		sortBy = listing.FeedbackByAttention
	}
	items := listing.Sort(
		listing.Filter(h.store.Feedbacks(),
			listing.FeedbackStatusIs(c.Query("status")),
			listing.FeedbackCategoryIs(c.Query("category")),
			listing.FeedbackRatingIs(c.Query("rating")),
			listing.FeedbackRecommends(c.Query("recommend")),
		),
		sortBy,
	)
	listed(c, items, gin.H{"metrics": h.store.Dashboard().Feedback})
}

func (h *Handler) GetFeedback(c *gin.Context) {
	f, err := h.store.Feedback(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, f)
}

func (h *Handler) AddFeedback(c *gin.Context) {
	var req models.CustomerFeedback
	if !bind(c, "Add Failed", &req) {
		return
	}
	f, err := h.store.AddFeedback(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, f)
}

func (h *Handler) UpdateFeedback(c *gin.Context) {
	var req models.CustomerFeedback
	if !bind(c, "Update Failed", &req) {
		return
	}
	req.ID = c.Param("id")
	f, err := h.store.UpdateFeedback(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, f)
}

func (h *Handler) UpdateFeedbackStatus(c *gin.Context) {
	var req struct {
		Status models.FeedbackStatus `json:"status"`
	}
	if !bind(c, "Update Failed", &req) {
		return
	}
	f, err := h.store.UpdateFeedbackStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, f)
}

func (h *Handler) RespondToFeedback(c *gin.Context) {
	var req struct {
		AdminResponse string `json:"adminResponse"`
	}
	if !bind(c, "Response Failed", &req) {
		return
	}
	f, err := h.store.RespondToFeedback(c.Request.Context(), c.Param("id"), req.AdminResponse)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, f)
}

func (h *Handler) DeleteFeedback(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteFeedback(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id, "message": "Feedback deleted"})
}

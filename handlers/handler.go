package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/apperr"
	"cafe-admin-api/auth"
	"cafe-admin-api/logger"
	"cafe-admin-api/statemachine"
	"cafe-admin-api/store"
	"cafe-admin-api/validation"
)

// Handler carries everything the HTTP layer needs; there are no globals
type Handler struct {
	store    *store.Store
	auth     *auth.Service
	log      *logger.Logger
	validate *validation.Validator
	now      func() time.Time
}

func New(s *store.Store, a *auth.Service, log *logger.Logger) *Handler {
	return &Handler{store: s, auth: a, log: log, validate: validation.New(), now: time.Now}
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"ok": true, "data": data})
}

// fail renders err as the failure envelope. Rejected status transitions
// answer 422 like any other domain rule the caller could not have known.
func fail(c *gin.Context, err error) {
	e := apperr.As(err)
	status := e.Status()
	if errors.Is(err, statemachine.ErrInvalidTransition) {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"ok": false, "error": e})
}

// bind decodes the JSON body; a malformed body is a validation failure
func bind(c *gin.Context, title string, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		fail(c, apperr.Validation(title, map[string]string{"_": "Request body is not valid JSON: " + err.Error()}))
		return false
	}
	return true
}

// listed is the shape of every collection response
func listed[T any](c *gin.Context, items []T, extra gin.H) {
	body := gin.H{"count": len(items), "items": items}
	for k, v := range extra {
		body[k] = v
	}
	ok(c, http.StatusOK, body)
}

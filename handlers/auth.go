package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin-api/auth"
	"cafe-admin-api/middleware"
	"cafe-admin-api/models"
)

// Register creates the admin account with the café API
func (h *Handler) Register(c *gin.Context) {
	var req auth.SignupRequest
	if !bind(c, "Signup Failed", &req) {
		return
	}
	session, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, session)
}

// Login exchanges identity-provider tokens for a session token
func (h *Handler) Login(c *gin.Context) {
	var req models.TokenPair
	if !bind(c, "Login Failed", &req) {
		return
	}
	session, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, session)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Signed out"})
}

// GetProfile returns the signed-in admin
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": user, "token_email": middleware.GetEmail(c)})
}

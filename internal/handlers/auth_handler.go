package handlers

import (
	"net/http"

	"seller_panel/internal/services"
	"seller_panel/pkg/adminapi"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	refresher   *services.SessionRefresher
}

func NewAuthHandler(authService services.AuthService, refresher *services.SessionRefresher) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		refresher:   refresher,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if apiErr, ok := err.(*adminapi.APIError); ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Login service is unavailable"})
		return
	}

	// Pick up the fresh session on the next poll instead of waiting out
	// the current interval.
	h.refresher.Kick()

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": CurrentUser(c)})
}

// RefreshSession is the manual refresh analog of the operator returning to
// the panel: it kicks the poller and returns the currently cached user.
func (h *AuthHandler) RefreshSession(c *gin.Context) {
	h.refresher.Kick()
	user, err := h.authService.CurrentUser(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

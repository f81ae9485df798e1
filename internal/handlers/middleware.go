package handlers

import (
	"errors"
	"net/http"

	"seller_panel/internal/models"
	"seller_panel/internal/services"
	"seller_panel/internal/session"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "sessionUser"

// RequireSession loads the cached seller session and aborts with 401 when
// it is missing or unreadable. A corrupt session has already been cleared
// by the store; the 401 forces a fresh login.
func RequireSession(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.CurrentUser(c.Request.Context())
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not load session"})
			return
		}
		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireApproval gates routes only approved sellers may use.
func RequireApproval() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsApproved() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Seller account is pending approval"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user RequireSession stored, nil outside
// a session-guarded route.
func CurrentUser(c *gin.Context) *models.SessionUser {
	value, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.SessionUser)
	if !ok {
		return nil
	}
	return user
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"seller_panel/internal/models"
	"seller_panel/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubAuth serves a fixed session user, or an error when unset.
type stubAuth struct {
	user *models.SessionUser
	err  error
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*models.SessionUser, error) {
	return s.user, s.err
}

func (s *stubAuth) Logout(ctx context.Context) error { return nil }

func (s *stubAuth) CurrentUser(ctx context.Context) (*models.SessionUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func newTestRouter(auth *stubAuth, gated bool, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middlewares := []gin.HandlerFunc{RequireSession(auth)}
	if gated {
		middlewares = append(middlewares, RequireApproval())
	}
	group := router.Group("/", middlewares...)
	group.GET("/probe", handler)
	return router
}

func probeUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": CurrentUser(c)})
}

func TestRequireSessionMissing(t *testing.T) {
	router := newTestRouter(&stubAuth{err: session.ErrNoSession}, false, probeUser)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireSessionLoadsUser(t *testing.T) {
	user := &models.SessionUser{ID: 5, Email: "asha@example.com", ApproveStatus: "approved"}
	router := newTestRouter(&stubAuth{user: user}, false, probeUser)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		User models.SessionUser `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.User.ID)
}

func TestRequireApprovalBlocksPending(t *testing.T) {
	user := &models.SessionUser{ID: 5, ApproveStatus: "pending"}
	router := newTestRouter(&stubAuth{user: user}, true, probeUser)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireApprovalPassesApproved(t *testing.T) {
	user := &models.SessionUser{ID: 5, ApproveStatus: "Approved"}
	router := newTestRouter(&stubAuth{user: user}, true, probeUser)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

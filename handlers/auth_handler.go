package handlers

import (
	"net/http"

	"github.com/Modassir22/dream-home-hub/middlewares"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves /auth.
type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /auth/register (public).
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.svc.Register(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// Login handles POST /auth/login (public).
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.svc.Login(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Me handles GET /auth/me; the auth guard has already loaded the user.
func (h *AuthHandler) Me(c *gin.Context) {
	u := middlewares.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, models.MeResponse{User: u.Summary()})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zoombxu/surplus/internal/server/http/dto"
	"github.com/zoombxu/surplus/internal/server/http/middleware"
)

// AuthHandler processes customer identification and admin login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Identify handles POST /api/auth/identify.
func (h *AuthHandler) Identify(c *gin.Context) {
	var req dto.IdentifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, claims, err := h.facade.Identify(c.Request.Context(), req.Name, req.Phone)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		Role:  claims.Role,
		Name:  claims.Name,
		Phone: claims.Subject,
	})
}

// AdminLogin handles POST /api/admin/login.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, claims, err := h.facade.AdminLogin(req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		Role:  claims.Role,
		Name:  claims.Name,
	})
}

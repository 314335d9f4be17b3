package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lembranca/memorial-backend/internal/common"
	"github.com/lembranca/memorial-backend/internal/middleware"
	"github.com/lembranca/memorial-backend/internal/service"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register
// @Summary Registrar nova conta
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Dados de registro"
// @Success 200 {object} common.APIResponse{data=service.AuthResponse}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados de registro inválidos", err)
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: resp})
}

// Login handles POST /auth/login
// @Summary Entrar com email e senha
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credenciais"
// @Success 200 {object} common.APIResponse{data=service.AuthResponse}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Credenciais inválidas", err)
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: resp})
}

// Me handles GET /auth/me
// @Summary Usuário atual
// @Tags auth
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.UserResponse}
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.Me(middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: user})
}

// Logout handles POST /auth/logout
// Tokens are stateless; the client discards its copy.
// @Summary Sair
// @Tags auth
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lembranca/memorial-backend/internal/common"
	"github.com/lembranca/memorial-backend/internal/domain"
	"github.com/lembranca/memorial-backend/internal/middleware"
	"github.com/lembranca/memorial-backend/internal/service"
)

// MemorialHandler handles memorial profile HTTP requests
type MemorialHandler struct {
	service service.MemorialService
}

// NewMemorialHandler creates a new MemorialHandler
func NewMemorialHandler(service service.MemorialService) *MemorialHandler {
	return &MemorialHandler{service: service}
}

// Create handles POST /memorials
// @Summary Criar perfil memorial
// @Tags memorials
// @Accept json
// @Produce json
// @Param request body domain.CreateMemorialRequest true "Dados do memorial"
// @Success 200 {object} common.APIResponse{data=domain.MemorialProfile}
// @Router /memorials [post]
func (h *MemorialHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.CreateMemorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Requisição inválida", err)
		return
	}

	profile, err := h.service.Create(userID, middleware.GetUserName(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: profile})
}

// Update handles PUT /memorials/:id
// @Summary Editar perfil memorial (somente o criador)
// @Tags memorials
// @Accept json
// @Produce json
// @Param id path int true "ID do memorial"
// @Param request body domain.UpdateMemorialRequest true "Campos a atualizar"
// @Success 200 {object} common.APIResponse
// @Router /memorials/{id} [put]
func (h *MemorialHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	var req domain.UpdateMemorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Requisição inválida", err)
		return
	}

	if err := h.service.Update(id, middleware.GetUserID(c), &req); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}

// Delete handles DELETE /memorials/:id
// @Summary Excluir perfil memorial (somente o criador)
// @Tags memorials
// @Produce json
// @Param id path int true "ID do memorial"
// @Success 200 {object} common.APIResponse
// @Router /memorials/{id} [delete]
func (h *MemorialHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	if err := h.service.Delete(id, middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}

// GetByID handles GET /memorials/:id
// Every successful read counts a visit, owner views included.
// @Summary Ver perfil memorial
// @Tags memorials
// @Produce json
// @Param id path int true "ID do memorial"
// @Success 200 {object} common.APIResponse{data=domain.MemorialProfile}
// @Router /memorials/{id} [get]
func (h *MemorialHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	profile, err := h.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: profile})
}

// Search handles GET /memorials/search?q=
// @Summary Buscar memoriais por nome
// @Tags memorials
// @Produce json
// @Param q query string true "Termo de busca"
// @Success 200 {object} common.APIResponse{data=[]domain.MemorialProfile}
// @Router /memorials/search [get]
func (h *MemorialHandler) Search(c *gin.Context) {
	query := c.Query("q")

	profiles, err := h.service.Search(query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{
		Data: profiles,
		Meta: &common.Meta{Query: query, Total: int64(len(profiles))},
	})
}

// GetAll handles GET /memorials?limit=
// @Summary Listar memoriais recentes
// @Tags memorials
// @Produce json
// @Param limit query int false "Limite (padrão 20)"
// @Success 200 {object} common.APIResponse{data=[]domain.MemorialProfile}
// @Router /memorials [get]
func (h *MemorialHandler) GetAll(c *gin.Context) {
	limit := 20
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	profiles, err := h.service.GetAll(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: profiles})
}

// GetMyProfiles handles GET /memorials/mine
// @Summary Listar meus memoriais
// @Tags memorials
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.MemorialProfile}
// @Router /memorials/mine [get]
func (h *MemorialHandler) GetMyProfiles(c *gin.Context) {
	profiles, err := h.service.ListByCreator(middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: profiles})
}

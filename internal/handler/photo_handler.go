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

// PhotoHandler handles memorial photo gallery HTTP requests
type PhotoHandler struct {
	service service.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(service service.PhotoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// Add handles POST /memorials/:id/photos
// @Summary Adicionar foto à galeria
// @Tags photos
// @Accept json
// @Produce json
// @Param id path int true "ID do memorial"
// @Param request body domain.AddPhotoRequest true "Dados da foto"
// @Success 200 {object} common.APIResponse{data=domain.MemorialPhoto}
// @Router /memorials/{id}/photos [post]
func (h *PhotoHandler) Add(c *gin.Context) {
	memorialID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	var req domain.AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Requisição inválida", err)
		return
	}

	photo, err := h.service.Add(memorialID, middleware.GetUserID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: photo})
}

// GetByMemorial handles GET /memorials/:id/photos
// @Summary Listar fotos de um memorial
// @Tags photos
// @Produce json
// @Param id path int true "ID do memorial"
// @Success 200 {object} common.APIResponse{data=[]domain.MemorialPhoto}
// @Router /memorials/{id}/photos [get]
func (h *PhotoHandler) GetByMemorial(c *gin.Context) {
	memorialID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	photos, err := h.service.GetByMemorial(memorialID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: photos})
}

// Delete handles DELETE /photos/:id
// The service performs no ownership check; the route only requires
// authentication. Clients verify the parent memorial before calling.
// @Summary Remover foto
// @Tags photos
// @Produce json
// @Param id path int true "ID da foto"
// @Success 200 {object} common.APIResponse
// @Router /photos/{id} [delete]
func (h *PhotoHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}

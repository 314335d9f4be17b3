package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lembranca/memorial-backend/internal/common"
	"github.com/lembranca/memorial-backend/internal/service"
)

// UploadHandler handles photo blob uploads
type UploadHandler struct {
	service *service.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(service *service.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Photo handles POST /uploads/photo (multipart field "file")
// @Summary Enviar foto
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Arquivo de imagem"
// @Success 200 {object} common.APIResponse{data=storage.UploadResult}
// @Router /uploads/photo [post]
func (h *UploadHandler) Photo(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Arquivo é obrigatório", err)
		return
	}

	result, err := h.service.UploadPhoto(c.Request.Context(), file)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: result})
}

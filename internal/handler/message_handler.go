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

// MessageHandler handles tribute wall HTTP requests
type MessageHandler struct {
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(service service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Add handles POST /memorials/:id/messages
// Open to guests; unauthenticated posts must carry author_name.
// @Summary Deixar mensagem no mural
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "ID do memorial"
// @Param request body domain.AddMessageRequest true "Mensagem"
// @Success 200 {object} common.APIResponse{data=domain.MemorialMessage}
// @Router /memorials/{id}/messages [post]
func (h *MessageHandler) Add(c *gin.Context) {
	memorialID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	var req domain.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Requisição inválida", err)
		return
	}

	msg, err := h.service.Add(memorialID, middleware.CurrentUserID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: msg})
}

// GetByMemorial handles GET /memorials/:id/messages
// The memorial owner also receives hidden messages.
// @Summary Listar mensagens do mural
// @Tags messages
// @Produce json
// @Param id path int true "ID do memorial"
// @Success 200 {object} common.APIResponse{data=[]domain.MessageResponse}
// @Router /memorials/{id}/messages [get]
func (h *MessageHandler) GetByMemorial(c *gin.Context) {
	memorialID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	messages, err := h.service.GetByMemorial(memorialID, middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: messages})
}

// Report handles POST /messages/:id/report
// Public and idempotent; repeated reports are no-ops.
// @Summary Reportar mensagem
// @Tags messages
// @Produce json
// @Param id path int true "ID da mensagem"
// @Success 200 {object} common.APIResponse
// @Router /messages/{id}/report [post]
func (h *MessageHandler) Report(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	if err := h.service.Report(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}

type moderationRequest struct {
	MemorialID int `json:"memorial_id" binding:"required"`
}

// Hide handles POST /messages/:id/hide (owner of the memorial only)
// @Summary Ocultar mensagem do mural
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "ID da mensagem"
// @Success 200 {object} common.APIResponse
// @Router /messages/{id}/hide [post]
func (h *MessageHandler) Hide(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Requisição inválida", err)
		return
	}

	if err := h.service.Hide(id, req.MemorialID, middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}

// Unhide handles POST /messages/:id/unhide (owner only; clears the
// report flag along with visibility)
// @Summary Restaurar mensagem ao mural
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "ID da mensagem"
// @Success 200 {object} common.APIResponse
// @Router /messages/{id}/unhide [post]
func (h *MessageHandler) Unhide(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Requisição inválida", err)
		return
	}

	if err := h.service.Unhide(id, req.MemorialID, middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"success": true}})
}

// GetReported handles GET /messages/reported
// @Summary Listar mensagens reportadas
// @Tags messages
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.MessageResponse}
// @Router /messages/reported [get]
func (h *MessageHandler) GetReported(c *gin.Context) {
	messages, err := h.service.GetReported()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: messages})
}

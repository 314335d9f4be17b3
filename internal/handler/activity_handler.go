package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lembranca/memorial-backend/internal/common"
	"github.com/lembranca/memorial-backend/internal/service"
)

// ActivityHandler handles activity feed HTTP requests
type ActivityHandler struct {
	service service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// GetRecent handles GET /activities?limit=
// @Summary Feed de atividades recentes
// @Tags activities
// @Produce json
// @Param limit query int false "Limite (padrão 20)"
// @Success 200 {object} common.APIResponse{data=[]domain.Activity}
// @Router /activities [get]
func (h *ActivityHandler) GetRecent(c *gin.Context) {
	limit := 20
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	activities, err := h.service.GetRecent(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: activities})
}

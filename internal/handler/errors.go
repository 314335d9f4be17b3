package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lembranca/memorial-backend/internal/common"
)

// respondServiceError maps business errors to HTTP status codes with
// user-facing messages. Anything unmapped is an infrastructure failure.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrMemorialNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Perfil memorial não encontrado", err)
	case errors.Is(err, common.ErrMessageNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Mensagem não encontrada", err)
	case errors.Is(err, common.ErrUserNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Usuário não encontrado", err)
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Recurso não encontrado", err)
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, http.StatusForbidden, "Você não tem permissão para esta ação", err)
	case errors.Is(err, common.ErrUnauthorized):
		common.ErrorResponse(c, http.StatusUnauthorized, "Autenticação necessária", err)
	case errors.Is(err, common.ErrInvalidCredentials):
		common.ErrorResponse(c, http.StatusUnauthorized, "Email ou senha inválidos", err)
	case errors.Is(err, common.ErrUserAlreadyExists):
		common.ErrorResponse(c, http.StatusConflict, "Email já cadastrado", err)
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, err.Error(), err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "Erro interno do servidor", err)
	}
}

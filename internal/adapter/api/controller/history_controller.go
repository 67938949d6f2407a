package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/dto"
	"github.com/skyvoyage/booking-api/internal/domain/history"
)

// HistoryController gerencia as requisições do histórico de atividades
type HistoryController struct {
	historyRepository history.Repository
}

// NewHistoryController cria uma nova instância de HistoryController
func NewHistoryController(historyRepository history.Repository) *HistoryController {
	return &HistoryController{
		historyRepository: historyRepository,
	}
}

// List lista as atividades do usuário autenticado
// @Summary Histórico de atividades
// @Description Lista as atividades do usuário autenticado, mais recentes primeiro
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {array} history.Entry
// @Failure 500 {object} dto.ErrorResponse
// @Router /history [get]
func (c *HistoryController) List(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	entries, err := c.historyRepository.FindByUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar histórico", err.Error()))
		return
	}

	if entries == nil {
		entries = []*history.Entry{}
	}

	ctx.JSON(http.StatusOK, entries)
}

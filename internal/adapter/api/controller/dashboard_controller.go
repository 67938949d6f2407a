package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/dto"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/internal/service"
)

// DashboardController gerencia as requisições do painel
type DashboardController struct {
	dashboardService *service.DashboardService
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Get retorna o snapshot do painel do usuário autenticado
// @Summary Painel do usuário
// @Description Agentes recebem os agregados globais; clientes, apenas os próprios números
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardData
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *DashboardController) Get(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	isAgent := ctx.GetString("user_role") == string(user.RoleAgent)

	data, err := c.dashboardService.Snapshot(ctx, userID, isAgent)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao montar painel", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, data)
}

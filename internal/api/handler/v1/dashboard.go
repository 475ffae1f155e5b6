package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocktrail/inventory-api/internal/api/handler/v1/response"
	"github.com/stocktrail/inventory-api/internal/domain"
)

type DashboardService interface {
	GetSummary(ctx context.Context) (domain.DashboardSummary, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// HandleGetDashboard godoc
// @Summary      Dashboard summary
// @Description  Totals for products, categories and suppliers, plus the products currently low on stock.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.DashboardSummary
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /dashboard [get]
// @Security BearerAuth
func (h *DashboardHandler) HandleGetDashboard(ctx *gin.Context) {
	summary, err := h.svc.GetSummary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDashboard -> h.svc.GetSummary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/application/usecase"
)

// DashboardHandler métricas agregadas del panel administrativo.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler inyectando el caso de uso.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Metrics godoc
// @Summary      Métricas do painel: totais, por status e por fornecedor
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	var f dto.InvoiceFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.Metrics(GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

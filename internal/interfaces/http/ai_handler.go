package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/application/usecase"
)

// AIHandler expone las funciones asistidas por IA. Ambas son best-effort:
// el use case degrada a respuestas vacías cuando el proveedor falla, así que
// aquí casi nunca sale otra cosa que 200.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler inyectando el caso de uso.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Extract godoc
// @Summary      Extrair campos da nota a partir da imagem do documento
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AIExtractRequest  true  "Imagem em base64"
// @Success      200   {object}  dto.AIExtractionDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/extract [post]
func (h *AIHandler) Extract(c *fiber.Ctx) error {
	var in dto.AIExtractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Extract(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumo financeiro das notas visíveis
// @Tags         ai
// @Produce      json
// @Success      200  {object}  dto.AISummaryDTO
// @Router       /api/ai/summary [get]
func (h *AIHandler) Summary(c *fiber.Ctx) error {
	var f dto.InvoiceFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.Summarize(c.Context(), GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

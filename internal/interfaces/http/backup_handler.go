package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/application/usecase"
)

// BackupHandler exporta y restaura el estado completo. Solo admin.
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler construye el handler inyectando el caso de uso.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar backup completo (notas, usuários, fornecedores)
// @Tags         backup
// @Produce      json
// @Success      200  {object}  dto.BackupDocument
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="backup_portal.json"`)
	return c.JSON(out)
}

// Restore godoc
// @Summary      Restaurar backup (substitui todo o estado, sem merge)
// @Tags         backup
// @Accept       json
// @Param        body  body  dto.BackupDocument  true  "Documento de backup"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	var doc dto.BackupDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "documento de backup inválido"})
	}
	if err := h.uc.Restore(doc); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

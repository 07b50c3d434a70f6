package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/application/usecase"
)

// ReportHandler maneja las descargas: CSV, XML, PDF y el paquete de adjuntos.
// Todos operan sobre el conjunto visible del actor, con los mismos filtros
// query del listado.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler inyectando el caso de uso.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) parseFilter(c *fiber.Ctx) (dto.InvoiceFilter, error) {
	var f dto.InvoiceFilter
	if err := c.QueryParser(&f); err != nil {
		return f, err
	}
	return f, nil
}

func sendDownload(c *fiber.Ctx, data []byte, fileName, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(data)
}

// CSV godoc
// @Summary      Baixar planilha CSV das notas visíveis
// @Tags         reports
// @Produce      text/csv
// @Success      200
// @Router       /api/reports/csv [get]
func (h *ReportHandler) CSV(c *fiber.Ctx) error {
	f, err := h.parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	data, name, err := h.uc.CSV(GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, data, name, "text/csv; charset=utf-8")
}

// XML godoc
// @Summary      Baixar export XML das notas visíveis
// @Tags         reports
// @Produce      application/xml
// @Success      200
// @Router       /api/reports/xml [get]
func (h *ReportHandler) XML(c *fiber.Ctx) error {
	f, err := h.parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	data, name, err := h.uc.XML(GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, data, name, "application/xml; charset=utf-8")
}

// PDF godoc
// @Summary      Baixar relatório PDF consolidado das notas visíveis
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	f, err := h.parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	data, name, err := h.uc.PDF(GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, data, name, "application/pdf")
}

// AttachmentsZip godoc
// @Summary      Baixar ZIP com os anexos das notas visíveis
// @Tags         reports
// @Produce      application/zip
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/attachments [get]
func (h *ReportHandler) AttachmentsZip(c *fiber.Ctx) error {
	f, err := h.parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	data, name, err := h.uc.AttachmentsZip(GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, data, name, "application/zip")
}

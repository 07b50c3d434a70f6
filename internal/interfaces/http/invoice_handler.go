package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/application/ports"
	"github.com/delp/portal-notas-api/internal/application/usecase"
)

// InvoiceHandler maneja las peticiones HTTP del recurso nota fiscal.
type InvoiceHandler struct {
	uc    *usecase.InvoiceUseCase
	files ports.FileStorage
}

// NewInvoiceHandler construye el handler inyectando el caso de uso y el storage de adjuntos.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, files ports.FileStorage) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, files: files}
}

// Create godoc
// @Summary      Postar nota fiscal (multipart con adjunto opcional)
// @Tags         invoices
// @Accept       multipart/form-data
// @Produce      json
// @Param        supplierName   formData  string  true   "Fornecedor"
// @Param        invoiceNumber  formData  string  true   "Número da nota"
// @Param        emissionDate   formData  string  true   "Data de emissão (yyyy-mm-dd)"
// @Param        value          formData  number  true   "Valor"
// @Param        file           formData  file    false  "Documento (PDF o imagen)"
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	// Adjunto opcional: se guarda en disco y la nota solo lleva la referencia.
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		src, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "anexo ilegível"})
		}
		ref, err := h.files.Save(fh.Filename, src)
		src.Close()
		if err != nil {
			return respondError(c, err)
		}
		in.FileName = fh.Filename
		in.FileRef = ref
	}

	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar notas visíveis para o usuário, com filtros
// @Tags         invoices
// @Produce      json
// @Param        supplierName  query  string  false  "Filtro por fornecedor (substring)"
// @Param        sector        query  string  false  "Filtro por setor"
// @Param        emissionFrom  query  string  false  "Emissão desde (yyyy-mm-dd)"
// @Param        emissionTo    query  string  false  "Emissão até (yyyy-mm-dd)"
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var f dto.InvoiceFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter nota por id (respeitando visibilidade)
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "ID da nota"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar campos da nota (autor enquanto não recebida; admin sempre)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID da nota"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Campos a alterar"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Transição de status pelo revisor (admin)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID da nota"
// @Param        body  body  dto.ChangeStatusRequest  true  "Novo status"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/status [patch]
func (h *InvoiceHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.ChangeStatus(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Repost godoc
// @Summary      Reenviar nota pendente para análise
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string             true   "ID da nota"
// @Param        body  body  dto.RepostRequest  false  "Resposta do autor"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/repost [post]
func (h *InvoiceHandler) Repost(c *fiber.Ctx) error {
	var in dto.RepostRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
		}
	}
	out, err := h.uc.Repost(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir nota (admin sempre; autor enquanto não recebida)
// @Tags         invoices
// @Param        id  path  string  true  "ID da nota"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadFile godoc
// @Summary      Baixar o anexo da nota
// @Tags         invoices
// @Produce      application/octet-stream
// @Param        id  path  string  true  "ID da nota"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/file [get]
func (h *InvoiceHandler) DownloadFile(c *fiber.Ctx) error {
	fileName, fileRef, err := h.uc.GetAttachment(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	src, err := h.files.Open(fileRef)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.SendStream(src)
}

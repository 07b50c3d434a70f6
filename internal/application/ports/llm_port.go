package ports

import (
	"context"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// LLMService puerto hacia el proveedor de IA. Dos operaciones:
// extracción best-effort de campos desde la imagen del documento y
// resumen financiero en lenguaje natural de un conjunto de notas.
// Las implementaciones viven en internal/infrastructure/ai.
type LLMService interface {
	ExtractInvoiceFields(ctx context.Context, imageBase64, mimeType string) (*dto.AIExtractionDTO, error)
	SummarizeInvoices(ctx context.Context, invoices []*entity.Invoice) (string, error)
}

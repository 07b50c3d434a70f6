package usecase

import (
	"context"
	"time"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/application/ports"
	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/pkg/logger"
)

const aiTimeout = 10 * time.Second

// AIUseCase funciones asistidas por IA: extracción de campos desde la imagen
// del documento y resumen del conjunto visible. El proveedor es opcional y
// best-effort: si falla o no está configurado, el portal sigue funcionando
// con los campos vacíos y un aviso en lugar del resumen.
type AIUseCase struct {
	llm      ports.LLMService // nil cuando no hay proveedor configurado
	invoices *InvoiceUseCase
	log      *logger.Logger
}

// NewAIUseCase construye el caso de uso. llm puede ser nil.
func NewAIUseCase(llm ports.LLMService, invoices *InvoiceUseCase, log *logger.Logger) *AIUseCase {
	return &AIUseCase{llm: llm, invoices: invoices, log: log}
}

// Extract pide al modelo los campos de la nota a partir de la imagen.
// Nunca propaga el fallo del proveedor: devuelve un DTO vacío con
// Available=false para que el formulario se llene a mano.
func (uc *AIUseCase) Extract(ctx context.Context, in dto.AIExtractRequest) (*dto.AIExtractionDTO, error) {
	if in.ImageBase64 == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.llm == nil {
		return &dto.AIExtractionDTO{Available: false}, nil
	}

	mime := in.MimeType
	if mime == "" {
		mime = "image/jpeg"
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	out, err := uc.llm.ExtractInvoiceFields(ctx, in.ImageBase64, mime)
	if err != nil {
		uc.log.Warn().Err(err).Msg("extracción AI falló, formulario sigue manual")
		return &dto.AIExtractionDTO{Available: false}, nil
	}
	out.Available = true
	return out, nil
}

// Summarize genera el resumen financiero del conjunto visible del actor.
// Sin proveedor (o con error) devuelve un texto fijo con Generated=false.
func (uc *AIUseCase) Summarize(ctx context.Context, actorID string, f dto.InvoiceFilter) (*dto.AISummaryDTO, error) {
	visible, err := uc.invoices.VisibleEntities(actorID, f)
	if err != nil {
		return nil, err
	}
	if uc.llm == nil {
		return &dto.AISummaryDTO{Text: "Resumo indisponível: nenhum provedor de IA configurado.", Generated: false}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	text, err := uc.llm.SummarizeInvoices(ctx, visible)
	if err != nil {
		uc.log.Warn().Err(err).Msg("resumen AI falló")
		return &dto.AISummaryDTO{Text: "Resumo indisponível no momento. Tente novamente mais tarde.", Generated: false}, nil
	}
	return &dto.AISummaryDTO{Text: text, Generated: true}, nil
}

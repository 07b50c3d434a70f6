package usecase

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/application/ports"
	"github.com/delp/portal-notas-api/internal/domain"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

// ReportUseCase genera las descargas del portal: planilla CSV, reporte PDF
// consolidado, export XML y el paquete ZIP con todos los adjuntos.
// Todas operan sobre el conjunto visible del actor con los filtros aplicados,
// exactamente el mismo recorte que muestra el listado.
type ReportUseCase struct {
	invoices *InvoiceUseCase
	reports  ports.ReportGenerator
	files    ports.FileStorage
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(invoices *InvoiceUseCase, reports ports.ReportGenerator, files ports.FileStorage) *ReportUseCase {
	return &ReportUseCase{invoices: invoices, reports: reports, files: files}
}

// CSV genera la planilla separada por punto y coma.
func (uc *ReportUseCase) CSV(actorID string, f dto.InvoiceFilter) ([]byte, string, error) {
	visible, err := uc.invoices.VisibleEntities(actorID, f)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.reports.CSV(visible)
	if err != nil {
		return nil, "", err
	}
	return data, stampedName("notas_fiscais", "csv"), nil
}

// XML genera el export estructurado.
func (uc *ReportUseCase) XML(actorID string, f dto.InvoiceFilter) ([]byte, string, error) {
	visible, err := uc.invoices.VisibleEntities(actorID, f)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.reports.XML(visible)
	if err != nil {
		return nil, "", err
	}
	return data, stampedName("notas_fiscais", "xml"), nil
}

// PDF genera el reporte consolidado.
func (uc *ReportUseCase) PDF(actorID string, f dto.InvoiceFilter) ([]byte, string, error) {
	visible, err := uc.invoices.VisibleEntities(actorID, f)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.reports.PDF(visible)
	if err != nil {
		return nil, "", err
	}
	return data, stampedName("relatorio_notas", "pdf"), nil
}

// AttachmentsZip empaqueta los adjuntos de las notas visibles. El nombre de
// cada entrada es autor_numero para que el paquete sea navegable sin abrirlo.
func (uc *ReportUseCase) AttachmentsZip(actorID string, f dto.InvoiceFilter) ([]byte, string, error) {
	visible, err := uc.invoices.VisibleEntities(actorID, f)
	if err != nil {
		return nil, "", err
	}
	entries := make([]ports.ZipEntry, 0, len(visible))
	for _, inv := range visible {
		if inv.FileRef == "" {
			continue
		}
		ext := filepath.Ext(inv.FileName)
		if ext == "" {
			ext = ".pdf"
		}
		name := unsafeFileChars.ReplaceAllString(inv.UserName, "_") + "_" +
			unsafeFileChars.ReplaceAllString(inv.InvoiceNumber, "_") + ext
		entries = append(entries, ports.ZipEntry{Name: name, Ref: inv.FileRef})
	}
	if len(entries) == 0 {
		return nil, "", domain.ErrNotFound
	}
	data, err := uc.files.Zip(entries)
	if err != nil {
		return nil, "", err
	}
	return data, stampedName("anexos_notas", "zip"), nil
}

func stampedName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("2006-01-02"), ext)
}

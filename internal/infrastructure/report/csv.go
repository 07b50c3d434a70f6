package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// csvHeaders columnas de la planilla, en el orden del listado del portal.
var csvHeaders = []string{
	"Fornecedor",
	"CNPJ",
	"Número da Nota",
	"Data de Emissão",
	"Pedido",
	"Valor (R$)",
	"Tipo",
	"Status",
	"Enviado por",
	"Setor",
	"Data de Envio",
	"Observações",
}

// CSV genera la planilla separada por punto y coma, con BOM UTF-8 para que
// Excel pt-BR la abra con acentos y columnas correctas.
func (g *Generator) CSV(invoices []*entity.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF}) // BOM UTF-8

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("report: escribir cabecera CSV: %w", err)
	}
	for _, inv := range invoices {
		record := []string{
			inv.SupplierName,
			inv.SupplierCNPJ,
			inv.InvoiceNumber,
			formatDateBR(inv.EmissionDate),
			inv.OrderNumber,
			formatDecimalComma(inv.Value),
			docTypeLabel(inv.DocType),
			statusLabel(inv.Status),
			inv.UserName,
			inv.UserSector,
			inv.CreatedAt.Format("02/01/2006 15:04"),
			inv.Observations,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("report: escribir fila CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("report: cerrar CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// statusLabel etiqueta humana en portugués para la planilla y el PDF.
func statusLabel(status string) string {
	switch status {
	case entity.StatusInReview:
		return "Em análise"
	case entity.StatusReceived:
		return "Recebida"
	case entity.StatusPending:
		return "Pendente"
	default:
		return status
	}
}

func docTypeLabel(docType string) string {
	switch docType {
	case entity.DocTypeOSV:
		return "OSV"
	case entity.DocTypeContract:
		return "Contrato"
	default:
		return docType
	}
}

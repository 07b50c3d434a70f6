package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/infrastructure/report"
)

func sampleInvoices() []*entity.Invoice {
	return []*entity.Invoice{
		{
			ID:            "n1",
			SupplierName:  "Aço & Cia",
			SupplierCNPJ:  "12.345.678/0001-90",
			InvoiceNumber: "NF-001",
			EmissionDate:  "2026-08-15",
			OrderNumber:   "PED-77",
			Value:         decimal.NewFromFloat(1234.56),
			DocType:       entity.DocTypeOSV,
			Status:        entity.StatusInReview,
			UserName:      "Maria",
			UserSector:    "FINANCEIRO",
			CreatedAt:     time.Date(2026, 8, 16, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:            "n2",
			SupplierName:  "Beta Serviços",
			InvoiceNumber: "NF-002",
			EmissionDate:  "2026-08-20",
			Value:         decimal.NewFromInt(300),
			Status:        entity.StatusReceived,
			UserName:      "João",
			UserSector:    "COMPRAS",
			CreatedAt:     time.Date(2026, 8, 21, 14, 0, 0, 0, time.UTC),
		},
	}
}

func TestCSV_FormatoPlanillaBrasilena(t *testing.T) {
	data, err := report.NewGenerator().CSV(sampleInvoices())
	require.NoError(t, err)

	// BOM UTF-8 al inicio para Excel.
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	text := string(data)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 3, "cabecera + dos filas")

	assert.Contains(t, lines[0], "Fornecedor;CNPJ;Número da Nota")
	assert.Contains(t, text, "1234,56", "valor con coma decimal")
	assert.Contains(t, text, "15/08/2026", "fecha de emisión en formato brasileño")
	assert.Contains(t, text, "Em análise")
	assert.Contains(t, text, "Recebida")
}

func TestCSV_VacioSoloCabecera(t *testing.T) {
	data, err := report.NewGenerator().CSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1)
}

func TestXML_EstructuraYValores(t *testing.T) {
	data, err := report.NewGenerator().XML(sampleInvoices())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "<notasFiscais")
	assert.Contains(t, text, `total="2"`)
	assert.Contains(t, text, "<numero>NF-001</numero>")
	assert.Contains(t, text, "<valor>1234.56</valor>", "en XML el valor va con punto decimal")
	assert.Contains(t, text, "<setor>FINANCEIRO</setor>")
	// Campos vacíos se omiten en lugar de ir como elementos vacíos.
	assert.NotContains(t, text, "<observacoes>")
}

func TestPDF_GeneraDocumento(t *testing.T) {
	data, err := report.NewGenerator().PDF(sampleInvoices())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "debe salir un PDF válido")
}

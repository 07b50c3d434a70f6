package report

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDF genera el reporte consolidado en A4: cabecera, tabla de notas y
// totales al pie. Las filas llegan ya ordenadas por el caller.
func (g *Generator) PDF(invoices []*entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Relatório de Notas Fiscais", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(invoices)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, inv := range invoices {
		m.AddRows(tableDetailRow(inv))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoices))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("report: generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de emisión del reporte (der).
func headerRow(count int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE NOTAS FISCAIS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d nota(s) no período", count), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(3, "Fornecedor"),
		header(2, "Número"),
		header(1, "Emissão"),
		header(2, "Valor"),
		header(1, "Status"),
		header(2, "Enviado por"),
		header(1, "Setor"),
	)
}

func tableDetailRow(inv *entity.Invoice) core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 7, Top: 1}))
	}
	return row.New(6).Add(
		cell(3, inv.SupplierName),
		cell(2, inv.InvoiceNumber),
		cell(1, formatDateBR(inv.EmissionDate)),
		cell(2, formatBRL(inv.Value)),
		cell(1, statusLabel(inv.Status)),
		cell(2, inv.UserName),
		cell(1, inv.UserSector),
	)
}

// totalsRow: conteo por status y valor total del conjunto.
func totalsRow(invoices []*entity.Invoice) core.Row {
	total := decimal.Zero
	counts := map[string]int{}
	for _, inv := range invoices {
		total = total.Add(inv.Value)
		counts[inv.Status]++
	}
	resumo := fmt.Sprintf("Em análise: %d   |   Recebidas: %d   |   Pendentes: %d",
		counts[entity.StatusInReview], counts[entity.StatusReceived], counts[entity.StatusPending])

	return row.New(12).Add(
		col.New(7).Add(
			text.New(resumo, props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("TOTAL: "+formatBRL(total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

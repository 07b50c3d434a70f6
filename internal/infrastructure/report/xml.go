package report

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// XML genera el export estructurado del conjunto. Los valores van con punto
// decimal y las fechas en ISO, pensado para integración y no para planilla.
func (g *Generator) XML(invoices []*entity.Invoice) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("notasFiscais")
	root.CreateAttr("exportadoEm", time.Now().Format(time.RFC3339))
	root.CreateAttr("total", fmt.Sprintf("%d", len(invoices)))

	for _, inv := range invoices {
		nota := root.CreateElement("nota")
		nota.CreateAttr("id", inv.ID)
		nota.CreateAttr("status", inv.Status)

		fornecedor := nota.CreateElement("fornecedor")
		fornecedor.CreateElement("nome").SetText(inv.SupplierName)
		if inv.SupplierCNPJ != "" {
			fornecedor.CreateElement("cnpj").SetText(inv.SupplierCNPJ)
		}

		nota.CreateElement("numero").SetText(inv.InvoiceNumber)
		nota.CreateElement("dataEmissao").SetText(inv.EmissionDate)
		if inv.OrderNumber != "" {
			nota.CreateElement("pedido").SetText(inv.OrderNumber)
		}
		nota.CreateElement("valor").SetText(inv.Value.StringFixed(2))
		if inv.DocType != "" {
			nota.CreateElement("tipo").SetText(inv.DocType)
		}

		envio := nota.CreateElement("envio")
		envio.CreateElement("usuario").SetText(inv.UserName)
		envio.CreateElement("setor").SetText(inv.UserSector)
		envio.CreateElement("data").SetText(inv.CreatedAt.Format(time.RFC3339))

		if inv.Observations != "" {
			nota.CreateElement("observacoes").SetText(inv.Observations)
		}
		if inv.AdminObservations != "" {
			nota.CreateElement("observacoesAdmin").SetText(inv.AdminObservations)
		}
		if inv.UserResponse != "" {
			nota.CreateElement("respostaUsuario").SetText(inv.UserResponse)
		}
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("report: serializar XML: %w", err)
	}
	return data, nil
}

package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// formatBRL formatea un valor como moneda brasileña: R$ 1.234,56.
func formatBRL(v decimal.Decimal) string {
	f, _ := v.Float64()
	return ptBR.Sprintf("R$ %v", number.Decimal(f, number.Scale(2)))
}

// formatDecimalComma devuelve el valor con coma decimal y sin separador de
// millar, el formato que Excel pt-BR interpreta como número.
func formatDecimalComma(v decimal.Decimal) string {
	return strings.ReplaceAll(v.StringFixed(2), ".", ",")
}

// formatDateBR convierte yyyy-mm-dd a dd/mm/yyyy; devuelve el valor tal cual
// si no tiene la forma esperada.
func formatDateBR(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

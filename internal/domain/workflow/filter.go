package workflow

import (
	"strings"

	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// Criteria filtros de búsqueda aplicados DESPUÉS del filtro de visibilidad.
// Todos los predicados son conjuntivos (AND) e independientes; un valor vacío
// acepta cualquier nota para ese campo.
type Criteria struct {
	SupplierName  string // substring, case-insensitive
	InvoiceNumber string // substring
	UserName      string // substring, case-insensitive
	Sector        string // substring; relevante solo para ADMIN
	EmissionFrom  string // ISO yyyy-mm-dd, inclusive
	EmissionTo    string // ISO yyyy-mm-dd, inclusive
	PostedFrom    string // ISO yyyy-mm-dd, inclusive, sobre la fecha de CreatedAt
	PostedTo      string // ISO yyyy-mm-dd, inclusive, sobre la fecha de CreatedAt
}

// IsZero true si ningún filtro fue informado.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Match evalúa la nota contra todos los predicados.
// Las fechas ISO se comparan lexicográficamente; para CreatedAt se usa solo la
// porción de fecha.
func (c Criteria) Match(inv *entity.Invoice) bool {
	if c.SupplierName != "" &&
		!strings.Contains(strings.ToLower(inv.SupplierName), strings.ToLower(c.SupplierName)) {
		return false
	}
	if c.InvoiceNumber != "" && !strings.Contains(inv.InvoiceNumber, c.InvoiceNumber) {
		return false
	}
	if c.UserName != "" &&
		!strings.Contains(strings.ToLower(inv.UserName), strings.ToLower(c.UserName)) {
		return false
	}
	if c.Sector != "" && !strings.Contains(inv.UserSector, c.Sector) {
		return false
	}
	if c.EmissionFrom != "" && inv.EmissionDate < c.EmissionFrom {
		return false
	}
	if c.EmissionTo != "" && inv.EmissionDate > c.EmissionTo {
		return false
	}
	if c.PostedFrom != "" || c.PostedTo != "" {
		posted := inv.CreatedAt.Format("2006-01-02")
		if c.PostedFrom != "" && posted < c.PostedFrom {
			return false
		}
		if c.PostedTo != "" && posted > c.PostedTo {
			return false
		}
	}
	return true
}

// Apply filtra la lista con los criterios. No modifica la entrada.
func (c Criteria) Apply(invoices []*entity.Invoice) []*entity.Invoice {
	if c.IsZero() {
		out := make([]*entity.Invoice, len(invoices))
		copy(out, invoices)
		return out
	}
	out := make([]*entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if c.Match(inv) {
			out = append(out, inv)
		}
	}
	return out
}

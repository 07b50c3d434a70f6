package ports

import "github.com/delp/portal-notas-api/internal/domain/entity"

// ReportGenerator puerto hacia los renderizadores de reporte. Cada método
// recibe el conjunto YA filtrado por visibilidad y devuelve el documento
// listo para descargar.
type ReportGenerator interface {
	CSV(invoices []*entity.Invoice) ([]byte, error)
	XML(invoices []*entity.Invoice) ([]byte, error)
	PDF(invoices []*entity.Invoice) ([]byte, error)
}

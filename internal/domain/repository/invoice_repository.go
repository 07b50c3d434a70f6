package repository

import "github.com/delp/portal-notas-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// No se impone unicidad sobre InvoiceNumber: el mismo número puede repetirse
// entre proveedores distintos.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	List() ([]*entity.Invoice, error)
}

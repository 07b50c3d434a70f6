package storage

import (
	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)

// InvoiceRepository repositorio de notas sobre el FileStore.
type InvoiceRepository struct {
	store *FileStore
}

// NewInvoiceRepository construye el repositorio.
func NewInvoiceRepository(store *FileStore) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

func (r *InvoiceRepository) Create(invoice *entity.Invoice) error {
	return r.store.withWrite(func(s *Snapshot) error {
		if _, exists := s.Invoices[invoice.ID]; exists {
			return domain.ErrInvalidInput
		}
		c := *invoice
		s.Invoices[c.ID] = &c
		return nil
	})
}

func (r *InvoiceRepository) GetByID(id string) (*entity.Invoice, error) {
	var out *entity.Invoice
	r.store.withRead(func(s *Snapshot) {
		if inv, ok := s.Invoices[id]; ok {
			c := *inv
			out = &c
		}
	})
	if out == nil {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (r *InvoiceRepository) Update(invoice *entity.Invoice) error {
	return r.store.withWrite(func(s *Snapshot) error {
		if _, ok := s.Invoices[invoice.ID]; !ok {
			return domain.ErrNotFound
		}
		c := *invoice
		s.Invoices[c.ID] = &c
		return nil
	})
}

func (r *InvoiceRepository) Delete(id string) error {
	return r.store.withWrite(func(s *Snapshot) error {
		if _, ok := s.Invoices[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.Invoices, id)
		return nil
	})
}

func (r *InvoiceRepository) List() ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	r.store.withRead(func(s *Snapshot) {
		for _, inv := range s.Invoices {
			c := *inv
			out = append(out, &c)
		}
	})
	return out, nil
}

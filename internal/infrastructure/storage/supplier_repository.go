package storage

import (
	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository repositorio de proveedores sobre el FileStore.
type SupplierRepository struct {
	store *FileStore
}

// NewSupplierRepository construye el repositorio.
func NewSupplierRepository(store *FileStore) *SupplierRepository {
	return &SupplierRepository{store: store}
}

func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	return r.store.withWrite(func(s *Snapshot) error {
		if _, exists := s.Suppliers[supplier.ID]; exists {
			return domain.ErrInvalidInput
		}
		c := *supplier
		s.Suppliers[c.ID] = &c
		return nil
	})
}

func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	var out *entity.Supplier
	r.store.withRead(func(s *Snapshot) {
		if sp, ok := s.Suppliers[id]; ok {
			c := *sp
			out = &c
		}
	})
	if out == nil {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	return r.store.withWrite(func(s *Snapshot) error {
		if _, ok := s.Suppliers[supplier.ID]; !ok {
			return domain.ErrNotFound
		}
		c := *supplier
		s.Suppliers[c.ID] = &c
		return nil
	})
}

func (r *SupplierRepository) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	r.store.withRead(func(s *Snapshot) {
		for _, sp := range s.Suppliers {
			c := *sp
			out = append(out, &c)
		}
	})
	return out, nil
}

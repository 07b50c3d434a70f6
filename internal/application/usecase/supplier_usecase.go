package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/domain/repository"
)

// SupplierUseCase catálogo de proveedores. Lectura abierta a cualquier
// usuario autenticado (alimenta el formulario de postagem); escritura de admin.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// List devuelve todos los proveedores. Con onlyActive solo los habilitados.
func (uc *SupplierUseCase) List(onlyActive bool) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		if onlyActive && !s.Active {
			continue
		}
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Get devuelve un proveedor por id.
func (uc *SupplierUseCase) Get(id string) (*dto.SupplierResponse, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toSupplierResponse(s)
	return &resp, nil
}

// Create registra un proveedor activo.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		LegalName:    in.LegalName,
		CNPJ:         in.CNPJ,
		Address:      in.Address,
		Number:       in.Number,
		Complement:   in.Complement,
		District:     in.District,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		ContactEmail: in.ContactEmail,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(s)
	return &resp, nil
}

// Update reemplaza los datos del proveedor, incluido el flag activo.
// Desactivar no afecta a las notas ya publicadas con su nombre.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	s.Name = strings.TrimSpace(in.Name)
	s.LegalName = in.LegalName
	s.CNPJ = in.CNPJ
	s.Address = in.Address
	s.Number = in.Number
	s.Complement = in.Complement
	s.District = in.District
	s.City = in.City
	s.State = in.State
	s.ZipCode = in.ZipCode
	s.ContactEmail = in.ContactEmail
	s.Active = in.Active
	s.UpdatedAt = time.Now()

	if err := uc.supplierRepo.Update(s); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(s)
	return &resp, nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		LegalName:    s.LegalName,
		CNPJ:         s.CNPJ,
		Address:      s.Address,
		Number:       s.Number,
		Complement:   s.Complement,
		District:     s.District,
		City:         s.City,
		State:        s.State,
		ZipCode:      s.ZipCode,
		ContactEmail: s.ContactEmail,
		Active:       s.Active,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

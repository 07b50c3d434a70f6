package dto

import "time"

// CreateSupplierRequest entrada para registrar un proveedor.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	LegalName    string `json:"legalName"`
	CNPJ         string `json:"cnpj"`
	Address      string `json:"address"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	District     string `json:"district"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	ContactEmail string `json:"contactEmail"`
}

// UpdateSupplierRequest edición completa del proveedor, incluido el flag activo.
type UpdateSupplierRequest struct {
	CreateSupplierRequest
	Active bool `json:"active"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LegalName    string    `json:"legalName"`
	CNPJ         string    `json:"cnpj"`
	Address      string    `json:"address,omitempty"`
	Number       string    `json:"number,omitempty"`
	Complement   string    `json:"complement,omitempty"`
	District     string    `json:"district,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	ZipCode      string    `json:"zipCode,omitempty"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

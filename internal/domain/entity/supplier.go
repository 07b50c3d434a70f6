package entity

import "time"

// Supplier datos de referencia de un proveedor. Se usa solo para pre-llenar
// campos de la nota; no participa del flujo de revisión.
type Supplier struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"` // nome fantasia
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

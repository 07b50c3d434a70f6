package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest campos del formulario de postagem. El adjunto viaja
// como multipart y se resuelve en el handler; aquí llega solo la referencia.
type CreateInvoiceRequest struct {
	SupplierID    string          `json:"supplierId" form:"supplierId"`
	SupplierName  string          `json:"supplierName" form:"supplierName"`
	SupplierCNPJ  string          `json:"supplierCnpj" form:"supplierCnpj"`
	InvoiceNumber string          `json:"invoiceNumber" form:"invoiceNumber"`
	EmissionDate  string          `json:"emissionDate" form:"emissionDate"` // ISO yyyy-mm-dd
	OrderNumber   string          `json:"orderNumber" form:"orderNumber"`
	Value         decimal.Decimal `json:"value" form:"value"`
	DocType       string          `json:"docType" form:"docType"`
	Observations  string          `json:"observations" form:"observations"`
	FileName      string          `json:"-" form:"-"`
	FileRef       string          `json:"-" form:"-"`
}

// UpdateInvoiceRequest patch de campos editables por el autor (o admin)
// mientras la nota no esté RECEIVED. Punteros: nil = sin cambio.
type UpdateInvoiceRequest struct {
	SupplierName  *string          `json:"supplierName,omitempty"`
	SupplierCNPJ  *string          `json:"supplierCnpj,omitempty"`
	InvoiceNumber *string          `json:"invoiceNumber,omitempty"`
	EmissionDate  *string          `json:"emissionDate,omitempty"`
	OrderNumber   *string          `json:"orderNumber,omitempty"`
	Value         *decimal.Decimal `json:"value,omitempty"`
	DocType       *string          `json:"docType,omitempty"`
	Observations  *string          `json:"observations,omitempty"`
}

// ChangeStatusRequest transición solicitada por el revisor.
// Status RECEIVED recibe; PENDING exige adminObservations; IN_REVIEW desde
// RECEIVED es la reapertura excepcional de admin.
type ChangeStatusRequest struct {
	Status            string `json:"status"`
	AdminObservations string `json:"adminObservations,omitempty"`
}

// RepostRequest respuesta opcional del autor al devolver una nota PENDING a análisis.
type RepostRequest struct {
	UserResponse string `json:"userResponse,omitempty"`
}

// InvoiceFilter filtros de búsqueda del listado (query params).
type InvoiceFilter struct {
	SupplierName  string `query:"supplierName"`
	InvoiceNumber string `query:"invoiceNumber"`
	UserName      string `query:"userName"`
	Sector        string `query:"sector"`
	EmissionFrom  string `query:"emissionFrom"`
	EmissionTo    string `query:"emissionTo"`
	PostedFrom    string `query:"postedFrom"`
	PostedTo      string `query:"postedTo"`
}

// InvoiceResponse salida de una nota.
type InvoiceResponse struct {
	ID                string          `json:"id"`
	SupplierID        string          `json:"supplierId,omitempty"`
	SupplierName      string          `json:"supplierName"`
	SupplierCNPJ      string          `json:"supplierCnpj,omitempty"`
	InvoiceNumber     string          `json:"invoiceNumber"`
	EmissionDate      string          `json:"emissionDate"`
	OrderNumber       string          `json:"orderNumber"`
	Value             decimal.Decimal `json:"value"`
	DocType           string          `json:"docType"`
	Status            string          `json:"status"`
	UploadedBy        string          `json:"uploadedBy"`
	UserName          string          `json:"userName"`
	UserSector        string          `json:"userSector"`
	CreatedAt         time.Time       `json:"createdAt"`
	Observations      string          `json:"observations,omitempty"`
	AdminObservations string          `json:"adminObservations,omitempty"`
	UserResponse      string          `json:"userResponse,omitempty"`
	FileName          string          `json:"fileName,omitempty"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del flujo de revisión de una nota.
const (
	StatusInReview = "IN_REVIEW" // estado inicial, en análisis fiscal
	StatusReceived = "RECEIVED"  // terminal: la nota queda travada para edición/borrado no-admin
	StatusPending  = "PENDING"   // el revisor marcó una corrección pendiente
)

// Tipos de vínculo del documento.
const (
	DocTypeOSV      = "OSV"
	DocTypeContract = "CONTRACT"
)

// Invoice representa una nota fiscal/documento publicado en el portal.
//
// UserSector es un snapshot del sector del autor al momento de la postagem:
// nunca se reescribe aunque el usuario cambie de sector después.
// CreatedAt se reinicia en el repost para que la nota vuelva a la cola de
// revisión como recién publicada.
type Invoice struct {
	ID                string          `json:"id"`
	SupplierID        string          `json:"supplierId,omitempty"`
	SupplierName      string          `json:"supplierName"`
	SupplierCNPJ      string          `json:"supplierCnpj,omitempty"`
	InvoiceNumber     string          `json:"invoiceNumber"`
	EmissionDate      string          `json:"emissionDate"` // ISO yyyy-mm-dd
	OrderNumber       string          `json:"orderNumber"`
	Value             decimal.Decimal `json:"value"` // >= 0
	DocType           string          `json:"docType"` // OSV, CONTRACT
	Status            string          `json:"status"`
	UploadedBy        string          `json:"uploadedBy"` // User.ID del autor
	UserName          string          `json:"userName"`
	UserSector        string          `json:"userSector"`
	CreatedAt         time.Time       `json:"createdAt"`
	Observations      string          `json:"observations,omitempty"`
	AdminObservations string          `json:"adminObservations,omitempty"` // motivo cuando PENDING
	UserResponse      string          `json:"userResponse,omitempty"`      // respuesta del autor al repostear
	FileName          string          `json:"fileName,omitempty"`
	FileRef           string          `json:"fileRef,omitempty"` // handle opaco del adjunto guardado
}

// ValidStatus true si status pertenece al conjunto conocido.
func ValidStatus(status string) bool {
	return status == StatusInReview || status == StatusReceived || status == StatusPending
}

// ValidDocType true si docType pertenece al conjunto conocido.
func ValidDocType(docType string) bool {
	return docType == DocTypeOSV || docType == DocTypeContract
}

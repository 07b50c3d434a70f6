package dto

// AIExtractRequest imagen del documento en base64 + mime type.
type AIExtractRequest struct {
	ImageBase64 string `json:"imageBase64"`
	MimeType    string `json:"mimeType,omitempty"` // por defecto image/jpeg
}

// AIExtractionDTO campos sugeridos por el modelo a partir de la imagen.
// Nunca son autoritativos: el usuario siempre puede corregirlos antes de enviar.
type AIExtractionDTO struct {
	SupplierName  string  `json:"supplierName,omitempty"`
	SupplierCNPJ  string  `json:"supplierCnpj,omitempty"`
	InvoiceNumber string  `json:"invoiceNumber,omitempty"`
	EmissionDate  string  `json:"emissionDate,omitempty"` // ISO yyyy-mm-dd
	OrderNumber   string  `json:"orderNumber,omitempty"`
	Value         string  `json:"value,omitempty"` // decimal en string, punto como separador
	Confidence    float64 `json:"confidence"`
	Available     bool    `json:"available"` // false cuando el proveedor AI falló y los campos quedan vacíos
}

// AISummaryDTO resumen financiero en lenguaje natural del conjunto visible.
type AISummaryDTO struct {
	Text      string `json:"text"`
	Generated bool   `json:"generated"` // false cuando Text es el placeholder de fallback
}

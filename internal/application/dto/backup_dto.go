package dto

import (
	"time"

	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// BackupDocument snapshot completo para exportar/restaurar.
// El restore reemplaza el estado local por entero; no hay merge.
type BackupDocument struct {
	ExportedAt time.Time          `json:"exportedAt"`
	Invoices   []*entity.Invoice  `json:"invoices"`
	Users      []*entity.User     `json:"users"`
	Suppliers  []*entity.Supplier `json:"suppliers"`
}

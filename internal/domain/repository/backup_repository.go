package repository

import "github.com/delp/portal-notas-api/internal/domain/entity"

// BackupRepository puerto para exportar y reemplazar el estado completo.
// Restore reemplaza todo el snapshot; no hay merge.
type BackupRepository interface {
	ExportAll() (invoices []*entity.Invoice, users []*entity.User, suppliers []*entity.Supplier, err error)
	ReplaceAll(invoices []*entity.Invoice, users []*entity.User, suppliers []*entity.Supplier) error
}

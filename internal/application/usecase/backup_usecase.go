package usecase

import (
	"time"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/repository"
	"github.com/delp/portal-notas-api/pkg/logger"
)

// BackupUseCase exporta y restaura el estado completo del portal.
// Solo admin; el restore es un reemplazo total, sin merge.
type BackupUseCase struct {
	backupRepo repository.BackupRepository
	log        *logger.Logger
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(backupRepo repository.BackupRepository, log *logger.Logger) *BackupUseCase {
	return &BackupUseCase{backupRepo: backupRepo, log: log}
}

// Export arma el documento de backup con todo el estado actual.
func (uc *BackupUseCase) Export() (*dto.BackupDocument, error) {
	invoices, users, suppliers, err := uc.backupRepo.ExportAll()
	if err != nil {
		return nil, err
	}
	return &dto.BackupDocument{
		ExportedAt: time.Now(),
		Invoices:   invoices,
		Users:      users,
		Suppliers:  suppliers,
	}, nil
}

// Restore reemplaza el estado del portal por el contenido del documento.
// Un backup sin usuarios se rechaza: dejaría el sistema sin ningún login.
func (uc *BackupUseCase) Restore(doc dto.BackupDocument) error {
	if len(doc.Users) == 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.backupRepo.ReplaceAll(doc.Invoices, doc.Users, doc.Suppliers); err != nil {
		return err
	}
	uc.log.Info().
		Int("invoices", len(doc.Invoices)).
		Int("users", len(doc.Users)).
		Int("suppliers", len(doc.Suppliers)).
		Msg("estado restaurado desde backup")
	return nil
}

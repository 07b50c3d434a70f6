package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/infrastructure/storage"
	"github.com/delp/portal-notas-api/pkg/logger"
)

func openStore(t *testing.T) (*storage.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portal.json")
	fs, err := storage.Open(path, logger.Nop())
	require.NoError(t, err)
	return fs, path
}

func TestOpen_CreaSnapshotVacio(t *testing.T) {
	fs, path := openStore(t)

	invoices, users, suppliers, err := fs.ExportAll()
	require.NoError(t, err)
	assert.Empty(t, invoices)
	assert.Empty(t, users)
	assert.Empty(t, suppliers)

	_, err = os.Stat(path)
	assert.NoError(t, err, "el archivo de snapshot debe existir tras Open")
}

// Un snapshot corrupto no tumba la aplicación: se arranca vacío y el usuario
// puede restaurar desde backup.
func TestOpen_SnapshotCorruptoArrancaVacio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	fs, err := storage.Open(path, logger.Nop())
	require.NoError(t, err)

	invoices, users, _, err := fs.ExportAll()
	require.NoError(t, err)
	assert.Empty(t, invoices)
	assert.Empty(t, users)
}

func TestInvoiceRepository_CicloCompleto(t *testing.T) {
	fs, path := openStore(t)
	repo := storage.NewInvoiceRepository(fs)

	inv := &entity.Invoice{
		ID:            "n1",
		SupplierName:  "Acme",
		InvoiceNumber: "000123",
		Value:         decimal.NewFromInt(100),
		Status:        entity.StatusInReview,
		UploadedBy:    "u1",
		UserSector:    "FINANCE",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, repo.Create(inv))

	// Releer desde disco con un store nuevo: la mutación debe haberse persistido.
	fs2, err := storage.Open(path, logger.Nop())
	require.NoError(t, err)
	got, err := storage.NewInvoiceRepository(fs2).GetByID("n1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.SupplierName)
	assert.True(t, got.Value.Equal(decimal.NewFromInt(100)))

	inv.Status = entity.StatusReceived
	require.NoError(t, repo.Update(inv))
	got, err = repo.GetByID("n1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReceived, got.Status)

	require.NoError(t, repo.Delete("n1"))
	_, err = repo.GetByID("n1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete("n1"), domain.ErrNotFound)
}

// Números de nota duplicados están permitidos por diseño: el mismo número
// puede repetirse entre proveedores.
func TestInvoiceRepository_NumeroDuplicadoPermitido(t *testing.T) {
	fs, _ := openStore(t)
	repo := storage.NewInvoiceRepository(fs)

	require.NoError(t, repo.Create(&entity.Invoice{ID: "n1", SupplierName: "Acme", InvoiceNumber: "42"}))
	require.NoError(t, repo.Create(&entity.Invoice{ID: "n2", SupplierName: "Beta", InvoiceNumber: "42"}))

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUserRepository_BusquedaPorEmailCaseInsensitive(t *testing.T) {
	fs, _ := openStore(t)
	repo := storage.NewUserRepository(fs)

	require.NoError(t, repo.Create(&entity.User{ID: "u1", Email: "Maria@delp.com.br", Role: entity.RoleUser}))

	got, err := repo.GetByEmail("maria@DELP.com.br")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = repo.GetByEmail("nadie@delp.com.br")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Los repositorios devuelven copias: mutar el resultado no toca el snapshot.
func TestRepositorios_DevuelvenCopias(t *testing.T) {
	fs, _ := openStore(t)
	repo := storage.NewUserRepository(fs)
	require.NoError(t, repo.Create(&entity.User{ID: "u1", Name: "Maria", Email: "m@x", Role: entity.RoleUser}))

	got, err := repo.GetByID("u1")
	require.NoError(t, err)
	got.Name = "Mutado"

	again, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Maria", again.Name)
}

func TestReplaceAll_RestoreSinMerge(t *testing.T) {
	fs, _ := openStore(t)
	invRepo := storage.NewInvoiceRepository(fs)
	require.NoError(t, invRepo.Create(&entity.Invoice{ID: "vieja", SupplierName: "Acme"}))

	err := fs.ReplaceAll(
		[]*entity.Invoice{{ID: "nueva", SupplierName: "Beta"}},
		[]*entity.User{{ID: "u9", Email: "u9@x", Role: entity.RoleAdmin}},
		nil,
	)
	require.NoError(t, err)

	_, err = invRepo.GetByID("vieja")
	assert.ErrorIs(t, err, domain.ErrNotFound, "restore reemplaza todo, sin merge")

	got, err := invRepo.GetByID("nueva")
	require.NoError(t, err)
	assert.Equal(t, "Beta", got.SupplierName)
}

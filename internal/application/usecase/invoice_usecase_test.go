package usecase_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delp/portal-notas-api/internal/application/auth"
	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/application/usecase"
	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/infrastructure/storage"
	"github.com/delp/portal-notas-api/pkg/logger"
)

// newPortal levanta un use case sobre un snapshot temporal con tres usuarios:
// admin, un gestor del setor FINANCEIRO y un usuario común.
func newPortal(t *testing.T) (*usecase.InvoiceUseCase, *storage.UserRepository) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "portal.json"), logger.Nop())
	require.NoError(t, err)

	userRepo := storage.NewUserRepository(store)
	now := time.Now()
	for _, u := range []*entity.User{
		{ID: "admin-1", Name: "Admin", Email: "admin@delp.com.br", Role: entity.RoleAdmin, CreatedAt: now, UpdatedAt: now},
		{ID: "manager-1", Name: "Gestor", Email: "gestor@delp.com.br", Role: entity.RoleManager, Sector: "FINANCEIRO", CreatedAt: now, UpdatedAt: now},
		{ID: "user-1", Name: "Maria", Email: "maria@delp.com.br", Role: entity.RoleUser, Sector: "FINANCEIRO", CreatedAt: now, UpdatedAt: now},
		{ID: "user-2", Name: "João", Email: "joao@delp.com.br", Role: entity.RoleUser, Sector: "COMPRAS", CreatedAt: now, UpdatedAt: now},
	} {
		require.NoError(t, userRepo.Create(u))
	}

	uc := usecase.NewInvoiceUseCase(storage.NewInvoiceRepository(store), userRepo, logger.Nop())
	return uc, userRepo
}

func postNota(t *testing.T, uc *usecase.InvoiceUseCase, actorID, number string) *dto.InvoiceResponse {
	t.Helper()
	out, err := uc.Create(actorID, dto.CreateInvoiceRequest{
		SupplierName:  "Acme Ltda",
		InvoiceNumber: number,
		EmissionDate:  "2026-08-01",
		Value:         decimal.NewFromFloat(1500.50),
	})
	require.NoError(t, err)
	return out
}

func TestCreate_NaceEnAnalisisConSnapshotDeSector(t *testing.T) {
	uc, _ := newPortal(t)

	out := postNota(t, uc, "user-1", "NF-100")
	assert.Equal(t, entity.StatusInReview, out.Status, "toda nota nace en análisis, sin importar el autor")
	assert.Equal(t, "FINANCEIRO", out.UserSector)
	assert.Equal(t, "Maria", out.UserName)
	assert.False(t, out.CreatedAt.IsZero())

	// La nota de un admin también nace IN_REVIEW.
	adminOut := postNota(t, uc, "admin-1", "NF-101")
	assert.Equal(t, entity.StatusInReview, adminOut.Status)
}

func TestCreate_SectorSnapshotNoSigueEdicionesDelUsuario(t *testing.T) {
	uc, userRepo := newPortal(t)
	out := postNota(t, uc, "user-1", "NF-200")

	u, err := userRepo.GetByID("user-1")
	require.NoError(t, err)
	u.Sector = "LOGISTICA"
	require.NoError(t, userRepo.Update(u))

	got, err := uc.Get("admin-1", out.ID)
	require.NoError(t, err)
	assert.Equal(t, "FINANCEIRO", got.UserSector, "el sector de la nota es un snapshot histórico")
}

func TestCreate_ValidaCamposObligatorios(t *testing.T) {
	uc, _ := newPortal(t)

	_, err := uc.Create("user-1", dto.CreateInvoiceRequest{SupplierName: "Acme"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("user-1", dto.CreateInvoiceRequest{
		SupplierName:  "Acme",
		InvoiceNumber: "NF-1",
		EmissionDate:  "01/08/2026", // formato brasileño, no ISO
		Value:         decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("user-1", dto.CreateInvoiceRequest{
		SupplierName:  "Acme",
		InvoiceNumber: "NF-1",
		EmissionDate:  "2026-08-01",
		Value:         decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_VisibilidadPorRol(t *testing.T) {
	uc, _ := newPortal(t)
	postNota(t, uc, "user-1", "NF-1") // setor FINANCEIRO
	postNota(t, uc, "user-2", "NF-2") // setor COMPRAS

	admin, err := uc.List("admin-1", dto.InvoiceFilter{})
	require.NoError(t, err)
	assert.Len(t, admin, 2, "admin ve todo")

	manager, err := uc.List("manager-1", dto.InvoiceFilter{})
	require.NoError(t, err)
	require.Len(t, manager, 1, "gestor ve solo su setor")
	assert.Equal(t, "NF-1", manager[0].InvoiceNumber)

	own, err := uc.List("user-2", dto.InvoiceFilter{})
	require.NoError(t, err)
	require.Len(t, own, 1, "usuario ve solo lo propio")
	assert.Equal(t, "NF-2", own[0].InvoiceNumber)
}

func TestGet_NotaFueraDeAlcanceEsNotFound(t *testing.T) {
	uc, _ := newPortal(t)
	out := postNota(t, uc, "user-2", "NF-3")

	_, err := uc.Get("user-1", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "una nota invisible se reporta como inexistente")
}

func TestChangeStatus_FlujoRecibirYPendiente(t *testing.T) {
	uc, _ := newPortal(t)
	out := postNota(t, uc, "user-1", "NF-4")

	// Un no-admin no puede revisar.
	_, err := uc.ChangeStatus("user-1", out.ID, dto.ChangeStatusRequest{Status: entity.StatusReceived})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// PENDING exige motivo.
	_, err = uc.ChangeStatus("admin-1", out.ID, dto.ChangeStatusRequest{Status: entity.StatusPending})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.ChangeStatus("admin-1", out.ID, dto.ChangeStatusRequest{
		Status:            entity.StatusPending,
		AdminObservations: "falta o número do pedido",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)
	assert.Equal(t, "falta o número do pedido", got.AdminObservations)

	// Desde PENDING el admin aún puede recibir.
	got, err = uc.ChangeStatus("admin-1", out.ID, dto.ChangeStatusRequest{Status: entity.StatusReceived})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReceived, got.Status)

	// Recibida es terminal para el flujo normal.
	_, err = uc.ChangeStatus("admin-1", out.ID, dto.ChangeStatusRequest{
		Status:            entity.StatusPending,
		AdminObservations: "tarde demais",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRepost_VuelveAAnalisisYAvanzaCreatedAt(t *testing.T) {
	uc, _ := newPortal(t)
	out := postNota(t, uc, "user-1", "NF-5")

	_, err := uc.ChangeStatus("admin-1", out.ID, dto.ChangeStatusRequest{
		Status:            entity.StatusPending,
		AdminObservations: "anexo ilegível",
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	got, err := uc.Repost("user-1", out.ID, dto.RepostRequest{UserResponse: "anexo substituído"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInReview, got.Status)
	assert.True(t, got.CreatedAt.After(out.CreatedAt), "el reenvío avanza la fecha de publicación")
	assert.Equal(t, "anexo substituído", got.UserResponse)
	assert.Empty(t, got.AdminObservations, "el reenvío limpia el motivo de la devolución")

	// Solo autor o admin pueden reenviar, y solo desde PENDING.
	_, err = uc.Repost("user-1", out.ID, dto.RepostRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDelete_GuardaDeNotaRecibida(t *testing.T) {
	uc, _ := newPortal(t)
	out := postNota(t, uc, "user-1", "NF-6")

	// Otro usuario no puede borrar lo ajeno.
	err := uc.Delete("user-2", out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ChangeStatus("admin-1", out.ID, dto.ChangeStatusRequest{Status: entity.StatusReceived})
	require.NoError(t, err)

	// El autor queda travado después de recibida.
	err = uc.Delete("user-1", out.ID)
	assert.ErrorIs(t, err, domain.ErrRecordLocked)

	// El admin siempre puede.
	require.NoError(t, uc.Delete("admin-1", out.ID))
	_, err = uc.Get("admin-1", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_AutorBloqueadoTrasRecibida(t *testing.T) {
	uc, _ := newPortal(t)
	out := postNota(t, uc, "user-1", "NF-7")

	obs := "valor corrigido"
	_, err := uc.Update("user-1", out.ID, dto.UpdateInvoiceRequest{Observations: &obs})
	require.NoError(t, err)

	_, err = uc.ChangeStatus("admin-1", out.ID, dto.ChangeStatusRequest{Status: entity.StatusReceived})
	require.NoError(t, err)

	_, err = uc.Update("user-1", out.ID, dto.UpdateInvoiceRequest{Observations: &obs})
	assert.ErrorIs(t, err, domain.ErrRecordLocked)

	// El admin sigue pudiendo editar.
	_, err = uc.Update("admin-1", out.ID, dto.UpdateInvoiceRequest{Observations: &obs})
	require.NoError(t, err)
}

// El login por email sigue funcionando tras sembrar; humo del Bootstrap.
func TestBootstrap_SiembraSoloConStoreVacio(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "portal.json"), logger.Nop())
	require.NoError(t, err)
	userRepo := storage.NewUserRepository(store)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: "s", ExpMinutes: 60, Issuer: "test"})

	seeds := []auth.SeedUser{
		{ID: entity.MasterUserID, Name: "Master", Email: "delp", Password: "delp1234", Role: entity.RoleAdmin},
	}
	require.NoError(t, authUC.Bootstrap(seeds))

	out, err := authUC.Login(dto.LoginRequest{Identifier: "delp", Password: "delp1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// Segundo Bootstrap no duplica ni resetea.
	seeds[0].Password = "outra"
	require.NoError(t, authUC.Bootstrap(seeds))
	_, err = authUC.Login(dto.LoginRequest{Identifier: "delp", Password: "outra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

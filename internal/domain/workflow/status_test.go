package workflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/domain/workflow"
)

var (
	admin  = &entity.User{ID: "a1", Role: entity.RoleAdmin}
	author = &entity.User{ID: "u1", Role: entity.RoleUser, Sector: "FINANCE"}
	other  = &entity.User{ID: "u2", Role: entity.RoleUser}
)

func nota(status string) *entity.Invoice {
	return &entity.Invoice{
		ID:         "n1",
		UploadedBy: author.ID,
		UserSector: author.Sector,
		Status:     status,
		CreatedAt:  time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestReceive_AdminDesdeInReview(t *testing.T) {
	n := nota(entity.StatusInReview)
	require.NoError(t, workflow.Receive(admin, n))
	assert.Equal(t, entity.StatusReceived, n.Status)
}

func TestReceive_AdminDesdePending(t *testing.T) {
	n := nota(entity.StatusPending)
	require.NoError(t, workflow.Receive(admin, n))
	assert.Equal(t, entity.StatusReceived, n.Status)
}

// Un USER no puede marcar RECEIVED: se rechaza antes de cualquier mutación.
func TestReceive_UsuarioComunRechazado(t *testing.T) {
	n := nota(entity.StatusInReview)
	err := workflow.Receive(author, n)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.StatusInReview, n.Status, "sin estado parcial")
}

func TestFlagPending_RequiereMotivo(t *testing.T) {
	n := nota(entity.StatusInReview)
	err := workflow.FlagPending(admin, n, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.StatusInReview, n.Status)
}

func TestFlagPending_LimpiaRespuestaAnterior(t *testing.T) {
	n := nota(entity.StatusInReview)
	n.UserResponse = "respuesta vieja"

	require.NoError(t, workflow.FlagPending(admin, n, "falta el número de pedido"))

	assert.Equal(t, entity.StatusPending, n.Status)
	assert.Equal(t, "falta el número de pedido", n.AdminObservations)
	assert.Empty(t, n.UserResponse)
}

func TestFlagPending_SoloAdmin(t *testing.T) {
	n := nota(entity.StatusInReview)
	assert.ErrorIs(t, workflow.FlagPending(author, n, "motivo"), domain.ErrForbidden)
}

// Escenario: Acme 100 y Beta 200 en análisis; el admin recibe la de Acme y
// luego intenta marcarla pendiente. RECEIVED es terminal para el flujo normal.
func TestFlagPending_RecibidaEsTerminal(t *testing.T) {
	acme := nota(entity.StatusInReview)
	acme.SupplierName = "Acme"
	beta := nota(entity.StatusInReview)
	beta.ID = "n2"
	beta.SupplierName = "Beta"

	require.NoError(t, workflow.Receive(admin, acme))

	err := workflow.FlagPending(admin, acme, "revisar valor")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, entity.StatusReceived, acme.Status)
	assert.Empty(t, acme.AdminObservations)
}

func TestRepost_AutorVuelveAAnalisis(t *testing.T) {
	n := nota(entity.StatusPending)
	n.AdminObservations = "falta adjunto"
	before := n.CreatedAt
	now := time.Date(2024, 5, 2, 15, 30, 0, 0, time.UTC)

	require.NoError(t, workflow.Repost(author, n, "adjunto corregido", now))

	assert.Equal(t, entity.StatusInReview, n.Status)
	assert.Empty(t, n.AdminObservations)
	assert.Equal(t, "adjunto corregido", n.UserResponse)
	assert.True(t, n.CreatedAt.After(before), "CreatedAt debe avanzar estrictamente")
}

func TestRepost_SinRespuestaConservaLaAnterior(t *testing.T) {
	n := nota(entity.StatusPending)
	n.UserResponse = "respuesta previa"

	require.NoError(t, workflow.Repost(author, n, "", time.Now()))
	assert.Equal(t, "respuesta previa", n.UserResponse)
}

func TestRepost_OtroUsuarioRechazado(t *testing.T) {
	n := nota(entity.StatusPending)
	assert.ErrorIs(t, workflow.Repost(other, n, "x", time.Now()), domain.ErrForbidden)
	assert.Equal(t, entity.StatusPending, n.Status)
}

func TestRepost_AdminTambienPuede(t *testing.T) {
	n := nota(entity.StatusPending)
	require.NoError(t, workflow.Repost(admin, n, "corregido por fiscal", time.Now()))
	assert.Equal(t, entity.StatusInReview, n.Status)
}

func TestRepost_SoloDesdePending(t *testing.T) {
	n := nota(entity.StatusInReview)
	assert.ErrorIs(t, workflow.Repost(author, n, "x", time.Now()), domain.ErrConflict)
}

func TestReopen_SoloAdminDesdeReceived(t *testing.T) {
	n := nota(entity.StatusReceived)
	require.NoError(t, workflow.Reopen(admin, n))
	assert.Equal(t, entity.StatusInReview, n.Status)

	n2 := nota(entity.StatusReceived)
	assert.ErrorIs(t, workflow.Reopen(author, n2), domain.ErrForbidden)

	n3 := nota(entity.StatusPending)
	assert.ErrorIs(t, workflow.Reopen(admin, n3), domain.ErrConflict)
}

func TestCanDelete_AdminSiempre(t *testing.T) {
	assert.NoError(t, workflow.CanDelete(admin, nota(entity.StatusReceived)))
}

func TestCanDelete_AutorMientrasNoEsteRecibida(t *testing.T) {
	assert.NoError(t, workflow.CanDelete(author, nota(entity.StatusInReview)))
	assert.NoError(t, workflow.CanDelete(author, nota(entity.StatusPending)))
}

// Borrar una nota RECEIVED como no-admin falla con error de permiso,
// nunca como no-op silencioso.
func TestCanDelete_RecibidaTravadaParaElAutor(t *testing.T) {
	err := workflow.CanDelete(author, nota(entity.StatusReceived))
	assert.ErrorIs(t, err, domain.ErrRecordLocked)
}

func TestCanDelete_TerceroRechazado(t *testing.T) {
	assert.ErrorIs(t, workflow.CanDelete(other, nota(entity.StatusInReview)), domain.ErrForbidden)
}

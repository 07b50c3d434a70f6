package workflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/domain/workflow"
)

func inv(id, uploadedBy, sector string, createdAt time.Time) *entity.Invoice {
	return &entity.Invoice{
		ID:         id,
		UploadedBy: uploadedBy,
		UserSector: sector,
		Status:     entity.StatusInReview,
		CreatedAt:  createdAt,
	}
}

func TestVisibleSet_AdminVeTodo(t *testing.T) {
	admin := &entity.User{ID: "a1", Role: entity.RoleAdmin}
	now := time.Now()
	all := []*entity.Invoice{
		inv("n1", "u1", "FINANCE", now),
		inv("n2", "u2", "HR", now),
		inv("n3", "u3", "", now),
	}

	got := workflow.VisibleSet(admin, all)
	assert.Len(t, got, 3, "ADMIN ve todas las notas sin restricción")
}

func TestVisibleSet_UserVeSoloLasPropias(t *testing.T) {
	alice := &entity.User{ID: "u1", Role: entity.RoleUser, Sector: "FINANCE"}
	now := time.Now()
	all := []*entity.Invoice{
		inv("n1", "u1", "FINANCE", now),
		inv("n2", "u2", "FINANCE", now), // mismo sector, otro autor: invisible
		inv("n3", "u1", "HR", now),
	}

	got := workflow.VisibleSet(alice, all)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "u1", r.UploadedBy)
	}
}

// bob no ve la nota de alice aunque ambos sean USER.
func TestVisibleSet_UserNoVeNotasDeOtroUsuario(t *testing.T) {
	bob := &entity.User{ID: "u2", Role: entity.RoleUser}
	all := []*entity.Invoice{inv("n1", "u1", "FINANCE", time.Now())}

	got := workflow.VisibleSet(bob, all)
	assert.Empty(t, got, "la vista de bob excluye la nota de alice")
}

func TestVisibleSet_ManagerVePorSectorSnapshot(t *testing.T) {
	manager := &entity.User{ID: "m1", Role: entity.RoleManager, Sector: "FINANCE"}
	now := time.Now()
	all := []*entity.Invoice{
		inv("n1", "u1", "FINANCE", now),
		inv("n2", "u2", "HR", now),
		inv("n3", "u3", "finance", now), // case-sensitive: no coincide
	}

	got := workflow.VisibleSet(manager, all)
	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].ID)
}

// El sector de la nota es un snapshot histórico: si el autor fue movido de
// FINANCE a HR después de publicar, la nota sigue apareciendo en la vista del
// gestor de FINANCE.
func TestVisibleSet_SnapshotDeSectorNoSigueAlUsuario(t *testing.T) {
	manager := &entity.User{ID: "m1", Role: entity.RoleManager, Sector: "FINANCE"}
	nota := inv("n1", "u1", "FINANCE", time.Now())

	// El autor cambió de sector; la nota conserva su snapshot.
	got := workflow.VisibleSet(manager, []*entity.Invoice{nota})
	require.Len(t, got, 1)
	assert.Equal(t, "FINANCE", got[0].UserSector)
}

func TestVisibleSet_ManagerSinSectorNoVeNada(t *testing.T) {
	manager := &entity.User{ID: "m1", Role: entity.RoleManager, Sector: ""}
	all := []*entity.Invoice{
		inv("n1", "u1", "FINANCE", time.Now()),
		inv("n2", "u2", "", time.Now()),
	}

	got := workflow.VisibleSet(manager, all)
	assert.Empty(t, got, "manager sin sector nunca cae al comportamiento de ADMIN")
}

func TestVisibleSet_RolDesconocidoNoVeNada(t *testing.T) {
	raro := &entity.User{ID: "x", Role: "SUPERVISOR"}
	got := workflow.VisibleSet(raro, []*entity.Invoice{inv("n1", "x", "A", time.Now())})
	assert.Empty(t, got)
}

func TestSortForDisplay_MasRecientePrimero(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	list := []*entity.Invoice{
		inv("n1", "u1", "A", base),
		inv("n2", "u1", "A", base.Add(2*time.Hour)),
		inv("n3", "u1", "A", base.Add(time.Hour)),
	}

	workflow.SortForDisplay(list)

	assert.Equal(t, []string{"n2", "n3", "n1"},
		[]string{list[0].ID, list[1].ID, list[2].ID})
}

func TestSortForDisplay_EmpateResueltoPorID(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	list := []*entity.Invoice{
		inv("nb", "u1", "A", ts),
		inv("na", "u1", "A", ts),
	}

	workflow.SortForDisplay(list)
	assert.Equal(t, "na", list[0].ID)
}

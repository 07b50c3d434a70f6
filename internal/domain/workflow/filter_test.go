package workflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/domain/workflow"
)

func sample() *entity.Invoice {
	return &entity.Invoice{
		ID:            "n1",
		SupplierName:  "Acme Industrial Ltda",
		InvoiceNumber: "000123",
		UserName:      "Maria Souza",
		UserSector:    "FINANCE",
		EmissionDate:  "2024-04-28",
		CreatedAt:     time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC),
	}
}

func TestCriteria_VaciaAceptaTodo(t *testing.T) {
	assert.True(t, workflow.Criteria{}.Match(sample()))
}

func TestCriteria_SubstringsCaseInsensitive(t *testing.T) {
	cases := []struct {
		name string
		c    workflow.Criteria
		want bool
	}{
		{"proveedor parcial minúsculas", workflow.Criteria{SupplierName: "acme"}, true},
		{"proveedor no coincide", workflow.Criteria{SupplierName: "Beta"}, false},
		{"número substring", workflow.Criteria{InvoiceNumber: "012"}, true},
		{"número sensible tal cual", workflow.Criteria{InvoiceNumber: "999"}, false},
		{"autor case-insensitive", workflow.Criteria{UserName: "maria"}, true},
		{"sector substring", workflow.Criteria{Sector: "FIN"}, true},
		{"sector no coincide", workflow.Criteria{Sector: "HR"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.Match(sample()))
		})
	}
}

func TestCriteria_RangoDeEmision(t *testing.T) {
	// Inclusivo en ambos extremos, comparación lexicográfica ISO.
	assert.True(t, workflow.Criteria{EmissionFrom: "2024-04-28", EmissionTo: "2024-04-28"}.Match(sample()))
	assert.False(t, workflow.Criteria{EmissionFrom: "2024-04-29"}.Match(sample()))
	assert.False(t, workflow.Criteria{EmissionTo: "2024-04-27"}.Match(sample()))
}

func TestCriteria_RangoDePostagem(t *testing.T) {
	// Compara solo la porción de fecha de CreatedAt.
	assert.True(t, workflow.Criteria{PostedFrom: "2024-05-02", PostedTo: "2024-05-02"}.Match(sample()))
	assert.False(t, workflow.Criteria{PostedTo: "2024-05-01"}.Match(sample()))
}

func TestCriteria_PredicadosConjuntivos(t *testing.T) {
	c := workflow.Criteria{SupplierName: "Acme", InvoiceNumber: "999"}
	assert.False(t, c.Match(sample()), "todos los predicados deben cumplirse (AND)")
}

func TestCriteria_ApplyNoMutaEntrada(t *testing.T) {
	list := []*entity.Invoice{sample(), sample()}
	list[1].ID = "n2"
	list[1].SupplierName = "Beta"

	got := workflow.Criteria{SupplierName: "acme"}.Apply(list)

	assert.Len(t, got, 1)
	assert.Len(t, list, 2)
}

package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// DashboardUseCase métricas agregadas del panel administrativo.
// Se calcula sobre el conjunto visible del actor, por lo que un admin ve
// el total global y nadie puede agregar notas que no podría listar.
type DashboardUseCase struct {
	invoices *InvoiceUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(invoices *InvoiceUseCase) *DashboardUseCase {
	return &DashboardUseCase{invoices: invoices}
}

// Metrics agrega totales generales, conteo por status y totales por proveedor.
func (uc *DashboardUseCase) Metrics(actorID string, f dto.InvoiceFilter) (*dto.DashboardResponse, error) {
	visible, err := uc.invoices.VisibleEntities(actorID, f)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	statusCounts := map[string]int{
		entity.StatusInReview: 0,
		entity.StatusReceived: 0,
		entity.StatusPending:  0,
	}
	bySupplier := make(map[string]*dto.SupplierAggregate)

	for _, inv := range visible {
		total = total.Add(inv.Value)
		statusCounts[inv.Status]++
		agg, ok := bySupplier[inv.SupplierName]
		if !ok {
			agg = &dto.SupplierAggregate{Name: inv.SupplierName, TotalValue: decimal.Zero}
			bySupplier[inv.SupplierName] = agg
		}
		agg.Count++
		agg.TotalValue = agg.TotalValue.Add(inv.Value)
	}

	suppliers := make([]dto.SupplierAggregate, 0, len(bySupplier))
	for _, agg := range bySupplier {
		suppliers = append(suppliers, *agg)
	}
	sort.Slice(suppliers, func(i, j int) bool {
		if !suppliers[i].TotalValue.Equal(suppliers[j].TotalValue) {
			return suppliers[i].TotalValue.GreaterThan(suppliers[j].TotalValue)
		}
		return suppliers[i].Name < suppliers[j].Name
	})

	return &dto.DashboardResponse{
		TotalValue:    total,
		TotalCount:    len(visible),
		SupplierCount: len(suppliers),
		StatusCounts:  statusCounts,
		Suppliers:     suppliers,
	}, nil
}

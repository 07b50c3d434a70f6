package dto

import "github.com/shopspring/decimal"

// SupplierAggregate totales por proveedor para el panel administrativo.
type SupplierAggregate struct {
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// DashboardResponse métricas del panel: totales generales, por status y por proveedor.
type DashboardResponse struct {
	TotalValue    decimal.Decimal     `json:"totalValue"`
	TotalCount    int                 `json:"totalCount"`
	SupplierCount int                 `json:"supplierCount"`
	StatusCounts  map[string]int      `json:"statusCounts"`
	Suppliers     []SupplierAggregate `json:"suppliers"` // orden: mayor valor primero
}

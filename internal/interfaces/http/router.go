package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/delp/portal-notas-api/internal/application/auth"
	"github.com/delp/portal-notas-api/internal/application/ports"
	"github.com/delp/portal-notas-api/internal/application/usecase"
	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	UserUC      *usecase.UserUseCase
	SupplierUC  *usecase.SupplierUseCase
	ReportUC    *usecase.ReportUseCase
	BackupUC    *usecase.BackupUseCase
	AIUC        *usecase.AIUseCase
	DashboardUC *usecase.DashboardUseCase
	Files       ports.FileStorage
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Notas fiscales: lectura y escritura para cualquier autenticado; las
	// reglas de visibilidad y la guarda de borrado viven en el use case.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.Files)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Patch("/:id/status", adminOnly, invoiceHandler.ChangeStatus)
	invoices.Post("/:id/repost", invoiceHandler.Repost)
	invoices.Get("/:id/file", invoiceHandler.DownloadFile)

	// Proveedores: lectura para todos, escritura de admin.
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", adminOnly, supplierHandler.Create)
	suppliers.Put("/:id", adminOnly, supplierHandler.Update)

	// Reportes sobre el conjunto visible del actor.
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/csv", reportHandler.CSV)
	reports.Get("/xml", reportHandler.XML)
	reports.Get("/pdf", reportHandler.PDF)
	reports.Get("/attachments", reportHandler.AttachmentsZip)

	// IA best-effort.
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/extract", aiHandler.Extract)
	ai.Get("/summary", aiHandler.Summary)

	// Administración: usuarios, backup y panel (solo admin).
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	backupHandler := NewBackupHandler(deps.BackupUC)
	protected.Get("/backup", adminOnly, backupHandler.Export)
	protected.Post("/backup", adminOnly, backupHandler.Restore)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", adminOnly, dashboardHandler.Metrics)
}

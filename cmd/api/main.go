package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/delp/portal-notas-api/internal/application/auth"
	"github.com/delp/portal-notas-api/internal/application/ports"
	"github.com/delp/portal-notas-api/internal/application/usecase"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	infraai "github.com/delp/portal-notas-api/internal/infrastructure/ai"
	"github.com/delp/portal-notas-api/internal/infrastructure/files"
	"github.com/delp/portal-notas-api/internal/infrastructure/report"
	"github.com/delp/portal-notas-api/internal/infrastructure/storage"
	httpRouter "github.com/delp/portal-notas-api/internal/interfaces/http"
	"github.com/delp/portal-notas-api/pkg/config"
	"github.com/delp/portal-notas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Todo el estado vive en el snapshot JSON local; no hay base de datos servidor.
	store, err := storage.Open(cfg.Storage.SnapshotPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir snapshot de datos")
	}

	fileStorage, err := files.NewDiskStorage(cfg.Storage.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar directorio de adjuntos")
	}

	userRepo := storage.NewUserRepository(store)
	invoiceRepo := storage.NewInvoiceRepository(store)
	supplierRepo := storage.NewSupplierRepository(store)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, userRepo, log)
	userUC := usecase.NewUserUseCase(userRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	backupUC := usecase.NewBackupUseCase(store, log)
	dashboardUC := usecase.NewDashboardUseCase(invoiceUC)
	reportUC := usecase.NewReportUseCase(invoiceUC, report.NewGenerator(), fileStorage)

	// Proveedor de IA opcional; sin API key el portal degrada a modo manual.
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		if cfg.AI.AnthropicAPIKey != "" {
			llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
		}
	default:
		if cfg.AI.GeminiAPIKey != "" {
			llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		}
	}
	if llm == nil {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("proveedor de IA sin API key, funciones AI degradadas")
	}
	aiUC := usecase.NewAIUseCase(llm, invoiceUC, log)

	// Siembra del primer arranque: admin master + usuario de ejemplo.
	seeds := []auth.SeedUser{
		{
			ID:       entity.MasterUserID,
			Name:     cfg.Seed.AdminName,
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
			Role:     entity.RoleAdmin,
		},
		{
			ID:       "user-demo",
			Name:     cfg.Seed.UserName,
			Email:    cfg.Seed.UserEmail,
			Password: cfg.Seed.UserPassword,
			Role:     entity.RoleUser,
			Sector:   cfg.Seed.UserSector,
		},
	}
	if err := authUC.Bootstrap(seeds); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios iniciales")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    25 * 1024 * 1024, // adjuntos e imágenes base64
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portal de Notas Fiscais API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InvoiceUC:   invoiceUC,
		UserUC:      userUC,
		SupplierUC:  supplierUC,
		ReportUC:    reportUC,
		BackupUC:    backupUC,
		AIUC:        aiUC,
		DashboardUC: dashboardUC,
		Files:       fileStorage,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// Herramienta de recuperación: crea o resetea el usuario admin master del
// snapshot local. Útil cuando se perdió la contraseña del único admin.
//
// Uso:
//
//	go run ./cmd/seed            # crea/resetea el master con las credenciales de SEED_ADMIN_*
package main

import (
	"time"

	"github.com/delp/portal-notas-api/internal/application/auth"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/infrastructure/storage"
	"github.com/delp/portal-notas-api/pkg/config"
	"github.com/delp/portal-notas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store, err := storage.Open(cfg.Storage.SnapshotPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir snapshot de datos")
	}
	userRepo := storage.NewUserRepository(store)

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña")
	}

	now := time.Now()
	if existing, err := userRepo.GetByID(entity.MasterUserID); err == nil {
		existing.Email = cfg.Seed.AdminEmail
		existing.PasswordHash = hash
		existing.Role = entity.RoleAdmin
		existing.UpdatedAt = now
		if err := userRepo.Update(existing); err != nil {
			log.Fatal().Err(err).Msg("actualizar admin master")
		}
		log.Info().Str("email", existing.Email).Msg("admin master reseteado")
		return
	}

	master := &entity.User{
		ID:           entity.MasterUserID,
		Name:         cfg.Seed.AdminName,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(master); err != nil {
		log.Fatal().Err(err).Msg("crear admin master")
	}
	log.Info().Str("email", master.Email).Msg("admin master creado")
}

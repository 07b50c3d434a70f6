package auth

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/domain/repository"
	"github.com/delp/portal-notas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación del portal.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login autentica por email (case-insensitive) O por id interno, con password
// exacto, y emite el JWT. El fallo es siempre ErrInvalidCredentials: no se
// distingue usuario desconocido de password incorrecto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.TrimSpace(in.Identifier)
	if identifier == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetByEmail(identifier)
	if err != nil {
		user, err = uc.userRepo.GetByID(identifier)
	}
	if err != nil || user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.Sector, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  ToUserResponse(user),
	}, nil
}

// HashPassword hashea un password en texto con bcrypt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ToUserResponse convierte la entidad al DTO de salida (sin password).
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Sector:    u.Sector,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// SeedUser parámetros de un usuario a sembrar en el primer arranque.
type SeedUser struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
	Sector   string
}

// Bootstrap siembra los usuarios iniciales (un ADMIN master + un USER de
// ejemplo) cuando el store no contiene ningún usuario. En cualquier otro caso
// no hace nada.
func (uc *AuthUseCase) Bootstrap(seeds []SeedUser) error {
	existing, err := uc.userRepo.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	now := time.Now()
	for _, s := range seeds {
		hash, err := HashPassword(s.Password)
		if err != nil {
			return err
		}
		u := &entity.User{
			ID:           s.ID,
			Name:         s.Name,
			Email:        s.Email,
			PasswordHash: hash,
			Role:         s.Role,
			Sector:       s.Sector,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.userRepo.Create(u); err != nil {
			return err
		}
	}
	return nil
}

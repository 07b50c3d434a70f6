package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/delp/portal-notas-api/internal/application/auth"
	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/domain/repository"
)

// UserUseCase administración de usuarios del portal. Todas las operaciones
// son de admin (el router lo garantiza); aquí se validan rol, unicidad de
// email y la protección del usuario master.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List devuelve todos los usuarios sin hashes.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// Get devuelve un usuario por id.
func (uc *UserUseCase) Get(id string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := auth.ToUserResponse(u)
	return &resp, nil
}

// Create registra un usuario nuevo. El email es único (case-insensitive)
// y el password se guarda hasheado con bcrypt.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.GetByEmail(email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		Sector:       strings.TrimSpace(in.Sector),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(u); err != nil {
		return nil, err
	}
	resp := auth.ToUserResponse(u)
	return &resp, nil
}

// Update edita nombre, email, rol, sector y opcionalmente el password.
// Cambiar el sector de un usuario NO toca el sector snapshot de sus notas
// ya publicadas. El rol del usuario master no se puede degradar.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if u.ID == entity.MasterUserID && in.Role != entity.RoleAdmin {
		return nil, domain.ErrMasterUser
	}

	email := strings.TrimSpace(in.Email)
	if email == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.GetByEmail(email); existing != nil && existing.ID != u.ID {
		return nil, domain.ErrEmailAlreadyExists
	}

	u.Name = strings.TrimSpace(in.Name)
	u.Email = email
	u.Role = in.Role
	u.Sector = strings.TrimSpace(in.Sector)
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(u); err != nil {
		return nil, err
	}
	resp := auth.ToUserResponse(u)
	return &resp, nil
}

// Delete elimina un usuario. El master es inborrable. Las notas publicadas
// por el usuario eliminado permanecen, con su nombre y sector snapshot.
func (uc *UserUseCase) Delete(id string) error {
	if id == entity.MasterUserID {
		return domain.ErrMasterUser
	}
	if _, err := uc.userRepo.GetByID(id); err != nil {
		return err
	}
	return uc.userRepo.Delete(id)
}

package storage

import (
	"strings"

	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/domain/repository"
)

// Verificación en tiempo de compilación.
var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository repositorio de usuarios sobre el FileStore.
type UserRepository struct {
	store *FileStore
}

// NewUserRepository construye el repositorio.
func NewUserRepository(store *FileStore) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.store.withWrite(func(s *Snapshot) error {
		if _, exists := s.Users[user.ID]; exists {
			return domain.ErrEmailAlreadyExists
		}
		c := *user
		s.Users[c.ID] = &c
		return nil
	})
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	var out *entity.User
	r.store.withRead(func(s *Snapshot) {
		if u, ok := s.Users[id]; ok {
			c := *u
			out = &c
		}
	})
	if out == nil {
		return nil, domain.ErrUserNotFound
	}
	return out, nil
}

// GetByEmail busca por email con comparación case-insensitive.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var out *entity.User
	r.store.withRead(func(s *Snapshot) {
		for _, u := range s.Users {
			if strings.EqualFold(u.Email, email) {
				c := *u
				out = &c
				break
			}
		}
	})
	if out == nil {
		return nil, domain.ErrUserNotFound
	}
	return out, nil
}

func (r *UserRepository) Update(user *entity.User) error {
	return r.store.withWrite(func(s *Snapshot) error {
		if _, ok := s.Users[user.ID]; !ok {
			return domain.ErrUserNotFound
		}
		c := *user
		s.Users[c.ID] = &c
		return nil
	})
}

func (r *UserRepository) Delete(id string) error {
	return r.store.withWrite(func(s *Snapshot) error {
		if _, ok := s.Users[id]; !ok {
			return domain.ErrUserNotFound
		}
		delete(s.Users, id)
		return nil
	})
}

func (r *UserRepository) List() ([]*entity.User, error) {
	var out []*entity.User
	r.store.withRead(func(s *Snapshot) {
		for _, u := range s.Users {
			c := *u
			out = append(out, &c)
		}
	})
	return out, nil
}

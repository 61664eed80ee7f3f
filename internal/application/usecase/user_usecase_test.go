package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

type profileUsers struct {
	repository.UserRepository
	users map[string]*entity.User
}

func (f *profileUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func TestUserProfile(t *testing.T) {
	repo := &profileUsers{users: map[string]*entity.User{
		"u-1": {ID: "u-1", Email: "ana@stock.test", Name: "Ana", Role: entity.RoleManager, IsActive: true, CreatedAt: time.Now()},
		"u-2": {ID: "u-2", Email: "baja@stock.test", Name: "Baja", Role: entity.RoleStaff, IsActive: false},
	}}
	uc := usecase.NewUserUseCase(repo)

	t.Run("activo", func(t *testing.T) {
		u, err := uc.Profile(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, "ana@stock.test", u.Email)
		assert.Equal(t, entity.RoleManager, u.Role)
	})

	t.Run("inactivo no autorizado", func(t *testing.T) {
		_, err := uc.Profile(context.Background(), "u-2")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("inexistente no autorizado", func(t *testing.T) {
		_, err := uc.Profile(context.Background(), "u-9")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

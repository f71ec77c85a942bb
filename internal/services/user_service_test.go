package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/repository"
)

// Mock UserRepository
type mockUserRepository struct {
	repository.UserRepository
	mockCreate func(ctx context.Context, user *models.User) error

	createCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.createCalls++
	if m.mockCreate != nil {
		return m.mockCreate(ctx, user)
	}
	return nil
}

func TestCreateUserHasheaPassword(t *testing.T) {
	userRepo := &mockUserRepository{}
	service := NewUserService(userRepo, nil, nil)

	user := &models.User{FullName: "Rosa Mendoza", Email: "rosa@velamar.app"}
	err := service.Create(context.Background(), user, "contraseña123")

	require.NoError(t, err)
	assert.Equal(t, 1, userRepo.createCalls)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "contraseña123", user.PasswordHash)
	assert.True(t, user.CheckPassword("contraseña123"))
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.Active)
}

func TestCreateUserPasswordCorta(t *testing.T) {
	userRepo := &mockUserRepository{}
	service := NewUserService(userRepo, nil, nil)

	err := service.Create(context.Background(), &models.User{Email: "x@velamar.app"}, "corta")

	assert.Equal(t, ErrPasswordCorta, err)
	assert.Zero(t, userRepo.createCalls)
}

func TestCreateUserRolInvalido(t *testing.T) {
	userRepo := &mockUserRepository{}
	service := NewUserService(userRepo, nil, nil)

	user := &models.User{Email: "x@velamar.app", Role: "gerente"}
	err := service.Create(context.Background(), user, "contraseña123")

	assert.Equal(t, ErrRolInvalido, err)
	assert.Zero(t, userRepo.createCalls)
}

func TestCreateUserEmailDuplicado(t *testing.T) {
	userRepo := &mockUserRepository{
		mockCreate: func(ctx context.Context, user *models.User) error {
			return repository.ErrEmailDuplicado
		},
	}
	service := NewUserService(userRepo, nil, nil)

	err := service.Create(context.Background(), &models.User{Email: "x@velamar.app"}, "contraseña123")

	assert.Equal(t, repository.ErrEmailDuplicado, err)
}

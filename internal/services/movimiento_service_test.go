package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/repository"
)

// Mock MovimientoRepository
type mockMovimientoRepository struct {
	repository.MovimientoRepository
	mockCreate   func(ctx context.Context, mov *models.MovimientoEntrega) error
	mockFindByID func(ctx context.Context, id uint) (*models.MovimientoEntrega, error)
}

func (m *mockMovimientoRepository) Create(ctx context.Context, mov *models.MovimientoEntrega) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, mov)
	}
	return nil
}

func (m *mockMovimientoRepository) FindByID(ctx context.Context, id uint) (*models.MovimientoEntrega, error) {
	if m.mockFindByID != nil {
		return m.mockFindByID(ctx, id)
	}
	return nil, nil
}

// Mock TipoMovimientoRepository
type mockTipoMovimientoRepository struct {
	repository.TipoMovimientoRepository
	mockFindByID func(ctx context.Context, id uint) (*models.TipoMovimiento, error)
}

func (m *mockTipoMovimientoRepository) FindByID(ctx context.Context, id uint) (*models.TipoMovimiento, error) {
	if m.mockFindByID != nil {
		return m.mockFindByID(ctx, id)
	}
	return &models.TipoMovimiento{ID: id, Nombre: "Asignación", EsIngreso: true}, nil
}

type mockEntregaRepoFindByID struct {
	repository.EntregaRepository
	mockFindByID func(ctx context.Context, id uint) (*models.EntregaRendir, error)
}

func (m *mockEntregaRepoFindByID) FindByID(ctx context.Context, id uint) (*models.EntregaRendir, error) {
	return m.mockFindByID(ctx, id)
}

func TestCreateMovimientoMontoNegativo(t *testing.T) {
	service := NewMovimientoService(&mockMovimientoRepository{}, &mockEntregaRepoFindByID{}, &mockTipoMovimientoRepository{})

	err := service.Create(context.Background(), &models.MovimientoEntrega{
		EntregaRendirID:  1,
		TipoMovimientoID: 1,
		Monto:            -50,
	})

	assert.Equal(t, ErrMontoInvalido, err)
}

func TestCreateMovimientoSinTipo(t *testing.T) {
	service := NewMovimientoService(&mockMovimientoRepository{}, &mockEntregaRepoFindByID{}, &mockTipoMovimientoRepository{})

	err := service.Create(context.Background(), &models.MovimientoEntrega{
		EntregaRendirID: 1,
		Monto:           100,
	})

	assert.Equal(t, ErrTipoRequerido, err)
}

func TestCreateMovimientoEntregaLiquidada(t *testing.T) {
	entregaRepo := &mockEntregaRepoFindByID{
		mockFindByID: func(ctx context.Context, id uint) (*models.EntregaRendir, error) {
			return &models.EntregaRendir{ID: id, Estado: models.EntregaEstadoLiquidada}, nil
		},
	}

	service := NewMovimientoService(&mockMovimientoRepository{}, entregaRepo, &mockTipoMovimientoRepository{})

	err := service.Create(context.Background(), &models.MovimientoEntrega{
		EntregaRendirID:  1,
		TipoMovimientoID: 1,
		Monto:            100,
	})

	assert.Equal(t, ErrInvalidState, err)
}

func TestCreateMovimientoMontoCero(t *testing.T) {
	var created *models.MovimientoEntrega
	movRepo := &mockMovimientoRepository{
		mockCreate: func(ctx context.Context, mov *models.MovimientoEntrega) error {
			created = mov
			return nil
		},
	}
	entregaRepo := &mockEntregaRepoFindByID{
		mockFindByID: func(ctx context.Context, id uint) (*models.EntregaRendir, error) {
			return &models.EntregaRendir{ID: id, Estado: models.EntregaEstadoAbierta}, nil
		},
	}

	service := NewMovimientoService(movRepo, entregaRepo, &mockTipoMovimientoRepository{})

	// Zero amounts are allowed, only negatives are rejected
	err := service.Create(context.Background(), &models.MovimientoEntrega{
		EntregaRendirID:  1,
		TipoMovimientoID: 1,
		Monto:            0,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Zero(t, created.Monto)
}

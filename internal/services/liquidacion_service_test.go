package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/repository"
)

// Mock EntregaRepository
type mockEntregaRepository struct {
	repository.EntregaRepository
	mockFindByIDWithDetails func(ctx context.Context, id uint) (*models.EntregaRendir, error)
	mockSetLiquidacion      func(ctx context.Context, id uint, url string, fecha time.Time, liquidadorID *uint) error

	setLiquidacionCalls int
}

func (m *mockEntregaRepository) FindByIDWithDetails(ctx context.Context, id uint) (*models.EntregaRendir, error) {
	if m.mockFindByIDWithDetails != nil {
		return m.mockFindByIDWithDetails(ctx, id)
	}
	return nil, nil
}

func (m *mockEntregaRepository) SetLiquidacion(ctx context.Context, id uint, url string, fecha time.Time, liquidadorID *uint) error {
	m.setLiquidacionCalls++
	if m.mockSetLiquidacion != nil {
		return m.mockSetLiquidacion(ctx, id, url, fecha, liquidadorID)
	}
	return nil
}

// Mock EmpresaRepository
type mockEmpresaRepository struct {
	repository.EmpresaRepository
	mockFindByID func(ctx context.Context, id uint) (*models.Empresa, error)
}

func (m *mockEmpresaRepository) FindByID(ctx context.Context, id uint) (*models.Empresa, error) {
	if m.mockFindByID != nil {
		return m.mockFindByID(ctx, id)
	}
	return nil, errors.New("not found")
}

// Mock DocumentUploader
type mockUploader struct {
	mockUploadPDF func(ctx context.Context, entregaID uint, data []byte) (string, error)
}

func (m *mockUploader) UploadPDF(ctx context.Context, entregaID uint, data []byte) (string, error) {
	return m.mockUploadPDF(ctx, entregaID, data)
}

func entregaAbiertaConMovimientos() *models.EntregaRendir {
	fecha := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	return &models.EntregaRendir{
		ID:            7,
		ResponsableID: 10,
		CentroCostoID: 3,
		Estado:        models.EntregaEstadoAbierta,
		Responsable:   models.User{ID: 10, FullName: "Carlos Quispe"},
		CentroCosto:   models.CentroCosto{ID: 3, Nombre: "Flota Norte"},
		Movimientos: []models.MovimientoEntrega{
			{
				ID:               1,
				EntregaRendirID:  7,
				TipoMovimientoID: 1,
				Monto:            500,
				FechaOperacion:   &fecha,
				TipoMovimiento:   models.TipoMovimiento{ID: 1, Nombre: "Asignación", EsIngreso: true},
			},
			{
				ID:               2,
				EntregaRendirID:  7,
				TipoMovimientoID: 2,
				Monto:            120,
				FechaOperacion:   &fecha,
				TipoMovimiento:   models.TipoMovimiento{ID: 2, Nombre: "Compra de víveres", EsIngreso: false},
			},
		},
	}
}

func TestLiquidarGeneraSubeYPersiste(t *testing.T) {
	entregaRepo := &mockEntregaRepository{}
	empresaRepo := &mockEmpresaRepository{
		mockFindByID: func(ctx context.Context, id uint) (*models.Empresa, error) {
			return &models.Empresa{ID: 1, RazonSocial: "Pesquera Velamar S.A.C.", RUC: "20487651239"}, nil
		},
	}

	entregaRepo.mockFindByIDWithDetails = func(ctx context.Context, id uint) (*models.EntregaRendir, error) {
		assert.Equal(t, uint(7), id)
		return entregaAbiertaConMovimientos(), nil
	}

	var uploaded []byte
	uploader := &mockUploader{
		mockUploadPDF: func(ctx context.Context, entregaID uint, data []byte) (string, error) {
			assert.Equal(t, uint(7), entregaID)
			uploaded = data
			return "https://docs.velamar.app/liquidaciones/7.pdf", nil
		},
	}

	var persistedURL string
	entregaRepo.mockSetLiquidacion = func(ctx context.Context, id uint, url string, fecha time.Time, liquidadorID *uint) error {
		assert.Equal(t, uint(7), id)
		persistedURL = url
		require.NotNil(t, liquidadorID)
		assert.Equal(t, uint(99), *liquidadorID)
		return nil
	}

	service := NewLiquidacionService(entregaRepo, empresaRepo, uploader, nil, nil, 1)

	liquidadorID := uint(99)
	entrega, err := service.Liquidar(context.Background(), 7, &liquidadorID)

	require.NoError(t, err)
	assert.Equal(t, models.EntregaEstadoLiquidada, entrega.Estado)
	require.NotNil(t, entrega.URLLiquidacionPDF)
	assert.Equal(t, "https://docs.velamar.app/liquidaciones/7.pdf", *entrega.URLLiquidacionPDF)
	assert.Equal(t, persistedURL, *entrega.URLLiquidacionPDF)
	require.NotNil(t, entrega.FechaLiquidacion)

	// The uploaded bytes must be a real PDF document
	require.NotEmpty(t, uploaded)
	assert.Equal(t, "%PDF", string(uploaded[:4]))

	totales := entrega.Totales()
	assert.InDelta(t, 500.0, totales.TotalAsignado, 0.001)
	assert.InDelta(t, 120.0, totales.TotalGastado, 0.001)
	assert.InDelta(t, 380.0, totales.Saldo, 0.001)
}

func TestLiquidarFalloDeSubidaNoPersiste(t *testing.T) {
	entregaRepo := &mockEntregaRepository{}
	empresaRepo := &mockEmpresaRepository{}

	entregaRepo.mockFindByIDWithDetails = func(ctx context.Context, id uint) (*models.EntregaRendir, error) {
		return entregaAbiertaConMovimientos(), nil
	}

	uploader := &mockUploader{
		mockUploadPDF: func(ctx context.Context, entregaID uint, data []byte) (string, error) {
			return "", errors.New("connection refused")
		},
	}

	service := NewLiquidacionService(entregaRepo, empresaRepo, uploader, nil, nil, 1)

	_, err := service.Liquidar(context.Background(), 7, nil)

	require.Error(t, err)
	assert.Equal(t, ErrSubirPDF, err)
	assert.Equal(t, "Error al subir el PDF al servidor", err.Error())
	assert.Zero(t, entregaRepo.setLiquidacionCalls)
}

func TestLiquidarEntregaYaLiquidada(t *testing.T) {
	entregaRepo := &mockEntregaRepository{}
	entregaRepo.mockFindByIDWithDetails = func(ctx context.Context, id uint) (*models.EntregaRendir, error) {
		entrega := entregaAbiertaConMovimientos()
		entrega.Estado = models.EntregaEstadoLiquidada
		return entrega, nil
	}

	uploader := &mockUploader{
		mockUploadPDF: func(ctx context.Context, entregaID uint, data []byte) (string, error) {
			t.Fatal("upload should not run for an already liquidated settlement")
			return "", nil
		},
	}

	service := NewLiquidacionService(entregaRepo, &mockEmpresaRepository{}, uploader, nil, nil, 1)

	_, err := service.Liquidar(context.Background(), 7, nil)

	assert.Equal(t, ErrInvalidState, err)
	assert.Zero(t, entregaRepo.setLiquidacionCalls)
}

package repository

import (
	"context"

	"github.com/velamar/pesca-api/internal/models"
	"gorm.io/gorm"
)

// EmpresaRepository defines the interface for company data access
type EmpresaRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Empresa, error)
}

type empresaRepository struct {
	db *gorm.DB
}

// NewEmpresaRepository creates a new company repository
func NewEmpresaRepository(db *gorm.DB) EmpresaRepository {
	return &empresaRepository{db: db}
}

func (r *empresaRepository) FindByID(ctx context.Context, id uint) (*models.Empresa, error) {
	var empresa models.Empresa
	err := r.db.WithContext(ctx).First(&empresa, id).Error
	if err != nil {
		return nil, err
	}
	return &empresa, nil
}

// MovimientoCajaRepository defines the interface for cash-movement detail access
type MovimientoCajaRepository interface {
	FindByID(ctx context.Context, id uint) (*models.MovimientoCaja, error)
}

type movimientoCajaRepository struct {
	db *gorm.DB
}

// NewMovimientoCajaRepository creates a new cash-movement repository
func NewMovimientoCajaRepository(db *gorm.DB) MovimientoCajaRepository {
	return &movimientoCajaRepository{db: db}
}

func (r *movimientoCajaRepository) FindByID(ctx context.Context, id uint) (*models.MovimientoCaja, error) {
	var movimiento models.MovimientoCaja
	err := r.db.WithContext(ctx).
		Preload("CuentaOrigen").
		Preload("CuentaDestino").
		First(&movimiento, id).Error
	if err != nil {
		return nil, err
	}
	return &movimiento, nil
}

// TipoMovimientoRepository defines the interface for movement-type lookups
type TipoMovimientoRepository interface {
	FindByID(ctx context.Context, id uint) (*models.TipoMovimiento, error)
	FindAll(ctx context.Context) ([]models.TipoMovimiento, error)
}

type tipoMovimientoRepository struct {
	db *gorm.DB
}

// NewTipoMovimientoRepository creates a new movement-type repository
func NewTipoMovimientoRepository(db *gorm.DB) TipoMovimientoRepository {
	return &tipoMovimientoRepository{db: db}
}

func (r *tipoMovimientoRepository) FindByID(ctx context.Context, id uint) (*models.TipoMovimiento, error) {
	var tipo models.TipoMovimiento
	err := r.db.WithContext(ctx).First(&tipo, id).Error
	if err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (r *tipoMovimientoRepository) FindAll(ctx context.Context) ([]models.TipoMovimiento, error) {
	var tipos []models.TipoMovimiento
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&tipos).Error
	if err != nil {
		return nil, err
	}
	return tipos, nil
}

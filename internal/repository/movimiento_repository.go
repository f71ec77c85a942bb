package repository

import (
	"context"

	"github.com/velamar/pesca-api/internal/models"
	"gorm.io/gorm"
)

// MovimientoRepository defines the interface for settlement-movement data access
type MovimientoRepository interface {
	FindByID(ctx context.Context, id uint) (*models.MovimientoEntrega, error)
	FindByEntrega(ctx context.Context, entregaID uint) ([]models.MovimientoEntrega, error)
	Create(ctx context.Context, movimiento *models.MovimientoEntrega) error
	Update(ctx context.Context, movimiento *models.MovimientoEntrega) error
	Delete(ctx context.Context, id uint) error
	DeleteByEntrega(ctx context.Context, entregaID uint) error
}

type movimientoRepository struct {
	db *gorm.DB
}

// NewMovimientoRepository creates a new movement repository
func NewMovimientoRepository(db *gorm.DB) MovimientoRepository {
	return &movimientoRepository{db: db}
}

func (r *movimientoRepository) FindByID(ctx context.Context, id uint) (*models.MovimientoEntrega, error) {
	var movimiento models.MovimientoEntrega
	err := r.db.WithContext(ctx).
		Preload("TipoMovimiento").
		Preload("Moneda").
		Preload("EntidadComercial").
		Preload("MovimientoCaja.CuentaOrigen").
		Preload("MovimientoCaja.CuentaDestino").
		First(&movimiento, id).Error
	if err != nil {
		return nil, err
	}
	return &movimiento, nil
}

func (r *movimientoRepository) FindByEntrega(ctx context.Context, entregaID uint) ([]models.MovimientoEntrega, error) {
	var movimientos []models.MovimientoEntrega
	err := r.db.WithContext(ctx).
		Where("entrega_rendir_id = ?", entregaID).
		Preload("TipoMovimiento").
		Preload("Moneda").
		Preload("EntidadComercial").
		Preload("MovimientoCaja.CuentaOrigen").
		Preload("MovimientoCaja.CuentaDestino").
		Order("fecha_operacion ASC, created_at ASC").
		Find(&movimientos).Error
	if err != nil {
		return nil, err
	}
	return movimientos, nil
}

func (r *movimientoRepository) Create(ctx context.Context, movimiento *models.MovimientoEntrega) error {
	return r.db.WithContext(ctx).Create(movimiento).Error
}

func (r *movimientoRepository) Update(ctx context.Context, movimiento *models.MovimientoEntrega) error {
	return r.db.WithContext(ctx).Save(movimiento).Error
}

func (r *movimientoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MovimientoEntrega{}, id).Error
}

func (r *movimientoRepository) DeleteByEntrega(ctx context.Context, entregaID uint) error {
	return r.db.WithContext(ctx).
		Where("entrega_rendir_id = ?", entregaID).
		Delete(&models.MovimientoEntrega{}).Error
}

package repository

import (
	"context"
	"time"

	"github.com/velamar/pesca-api/internal/models"
	"gorm.io/gorm"
)

// EntregaRepository defines the interface for settlement data access
type EntregaRepository interface {
	FindByID(ctx context.Context, id uint) (*models.EntregaRendir, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*models.EntregaRendir, error)
	Create(ctx context.Context, entrega *models.EntregaRendir) error
	Update(ctx context.Context, entrega *models.EntregaRendir) error
	SetLiquidacion(ctx context.Context, id uint, url string, fecha time.Time, liquidadorID *uint) error
	SetURLLiquidacionPDF(ctx context.Context, id uint, url string) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.EntregaRendir, int64, error)
	FindLiquidadasSinPDF(ctx context.Context) ([]models.EntregaRendir, error)
}

type entregaRepository struct {
	db *gorm.DB
}

// NewEntregaRepository creates a new settlement repository
func NewEntregaRepository(db *gorm.DB) EntregaRepository {
	return &entregaRepository{db: db}
}

func (r *entregaRepository) FindByID(ctx context.Context, id uint) (*models.EntregaRendir, error) {
	var entrega models.EntregaRendir
	err := r.db.WithContext(ctx).First(&entrega, id).Error
	if err != nil {
		return nil, err
	}
	return &entrega, nil
}

func (r *entregaRepository) FindByIDWithDetails(ctx context.Context, id uint) (*models.EntregaRendir, error) {
	var entrega models.EntregaRendir
	err := r.db.WithContext(ctx).
		Preload("Responsable").
		Preload("Liquidador").
		Preload("CentroCosto").
		Preload("Movimientos", func(db *gorm.DB) *gorm.DB {
			return db.Order("fecha_operacion ASC, created_at ASC")
		}).
		Preload("Movimientos.TipoMovimiento").
		Preload("Movimientos.Moneda").
		Preload("Movimientos.EntidadComercial").
		Preload("Movimientos.MovimientoCaja").
		Preload("Movimientos.MovimientoCaja.CuentaOrigen").
		Preload("Movimientos.MovimientoCaja.CuentaDestino").
		First(&entrega, id).Error
	if err != nil {
		return nil, err
	}
	return &entrega, nil
}

func (r *entregaRepository) Create(ctx context.Context, entrega *models.EntregaRendir) error {
	return r.db.WithContext(ctx).Create(entrega).Error
}

func (r *entregaRepository) Update(ctx context.Context, entrega *models.EntregaRendir) error {
	return r.db.WithContext(ctx).Save(entrega).Error
}

// SetLiquidacion marks the settlement liquidated and persists the generated
// PDF URL in a single update
func (r *entregaRepository) SetLiquidacion(ctx context.Context, id uint, url string, fecha time.Time, liquidadorID *uint) error {
	updates := map[string]interface{}{
		"estado":              models.EntregaEstadoLiquidada,
		"url_liquidacion_pdf": url,
		"fecha_liquidacion":   fecha,
	}
	if liquidadorID != nil {
		updates["liquidador_id"] = *liquidadorID
	}
	return r.db.WithContext(ctx).
		Model(&models.EntregaRendir{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *entregaRepository) SetURLLiquidacionPDF(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).
		Model(&models.EntregaRendir{}).
		Where("id = ?", id).
		Update("url_liquidacion_pdf", url).Error
}

// Delete removes a settlement and cascades to its movements
func (r *entregaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entrega_rendir_id = ?", id).Delete(&models.MovimientoEntrega{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.EntregaRendir{}, id).Error
	})
}

func (r *entregaRepository) List(ctx context.Context, query *ListQuery) ([]models.EntregaRendir, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.EntregaRendir{})

	if estado := query.Filters["estado"]; estado != "" {
		db = db.Where("estado = ?", estado)
	}
	if responsable := query.Filters["responsable_id"]; responsable != "" {
		db = db.Where("responsable_id = ?", responsable)
	}
	if centro := query.Filters["centro_costo_id"]; centro != "" {
		db = db.Where("centro_costo_id = ?", centro)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	switch query.SortBy {
	case "fecha_liquidacion", "estado", "id":
		sortBy = query.SortBy
	}
	sortDir := "DESC"
	if query.SortDir == "asc" {
		sortDir = "ASC"
	}

	var entregas []models.EntregaRendir
	err := db.
		Preload("Responsable").
		Preload("Liquidador").
		Preload("CentroCosto").
		Preload("Movimientos.TipoMovimiento").
		Order(sortBy + " " + sortDir).
		Offset(query.offset()).
		Limit(query.PerPage).
		Find(&entregas).Error
	if err != nil {
		return nil, 0, err
	}

	return entregas, total, nil
}

// FindLiquidadasSinPDF returns liquidated settlements whose report upload
// never completed, so the background job can regenerate them
func (r *entregaRepository) FindLiquidadasSinPDF(ctx context.Context) ([]models.EntregaRendir, error) {
	var entregas []models.EntregaRendir
	err := r.db.WithContext(ctx).
		Where("estado = ? AND (url_liquidacion_pdf IS NULL OR url_liquidacion_pdf = '')", models.EntregaEstadoLiquidada).
		Find(&entregas).Error
	if err != nil {
		return nil, err
	}
	return entregas, nil
}

package services

import (
	"context"
	"errors"

	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/repository"
	"gorm.io/gorm"
)

type MovimientoService struct {
	movimientoRepo repository.MovimientoRepository
	entregaRepo    repository.EntregaRepository
	tipoRepo       repository.TipoMovimientoRepository
}

func NewMovimientoService(movimientoRepo repository.MovimientoRepository, entregaRepo repository.EntregaRepository, tipoRepo repository.TipoMovimientoRepository) *MovimientoService {
	return &MovimientoService{
		movimientoRepo: movimientoRepo,
		entregaRepo:    entregaRepo,
		tipoRepo:       tipoRepo,
	}
}

// Create registers a movement on an open settlement
func (s *MovimientoService) Create(ctx context.Context, mov *models.MovimientoEntrega) error {
	if err := s.validate(ctx, mov); err != nil {
		return err
	}

	entrega, err := s.entregaRepo.FindByID(ctx, mov.EntregaRendirID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if entrega.Estado != models.EntregaEstadoAbierta {
		return ErrInvalidState
	}

	return s.movimientoRepo.Create(ctx, mov)
}

// Update modifies a movement. Only allowed while the settlement is open.
func (s *MovimientoService) Update(ctx context.Context, mov *models.MovimientoEntrega) error {
	if err := s.validate(ctx, mov); err != nil {
		return err
	}

	current, err := s.movimientoRepo.FindByID(ctx, mov.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	entrega, err := s.entregaRepo.FindByID(ctx, current.EntregaRendirID)
	if err != nil {
		return err
	}
	if entrega.Estado != models.EntregaEstadoAbierta {
		return ErrInvalidState
	}

	mov.EntregaRendirID = current.EntregaRendirID
	return s.movimientoRepo.Update(ctx, mov)
}

// Delete removes a movement from an open settlement
func (s *MovimientoService) Delete(ctx context.Context, id uint) error {
	mov, err := s.movimientoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	entrega, err := s.entregaRepo.FindByID(ctx, mov.EntregaRendirID)
	if err != nil {
		return err
	}
	if entrega.Estado != models.EntregaEstadoAbierta {
		return ErrInvalidState
	}

	return s.movimientoRepo.Delete(ctx, id)
}

func (s *MovimientoService) FindByID(ctx context.Context, id uint) (*models.MovimientoEntrega, error) {
	mov, err := s.movimientoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return mov, nil
}

func (s *MovimientoService) FindByEntrega(ctx context.Context, entregaID uint) ([]models.MovimientoEntrega, error) {
	return s.movimientoRepo.FindByEntrega(ctx, entregaID)
}

// Totales recomputes income, expense and balance for a settlement
func (s *MovimientoService) Totales(ctx context.Context, entregaID uint) (models.Totales, error) {
	movimientos, err := s.movimientoRepo.FindByEntrega(ctx, entregaID)
	if err != nil {
		return models.Totales{}, err
	}
	return models.CalcularTotales(movimientos), nil
}

func (s *MovimientoService) validate(ctx context.Context, mov *models.MovimientoEntrega) error {
	if mov.Monto < 0 {
		return ErrMontoInvalido
	}
	if mov.TipoMovimientoID == 0 {
		return ErrTipoRequerido
	}
	if _, err := s.tipoRepo.FindByID(ctx, mov.TipoMovimientoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTipoRequerido
		}
		return err
	}
	return nil
}

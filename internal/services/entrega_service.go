package services

import (
	"context"
	"errors"

	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/repository"
	"github.com/velamar/pesca-api/internal/statemachine"
	"gorm.io/gorm"
)

type EntregaService struct {
	entregaRepo repository.EntregaRepository
	userRepo    repository.UserRepository
}

func NewEntregaService(entregaRepo repository.EntregaRepository, userRepo repository.UserRepository) *EntregaService {
	return &EntregaService{entregaRepo: entregaRepo, userRepo: userRepo}
}

// Create opens a new settlement for a responsible party
func (s *EntregaService) Create(ctx context.Context, entrega *models.EntregaRendir) error {
	if entrega.ResponsableID == 0 {
		return errors.New("el responsable es requerido")
	}
	if _, err := s.userRepo.FindByID(ctx, entrega.ResponsableID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	entrega.Estado = models.EntregaEstadoAbierta
	return s.entregaRepo.Create(ctx, entrega)
}

func (s *EntregaService) FindByID(ctx context.Context, id uint) (*models.EntregaRendir, error) {
	entrega, err := s.entregaRepo.FindByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entrega, nil
}

// Update persists editable settlement fields. Liquidated settlements are
// read-only until reopened.
func (s *EntregaService) Update(ctx context.Context, id uint, descripcion *string, centroCostoID *uint) (*models.EntregaRendir, error) {
	entrega, err := s.entregaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if entrega.Estado != models.EntregaEstadoAbierta {
		return nil, ErrInvalidState
	}

	if descripcion != nil {
		entrega.Descripcion = descripcion
	}
	if centroCostoID != nil {
		entrega.CentroCostoID = *centroCostoID
	}

	if err := s.entregaRepo.Update(ctx, entrega); err != nil {
		return nil, err
	}
	return entrega, nil
}

// Delete removes the settlement and all its movements
func (s *EntregaService) Delete(ctx context.Context, id uint) error {
	if _, err := s.entregaRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.entregaRepo.Delete(ctx, id)
}

func (s *EntregaService) List(ctx context.Context, query *repository.ListQuery) ([]models.EntregaRendir, int64, error) {
	return s.entregaRepo.List(ctx, query)
}

// Reabrir returns a liquidated settlement to the open state so its movements
// can be corrected
func (s *EntregaService) Reabrir(ctx context.Context, id uint) (*models.EntregaRendir, error) {
	entrega, err := s.entregaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sm := statemachine.NewEntregaFSM(entrega)
	if err := sm.Reabrir(ctx); err != nil {
		return nil, ErrInvalidState
	}

	if err := s.entregaRepo.Update(ctx, entrega); err != nil {
		return nil, err
	}
	return entrega, nil
}

// Anular voids an open settlement
func (s *EntregaService) Anular(ctx context.Context, id uint) (*models.EntregaRendir, error) {
	entrega, err := s.entregaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sm := statemachine.NewEntregaFSM(entrega)
	if err := sm.Anular(ctx); err != nil {
		return nil, ErrInvalidState
	}

	if err := s.entregaRepo.Update(ctx, entrega); err != nil {
		return nil, err
	}
	return entrega, nil
}

// SetURLLiquidacionPDF persists an externally uploaded report URL verbatim
func (s *EntregaService) SetURLLiquidacionPDF(ctx context.Context, id uint, url string) error {
	if _, err := s.entregaRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.entregaRepo.SetURLLiquidacionPDF(ctx, id, url)
}

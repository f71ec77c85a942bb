package services

import (
	"context"
	"errors"

	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/repository"
	"gorm.io/gorm"
)

// CatalogoService groups the read-only lookups the UI needs when registering
// movements: movement types, cash-movement detail and company data
type CatalogoService struct {
	tipoRepo    repository.TipoMovimientoRepository
	cajaRepo    repository.MovimientoCajaRepository
	empresaRepo repository.EmpresaRepository
}

func NewCatalogoService(tipoRepo repository.TipoMovimientoRepository, cajaRepo repository.MovimientoCajaRepository, empresaRepo repository.EmpresaRepository) *CatalogoService {
	return &CatalogoService{
		tipoRepo:    tipoRepo,
		cajaRepo:    cajaRepo,
		empresaRepo: empresaRepo,
	}
}

func (s *CatalogoService) TiposMovimiento(ctx context.Context) ([]models.TipoMovimiento, error) {
	return s.tipoRepo.FindAll(ctx)
}

func (s *CatalogoService) FindMovimientoCaja(ctx context.Context, id uint) (*models.MovimientoCaja, error) {
	caja, err := s.cajaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return caja, nil
}

func (s *CatalogoService) FindEmpresa(ctx context.Context, id uint) (*models.Empresa, error) {
	empresa, err := s.empresaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return empresa, nil
}

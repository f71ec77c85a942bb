package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/velamar/pesca-api/internal/jobs"
	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/report"
	"github.com/velamar/pesca-api/internal/repository"
	"github.com/velamar/pesca-api/internal/statemachine"
	"github.com/velamar/pesca-api/internal/storage"
	"github.com/velamar/pesca-api/pkg/logger"
	"gorm.io/gorm"
)

// DocumentUploader stores a generated liquidation report and returns the URL
// under which it can be retrieved. storage.RemoteStorage implements it for
// the external document service; localUploader covers standalone deployments.
type DocumentUploader interface {
	UploadPDF(ctx context.Context, entregaID uint, data []byte) (string, error)
}

type localUploader struct {
	store *storage.LocalStorage
}

// NewLocalUploader adapts local filesystem storage to the uploader contract
func NewLocalUploader(store *storage.LocalStorage) DocumentUploader {
	return &localUploader{store: store}
}

func (u *localUploader) UploadPDF(ctx context.Context, entregaID uint, data []byte) (string, error) {
	filename := fmt.Sprintf("liquidacion_entrega_%d.pdf", entregaID)
	relPath, err := u.store.UploadFromBytes(data, filename, "liquidaciones")
	if err != nil {
		return "", err
	}
	return path.Join("/documentos", relPath), nil
}

// LiquidacionService runs the settlement liquidation pipeline:
// fetch → build report → upload → persist. An upload failure aborts the
// pipeline before anything is written to the database.
type LiquidacionService struct {
	entregaRepo repository.EntregaRepository
	empresaRepo repository.EmpresaRepository
	uploader    DocumentUploader
	emailSvc    *EmailService
	worker      *jobs.Worker
	empresaID   uint
}

func NewLiquidacionService(
	entregaRepo repository.EntregaRepository,
	empresaRepo repository.EmpresaRepository,
	uploader DocumentUploader,
	emailSvc *EmailService,
	worker *jobs.Worker,
	empresaID uint,
) *LiquidacionService {
	return &LiquidacionService{
		entregaRepo: entregaRepo,
		empresaRepo: empresaRepo,
		uploader:    uploader,
		emailSvc:    emailSvc,
		worker:      worker,
		empresaID:   empresaID,
	}
}

// Liquidar closes a settlement: generates its liquidation report, uploads it
// and persists the state change together with the report URL. If the upload
// fails the settlement stays open and untouched.
func (s *LiquidacionService) Liquidar(ctx context.Context, entregaID uint, liquidadorID *uint) (*models.EntregaRendir, error) {
	entrega, err := s.entregaRepo.FindByIDWithDetails(ctx, entregaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sm := statemachine.NewEntregaFSM(entrega)
	if err := sm.Liquidar(ctx); err != nil {
		return nil, ErrInvalidState
	}

	fecha := time.Now()
	entrega.FechaLiquidacion = &fecha
	entrega.LiquidadorID = liquidadorID

	url, err := s.GenerarYSubirPDF(ctx, entrega)
	if err != nil {
		return nil, err
	}

	if err := s.entregaRepo.SetLiquidacion(ctx, entrega.ID, url, fecha, liquidadorID); err != nil {
		return nil, err
	}
	entrega.URLLiquidacionPDF = &url

	// The notification is best-effort and goes through the worker pool so a
	// slow email provider never delays the response
	if s.emailSvc != nil && s.worker != nil {
		s.worker.Enqueue(func(jobCtx context.Context) error {
			return s.emailSvc.SendLiquidacionCompletada(jobCtx, entrega, url)
		})
	}

	return entrega, nil
}

// GenerarYSubirPDF builds the liquidation report for an already loaded
// settlement and uploads it. Company data is decorative on the report, so a
// lookup failure degrades to an unbranded header instead of aborting.
func (s *LiquidacionService) GenerarYSubirPDF(ctx context.Context, entrega *models.EntregaRendir) (string, error) {
	var empresa *models.Empresa
	if s.empresaID != 0 {
		e, err := s.empresaRepo.FindByID(ctx, s.empresaID)
		if err != nil {
			logger.Warn(fmt.Sprintf("No se pudo cargar la empresa %d para el reporte: %v", s.empresaID, err))
		} else {
			empresa = e
		}
	}

	buf, err := report.GenerarLiquidacionPDF(entrega, entrega.Movimientos, empresa)
	if err != nil {
		return "", err
	}

	url, err := s.uploader.UploadPDF(ctx, entrega.ID, buf.Bytes())
	if err != nil {
		logger.Error(fmt.Sprintf("Fallo al subir la liquidación de la entrega %d: %v", entrega.ID, err))
		return "", ErrSubirPDF
	}

	return url, nil
}

// GenerarPDF builds the liquidation report for download without uploading or
// touching the settlement state. Works on open settlements too, as a preview.
func (s *LiquidacionService) GenerarPDF(ctx context.Context, entregaID uint) (*bytes.Buffer, error) {
	entrega, err := s.entregaRepo.FindByIDWithDetails(ctx, entregaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var empresa *models.Empresa
	if s.empresaID != 0 {
		if e, err := s.empresaRepo.FindByID(ctx, s.empresaID); err == nil {
			empresa = e
		}
	}

	return report.GenerarLiquidacionPDF(entrega, entrega.Movimientos, empresa)
}

// RegenerarPendientes rebuilds reports for liquidated settlements that lost
// their PDF URL (reopened and re-liquidated offline, failed uploads that were
// persisted by older versions). Runs from the scheduled worker job.
func (s *LiquidacionService) RegenerarPendientes(ctx context.Context) error {
	pendientes, err := s.entregaRepo.FindLiquidadasSinPDF(ctx)
	if err != nil {
		return err
	}

	for i := range pendientes {
		entrega, err := s.entregaRepo.FindByIDWithDetails(ctx, pendientes[i].ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Regeneración: no se pudo cargar la entrega %d: %v", pendientes[i].ID, err))
			continue
		}

		url, err := s.GenerarYSubirPDF(ctx, entrega)
		if err != nil {
			logger.Error(fmt.Sprintf("Regeneración: fallo en la entrega %d: %v", entrega.ID, err))
			continue
		}

		if err := s.entregaRepo.SetURLLiquidacionPDF(ctx, entrega.ID, url); err != nil {
			logger.Error(fmt.Sprintf("Regeneración: no se pudo guardar la URL de la entrega %d: %v", entrega.ID, err))
		}
	}

	return nil
}

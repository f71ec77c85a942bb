package services

import (
	"github.com/velamar/pesca-api/internal/config"
	"github.com/velamar/pesca-api/internal/jobs"
	"github.com/velamar/pesca-api/internal/repository"
)

// Services holds all service instances
type Services struct {
	Auth        *AuthService
	User        *UserService
	Entrega     *EntregaService
	Movimiento  *MovimientoService
	Liquidacion *LiquidacionService
	Catalogo    *CatalogoService
	Export      *ExportService
	Email       *EmailService
}

// NewServices creates all service instances. The uploader decides where
// liquidation reports end up: the external document service when configured,
// local disk otherwise. Email notifications run through the worker pool.
func NewServices(repos *repository.Repositories, uploader DocumentUploader, worker *jobs.Worker, cfg *config.Config) *Services {
	var emailSvc *EmailService
	if cfg.ResendAPIKey != "" {
		emailSvc = NewEmailService(cfg)
	}

	return &Services{
		Auth:        NewAuthService(repos.User, cfg),
		User:        NewUserService(repos.User, emailSvc, worker),
		Entrega:     NewEntregaService(repos.Entrega, repos.User),
		Movimiento:  NewMovimientoService(repos.Movimiento, repos.Entrega, repos.TipoMovimiento),
		Liquidacion: NewLiquidacionService(repos.Entrega, repos.Empresa, uploader, emailSvc, worker, cfg.EmpresaID),
		Catalogo:    NewCatalogoService(repos.TipoMovimiento, repos.MovimientoCaja, repos.Empresa),
		Export:      NewExportService(repos.Entrega, repos.Empresa, cfg.EmpresaID),
		Email:       emailSvc,
	}
}

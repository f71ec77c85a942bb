package handlers

import (
	"github.com/velamar/pesca-api/internal/services"
	"github.com/velamar/pesca-api/internal/storage"
)

// Handlers holds all handler instances
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	User       *UserHandler
	Entrega    *EntregaHandler
	Movimiento *MovimientoHandler
	Report     *ReportHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, storage *storage.LocalStorage) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(),
		Auth:       NewAuthHandler(svcs.Auth),
		User:       NewUserHandler(svcs.User),
		Entrega:    NewEntregaHandler(svcs.Entrega, svcs.Liquidacion, storage),
		Movimiento: NewMovimientoHandler(svcs.Movimiento, svcs.Catalogo),
		Report:     NewReportHandler(svcs.Liquidacion, svcs.Export),
	}
}

package models

import (
	"time"
)

// EntregaRendir represents a settlement: money advanced to a responsible
// person, reconciled against income/expense movements and closed by a
// liquidation that produces the final PDF report.
type EntregaRendir struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	ResponsableID     uint       `gorm:"not null;index" json:"responsable_id"`
	LiquidadorID      *uint      `gorm:"index" json:"liquidador_id"`
	CentroCostoID     uint       `gorm:"not null;index" json:"centro_costo_id"`
	Estado            string     `gorm:"default:abierta;not null;index" json:"estado"`
	FechaLiquidacion  *time.Time `gorm:"type:date" json:"fecha_liquidacion"`
	URLLiquidacionPDF *string    `json:"url_liquidacion_pdf"`
	Descripcion       *string    `gorm:"type:text" json:"descripcion"`
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Associations
	Responsable User                `gorm:"foreignKey:ResponsableID" json:"responsable,omitempty"`
	Liquidador  User                `gorm:"foreignKey:LiquidadorID" json:"liquidador,omitempty"`
	CentroCosto CentroCosto         `gorm:"foreignKey:CentroCostoID" json:"centro_costo,omitempty"`
	Movimientos []MovimientoEntrega `gorm:"foreignKey:EntregaRendirID" json:"movimientos,omitempty"`
}

// TableName specifies the table name for EntregaRendir
func (EntregaRendir) TableName() string {
	return "entregas_rendir"
}

// Entrega status constants
const (
	EntregaEstadoAbierta   = "abierta"
	EntregaEstadoLiquidada = "liquidada"
	EntregaEstadoAnulada   = "anulada"
)

// Liquidada returns true once the settlement has been closed
func (e *EntregaRendir) Liquidada() bool {
	return e.Estado == EntregaEstadoLiquidada
}

// MayLiquidar returns true if the settlement can be liquidated
func (e *EntregaRendir) MayLiquidar() bool {
	return e.Estado == EntregaEstadoAbierta
}

// MayReabrir returns true if a liquidated settlement can be reopened
func (e *EntregaRendir) MayReabrir() bool {
	return e.Estado == EntregaEstadoLiquidada
}

// MayAnular returns true if the settlement can be voided
func (e *EntregaRendir) MayAnular() bool {
	return e.Estado == EntregaEstadoAbierta
}

// Totales holds the derived settlement totals. Never persisted: recomputed
// from the movement list on every change.
type Totales struct {
	TotalAsignado float64 `json:"total_asignado"`
	TotalGastado  float64 `json:"total_gastado"`
	Saldo         float64 `json:"saldo"`
}

// CalcularTotales sums movements into assigned/spent totals. EsIngreso on the
// movement type is the single source of truth for which side a movement
// contributes to.
func CalcularTotales(movimientos []MovimientoEntrega) Totales {
	var t Totales
	for _, m := range movimientos {
		if m.TipoMovimiento.EsIngreso {
			t.TotalAsignado += m.Monto
		} else {
			t.TotalGastado += m.Monto
		}
	}
	t.Saldo = t.TotalAsignado - t.TotalGastado
	return t
}

// Totales computes the settlement's derived totals from its loaded movements
func (e *EntregaRendir) Totales() Totales {
	return CalcularTotales(e.Movimientos)
}

// EntregaResponse is the JSON response format for settlements
type EntregaResponse struct {
	ID                uint       `json:"id"`
	Estado            string     `json:"estado"`
	FechaLiquidacion  *time.Time `json:"fecha_liquidacion"`
	URLLiquidacionPDF *string    `json:"url_liquidacion_pdf"`
	Descripcion       *string    `json:"descripcion"`
	CreatedAt         time.Time  `json:"created_at"`

	ResponsableNombre string `json:"responsable_nombre,omitempty"`
	LiquidadorNombre  string `json:"liquidador_nombre,omitempty"`
	CentroCostoNombre string `json:"centro_costo_nombre,omitempty"`

	TotalAsignado float64 `json:"total_asignado"`
	TotalGastado  float64 `json:"total_gastado"`
	Saldo         float64 `json:"saldo"`

	Movimientos []MovimientoResponse `json:"movimientos,omitempty"`
}

// ToResponse converts EntregaRendir to EntregaResponse
func (e *EntregaRendir) ToResponse() EntregaResponse {
	resp := EntregaResponse{
		ID:                e.ID,
		Estado:            e.Estado,
		FechaLiquidacion:  e.FechaLiquidacion,
		URLLiquidacionPDF: e.URLLiquidacionPDF,
		Descripcion:       e.Descripcion,
		CreatedAt:         e.CreatedAt,
	}

	if e.Responsable.ID != 0 {
		resp.ResponsableNombre = e.Responsable.FullName
	}
	if e.LiquidadorID != nil && e.Liquidador.ID != 0 {
		resp.LiquidadorNombre = e.Liquidador.FullName
	}
	if e.CentroCosto.ID != 0 {
		resp.CentroCostoNombre = e.CentroCosto.Nombre
	}

	totales := e.Totales()
	resp.TotalAsignado = totales.TotalAsignado
	resp.TotalGastado = totales.TotalGastado
	resp.Saldo = totales.Saldo

	for _, m := range e.Movimientos {
		resp.Movimientos = append(resp.Movimientos, m.ToResponse())
	}

	return resp
}

package models

import (
	"strings"
	"time"
)

// MovimientoEntrega is one transaction line under a settlement: either an
// assignment (income) or an expense, depending on its movement type.
type MovimientoEntrega struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	EntregaRendirID    uint       `gorm:"not null;index" json:"entrega_rendir_id"`
	TipoMovimientoID   uint       `gorm:"not null;index" json:"tipo_movimiento_id"`
	FechaOperacion     *time.Time `gorm:"type:date;index" json:"fecha_operacion"`
	Monto              float64    `gorm:"type:decimal(12,2);not null" json:"monto"`
	MonedaID           *uint      `json:"moneda_id"`
	EntidadComercialID *uint      `gorm:"index" json:"entidad_comercial_id"`
	MovimientoCajaID   *uint      `gorm:"index" json:"movimiento_caja_id"`
	CodigoOperacion    *string    `json:"codigo_operacion"`
	NumeroOperacion    *string    `json:"numero_operacion"`
	Descripcion        *string    `gorm:"type:text" json:"descripcion"`
	CreatedAt          time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Associations
	TipoMovimiento   TipoMovimiento   `gorm:"foreignKey:TipoMovimientoID" json:"tipo_movimiento,omitempty"`
	Moneda           Moneda           `gorm:"foreignKey:MonedaID" json:"moneda,omitempty"`
	EntidadComercial EntidadComercial `gorm:"foreignKey:EntidadComercialID" json:"entidad_comercial,omitempty"`
	MovimientoCaja   *MovimientoCaja  `gorm:"foreignKey:MovimientoCajaID" json:"movimiento_caja,omitempty"`
}

// TableName specifies the table name for MovimientoEntrega
func (MovimientoEntrega) TableName() string {
	return "movimientos_entrega"
}

// Referencia builds the display reference from the short operation code and
// the external operation number
func (m *MovimientoEntrega) Referencia() string {
	codigo := ""
	if m.CodigoOperacion != nil {
		codigo = *m.CodigoOperacion
	}
	numero := ""
	if m.NumeroOperacion != nil {
		numero = *m.NumeroOperacion
	}
	return strings.TrimSpace(codigo + " " + numero)
}

// TipoMovimiento is the movement-type lookup table. EsIngreso decides whether
// a movement counts as an assignment or an expense.
type TipoMovimiento struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nombre    string `gorm:"not null" json:"nombre"`
	EsIngreso bool   `gorm:"not null;default:false" json:"es_ingreso"`
}

// TableName specifies the table name for TipoMovimiento
func (TipoMovimiento) TableName() string {
	return "tipos_movimiento"
}

// MovimientoCaja carries the bank/cash detail optionally linked to a
// settlement movement
type MovimientoCaja struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CuentaOrigenID  *uint           `json:"cuenta_origen_id"`
	CuentaDestinoID *uint           `json:"cuenta_destino_id"`
	Glosa           *string         `json:"glosa"`
	CreatedAt       time.Time       `json:"created_at"`
	CuentaOrigen    *CuentaBancaria `gorm:"foreignKey:CuentaOrigenID" json:"cuenta_origen,omitempty"`
	CuentaDestino   *CuentaBancaria `gorm:"foreignKey:CuentaDestinoID" json:"cuenta_destino,omitempty"`
}

// TableName specifies the table name for MovimientoCaja
func (MovimientoCaja) TableName() string {
	return "movimientos_caja"
}

// CuentaBancaria is a bank account referenced by cash movements
type CuentaBancaria struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Banco        string `json:"banco"`
	Moneda       string `json:"moneda"`
	NumeroCuenta string `json:"numero_cuenta"`
}

// TableName specifies the table name for CuentaBancaria
func (CuentaBancaria) TableName() string {
	return "cuentas_bancarias"
}

// MovimientoResponse is the JSON response format for settlement movements
type MovimientoResponse struct {
	ID              uint       `json:"id"`
	EntregaRendirID uint       `json:"entrega_rendir_id"`
	FechaOperacion  *time.Time `json:"fecha_operacion"`
	Monto           float64    `json:"monto"`
	EsIngreso       bool       `json:"es_ingreso"`
	TipoNombre      string     `json:"tipo_nombre,omitempty"`
	MonedaCodigo    string     `json:"moneda_codigo,omitempty"`
	EntidadNombre   string     `json:"entidad_nombre,omitempty"`
	Referencia      string     `json:"referencia,omitempty"`
	Descripcion     *string    `json:"descripcion"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToResponse converts MovimientoEntrega to MovimientoResponse
func (m *MovimientoEntrega) ToResponse() MovimientoResponse {
	resp := MovimientoResponse{
		ID:              m.ID,
		EntregaRendirID: m.EntregaRendirID,
		FechaOperacion:  m.FechaOperacion,
		Monto:           m.Monto,
		Referencia:      m.Referencia(),
		Descripcion:     m.Descripcion,
		CreatedAt:       m.CreatedAt,
	}

	if m.TipoMovimiento.ID != 0 {
		resp.EsIngreso = m.TipoMovimiento.EsIngreso
		resp.TipoNombre = m.TipoMovimiento.Nombre
	}
	if m.Moneda.ID != 0 {
		resp.MonedaCodigo = m.Moneda.Codigo
	}
	if m.EntidadComercialID != nil && m.EntidadComercial.ID != 0 {
		resp.EntidadNombre = m.EntidadComercial.RazonSocial
	}

	return resp
}

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/velamar/pesca-api/internal/models"
)

// Sentinels for absent relational data. The layout never fails because an
// optional relation is missing; it degrades to these.
const (
	SinDato   = "N/A"
	SinCuenta = "S/C"
)

// FormatFechaHora formats a timestamp for the Fecha/Hora column
func FormatFechaHora(t time.Time) string {
	if t.IsZero() {
		return SinDato
	}
	return t.Format("02/01/2006 15:04")
}

// FormatFecha formats an optional date for the F.Operación column
func FormatFecha(t *time.Time) string {
	if t == nil || t.IsZero() {
		return SinDato
	}
	return t.Format("02/01/2006")
}

// CuentaLabel joins bank, currency and account number with " - ", skipping
// blank parts. A missing account resolves to the S/C sentinel.
func CuentaLabel(cuenta *models.CuentaBancaria) string {
	if cuenta == nil {
		return SinCuenta
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{cuenta.Banco, cuenta.Moneda, cuenta.NumeroCuenta} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return SinCuenta
	}
	return strings.Join(parts, " - ")
}

// FormatMonto formats an amount for the money columns and the totals box
func FormatMonto(monto float64) string {
	return fmt.Sprintf("%.2f", monto)
}

// resolveCells produces the display strings for the seven text columns of a
// movement row, in column order. The two terminal money columns are handled
// separately by the row renderer.
func resolveCells(m *models.MovimientoEntrega) []string {
	tipo := SinDato
	if m.TipoMovimiento.ID != 0 {
		tipo = m.TipoMovimiento.Nombre
	}

	origen := SinCuenta
	destino := SinCuenta
	if m.MovimientoCaja != nil {
		origen = CuentaLabel(m.MovimientoCaja.CuentaOrigen)
		destino = CuentaLabel(m.MovimientoCaja.CuentaDestino)
	}

	entidad := SinDato
	if m.EntidadComercialID != nil && m.EntidadComercial.ID != 0 {
		entidad = m.EntidadComercial.RazonSocial
	}

	return []string{
		FormatFechaHora(m.CreatedAt),
		FormatFecha(m.FechaOperacion),
		tipo,
		origen,
		destino,
		entidad,
		m.Referencia(),
	}
}

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/velamar/pesca-api/internal/models"
)

func TestCuentaLabel(t *testing.T) {
	assert.Equal(t, "S/C", CuentaLabel(nil))

	cuenta := &models.CuentaBancaria{Banco: "BCP", Moneda: "PEN", NumeroCuenta: "193-456789-0-11"}
	assert.Equal(t, "BCP - PEN - 193-456789-0-11", CuentaLabel(cuenta))

	// Blank parts are skipped, not joined as empty segments
	parcial := &models.CuentaBancaria{Banco: "BBVA", NumeroCuenta: "0011-0234"}
	assert.Equal(t, "BBVA - 0011-0234", CuentaLabel(parcial))

	vacia := &models.CuentaBancaria{Banco: " ", Moneda: "", NumeroCuenta: ""}
	assert.Equal(t, "S/C", CuentaLabel(vacia))
}

func TestFormatFecha(t *testing.T) {
	assert.Equal(t, "N/A", FormatFecha(nil))

	zero := time.Time{}
	assert.Equal(t, "N/A", FormatFecha(&zero))

	fecha := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "10/01/2024", FormatFecha(&fecha))
}

func TestFormatFechaHora(t *testing.T) {
	assert.Equal(t, "N/A", FormatFechaHora(time.Time{}))

	ts := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024 14:30", FormatFechaHora(ts))
}

func TestResolveCellsFallbacks(t *testing.T) {
	// A movement with no optional relations resolves every cell to a sentinel
	// instead of failing the render
	m := &models.MovimientoEntrega{}
	cells := resolveCells(m)

	assert.Len(t, cells, 7)
	assert.Equal(t, "N/A", cells[0]) // fecha/hora
	assert.Equal(t, "N/A", cells[1]) // fecha operación
	assert.Equal(t, "N/A", cells[2]) // tipo
	assert.Equal(t, "S/C", cells[3]) // c.c. origen
	assert.Equal(t, "S/C", cells[4]) // c.c. destino
	assert.Equal(t, "N/A", cells[5]) // entidad
	assert.Equal(t, "", cells[6])    // referencia
}

func TestResolveCellsResolved(t *testing.T) {
	fecha := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	entidadID := uint(4)
	codigo := "OP"
	numero := "000123"

	m := &models.MovimientoEntrega{
		CreatedAt:      time.Date(2024, 1, 10, 9, 15, 0, 0, time.UTC),
		FechaOperacion: &fecha,
		TipoMovimiento: models.TipoMovimiento{ID: 2, Nombre: "Gasto Operativo"},
		MovimientoCaja: &models.MovimientoCaja{
			CuentaOrigen: &models.CuentaBancaria{Banco: "BCP", Moneda: "USD", NumeroCuenta: "555"},
		},
		EntidadComercialID: &entidadID,
		EntidadComercial:   models.EntidadComercial{ID: 4, RazonSocial: "Pesquera del Sur SAC"},
		CodigoOperacion:    &codigo,
		NumeroOperacion:    &numero,
	}

	cells := resolveCells(m)
	assert.Equal(t, "10/01/2024 09:15", cells[0])
	assert.Equal(t, "10/01/2024", cells[1])
	assert.Equal(t, "Gasto Operativo", cells[2])
	assert.Equal(t, "BCP - USD - 555", cells[3])
	assert.Equal(t, "S/C", cells[4]) // linked cash movement without destination account
	assert.Equal(t, "Pesquera del Sur SAC", cells[5])
	assert.Equal(t, "OP 000123", cells[6])
}

func TestReferenciaTrimmed(t *testing.T) {
	codigo := "DEP"
	m := &models.MovimientoEntrega{CodigoOperacion: &codigo}
	assert.Equal(t, "DEP", m.Referencia())

	assert.Equal(t, "", (&models.MovimientoEntrega{}).Referencia())
}

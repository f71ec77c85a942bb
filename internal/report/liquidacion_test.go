package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velamar/pesca-api/internal/models"
)

func ingresoTipo() models.TipoMovimiento {
	return models.TipoMovimiento{ID: 1, Nombre: "Asignación", EsIngreso: true}
}

func egresoTipo() models.TipoMovimiento {
	return models.TipoMovimiento{ID: 2, Nombre: "Gasto Operativo", EsIngreso: false}
}

func fechaOp(dia int) *time.Time {
	f := time.Date(2024, 1, dia, 0, 0, 0, 0, time.UTC)
	return &f
}

func TestGenerarLiquidacionPDF(t *testing.T) {
	entrega := &models.EntregaRendir{
		ID:          7,
		Estado:      models.EntregaEstadoAbierta,
		Responsable: models.User{ID: 3, FullName: "Carlos Vega"},
		CentroCosto: models.CentroCosto{ID: 2, Nombre: "Flota Norte"},
	}
	movimientos := []models.MovimientoEntrega{
		{FechaOperacion: fechaOp(10), Monto: 500, TipoMovimiento: ingresoTipo()},
		{FechaOperacion: fechaOp(12), Monto: 120, TipoMovimiento: egresoTipo()},
	}
	empresa := &models.Empresa{ID: 1, RazonSocial: "Velamar S.A.", RUC: "20512345678", Direccion: "Av. Costanera 1200, Chimbote"}

	buf, err := GenerarLiquidacionPDF(entrega, movimientos, empresa)
	require.NoError(t, err)
	require.NotNil(t, buf)
	assert.Greater(t, buf.Len(), 0, "PDF buffer should not be empty")

	// Totals the rendered block is computed from
	totales := models.CalcularTotales(movimientos)
	assert.Equal(t, 500.0, totales.TotalAsignado)
	assert.Equal(t, 120.0, totales.TotalGastado)
	assert.Equal(t, 380.0, totales.Saldo)
	assert.GreaterOrEqual(t, totales.Saldo, 0.0, "saldo positivo se dibuja en verde")
}

func TestGenerarLiquidacionPDFSinRelaciones(t *testing.T) {
	// Missing company and bare movements must degrade to sentinels, never fail
	entrega := &models.EntregaRendir{ID: 9}
	movimientos := []models.MovimientoEntrega{
		{Monto: 10},
		{Monto: 20},
	}

	buf, err := GenerarLiquidacionPDF(entrega, movimientos, nil)
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}

func TestGenerarLiquidacionPDFSinMovimientos(t *testing.T) {
	entrega := &models.EntregaRendir{ID: 11, Responsable: models.User{ID: 1, FullName: "Ana Torres"}}

	buf, err := GenerarLiquidacionPDF(entrega, nil, &models.Empresa{ID: 1, RazonSocial: "Velamar S.A."})
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}

func TestGenerarLiquidacionPDFConLiquidador(t *testing.T) {
	liquidadorID := uint(5)
	fechaLiq := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	desc := "Rendición campaña de anchoveta, primera temporada"

	entrega := &models.EntregaRendir{
		ID:               12,
		Estado:           models.EntregaEstadoLiquidada,
		FechaLiquidacion: &fechaLiq,
		Responsable:      models.User{ID: 3, FullName: "Carlos Vega"},
		LiquidadorID:     &liquidadorID,
		Liquidador:       models.User{ID: 5, FullName: "María Huamán"},
		CentroCosto:      models.CentroCosto{ID: 2, Nombre: "Flota Norte"},
		Descripcion:      &desc,
	}

	buf, err := GenerarLiquidacionPDF(entrega, nil, &models.Empresa{ID: 1, RazonSocial: "Velamar S.A."})
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}

func TestGenerarLiquidacionPDFPaginacion(t *testing.T) {
	// Enough rows to cross several page bottoms; the pagination loop must
	// finalize pages and keep rendering instead of overflowing
	entrega := &models.EntregaRendir{ID: 20, Responsable: models.User{ID: 1, FullName: "Carlos Vega"}}

	var movimientos []models.MovimientoEntrega
	descripcion := "pago a proveedor por descarga y estiba en muelle norte"
	for i := 0; i < 150; i++ {
		movimientos = append(movimientos, models.MovimientoEntrega{
			FechaOperacion: fechaOp(1 + i%28),
			Monto:          float64(10 + i),
			TipoMovimiento: egresoTipo(),
			Descripcion:    &descripcion,
		})
	}

	pocos, err := GenerarLiquidacionPDF(entrega, movimientos[:2], nil)
	require.NoError(t, err)

	muchos, err := GenerarLiquidacionPDF(entrega, movimientos, nil)
	require.NoError(t, err)

	assert.Greater(t, muchos.Len(), pocos.Len(), "multi-page document should serialize larger")
}

func TestCalcularTotales(t *testing.T) {
	movimientos := []models.MovimientoEntrega{
		{Monto: 100, TipoMovimiento: ingresoTipo()},
		{Monto: 40, TipoMovimiento: egresoTipo()},
		{Monto: 10, TipoMovimiento: egresoTipo()},
	}

	totales := models.CalcularTotales(movimientos)
	assert.Equal(t, 100.0, totales.TotalAsignado)
	assert.Equal(t, 50.0, totales.TotalGastado)
	assert.Equal(t, 50.0, totales.Saldo)
}

func TestFechaOrden(t *testing.T) {
	conFecha := models.MovimientoEntrega{FechaOperacion: fechaOp(15), CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	sinFecha := models.MovimientoEntrega{CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, *fechaOp(15), fechaOrden(&conFecha))
	assert.Equal(t, sinFecha.CreatedAt, fechaOrden(&sinFecha))
}

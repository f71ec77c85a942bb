package statemachine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velamar/pesca-api/internal/models"
)

func TestEntregaLiquidar(t *testing.T) {
	entrega := &models.EntregaRendir{ID: 1, Estado: models.EntregaEstadoAbierta}
	sm := NewEntregaFSM(entrega)

	require.NoError(t, sm.Liquidar(context.Background()))
	assert.Equal(t, models.EntregaEstadoLiquidada, entrega.Estado)
	assert.True(t, entrega.Liquidada())
}

func TestEntregaLiquidarTwiceFails(t *testing.T) {
	entrega := &models.EntregaRendir{ID: 1, Estado: models.EntregaEstadoLiquidada}
	sm := NewEntregaFSM(entrega)

	err := sm.Liquidar(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.EntregaEstadoLiquidada, entrega.Estado)
}

func TestEntregaReabrir(t *testing.T) {
	entrega := &models.EntregaRendir{ID: 1, Estado: models.EntregaEstadoLiquidada}
	sm := NewEntregaFSM(entrega)

	require.NoError(t, sm.Reabrir(context.Background()))
	assert.Equal(t, models.EntregaEstadoAbierta, entrega.Estado)
}

func TestEntregaAnular(t *testing.T) {
	entrega := &models.EntregaRendir{ID: 1, Estado: models.EntregaEstadoAbierta}
	sm := NewEntregaFSM(entrega)

	require.NoError(t, sm.Anular(context.Background()))
	assert.Equal(t, models.EntregaEstadoAnulada, entrega.Estado)

	// A voided settlement is terminal
	assert.False(t, sm.Can("liquidar"))
	assert.False(t, sm.Can("reabrir"))
}

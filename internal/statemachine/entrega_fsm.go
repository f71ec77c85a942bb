package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/velamar/pesca-api/internal/models"
)

// EntregaFSM wraps a settlement with its lifecycle state machine
type EntregaFSM struct {
	entrega *models.EntregaRendir
	fsm     *fsm.FSM
}

// NewEntregaFSM creates a new settlement state machine
func NewEntregaFSM(entrega *models.EntregaRendir) *EntregaFSM {
	e := &EntregaFSM{
		entrega: entrega,
	}

	e.fsm = fsm.NewFSM(
		entrega.Estado,
		fsm.Events{
			// abierta → liquidada
			{Name: "liquidar", Src: []string{models.EntregaEstadoAbierta}, Dst: models.EntregaEstadoLiquidada},

			// liquidada → abierta (reopen to fix movements)
			{Name: "reabrir", Src: []string{models.EntregaEstadoLiquidada}, Dst: models.EntregaEstadoAbierta},

			// abierta → anulada
			{Name: "anular", Src: []string{models.EntregaEstadoAbierta}, Dst: models.EntregaEstadoAnulada},
		},
		fsm.Callbacks{},
	)

	return e
}

// Liquidar transitions the settlement to liquidated state
func (e *EntregaFSM) Liquidar(ctx context.Context) error {
	if !e.entrega.MayLiquidar() {
		return fmt.Errorf("entrega cannot be liquidated in current state: %s", e.entrega.Estado)
	}

	if err := e.fsm.Event(ctx, "liquidar"); err != nil {
		return fmt.Errorf("failed to liquidate entrega: %w", err)
	}

	e.entrega.Estado = e.fsm.Current()
	return nil
}

// Reabrir transitions a liquidated settlement back to open
func (e *EntregaFSM) Reabrir(ctx context.Context) error {
	if !e.entrega.MayReabrir() {
		return fmt.Errorf("entrega cannot be reopened in current state: %s", e.entrega.Estado)
	}

	if err := e.fsm.Event(ctx, "reabrir"); err != nil {
		return fmt.Errorf("failed to reopen entrega: %w", err)
	}

	e.entrega.Estado = e.fsm.Current()
	return nil
}

// Anular transitions the settlement to voided state
func (e *EntregaFSM) Anular(ctx context.Context) error {
	if !e.entrega.MayAnular() {
		return fmt.Errorf("entrega cannot be voided in current state: %s", e.entrega.Estado)
	}

	if err := e.fsm.Event(ctx, "anular"); err != nil {
		return fmt.Errorf("failed to void entrega: %w", err)
	}

	e.entrega.Estado = e.fsm.Current()
	return nil
}

// Current returns the current state
func (e *EntregaFSM) Current() string {
	return e.fsm.Current()
}

// Can checks if a transition is possible
func (e *EntregaFSM) Can(event string) bool {
	return e.fsm.Can(event)
}

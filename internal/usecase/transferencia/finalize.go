package transferencia

import (
	"context"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/transferencia"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// FinalizeTransferencia fecha a transferência e congela o prazo.
type FinalizeTransferencia struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewFinalizeTransferencia(
	repo domain.Repository,
	clk clock.Clock,
	auditd *audit.Dispatcher,
) *FinalizeTransferencia {
	return &FinalizeTransferencia{
		repo:  repo,
		clock: clk,
		audit: auditd,
	}
}

func (uc *FinalizeTransferencia) Execute(
	ctx context.Context,
	transferID uint,
) (*models.Transferencia, error) {

	t, err := uc.repo.FindByID(ctx, transferID)
	if err != nil {
		return nil, err
	}

	if err := domain.Finalize(t, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateFinalized(ctx, t); err != nil {
		return nil, err
	}

	if t.PrazoEstourado {
		if err := uc.repo.ApplyDeadlineState(ctx, t); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "transferencia_finalizada",
		Entity:   "transferencia",
		EntityID: &t.ID,
	})

	return t, nil
}

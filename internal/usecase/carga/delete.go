package carga

import (
	"context"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// DeleteCarga: soft delete com motivo obrigatório.
type DeleteCarga struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewDeleteCarga(
	repo domain.Repository,
	clk clock.Clock,
	auditd *audit.Dispatcher,
) *DeleteCarga {
	return &DeleteCarga{
		repo:  repo,
		clock: clk,
		audit: auditd,
	}
}

func (uc *DeleteCarga) Execute(
	ctx context.Context,
	cargaID uint,
	motivo string,
) (*models.Carga, error) {

	c, err := uc.repo.FindByID(ctx, cargaID)
	if err != nil {
		return nil, err
	}

	previous := domain.Status(c.Status)
	if err := domain.SoftDelete(c, motivo, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateFromStatus(ctx, c, previous); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "carga_deletada",
		Entity:   "carga",
		EntityID: &c.ID,
		Metadata: map[string]any{"motivo": motivo},
	})

	return c, nil
}

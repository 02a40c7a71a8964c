package carga

import (
	"context"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// CheckinCarga: AA assume a carga.
type CheckinCarga struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCheckinCarga(
	repo domain.Repository,
	clk clock.Clock,
	auditd *audit.Dispatcher,
) *CheckinCarga {
	return &CheckinCarga{
		repo:  repo,
		clock: clk,
		audit: auditd,
	}
}

func (uc *CheckinCarga) Execute(
	ctx context.Context,
	cargaID uint,
	aaLogin string,
) (*models.Carga, error) {

	c, err := uc.repo.FindByID(ctx, cargaID)
	if err != nil {
		return nil, err
	}

	previous := domain.Status(c.Status)
	if err := domain.Checkin(c, aaLogin, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateFromStatus(ctx, c, previous); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "carga_checkin",
		Entity:   "carga",
		EntityID: &c.ID,
		Operador: aaLogin,
	})

	return c, nil
}

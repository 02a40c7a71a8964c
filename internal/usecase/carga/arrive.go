package carga

import (
	"context"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// ArriveCarga: confirmação de que o caminhão chegou na doca.
type ArriveCarga struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewArriveCarga(
	repo domain.Repository,
	clk clock.Clock,
	auditd *audit.Dispatcher,
) *ArriveCarga {
	return &ArriveCarga{
		repo:  repo,
		clock: clk,
		audit: auditd,
	}
}

func (uc *ArriveCarga) Execute(
	ctx context.Context,
	cargaID uint,
) (*models.Carga, error) {

	c, err := uc.repo.FindByID(ctx, cargaID)
	if err != nil {
		return nil, err
	}

	previous := domain.Status(c.Status)
	if err := domain.Arrive(c, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateFromStatus(ctx, c, previous); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "carga_chegou",
		Entity:   "carga",
		EntityID: &c.ID,
	})

	return c, nil
}

package carga

import (
	"context"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// CloseCarga fecha a carga e deriva tempo total + units/hora.
// O atraso registrado fica intacto — fechar não apaga histórico.
type CloseCarga struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCloseCarga(
	repo domain.Repository,
	clk clock.Clock,
	auditd *audit.Dispatcher,
) *CloseCarga {
	return &CloseCarga{
		repo:  repo,
		clock: clk,
		audit: auditd,
	}
}

func (uc *CloseCarga) Execute(
	ctx context.Context,
	cargaID uint,
) (*models.Carga, error) {

	c, err := uc.repo.FindByID(ctx, cargaID)
	if err != nil {
		return nil, err
	}

	previous := domain.Status(c.Status)
	if err := domain.Close(c, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateFromStatus(ctx, c, previous); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "carga_finalizada",
		Entity:   "carga",
		EntityID: &c.ID,
		Metadata: map[string]any{
			"tempo_total_segundos": c.TempoTotalSegundos,
			"units_por_hora":       c.UnitsPorHora,
		},
	})

	return c, nil
}

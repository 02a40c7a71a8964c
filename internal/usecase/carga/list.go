package carga

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/doca-panel/internal/clock"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	"github.com/BruksfildServices01/doca-panel/internal/dto"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// ListCargas é a listagem do painel. É uma leitura que reconcilia: cada
// passe avalia no-show e o ratchet de atraso de cada carga e persiste o
// que andou. Falha ao persistir um registro não derruba a listagem —
// aquele passe se repete na próxima leitura.
type ListCargas struct {
	repo  domain.Repository
	clock clock.Clock
	log   *zap.Logger
}

func NewListCargas(
	repo domain.Repository,
	clk clock.Clock,
	log *zap.Logger,
) *ListCargas {
	return &ListCargas{
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

func (uc *ListCargas) Execute(ctx context.Context) ([]dto.CargaListDTO, error) {

	cargas, err := uc.repo.ListOrderedByArrival(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	out := make([]dto.CargaListDTO, 0, len(cargas))

	for i := range cargas {
		c := &cargas[i]

		ev := domain.Evaluate(c, now)
		if ev.Changed() {
			if err := uc.repo.ApplyEvaluation(ctx, c.ID, ev); err != nil {
				uc.log.Warn("listagem: avaliação não persistida",
					zap.Uint("carga_id", c.ID),
					zap.Error(err),
				)
			}
		}

		out = append(out, toListDTO(c, now))
	}

	return out, nil
}

func toListDTO(c *models.Carga, now time.Time) dto.CargaListDTO {
	return dto.CargaListDTO{
		ID:            c.ID,
		AppointmentID: c.AppointmentID,

		TruckType: c.TruckType,
		TruckTipo: c.TruckTipo,

		ExpectedArrivalDate: isoPtr(c.ExpectedArrivalDate),
		Status:              c.Status,

		Units:   c.Units,
		Cartons: c.Cartons,

		AAResponsavel:      c.AAResponsavel,
		StartTime:          isoPtr(c.StartTime),
		TempoTotalSegundos: c.TempoTotalSegundos,

		TempoSLASegundos: domain.SLACountdown(c, now),

		AtrasoSegundos:   c.AtrasoSegundos,
		AtrasoRegistrado: c.AtrasoRegistrado,
		AtrasoComentario: c.AtrasoComentario,

		PriorityScore:    c.PriorityScore,
		PrioridadeMaxima: c.PrioridadeMaxima,
	}
}

func isoPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

package carga

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// CommentCarga registra a justificativa de atraso. Avalia o SLA antes
// de validar — uma carga que acabou de estourar pode ser comentada na
// sequência sem esperar a próxima listagem.
type CommentCarga struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCommentCarga(
	repo domain.Repository,
	clk clock.Clock,
	auditd *audit.Dispatcher,
	log *zap.Logger,
) *CommentCarga {
	return &CommentCarga{
		repo:  repo,
		clock: clk,
		audit: auditd,
		log:   log,
	}
}

func (uc *CommentCarga) Execute(
	ctx context.Context,
	cargaID uint,
	texto string,
) (*models.Carga, error) {

	c, err := uc.repo.FindByID(ctx, cargaID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	ev := domain.Evaluate(c, now)
	if ev.Changed() {
		if err := uc.repo.ApplyEvaluation(ctx, c.ID, ev); err != nil {
			uc.log.Warn("comentario: avaliação não persistida",
				zap.Uint("carga_id", c.ID),
				zap.Error(err),
			)
		}
	}

	if err := domain.Comment(c, texto, now); err != nil {
		return nil, err
	}

	// só as colunas do comentário: o atraso anda pelo ApplyEvaluation
	if err := uc.repo.UpdateComment(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "atraso_comentado",
		Entity:   "carga",
		EntityID: &c.ID,
	})

	return c, nil
}

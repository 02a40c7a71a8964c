package transferencia

import (
	"context"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/transferencia"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// CommentTransferencia: justificativa de estouro de LATE STOW. Só para
// transferência vencida (ou que venceu e já finalizou).
type CommentTransferencia struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCommentTransferencia(
	repo domain.Repository,
	clk clock.Clock,
	auditd *audit.Dispatcher,
) *CommentTransferencia {
	return &CommentTransferencia{
		repo:  repo,
		clock: clk,
		audit: auditd,
	}
}

func (uc *CommentTransferencia) Execute(
	ctx context.Context,
	transferID uint,
	texto string,
) (*models.Transferencia, error) {

	t, err := uc.repo.FindByID(ctx, transferID)
	if err != nil {
		return nil, err
	}

	if err := domain.Comment(t, texto, uc.clock.Now()); err != nil {
		return nil, err
	}

	// o comentário só existe com estouro; persiste o ratchet guardado
	// antes das colunas do texto
	if err := uc.repo.ApplyDeadlineState(ctx, t); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateComment(ctx, t); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "late_stow_comentado",
		Entity:   "transferencia",
		EntityID: &t.ID,
	})

	return t, nil
}

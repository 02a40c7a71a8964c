package transferencia

import (
	"context"

	"github.com/BruksfildServices01/doca-panel/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		t *models.Transferencia,
	) error

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Transferencia, error)

	FindByAppointmentID(
		ctx context.Context,
		appointmentID string,
	) (*models.Transferencia, error)

	ListOrderedByArrival(
		ctx context.Context,
	) ([]models.Transferencia, error)

	// Escritas por dono de coluna: cada comando grava só o que é dele.
	// O prazo estourado só anda pelo ApplyDeadlineState guardado.
	UpdateMirror(
		ctx context.Context,
		t *models.Transferencia,
	) error

	UpdateInfo(
		ctx context.Context,
		t *models.Transferencia,
	) error

	UpdateFinalized(
		ctx context.Context,
		t *models.Transferencia,
	) error

	UpdateComment(
		ctx context.Context,
		t *models.Transferencia,
	) error

	// ApplyDeadlineState persiste o ratchet do prazo com guarda
	// monotônica (só cresce).
	ApplyDeadlineState(
		ctx context.Context,
		t *models.Transferencia,
	) error

	ListOverdue(
		ctx context.Context,
		limit int,
	) ([]models.Transferencia, error)
}

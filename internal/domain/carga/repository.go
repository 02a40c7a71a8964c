package carga

import (
	"context"
	"time"

	"github.com/BruksfildServices01/doca-panel/internal/models"
)

type Repository interface {
	// -------- Ingestão --------
	Create(
		ctx context.Context,
		c *models.Carga,
	) error

	FindByAppointmentID(
		ctx context.Context,
		appointmentID string,
	) (*models.Carga, error)

	// -------- Comandos --------
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Carga, error)

	// UpdateImported grava só os campos que vêm da planilha. Status e
	// atraso nunca passam por aqui — um passe de reconciliação
	// concorrente não pode ser sobrescrito por upload.
	UpdateImported(
		ctx context.Context,
		c *models.Carga,
	) error

	// UpdateComment grava só a justificativa de atraso.
	UpdateComment(
		ctx context.Context,
		c *models.Carga,
	) error

	// UpdateFromStatus grava a transição só se o status no banco ainda
	// for o que a ação leu (compare-and-set; serializa dois operadores
	// mexendo na mesma carga).
	UpdateFromStatus(
		ctx context.Context,
		c *models.Carga,
		previous Status,
	) error

	// -------- Reconciliação preguiçosa --------
	ListOrderedByArrival(
		ctx context.Context,
	) ([]models.Carga, error)

	// ApplyEvaluation persiste um passe de avaliação com guardas
	// monotônicas: status só avança a partir de arrival_scheduled e o
	// atraso só cresce.
	ApplyEvaluation(
		ctx context.Context,
		id uint,
		ev Evaluation,
	) error

	// -------- Sync de transferências --------
	ListTransfersInWindow(
		ctx context.Context,
		inicio time.Time,
		fim time.Time,
	) ([]models.Carga, error)

	// -------- Dashboard --------
	// O campo de data depende do status: closed → end_time,
	// deleted → deleted_at, demais → created_at.
	ListByStatusInPeriod(
		ctx context.Context,
		status Status,
		inicio time.Time,
		fim time.Time,
	) ([]models.Carga, error)

	ListDelayed(
		ctx context.Context,
		limit int,
	) ([]models.Carga, error)
}

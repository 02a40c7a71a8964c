package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

type CargaGormRepository struct {
	db *gorm.DB
}

func NewCargaGormRepository(db *gorm.DB) *CargaGormRepository {
	return &CargaGormRepository{db: db}
}

// --------------------------------------------------
// Ingestão
// --------------------------------------------------

func (r *CargaGormRepository) Create(
	ctx context.Context,
	c *models.Carga,
) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return httperr.ErrPersistence("carga_create_failed")
	}
	return nil
}

func (r *CargaGormRepository) FindByAppointmentID(
	ctx context.Context,
	appointmentID string,
) (*models.Carga, error) {

	var c models.Carga
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("carga_not_found")
	}
	if err != nil {
		return nil, httperr.ErrPersistence("carga_lookup_failed")
	}
	return &c, nil
}

// --------------------------------------------------
// Comandos
// --------------------------------------------------

func (r *CargaGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Carga, error) {

	var c models.Carga
	err := r.db.WithContext(ctx).First(&c, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("carga_not_found")
	}
	if err != nil {
		return nil, httperr.ErrPersistence("carga_lookup_failed")
	}
	return &c, nil
}

// UpdateImported grava só as colunas da planilha. Status e atraso são
// de outros donos (transições e reconciliação) — um Save de linha
// inteira aqui desfaria um no-show ou um ratchet concorrente.
func (r *CargaGormRepository) UpdateImported(
	ctx context.Context,
	c *models.Carga,
) error {

	err := r.db.WithContext(ctx).
		Model(c).
		Select(
			"truck_type", "truck_tipo",
			"expected_arrival_date", "priority_last_update",
			"priority_score", "prioridade_maxima",
			"cartons", "units",
		).
		Updates(c).Error

	if err != nil {
		return httperr.ErrPersistence("carga_update_failed")
	}
	return nil
}

func (r *CargaGormRepository) UpdateComment(
	ctx context.Context,
	c *models.Carga,
) error {

	err := r.db.WithContext(ctx).
		Model(c).
		Select("atraso_comentario", "atraso_comentado_em").
		Updates(c).Error

	if err != nil {
		return httperr.ErrPersistence("carga_update_failed")
	}
	return nil
}

// UpdateFromStatus é o compare-and-set das transições: grava o estado
// novo somente se o status no banco ainda for o que o comando leu.
// Dois operadores disputando a mesma carga → o segundo leva
// invalid_transition em vez de sobrescrever.
func (r *CargaGormRepository) UpdateFromStatus(
	ctx context.Context,
	c *models.Carga,
	previous domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Carga{}).
		Where("id = ? AND status = ?", c.ID, string(previous)).
		Updates(map[string]any{
			"status":               c.Status,
			"aa_responsavel":       c.AAResponsavel,
			"start_time":           c.StartTime,
			"end_time":             c.EndTime,
			"tempo_total_segundos": c.TempoTotalSegundos,
			"units_por_hora":       c.UnitsPorHora,
			"arrived_at":           c.ArrivedAt,
			"sla_setar_aa_deadline": c.SlaSetarAADeadline,
			"delete_reason":        c.DeleteReason,
			"deleted_at":           c.DeletedAt,
		})

	if res.Error != nil {
		return httperr.ErrPersistence("carga_update_failed")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrInvalidTransition("carga_status_changed")
	}
	return nil
}

// --------------------------------------------------
// Reconciliação preguiçosa
// --------------------------------------------------

func (r *CargaGormRepository) ListOrderedByArrival(
	ctx context.Context,
) ([]models.Carga, error) {

	var cargas []models.Carga
	err := r.db.WithContext(ctx).
		Order("expected_arrival_date ASC").
		Find(&cargas).Error

	if err != nil {
		return nil, httperr.ErrPersistence("carga_list_failed")
	}
	return cargas, nil
}

// ApplyEvaluation persiste um passe de avaliação com guardas
// monotônicas no próprio UPDATE: o no-show só sai de arrival_scheduled
// e o atraso só anda para frente. Um passe concorrente que já gravou
// um atraso maior simplesmente não é tocado.
func (r *CargaGormRepository) ApplyEvaluation(
	ctx context.Context,
	id uint,
	ev domain.Evaluation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if ev.BecameNoShow {
			if err := tx.
				Model(&models.Carga{}).
				Where("id = ? AND status = ?", id, string(domain.StatusArrivalScheduled)).
				Update("status", string(domain.StatusNoShow)).Error; err != nil {
				return httperr.ErrPersistence("carga_noshow_failed")
			}
		}

		if ev.AtrasoSegundos > 0 {
			if err := tx.
				Model(&models.Carga{}).
				Where("id = ? AND atraso_segundos < ?", id, ev.AtrasoSegundos).
				Updates(map[string]any{
					"atraso_registrado": true,
					"atraso_segundos":   ev.AtrasoSegundos,
				}).Error; err != nil {
				return httperr.ErrPersistence("carga_atraso_failed")
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Sync de transferências
// --------------------------------------------------

func (r *CargaGormRepository) ListTransfersInWindow(
	ctx context.Context,
	inicio time.Time,
	fim time.Time,
) ([]models.Carga, error) {

	var cargas []models.Carga
	err := r.db.WithContext(ctx).
		Where(
			"expected_arrival_date IS NOT NULL AND expected_arrival_date >= ? AND expected_arrival_date <= ?",
			inicio, fim,
		).
		Where("truck_tipo = ? OR truck_type = ?", domain.TipoTransferencia, "TRANSSHIP").
		Find(&cargas).Error

	if err != nil {
		return nil, httperr.ErrPersistence("carga_sync_query_failed")
	}
	return cargas, nil
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *CargaGormRepository) ListByStatusInPeriod(
	ctx context.Context,
	status domain.Status,
	inicio time.Time,
	fim time.Time,
) ([]models.Carga, error) {

	// Cada status conta pelo campo de quando ele virou verdade.
	campo := "created_at"
	switch status {
	case domain.StatusClosed:
		campo = "end_time"
	case domain.StatusDeleted:
		campo = "deleted_at"
	}

	var cargas []models.Carga
	err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Where(campo+" IS NOT NULL AND "+campo+" >= ? AND "+campo+" <= ?", inicio, fim).
		Order(campo + " ASC").
		Find(&cargas).Error

	if err != nil {
		return nil, httperr.ErrPersistence("carga_stats_query_failed")
	}
	return cargas, nil
}

func (r *CargaGormRepository) ListDelayed(
	ctx context.Context,
	limit int,
) ([]models.Carga, error) {

	var cargas []models.Carga
	err := r.db.WithContext(ctx).
		Where("atraso_registrado = ?", true).
		Order("atraso_segundos DESC").
		Limit(limit).
		Find(&cargas).Error

	if err != nil {
		return nil, httperr.ErrPersistence("carga_delayed_query_failed")
	}
	return cargas, nil
}

// Compile-time check
var _ domain.Repository = (*CargaGormRepository)(nil)

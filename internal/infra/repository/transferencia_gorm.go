package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/doca-panel/internal/domain/transferencia"
	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

type TransferenciaGormRepository struct {
	db *gorm.DB
}

func NewTransferenciaGormRepository(db *gorm.DB) *TransferenciaGormRepository {
	return &TransferenciaGormRepository{db: db}
}

func (r *TransferenciaGormRepository) Create(
	ctx context.Context,
	t *models.Transferencia,
) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return httperr.ErrPersistence("transferencia_create_failed")
	}
	return nil
}

func (r *TransferenciaGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Transferencia, error) {

	var t models.Transferencia
	err := r.db.WithContext(ctx).First(&t, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("transferencia_not_found")
	}
	if err != nil {
		return nil, httperr.ErrPersistence("transferencia_lookup_failed")
	}
	return &t, nil
}

func (r *TransferenciaGormRepository) FindByAppointmentID(
	ctx context.Context,
	appointmentID string,
) (*models.Transferencia, error) {

	var t models.Transferencia
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&t).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("transferencia_not_found")
	}
	if err != nil {
		return nil, httperr.ErrPersistence("transferencia_lookup_failed")
	}
	return &t, nil
}

func (r *TransferenciaGormRepository) ListOrderedByArrival(
	ctx context.Context,
) ([]models.Transferencia, error) {

	var ts []models.Transferencia
	err := r.db.WithContext(ctx).
		Order("expected_arrival_date ASC").
		Find(&ts).Error

	if err != nil {
		return nil, httperr.ErrPersistence("transferencia_list_failed")
	}
	return ts, nil
}

// Escritas por dono de coluna. Linha inteira (Save) aqui poderia
// rebobinar um ratchet de prazo persistido entre a leitura e a escrita
// do comando — o estouro só anda pelo ApplyDeadlineState.

func (r *TransferenciaGormRepository) UpdateMirror(
	ctx context.Context,
	t *models.Transferencia,
) error {

	err := r.db.WithContext(ctx).
		Model(t).
		Select("carga_id", "expected_arrival_date", "status_carga", "units", "cartons").
		Updates(t).Error

	if err != nil {
		return httperr.ErrPersistence("transferencia_update_failed")
	}
	return nil
}

func (r *TransferenciaGormRepository) UpdateInfo(
	ctx context.Context,
	t *models.Transferencia,
) error {

	err := r.db.WithContext(ctx).
		Model(t).
		Select("vrid", "origem", "late_stow_deadline", "info_preenchida").
		Updates(t).Error

	if err != nil {
		return httperr.ErrPersistence("transferencia_update_failed")
	}
	return nil
}

func (r *TransferenciaGormRepository) UpdateFinalized(
	ctx context.Context,
	t *models.Transferencia,
) error {

	err := r.db.WithContext(ctx).
		Model(t).
		Select("finalizada", "finished_at").
		Updates(t).Error

	if err != nil {
		return httperr.ErrPersistence("transferencia_update_failed")
	}
	return nil
}

func (r *TransferenciaGormRepository) UpdateComment(
	ctx context.Context,
	t *models.Transferencia,
) error {

	err := r.db.WithContext(ctx).
		Model(t).
		Select("comentario_late_stow", "comentario_late_stow_em").
		Updates(t).Error

	if err != nil {
		return httperr.ErrPersistence("transferencia_update_failed")
	}
	return nil
}

// ApplyDeadlineState grava o ratchet do prazo com a mesma guarda
// monotônica da carga: só escreve se o valor novo for maior.
func (r *TransferenciaGormRepository) ApplyDeadlineState(
	ctx context.Context,
	t *models.Transferencia,
) error {

	err := r.db.WithContext(ctx).
		Model(&models.Transferencia{}).
		Where("id = ? AND prazo_estourado_segundos < ?", t.ID, t.PrazoEstouradoSegundos).
		Updates(map[string]any{
			"prazo_estourado":          true,
			"prazo_estourado_segundos": t.PrazoEstouradoSegundos,
		}).Error

	if err != nil {
		return httperr.ErrPersistence("transferencia_prazo_failed")
	}
	return nil
}

func (r *TransferenciaGormRepository) ListOverdue(
	ctx context.Context,
	limit int,
) ([]models.Transferencia, error) {

	var ts []models.Transferencia
	err := r.db.WithContext(ctx).
		Where("prazo_estourado = ?", true).
		Order("prazo_estourado_segundos DESC").
		Limit(limit).
		Find(&ts).Error

	if err != nil {
		return nil, httperr.ErrPersistence("transferencia_overdue_query_failed")
	}
	return ts, nil
}

// Compile-time check
var _ domain.Repository = (*TransferenciaGormRepository)(nil)

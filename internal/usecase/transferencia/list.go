package transferencia

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/doca-panel/internal/clock"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/transferencia"
	"github.com/BruksfildServices01/doca-panel/internal/dto"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// Filtros da listagem do TransferIN.
type ListFilter struct {
	Appointment string // substring, case-insensitive
	Origem      string // match exato
	StatusCard  string // pendente | preenchida | atrasada | finalizada
}

// ListTransferencias: sincroniza as cargas do dia, reconcilia o prazo
// de cada transferência e devolve a listagem filtrada.
type ListTransferencias struct {
	sync  *SyncTransferencias
	repo  domain.Repository
	clock clock.Clock
	log   *zap.Logger
}

func NewListTransferencias(
	sync *SyncTransferencias,
	repo domain.Repository,
	clk clock.Clock,
	log *zap.Logger,
) *ListTransferencias {
	return &ListTransferencias{
		sync:  sync,
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

func (uc *ListTransferencias) Execute(
	ctx context.Context,
	filter ListFilter,
) ([]dto.TransferenciaListDTO, error) {

	// Sync falhando não derruba a listagem — mostra o que tem.
	if _, err := uc.sync.Execute(ctx); err != nil {
		uc.log.Warn("listagem: sync de transferências falhou", zap.Error(err))
	}

	ts, err := uc.repo.ListOrderedByArrival(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	appointmentQ := strings.ToLower(strings.TrimSpace(filter.Appointment))
	origemQ := strings.ToUpper(strings.TrimSpace(filter.Origem))
	statusQ := strings.ToLower(strings.TrimSpace(filter.StatusCard))

	out := make([]dto.TransferenciaListDTO, 0, len(ts))

	for i := range ts {
		t := &ts[i]

		if domain.UpdateDeadlineState(t, now) {
			if err := uc.repo.ApplyDeadlineState(ctx, t); err != nil {
				uc.log.Warn("listagem: prazo não persistido",
					zap.Uint("transferencia_id", t.ID),
					zap.Error(err),
				)
			}
		}

		if appointmentQ != "" && !strings.Contains(strings.ToLower(t.AppointmentID), appointmentQ) {
			continue
		}
		if origemQ != "" && (t.Origem == nil || *t.Origem != origemQ) {
			continue
		}

		statusCard := domain.CardStatus(t)
		if statusQ != "" && statusQ != statusCard {
			continue
		}

		out = append(out, toListDTO(t, statusCard, now))
	}

	return out, nil
}

func toListDTO(t *models.Transferencia, statusCard string, now time.Time) dto.TransferenciaListDTO {
	return dto.TransferenciaListDTO{
		ID:            t.ID,
		AppointmentID: t.AppointmentID,

		ExpectedArrivalDate: isoPtr(t.ExpectedArrivalDate),
		StatusCarga:         t.StatusCarga,

		Units:   t.Units,
		Cartons: t.Cartons,

		VRID:             t.VRID,
		Origem:           t.Origem,
		LateStowDeadline: isoPtr(t.LateStowDeadline),

		InfoPreenchida: t.InfoPreenchida,
		Finalizada:     t.Finalizada,
		FinishedAt:     isoPtr(t.FinishedAt),

		PrazoEstourado:         t.PrazoEstourado,
		PrazoEstouradoSegundos: t.PrazoEstouradoSegundos,
		TempoPrazoSegundos:     domain.DeadlineCountdown(t, now),

		ComentarioLateStow: t.ComentarioLateStow,

		StatusCard: statusCard,
	}
}

func isoPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

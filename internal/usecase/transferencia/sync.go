package transferencia

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/doca-panel/internal/clock"
	cargadomain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/transferencia"
	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/models"
	"github.com/BruksfildServices01/doca-panel/internal/timezone"
)

// SyncTransferencias projeta as cargas de transferência do dia local
// para a tabela de transferências. Projeção de mão única e idempotente:
// a carga é a fonte, a transferência espelha; rodar duas vezes sem
// mudança na carga não escreve nada.
type SyncTransferencias struct {
	cargas    cargadomain.Repository
	transfers domain.Repository
	clock     clock.Clock
	tz        string
	log       *zap.Logger
}

func NewSyncTransferencias(
	cargas cargadomain.Repository,
	transfers domain.Repository,
	clk clock.Clock,
	tz string,
	log *zap.Logger,
) *SyncTransferencias {
	return &SyncTransferencias{
		cargas:    cargas,
		transfers: transfers,
		clock:     clk,
		tz:        tz,
		log:       log,
	}
}

// Execute devolve true se alguma transferência foi criada ou espelhada.
func (uc *SyncTransferencias) Execute(ctx context.Context) (bool, error) {

	now := uc.clock.Now()
	inicio, fim := timezone.LocalDayBoundsUTC(now, uc.tz)

	cargas, err := uc.cargas.ListTransfersInWindow(ctx, inicio, fim)
	if err != nil {
		return false, err
	}

	mudou := false

	for i := range cargas {
		c := &cargas[i]

		t, err := uc.transfers.FindByAppointmentID(ctx, c.AppointmentID)
		if httperr.IsKind(err, httperr.KindNotFound) {
			nova := models.Transferencia{
				AppointmentID: c.AppointmentID,
				CreatedAt:     now,
			}
			domain.Mirror(&nova, c)

			if err := uc.transfers.Create(ctx, &nova); err != nil {
				uc.log.Warn("sync: create falhou",
					zap.String("appointment_id", c.AppointmentID),
					zap.Error(err),
				)
				continue
			}
			mudou = true
			continue
		}
		if err != nil {
			uc.log.Warn("sync: lookup falhou",
				zap.String("appointment_id", c.AppointmentID),
				zap.Error(err),
			)
			continue
		}

		if domain.Mirror(t, c) {
			if err := uc.transfers.UpdateMirror(ctx, t); err != nil {
				uc.log.Warn("sync: update falhou",
					zap.String("appointment_id", c.AppointmentID),
					zap.Error(err),
				)
				continue
			}
			mudou = true
		}
	}

	return mudou, nil
}

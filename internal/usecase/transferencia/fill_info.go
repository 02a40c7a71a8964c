package transferencia

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	cargadomain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/transferencia"
	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/models"
	"github.com/BruksfildServices01/doca-panel/internal/timezone"
)

// FillTransferInfo preenche VRID, origem e deadline de LATE STOW.
// Se a transferência ainda não foi projetada mas a carga existe, cria a
// projeção na hora — o operador não espera o próximo sync.
type FillTransferInfo struct {
	transfers domain.Repository
	cargas    cargadomain.Repository
	clock     clock.Clock
	tz        string
	audit     *audit.Dispatcher
}

func NewFillTransferInfo(
	transfers domain.Repository,
	cargas cargadomain.Repository,
	clk clock.Clock,
	tz string,
	auditd *audit.Dispatcher,
) *FillTransferInfo {
	return &FillTransferInfo{
		transfers: transfers,
		cargas:    cargas,
		clock:     clk,
		tz:        tz,
		audit:     auditd,
	}
}

func (uc *FillTransferInfo) Execute(
	ctx context.Context,
	transferID uint,
	appointmentID string,
	origem string,
	vrid string,
	lateStowRaw string,
) (*models.Transferencia, error) {

	now := uc.clock.Now()

	t, err := uc.resolve(ctx, transferID, appointmentID, now)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.tz)
	if err := domain.FillInfo(t, origem, vrid, lateStowRaw, loc, now); err != nil {
		return nil, err
	}

	if err := uc.transfers.UpdateInfo(ctx, t); err != nil {
		return nil, err
	}

	// deadline já vencido no preenchimento: estouro via guarda monotônica
	if t.PrazoEstourado {
		if err := uc.transfers.ApplyDeadlineState(ctx, t); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "transferencia_info",
		Entity:   "transferencia",
		EntityID: &t.ID,
		Metadata: map[string]any{"vrid": vrid, "origem": origem},
	})

	return t, nil
}

// resolve acha a transferência por id, depois por appointment_id, e por
// último projeta direto da carga quando ela existe.
func (uc *FillTransferInfo) resolve(
	ctx context.Context,
	transferID uint,
	appointmentID string,
	now time.Time,
) (*models.Transferencia, error) {

	if transferID != 0 {
		t, err := uc.transfers.FindByID(ctx, transferID)
		if err == nil {
			return t, nil
		}
		if !httperr.IsKind(err, httperr.KindNotFound) {
			return nil, err
		}
	}

	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return nil, httperr.ErrNotFound("transferencia_not_found")
	}

	t, err := uc.transfers.FindByAppointmentID(ctx, appointmentID)
	if err == nil {
		return t, nil
	}
	if !httperr.IsKind(err, httperr.KindNotFound) {
		return nil, err
	}

	c, err := uc.cargas.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.ErrNotFound("transferencia_not_found")
		}
		return nil, err
	}

	nova := models.Transferencia{
		AppointmentID: c.AppointmentID,
		CreatedAt:     now,
	}
	domain.Mirror(&nova, c)

	if err := uc.transfers.Create(ctx, &nova); err != nil {
		return nil, err
	}

	return &nova, nil
}

package transferencia

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// Origens de transferência aceitas no painel.
var ValidOrigins = map[string]struct{}{
	"CNF2": {}, "FOR2": {}, "GIG1": {}, "GRU9": {}, "POA1": {},
	"REC1": {}, "REC3": {}, "XBRA": {}, "XCV9": {},
}

// Formatos aceitos para o deadline digitado (datetime-local do front e
// variações com segundos/offset).
var deadlineLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDeadline interpreta o instante digitado. Sem offset explícito,
// o horário é do fuso local do galpão e vira UTC na gravação.
func ParseDeadline(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, httperr.ErrValidation("late_stow_invalido")
	}

	for _, layout := range deadlineLayouts {
		if dt, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return dt.UTC(), nil
		}
	}

	return time.Time{}, httperr.ErrValidation("late_stow_invalido")
}

// FillInfo preenche VRID, origem e deadline de LATE STOW. A partir daqui
// o prazo passa a contar.
func FillInfo(t *models.Transferencia, origem, vrid, lateStowRaw string, loc *time.Location, now time.Time) error {
	vrid = strings.TrimSpace(vrid)
	origem = strings.ToUpper(strings.TrimSpace(origem))

	if vrid == "" {
		return httperr.ErrMissingInput("vrid_required")
	}
	if _, ok := ValidOrigins[origem]; !ok {
		return httperr.ErrValidation("origem_invalida")
	}

	deadline, err := ParseDeadline(lateStowRaw, loc)
	if err != nil {
		return err
	}

	t.VRID = &vrid
	t.Origem = &origem
	t.LateStowDeadline = &deadline
	t.InfoPreenchida = true

	UpdateDeadlineState(t, now)
	return nil
}

// Finalize fecha a transferência. Avalia o prazo uma última vez contra
// o instante do fechamento e congela.
func Finalize(t *models.Transferencia, now time.Time) error {
	if t.Finalizada {
		return httperr.ErrInvalidTransition("transferencia_finalizada")
	}

	t.Finalizada = true
	t.FinishedAt = &now

	UpdateDeadlineState(t, now)
	return nil
}

// Comment registra justificativa de estouro. Só vale para transferência
// com prazo estourado (vivo ou póstumo).
func Comment(t *models.Transferencia, texto string, now time.Time) error {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return httperr.ErrMissingInput("comentario_required")
	}

	UpdateDeadlineState(t, now)
	if !t.PrazoEstourado {
		return httperr.ErrInvalidState("transferencia_no_prazo")
	}

	t.ComentarioLateStow = &texto
	t.ComentarioLateStowEm = &now
	return nil
}

// Mirror espelha os campos da carga de origem na transferência.
// Devolve true só quando algo de fato mudou (projeção idempotente —
// rodar duas vezes sem mudança na carga não gera escrita).
func Mirror(t *models.Transferencia, c *models.Carga) bool {
	changed := false

	if t.CargaID == nil || *t.CargaID != c.ID {
		id := c.ID
		t.CargaID = &id
		changed = true
	}

	if !equalTimePtr(t.ExpectedArrivalDate, c.ExpectedArrivalDate) {
		t.ExpectedArrivalDate = copyTimePtr(c.ExpectedArrivalDate)
		changed = true
	}

	if t.StatusCarga != c.Status {
		t.StatusCarga = c.Status
		changed = true
	}

	if t.Units != c.Units {
		t.Units = c.Units
		changed = true
	}

	if t.Cartons != c.Cartons {
		t.Cartons = c.Cartons
		changed = true
	}

	return changed
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func copyTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

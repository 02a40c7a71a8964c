package transferencia

import (
	"time"

	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// ===============================
// Prazo de LATE STOW
// ===============================
//
// Mesmo padrão de atraso permanente da carga, com uma diferença: o
// deadline é digitado pelo operador (não derivado da chegada) e só
// existe depois do info_preenchida.

// UpdateDeadlineState é o passe preguiçoso do prazo. Devolve true se o
// estado persistível mudou.
//
// Transferência finalizada congela: o atraso é avaliado uma única vez
// contra finished_at (finalizou depois do prazo = estouro póstumo) e o
// relógio vivo para de contar.
func UpdateDeadlineState(t *models.Transferencia, now time.Time) bool {
	if t.LateStowDeadline == nil {
		return false
	}
	deadline := *t.LateStowDeadline

	if t.Finalizada {
		fim := now
		if t.FinishedAt != nil {
			fim = *t.FinishedAt
		}
		atraso := int(fim.Sub(deadline).Seconds())
		if atraso > 0 && (!t.PrazoEstourado || atraso > t.PrazoEstouradoSegundos) {
			t.PrazoEstourado = true
			t.PrazoEstouradoSegundos = atraso
			return true
		}
		return false
	}

	if now.After(deadline) {
		atraso := int(now.Sub(deadline).Seconds())
		if !t.PrazoEstourado || atraso > t.PrazoEstouradoSegundos {
			t.PrazoEstourado = true
			t.PrazoEstouradoSegundos = atraso
			return true
		}
	}

	return false
}

// DeadlineCountdown é o contador vivo da listagem (nil depois de
// finalizada ou sem deadline).
func DeadlineCountdown(t *models.Transferencia, now time.Time) *int {
	if t.LateStowDeadline == nil || t.Finalizada {
		return nil
	}
	segundos := int(t.LateStowDeadline.Sub(now).Seconds())
	return &segundos
}

// ===============================
// Status do card
// ===============================
//
// Ordem de sobrescrita: pendente → preenchida → atrasada → finalizada.

const (
	CardPendente   = "pendente"
	CardPreenchida = "preenchida"
	CardAtrasada   = "atrasada"
	CardFinalizada = "finalizada"
)

func CardStatus(t *models.Transferencia) string {
	status := CardPendente
	if t.InfoPreenchida {
		status = CardPreenchida
	}
	if t.PrazoEstourado && !t.Finalizada {
		status = CardAtrasada
	}
	if t.Finalizada {
		status = CardFinalizada
	}
	return status
}

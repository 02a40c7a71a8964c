package carga

import (
	"time"

	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// ===============================
// SLA de chegada + atraso persistente
// ===============================

const (
	// SLASetarAA: prazo para setar AA depois da chegada esperada.
	SLASetarAA = 4 * time.Hour

	// NoShowAfter: arrival_scheduled sem confirmação vira no_show.
	NoShowAfter = 24 * time.Hour
)

// Evaluation é o resultado de um passe de reconciliação sobre uma carga.
// O passe muta o model em memória e reporta o que avançou, para o
// usecase persistir só o que mudou.
type Evaluation struct {
	BecameNoShow bool

	// AtrasoSegundos > 0 quando o ratchet avançou neste passe.
	AtrasoSegundos int
}

func (e Evaluation) Changed() bool {
	return e.BecameNoShow || e.AtrasoSegundos > 0
}

// EffectiveDeadline é a regra unificada de deadline:
//
//	expected_arrival + 4h, sempre que expected_arrival existe.
//
// Fallback legado (registros antigos em arrival sem expected_arrival):
// sla_setar_aa_deadline persistido, senão arrived_at + 4h, senão nada —
// carga sem base de cálculo fica fora da checagem de atraso.
func EffectiveDeadline(c *models.Carga) *time.Time {
	if c.ExpectedArrivalDate != nil {
		d := c.ExpectedArrivalDate.Add(SLASetarAA)
		return &d
	}

	if Status(c.Status) == StatusArrival {
		if c.SlaSetarAADeadline != nil {
			d := *c.SlaSetarAADeadline
			return &d
		}
		if c.ArrivedAt != nil {
			d := c.ArrivedAt.Add(SLASetarAA)
			return &d
		}
	}

	return nil
}

// Evaluate é o passe preguiçoso que roda em toda listagem:
//
//  1. no-show: arrival_scheduled há mais de 24h da chegada esperada;
//  2. ratchet de atraso: enquanto a carga espera AA (arrival ou
//     arrival_scheduled), estourou o deadline → registra o pior atraso
//     já observado. Nunca diminui, nunca desregistra.
//
// Carga fechada/em checkin só carrega o atraso já persistido — o
// relógio vivo não recalcula nada para ela.
func Evaluate(c *models.Carga, now time.Time) Evaluation {
	var ev Evaluation

	if Status(c.Status) == StatusArrivalScheduled && c.ExpectedArrivalDate != nil {
		if now.After(c.ExpectedArrivalDate.Add(NoShowAfter)) {
			c.Status = string(StatusNoShow)
			ev.BecameNoShow = true
			return ev
		}
	}

	if s := Status(c.Status); s != StatusArrival && s != StatusArrivalScheduled {
		return ev
	}

	deadline := EffectiveDeadline(c)
	if deadline == nil {
		return ev
	}

	if now.After(*deadline) {
		atraso := int(now.Sub(*deadline).Seconds())
		if !c.AtrasoRegistrado || atraso > c.AtrasoSegundos {
			c.AtrasoRegistrado = true
			c.AtrasoSegundos = atraso
			ev.AtrasoSegundos = atraso
		}
	}

	return ev
}

// SLACountdown é o contador vivo da listagem, em segundos (negativo
// quando estourado). Nil quando a carga não está mais esperando AA ou
// não tem base de cálculo.
func SLACountdown(c *models.Carga, now time.Time) *int {
	if s := Status(c.Status); s != StatusArrival && s != StatusArrivalScheduled {
		return nil
	}

	deadline := EffectiveDeadline(c)
	if deadline == nil {
		return nil
	}

	segundos := int(deadline.Sub(now).Seconds())
	return &segundos
}

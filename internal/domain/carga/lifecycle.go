package carga

import (
	"math"
	"strings"
	"time"

	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// ===============================
// Ações de domínio
// ===============================
//
// Cada ação valida a transição e mescla o novo estado direto no model,
// com o "agora" explícito. Persistir é problema do usecase.

// Schedule valida uma carga recém ingerida. Ingestão sempre nasce em
// arrival_scheduled e exige expected_arrival.
func Schedule(c *models.Carga, now time.Time) error {
	if strings.TrimSpace(c.AppointmentID) == "" {
		return httperr.ErrMissingInput("appointment_id_required")
	}
	if c.ExpectedArrivalDate == nil {
		return httperr.ErrValidation("expected_arrival_required")
	}

	c.Status = string(InitialStatus())
	c.TruckTipo = NormalizeTruckType(c.TruckType)
	c.PrioridadeMaxima = PriorityStale(c)
	c.CreatedAt = now
	return nil
}

// PriorityStale: score "estourado" quando o último update da prioridade
// é anterior à chegada esperada.
func PriorityStale(c *models.Carga) bool {
	if c.PriorityLastUpdate == nil || c.ExpectedArrivalDate == nil {
		return false
	}
	return c.PriorityLastUpdate.Before(*c.ExpectedArrivalDate)
}

// Arrive: carga chegou fisicamente. Só sai de arrival_scheduled e
// inicia o SLA de 4h para setar AA.
func Arrive(c *models.Carga, now time.Time) error {
	if err := CanArrive(Status(c.Status)); err != nil {
		return err
	}

	deadline := now.Add(SLASetarAA)
	c.Status = string(StatusArrival)
	c.ArrivedAt = &now
	c.SlaSetarAADeadline = &deadline
	return nil
}

// Checkin: AA assume a carga e o trabalho começa a contar.
func Checkin(c *models.Carga, aaLogin string, now time.Time) error {
	aaLogin = strings.TrimSpace(aaLogin)
	if aaLogin == "" {
		return httperr.ErrMissingInput("aa_required")
	}
	if err := CanCheckin(Status(c.Status)); err != nil {
		return err
	}

	c.Status = string(StatusCheckin)
	c.AAResponsavel = &aaLogin
	c.StartTime = &now
	return nil
}

// Close fecha a carga e deriva tempo total e produtividade.
func Close(c *models.Carga, now time.Time) error {
	if err := CanClose(Status(c.Status)); err != nil {
		return err
	}
	if c.StartTime == nil {
		return httperr.ErrInvalidState("carga_not_started")
	}

	tempoTotal := int(now.Sub(*c.StartTime).Seconds())
	unitsPorHora := 0.0
	if tempoTotal > 0 {
		horas := float64(tempoTotal) / 3600
		unitsPorHora = math.Round(float64(c.Units)/horas*100) / 100
	}

	c.Status = string(StatusClosed)
	c.EndTime = &now
	c.TempoTotalSegundos = &tempoTotal
	c.UnitsPorHora = &unitsPorHora
	return nil
}

// SoftDelete marca a carga como deletada. Nunca apaga a linha.
func SoftDelete(c *models.Carga, motivo string, now time.Time) error {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return httperr.ErrMissingInput("motivo_required")
	}
	if err := CanSoftDelete(Status(c.Status)); err != nil {
		return err
	}

	c.Status = string(StatusDeleted)
	c.DeleteReason = &motivo
	c.DeletedAt = &now
	return nil
}

// Comment registra a justificativa do atraso. Só vale para carga com
// atraso já registrado.
func Comment(c *models.Carga, texto string, now time.Time) error {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return httperr.ErrMissingInput("comentario_required")
	}
	if !c.AtrasoRegistrado {
		return httperr.ErrInvalidState("carga_sem_atraso")
	}

	c.AtrasoComentario = &texto
	c.AtrasoComentadoEm = &now
	return nil
}

package carga

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	domain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	"github.com/BruksfildServices01/doca-panel/internal/dto"
	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

// IngestCargas processa um lote de linhas da planilha: cria carga nova
// em arrival_scheduled ou atualiza os campos importados da existente
// (match por appointment_id). Linha inválida conta como ignorada e
// nunca derruba o lote.
type IngestCargas struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewIngestCargas(
	repo domain.Repository,
	clk clock.Clock,
	auditd *audit.Dispatcher,
	log *zap.Logger,
) *IngestCargas {
	return &IngestCargas{
		repo:  repo,
		clock: clk,
		audit: auditd,
		log:   log,
	}
}

// Formatos de data aceitos nas linhas importadas. Instante sem offset é
// interpretado como UTC (a planilha já vem em UTC).
var importLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseImportDate(raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	for _, layout := range importLayouts {
		if dt, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			utc := dt.UTC()
			return &utc, true
		}
	}
	return nil, false
}

func (uc *IngestCargas) Execute(
	ctx context.Context,
	linhas []dto.LinhaImportacao,
) (dto.ResultadoImportacaoDTO, error) {

	out := dto.ResultadoImportacaoDTO{
		BatchID: uuid.NewString(),
	}
	now := uc.clock.Now()

	for _, linha := range linhas {

		if linha.Units <= 0 {
			out.Ignoradas++
			continue
		}

		expected, ok := parseImportDate(linha.ExpectedArrivalDate)
		if !ok {
			out.Ignoradas++
			continue
		}

		// priority_last_update é opcional; presente mas ilegível invalida a linha
		var priorityUpdate *time.Time
		if strings.TrimSpace(linha.PriorityLastUpdate) != "" {
			priorityUpdate, ok = parseImportDate(linha.PriorityLastUpdate)
			if !ok {
				out.Ignoradas++
				continue
			}
		}

		existente, err := uc.repo.FindByAppointmentID(ctx, strings.TrimSpace(linha.AppointmentID))
		if err != nil && !httperr.IsKind(err, httperr.KindNotFound) {
			uc.log.Warn("ingest: lookup falhou",
				zap.String("appointment_id", linha.AppointmentID),
				zap.Error(err),
			)
			out.Ignoradas++
			continue
		}
		if err == nil {
			uc.mergeImported(existente, linha, expected, priorityUpdate)
			if err := uc.repo.UpdateImported(ctx, existente); err != nil {
				uc.log.Warn("ingest: update falhou",
					zap.String("appointment_id", existente.AppointmentID),
					zap.Error(err),
				)
				out.Ignoradas++
				continue
			}
			out.Atualizadas++
			continue
		}

		nova := models.Carga{
			AppointmentID:       strings.TrimSpace(linha.AppointmentID),
			TruckType:           strings.TrimSpace(linha.TruckType),
			ExpectedArrivalDate: expected,
			PriorityLastUpdate:  priorityUpdate,
			PriorityScore:       linha.PriorityScore,
			Cartons:             linha.Cartons,
			Units:               linha.Units,
		}

		if err := domain.Schedule(&nova, now); err != nil {
			out.Ignoradas++
			continue
		}

		if err := uc.repo.Create(ctx, &nova); err != nil {
			uc.log.Warn("ingest: create falhou",
				zap.String("appointment_id", nova.AppointmentID),
				zap.Error(err),
			)
			out.Ignoradas++
			continue
		}
		out.Inseridas++
	}

	uc.audit.Dispatch(audit.Event{
		Action: "planilha_importada",
		Entity: "carga",
		Metadata: map[string]any{
			"batch_id":    out.BatchID,
			"inseridas":   out.Inseridas,
			"atualizadas": out.Atualizadas,
			"ignoradas":   out.Ignoradas,
		},
	})

	return out, nil
}

// mergeImported atualiza só os campos que vêm da planilha. Status, SLA
// e atraso ficam como estão.
func (uc *IngestCargas) mergeImported(
	c *models.Carga,
	linha dto.LinhaImportacao,
	expected *time.Time,
	priorityUpdate *time.Time,
) {
	c.TruckType = strings.TrimSpace(linha.TruckType)
	c.TruckTipo = domain.NormalizeTruckType(linha.TruckType)
	c.ExpectedArrivalDate = expected
	c.PriorityLastUpdate = priorityUpdate
	c.PriorityScore = linha.PriorityScore
	c.Cartons = linha.Cartons
	c.Units = linha.Units
	c.PrioridadeMaxima = domain.PriorityStale(c)
}

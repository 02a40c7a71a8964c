package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/doca-panel/internal/cache"
	cargadomain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	transferdomain "github.com/BruksfildServices01/doca-panel/internal/domain/transferencia"
	"github.com/BruksfildServices01/doca-panel/internal/dto"
	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/models"
	"github.com/BruksfildServices01/doca-panel/internal/timezone"
)

const (
	// statsCacheTTL: stats mudam a cada listagem, cache só amortece
	// rajada de refresh do painel.
	statsCacheTTL = 30 * time.Second

	// atrasosPageSize limita a lista de atrasados no transporte.
	atrasosPageSize = 200
)

// Stats é o agregador do dashboard. Só leitura: consome os registros já
// reconciliados pelas listagens, nunca muta nada.
type Stats struct {
	cargas    cargadomain.Repository
	transfers transferdomain.Repository
	cache     cache.Cache
	log       *zap.Logger
}

func NewStats(
	cargas cargadomain.Repository,
	transfers transferdomain.Repository,
	c cache.Cache,
	log *zap.Logger,
) *Stats {
	return &Stats{
		cargas:    cargas,
		transfers: transfers,
		cache:     c,
		log:       log,
	}
}

func (uc *Stats) Execute(
	ctx context.Context,
	dataInicio string,
	dataFim string,
) (dto.DashboardStatsDTO, error) {

	inicio, err := time.Parse("2006-01-02", dataInicio)
	if err != nil {
		return dto.EmptyDashboardStats(), httperr.ErrValidation("data_inicio_invalida")
	}
	fim, err := time.Parse("2006-01-02", dataFim)
	if err != nil {
		return dto.EmptyDashboardStats(), httperr.ErrValidation("data_fim_invalida")
	}

	key := fmt.Sprintf("dashboard:stats:%s:%s", dataInicio, dataFim)

	// Cache indisponível nunca bloqueia o dashboard.
	if uc.cache != nil {
		if raw, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
			var cached dto.DashboardStatsDTO
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		} else if err != nil {
			uc.log.Warn("dashboard: cache get falhou", zap.Error(err))
		}
	}

	out, err := uc.compute(ctx, inicio, fim)
	if err != nil {
		return dto.EmptyDashboardStats(), err
	}

	if uc.cache != nil {
		if b, err := json.Marshal(out); err == nil {
			if err := uc.cache.Set(ctx, key, string(b), statsCacheTTL); err != nil {
				uc.log.Warn("dashboard: cache set falhou", zap.Error(err))
			}
		}
	}

	return out, nil
}

func (uc *Stats) compute(
	ctx context.Context,
	inicio time.Time,
	fim time.Time,
) (dto.DashboardStatsDTO, error) {

	inicioUTC, fimUTC := timezone.UTCDayRange(inicio, fim)
	out := dto.EmptyDashboardStats()

	// ==========================
	// CLOSED por end_time
	// ==========================
	fechadas, err := uc.cargas.ListByStatusInPeriod(ctx, cargadomain.StatusClosed, inicioUTC, fimUTC)
	if err != nil {
		return out, err
	}

	for i := range fechadas {
		c := &fechadas[i]

		out.TotalNotasFechadas++
		out.TotalUnits += c.Units

		dia := dayKey(c.EndTime)
		out.UnidadesPorDia[dia] += c.Units
		out.NotasPorDia[dia]++

		if c.AAResponsavel != nil && *c.AAResponsavel != "" {
			login := *c.AAResponsavel
			stats := out.PorLogin[login]
			stats.Units += c.Units
			stats.Notas++
			if c.TempoTotalSegundos != nil {
				stats.Horas += float64(*c.TempoTotalSegundos) / 3600
			}
			out.PorLogin[login] = stats
		}
	}

	for login, stats := range out.PorLogin {
		stats.Horas = round2(stats.Horas)
		if stats.Horas > 0 {
			stats.UnitsPorHora = round2(float64(stats.Units) / stats.Horas)
		}
		out.PorLogin[login] = stats
	}

	// ==========================
	// CHECKIN (andamento) e ARRIVAL (pendentes) por created_at
	// ==========================
	andamento, err := uc.cargas.ListByStatusInPeriod(ctx, cargadomain.StatusCheckin, inicioUTC, fimUTC)
	if err != nil {
		return out, err
	}
	out.TotalNotasAndamento = len(andamento)

	pendentes, err := uc.cargas.ListByStatusInPeriod(ctx, cargadomain.StatusArrival, inicioUTC, fimUTC)
	if err != nil {
		return out, err
	}
	out.TotalNotasPendentes = len(pendentes)

	// ==========================
	// DELETED por deleted_at
	// ==========================
	deletadas, err := uc.cargas.ListByStatusInPeriod(ctx, cargadomain.StatusDeleted, inicioUTC, fimUTC)
	if err != nil {
		return out, err
	}
	out.TotalNotasDeletadas = len(deletadas)
	for i := range deletadas {
		out.NotasDeletadasPorDia[dayKey(deletadas[i].DeletedAt)]++
	}

	// ==========================
	// NO SHOW por created_at
	// ==========================
	noShow, err := uc.cargas.ListByStatusInPeriod(ctx, cargadomain.StatusNoShow, inicioUTC, fimUTC)
	if err != nil {
		return out, err
	}
	out.TotalNotasNoShow = len(noShow)
	for i := range noShow {
		c := &noShow[i]
		created := c.CreatedAt
		out.NoShowPorDia[dayKey(&created)]++
		out.TotalUnitsNoShow += c.Units
	}

	// ==========================
	// Atrasos registrados (histórico, não só o vivo)
	// ==========================
	atrasadas, err := uc.cargas.ListDelayed(ctx, atrasosPageSize)
	if err != nil {
		return out, err
	}
	for i := range atrasadas {
		out.CargasAtrasadas = append(out.CargasAtrasadas, toAtrasoCarga(&atrasadas[i]))
	}

	vencidas, err := uc.transfers.ListOverdue(ctx, atrasosPageSize)
	if err != nil {
		return out, err
	}
	for i := range vencidas {
		out.TransferenciasAtrasadas = append(out.TransferenciasAtrasadas, toAtrasoTransferencia(&vencidas[i]))
	}

	return out, nil
}

func toAtrasoCarga(c *models.Carga) dto.AtrasoCargaDTO {
	return dto.AtrasoCargaDTO{
		ID:               c.ID,
		AppointmentID:    c.AppointmentID,
		Status:           c.Status,
		AtrasoSegundos:   c.AtrasoSegundos,
		AtrasoComentario: c.AtrasoComentario,
	}
}

func toAtrasoTransferencia(t *models.Transferencia) dto.AtrasoTransferenciaDTO {
	return dto.AtrasoTransferenciaDTO{
		ID:                     t.ID,
		AppointmentID:          t.AppointmentID,
		Finalizada:             t.Finalizada,
		PrazoEstouradoSegundos: t.PrazoEstouradoSegundos,
		ComentarioLateStow:     t.ComentarioLateStow,
	}
}

func dayKey(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

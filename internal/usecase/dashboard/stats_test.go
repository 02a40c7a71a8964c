package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/doca-panel/internal/cache"
	dbpkg "github.com/BruksfildServices01/doca-panel/internal/db"
	cargadomain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	infraRepo "github.com/BruksfildServices01/doca-panel/internal/infra/repository"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

var dia = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(v int) *int              { return &v }
func strPtr(s string) *string        { return &s }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))
	return gdb
}

func newStatsUC(t *testing.T, gdb *gorm.DB, c cache.Cache) *Stats {
	t.Helper()
	return NewStats(
		infraRepo.NewCargaGormRepository(gdb),
		infraRepo.NewTransferenciaGormRepository(gdb),
		c,
		zap.NewNop(),
	)
}

func newMiniredisCache(t *testing.T) cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewRedisCache(client)
}

func seedDashboard(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	cargas := []models.Carga{
		// fechadas por jsilva: 100u em 1h e 200u em 2h, dias diferentes
		{
			AppointmentID: "F-1", Status: string(cargadomain.StatusClosed),
			Units: 100, AAResponsavel: strPtr("jsilva"),
			EndTime: timePtr(dia.Add(10 * time.Hour)), TempoTotalSegundos: intPtr(3600),
			CreatedAt: dia,
		},
		{
			AppointmentID: "F-2", Status: string(cargadomain.StatusClosed),
			Units: 200, AAResponsavel: strPtr("jsilva"),
			EndTime: timePtr(dia.Add(34 * time.Hour)), TempoTotalSegundos: intPtr(7200),
			CreatedAt: dia,
		},
		// fechada por outro operador
		{
			AppointmentID: "F-3", Status: string(cargadomain.StatusClosed),
			Units: 50, AAResponsavel: strPtr("mmoura"),
			EndTime: timePtr(dia.Add(12 * time.Hour)), TempoTotalSegundos: intPtr(1800),
			CreatedAt: dia,
		},
		// fechada fora do range: não conta
		{
			AppointmentID: "F-FORA", Status: string(cargadomain.StatusClosed),
			Units: 999, AAResponsavel: strPtr("jsilva"),
			EndTime: timePtr(dia.AddDate(0, 0, 10)), TempoTotalSegundos: intPtr(3600),
			CreatedAt: dia,
		},
		{
			AppointmentID: "AND-1", Status: string(cargadomain.StatusCheckin),
			Units: 70, AAResponsavel: strPtr("jsilva"), CreatedAt: dia.Add(9 * time.Hour),
		},
		{
			AppointmentID: "PEND-1", Status: string(cargadomain.StatusArrival),
			Units: 30, CreatedAt: dia.Add(8 * time.Hour),
		},
		{
			AppointmentID: "DEL-1", Status: string(cargadomain.StatusDeleted),
			Units: 10, DeletedAt: timePtr(dia.Add(11 * time.Hour)),
			DeleteReason: strPtr("duplicada"), CreatedAt: dia,
		},
		{
			AppointmentID: "NS-1", Status: string(cargadomain.StatusNoShow),
			Units: 40, CreatedAt: dia.Add(6 * time.Hour),
		},
		// atraso histórico: entra na lista mesmo já fechada
		{
			AppointmentID: "ATR-1", Status: string(cargadomain.StatusClosed),
			Units: 25, AtrasoRegistrado: true, AtrasoSegundos: 5400,
			AtrasoComentario: strPtr("chuva forte"),
			EndTime:          timePtr(dia.Add(14 * time.Hour)), TempoTotalSegundos: intPtr(900),
			CreatedAt: dia,
		},
	}
	for i := range cargas {
		require.NoError(t, gdb.Create(&cargas[i]).Error)
	}

	transfer := models.Transferencia{
		AppointmentID:          "T-1",
		PrazoEstourado:         true,
		PrazoEstouradoSegundos: 1200,
		Finalizada:             true,
		CreatedAt:              dia,
	}
	require.NoError(t, gdb.Create(&transfer).Error)
}

func TestStatsAgregaPorPeriodo(t *testing.T) {
	gdb := newTestDB(t)
	seedDashboard(t, gdb)
	uc := newStatsUC(t, gdb, nil) // sem cache: caminho direto
	ctx := context.Background()

	out, err := uc.Execute(ctx, "2026-03-10", "2026-03-11")
	require.NoError(t, err)

	// ATR-1 também é fechada dentro do range
	assert.Equal(t, 4, out.TotalNotasFechadas)
	assert.Equal(t, 100+200+50+25, out.TotalUnits)
	assert.Equal(t, 1, out.TotalNotasAndamento)
	assert.Equal(t, 1, out.TotalNotasPendentes)
	assert.Equal(t, 1, out.TotalNotasDeletadas)
	assert.Equal(t, 1, out.TotalNotasNoShow)
	assert.Equal(t, 40, out.TotalUnitsNoShow)

	assert.Equal(t, 100+50+25, out.UnidadesPorDia["2026-03-10"])
	assert.Equal(t, 200, out.UnidadesPorDia["2026-03-11"])
	assert.Equal(t, 3, out.NotasPorDia["2026-03-10"])
	assert.Equal(t, 1, out.NotasDeletadasPorDia["2026-03-10"])
	assert.Equal(t, 1, out.NoShowPorDia["2026-03-10"])

	jsilva := out.PorLogin["jsilva"]
	assert.Equal(t, 300, jsilva.Units)
	assert.Equal(t, 2, jsilva.Notas)
	assert.Equal(t, 3.0, jsilva.Horas)
	assert.Equal(t, 100.0, jsilva.UnitsPorHora)

	require.Len(t, out.CargasAtrasadas, 1)
	assert.Equal(t, "ATR-1", out.CargasAtrasadas[0].AppointmentID)
	assert.Equal(t, 5400, out.CargasAtrasadas[0].AtrasoSegundos)

	require.Len(t, out.TransferenciasAtrasadas, 1)
	assert.Equal(t, "T-1", out.TransferenciasAtrasadas[0].AppointmentID)
	assert.Equal(t, 1200, out.TransferenciasAtrasadas[0].PrazoEstouradoSegundos)
}

func TestStatsRangeInvalido(t *testing.T) {
	gdb := newTestDB(t)
	uc := newStatsUC(t, gdb, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, "10/03/2026", "2026-03-11")
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	_, err = uc.Execute(ctx, "2026-03-10", "")
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestStatsUsaCacheDentroDoTTL(t *testing.T) {
	gdb := newTestDB(t)
	seedDashboard(t, gdb)
	uc := newStatsUC(t, gdb, newMiniredisCache(t))
	ctx := context.Background()

	primeira, err := uc.Execute(ctx, "2026-03-10", "2026-03-11")
	require.NoError(t, err)

	// novo fechamento depois do primeiro cálculo
	nova := models.Carga{
		AppointmentID: "F-NOVA", Status: string(cargadomain.StatusClosed),
		Units: 500, AAResponsavel: strPtr("jsilva"),
		EndTime: timePtr(dia.Add(15 * time.Hour)), TempoTotalSegundos: intPtr(3600),
		CreatedAt: dia,
	}
	require.NoError(t, gdb.Create(&nova).Error)

	// dentro do TTL o painel vê o snapshot cacheado
	segunda, err := uc.Execute(ctx, "2026-03-10", "2026-03-11")
	require.NoError(t, err)
	assert.Equal(t, primeira.TotalUnits, segunda.TotalUnits)
	assert.Equal(t, primeira.TotalNotasFechadas, segunda.TotalNotasFechadas)

	// range diferente é outra chave: recalcula na hora
	outra, err := uc.Execute(ctx, "2026-03-10", "2026-03-12")
	require.NoError(t, err)
	assert.Equal(t, primeira.TotalUnits+500, outra.TotalUnits)
}

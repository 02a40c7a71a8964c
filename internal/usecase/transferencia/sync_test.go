package transferencia

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	dbpkg "github.com/BruksfildServices01/doca-panel/internal/db"
	cargadomain "github.com/BruksfildServices01/doca-panel/internal/domain/carga"
	infraRepo "github.com/BruksfildServices01/doca-panel/internal/infra/repository"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

const testTZ = "America/Sao_Paulo"

// 12:00 UTC = 09:00 em São Paulo; a janela do dia local vai de
// 03:00 UTC até 02:59:59 UTC do dia seguinte.
var baseTest = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

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

type syncFixture struct {
	gdb       *gorm.DB
	cargas    *infraRepo.CargaGormRepository
	transfers *infraRepo.TransferenciaGormRepository
	clk       *clock.Fixed
	sync      *SyncTransferencias
	audit     *audit.Dispatcher
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	gdb := newTestDB(t)
	f := &syncFixture{
		gdb:       gdb,
		cargas:    infraRepo.NewCargaGormRepository(gdb),
		transfers: infraRepo.NewTransferenciaGormRepository(gdb),
		clk:       clock.FixedAt(baseTest),
		audit:     audit.NewDispatcher(audit.New(gdb)),
	}
	f.sync = NewSyncTransferencias(f.cargas, f.transfers, f.clk, testTZ, zap.NewNop())
	return f
}

func (f *syncFixture) seedCarga(t *testing.T, c *models.Carga) *models.Carga {
	t.Helper()
	require.NoError(t, f.gdb.Create(c).Error)
	return c
}

func TestSyncProjetaSoTransferenciasDoDia(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	dentro := f.seedCarga(t, &models.Carga{
		AppointmentID:       "APT-T1",
		TruckType:           "TRANSSHIP",
		TruckTipo:           cargadomain.TipoTransferencia,
		Status:              string(cargadomain.StatusArrival),
		ExpectedArrivalDate: timePtr(baseTest.Add(2 * time.Hour)),
		Units:               300,
		Cartons:             25,
	})

	// carga avulsa no mesmo dia: fora do TransferIN
	f.seedCarga(t, &models.Carga{
		AppointmentID:       "APT-AVULSA",
		TruckType:           "OTHER",
		TruckTipo:           cargadomain.TipoCargaAvulsa,
		Status:              string(cargadomain.StatusArrival),
		ExpectedArrivalDate: timePtr(baseTest.Add(2 * time.Hour)),
		Units:               100,
	})

	// transferência de ontem: fora da janela local
	f.seedCarga(t, &models.Carga{
		AppointmentID:       "APT-ONTEM",
		TruckType:           "TRANSSHIP",
		TruckTipo:           cargadomain.TipoTransferencia,
		Status:              string(cargadomain.StatusClosed),
		ExpectedArrivalDate: timePtr(baseTest.Add(-24 * time.Hour)),
		Units:               100,
	})

	mudou, err := f.sync.Execute(ctx)
	require.NoError(t, err)
	assert.True(t, mudou)

	tr, err := f.transfers.FindByAppointmentID(ctx, "APT-T1")
	require.NoError(t, err)
	require.NotNil(t, tr.CargaID)
	assert.Equal(t, dentro.ID, *tr.CargaID)
	assert.Equal(t, string(cargadomain.StatusArrival), tr.StatusCarga)
	assert.Equal(t, 300, tr.Units)
	assert.Equal(t, 25, tr.Cartons)
	assert.False(t, tr.InfoPreenchida)

	_, err = f.transfers.FindByAppointmentID(ctx, "APT-AVULSA")
	assert.Error(t, err)
	_, err = f.transfers.FindByAppointmentID(ctx, "APT-ONTEM")
	assert.Error(t, err)
}

func TestSyncIdempotenteEEspelhaMudancas(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	c := f.seedCarga(t, &models.Carga{
		AppointmentID:       "APT-T2",
		TruckType:           "TRANSSHIP",
		TruckTipo:           cargadomain.TipoTransferencia,
		Status:              string(cargadomain.StatusArrivalScheduled),
		ExpectedArrivalDate: timePtr(baseTest.Add(time.Hour)),
		Units:               200,
	})

	mudou, err := f.sync.Execute(ctx)
	require.NoError(t, err)
	require.True(t, mudou)

	// segundo passe sem mudança na carga: nenhuma escrita
	mudou, err = f.sync.Execute(ctx)
	require.NoError(t, err)
	assert.False(t, mudou)

	// carga avançou de status e mudou de volume → o espelho acompanha
	c.Status = string(cargadomain.StatusCheckin)
	c.Units = 180
	require.NoError(t, f.gdb.Save(c).Error)

	mudou, err = f.sync.Execute(ctx)
	require.NoError(t, err)
	assert.True(t, mudou)

	tr, err := f.transfers.FindByAppointmentID(ctx, "APT-T2")
	require.NoError(t, err)
	assert.Equal(t, string(cargadomain.StatusCheckin), tr.StatusCarga)
	assert.Equal(t, 180, tr.Units)
}

// A transferência sobrevive à deleção da carga: o sync nunca apaga.
func TestSyncNaoRemoveProjecaoDeCargaDeletada(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	c := f.seedCarga(t, &models.Carga{
		AppointmentID:       "APT-T3",
		TruckType:           "TRANSSHIP",
		TruckTipo:           cargadomain.TipoTransferencia,
		Status:              string(cargadomain.StatusArrivalScheduled),
		ExpectedArrivalDate: timePtr(baseTest.Add(time.Hour)),
		Units:               50,
	})

	_, err := f.sync.Execute(ctx)
	require.NoError(t, err)

	c.Status = string(cargadomain.StatusDeleted)
	require.NoError(t, f.gdb.Save(c).Error)

	_, err = f.sync.Execute(ctx)
	require.NoError(t, err)

	tr, err := f.transfers.FindByAppointmentID(ctx, "APT-T3")
	require.NoError(t, err)
	assert.Equal(t, string(cargadomain.StatusDeleted), tr.StatusCarga)
}

package transferencia

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

var deadline = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func transferComDeadline() *models.Transferencia {
	d := deadline
	return &models.Transferencia{
		AppointmentID:    "APT-100",
		LateStowDeadline: &d,
		InfoPreenchida:   true,
	}
}

func TestUpdateDeadlineStateRatchet(t *testing.T) {
	tr := transferComDeadline()

	assert.False(t, UpdateDeadlineState(tr, deadline.Add(-time.Hour)))
	assert.False(t, tr.PrazoEstourado)

	assert.True(t, UpdateDeadlineState(tr, deadline.Add(10*time.Minute)))
	assert.True(t, tr.PrazoEstourado)
	assert.Equal(t, 600, tr.PrazoEstouradoSegundos)

	// relógio voltando não encolhe
	assert.False(t, UpdateDeadlineState(tr, deadline.Add(5*time.Minute)))
	assert.Equal(t, 600, tr.PrazoEstouradoSegundos)

	assert.True(t, UpdateDeadlineState(tr, deadline.Add(30*time.Minute)))
	assert.Equal(t, 1800, tr.PrazoEstouradoSegundos)
}

func TestUpdateDeadlineStateSemDeadline(t *testing.T) {
	tr := &models.Transferencia{AppointmentID: "APT-100"}
	assert.False(t, UpdateDeadlineState(tr, deadline.Add(48*time.Hour)))
	assert.False(t, tr.PrazoEstourado)
}

func TestFinalizadaCongelaOAtraso(t *testing.T) {
	// finalizou depois do prazo: estouro póstumo contra finished_at
	tr := transferComDeadline()
	fim := deadline.Add(20 * time.Minute)
	tr.Finalizada = true
	tr.FinishedAt = &fim

	assert.True(t, UpdateDeadlineState(tr, deadline.Add(3*time.Hour)))
	assert.Equal(t, 1200, tr.PrazoEstouradoSegundos)

	// relógio vivo não avança mais depois de congelado
	assert.False(t, UpdateDeadlineState(tr, deadline.Add(6*time.Hour)))
	assert.Equal(t, 1200, tr.PrazoEstouradoSegundos)
}

func TestFinalizadaNoPrazoNaoEstoura(t *testing.T) {
	tr := transferComDeadline()
	fim := deadline.Add(-time.Minute)
	tr.Finalizada = true
	tr.FinishedAt = &fim

	assert.False(t, UpdateDeadlineState(tr, deadline.Add(48*time.Hour)))
	assert.False(t, tr.PrazoEstourado)
}

func TestDeadlineCountdown(t *testing.T) {
	tr := transferComDeadline()

	cd := DeadlineCountdown(tr, deadline.Add(-30*time.Minute))
	require.NotNil(t, cd)
	assert.Equal(t, 1800, *cd)

	cd = DeadlineCountdown(tr, deadline.Add(10*time.Minute))
	require.NotNil(t, cd)
	assert.Equal(t, -600, *cd)

	tr.Finalizada = true
	assert.Nil(t, DeadlineCountdown(tr, deadline))

	assert.Nil(t, DeadlineCountdown(&models.Transferencia{}, deadline))
}

func TestCardStatusOrdemDeSobrescrita(t *testing.T) {
	tr := &models.Transferencia{}
	assert.Equal(t, CardPendente, CardStatus(tr))

	tr.InfoPreenchida = true
	assert.Equal(t, CardPreenchida, CardStatus(tr))

	tr.PrazoEstourado = true
	assert.Equal(t, CardAtrasada, CardStatus(tr))

	tr.Finalizada = true
	assert.Equal(t, CardFinalizada, CardStatus(tr))
}

func TestFillInfo(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	now := deadline.Add(-6 * time.Hour)

	t.Run("vrid obrigatório", func(t *testing.T) {
		tr := &models.Transferencia{}
		err := FillInfo(tr, "GRU9", " ", "2026-03-10T15:00", loc, now)
		assert.True(t, httperr.IsKind(err, httperr.KindMissingInput))
	})

	t.Run("origem fora da lista", func(t *testing.T) {
		tr := &models.Transferencia{}
		err := FillInfo(tr, "ZZZ9", "VR123", "2026-03-10T15:00", loc, now)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})

	t.Run("deadline ilegível", func(t *testing.T) {
		tr := &models.Transferencia{}
		err := FillInfo(tr, "GRU9", "VR123", "10/03/2026 15:00", loc, now)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})

	t.Run("datetime-local vira UTC", func(t *testing.T) {
		tr := &models.Transferencia{}
		require.NoError(t, FillInfo(tr, " gru9 ", "VR123", "2026-03-10T15:00", loc, now))

		assert.True(t, tr.InfoPreenchida)
		require.NotNil(t, tr.Origem)
		assert.Equal(t, "GRU9", *tr.Origem)
		require.NotNil(t, tr.VRID)
		assert.Equal(t, "VR123", *tr.VRID)
		require.NotNil(t, tr.LateStowDeadline)
		// 15:00 em São Paulo (UTC-3) = 18:00 UTC
		assert.Equal(t, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), tr.LateStowDeadline.UTC())
	})

	t.Run("preencher com deadline já vencido registra estouro na hora", func(t *testing.T) {
		tr := &models.Transferencia{}
		late := deadline.Add(time.Hour)
		require.NoError(t, FillInfo(tr, "POA1", "VR999", "2026-03-10T15:00", loc, late))
		assert.True(t, tr.PrazoEstourado)
		assert.Equal(t, 3600, tr.PrazoEstouradoSegundos)
	})
}

func TestFinalize(t *testing.T) {
	tr := transferComDeadline()
	now := deadline.Add(15 * time.Minute)

	require.NoError(t, Finalize(tr, now))
	assert.True(t, tr.Finalizada)
	require.NotNil(t, tr.FinishedAt)
	assert.Equal(t, now, *tr.FinishedAt)
	assert.True(t, tr.PrazoEstourado)
	assert.Equal(t, 900, tr.PrazoEstouradoSegundos)

	err := Finalize(tr, now.Add(time.Minute))
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
}

func TestCommentSoComPrazoEstourado(t *testing.T) {
	tr := transferComDeadline()

	err := Comment(tr, "faltou equipe", deadline.Add(-time.Hour))
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))

	err = Comment(tr, "  ", deadline.Add(time.Hour))
	assert.True(t, httperr.IsKind(err, httperr.KindMissingInput))

	// o próprio comentário dispara a avaliação do prazo
	require.NoError(t, Comment(tr, "faltou equipe", deadline.Add(10*time.Minute)))
	assert.True(t, tr.PrazoEstourado)
	require.NotNil(t, tr.ComentarioLateStow)
	assert.Equal(t, "faltou equipe", *tr.ComentarioLateStow)
	require.NotNil(t, tr.ComentarioLateStowEm)
}

func TestMirrorIdempotente(t *testing.T) {
	expected := deadline.Add(-8 * time.Hour)
	c := &models.Carga{
		AppointmentID:       "APT-100",
		Status:              "arrival",
		ExpectedArrivalDate: &expected,
		Units:               500,
		Cartons:             40,
	}
	c.ID = 7

	tr := &models.Transferencia{AppointmentID: "APT-100"}

	assert.True(t, Mirror(tr, c))
	require.NotNil(t, tr.CargaID)
	assert.Equal(t, uint(7), *tr.CargaID)
	assert.Equal(t, "arrival", tr.StatusCarga)
	assert.Equal(t, 500, tr.Units)
	assert.Equal(t, 40, tr.Cartons)
	require.NotNil(t, tr.ExpectedArrivalDate)
	assert.True(t, tr.ExpectedArrivalDate.Equal(expected))

	// segundo passe sem mudança na carga não gera escrita
	assert.False(t, Mirror(tr, c))

	c.Status = "checkin"
	c.Units = 480
	assert.True(t, Mirror(tr, c))
	assert.Equal(t, "checkin", tr.StatusCarga)
	assert.Equal(t, 480, tr.Units)
}

package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/doca-panel/internal/config"
	dbpkg "github.com/BruksfildServices01/doca-panel/internal/db"
	"github.com/BruksfildServices01/doca-panel/internal/dto"
	"github.com/BruksfildServices01/doca-panel/internal/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))

	cfg := &config.Config{Timezone: "America/Sao_Paulo"}

	r := gin.New()
	RegisterRoutes(r, gdb, cfg, nil, zap.NewNop())
	return r, gdb
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadEPainelFluxoHTTP(t *testing.T) {
	r, gdb := newTestRouter(t)

	expected := time.Now().UTC().Add(6 * time.Hour).Format(time.RFC3339)
	w := doJSON(t, r, http.MethodPost, "/upload/processar", gin.H{
		"linhas": []dto.LinhaImportacao{
			{AppointmentID: "APT-HTTP-1", TruckType: "OTHER", ExpectedArrivalDate: expected, Units: 120},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resultado dto.ResultadoImportacaoDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resultado))
	assert.Equal(t, 1, resultado.Inseridas)
	assert.NotEmpty(t, resultado.BatchID)

	w = doJSON(t, r, http.MethodGet, "/pc/listar", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var lista []dto.CargaListDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	require.Len(t, lista, 1)
	assert.Equal(t, "APT-HTTP-1", lista[0].AppointmentID)

	var c models.Carga
	require.NoError(t, gdb.Where("appointment_id = ?", "APT-HTTP-1").First(&c).Error)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/pc/carga-chegou/%d", c.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// clique repetido: conflito, não sobrescrita
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/pc/carga-chegou/%d", c.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/pc/checkin/%d", c.ID), gin.H{"aa_responsavel": "jsilva"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/pc/finalizar/%d", c.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, gdb.First(&c, c.ID).Error)
	assert.Equal(t, "closed", c.Status)
	require.NotNil(t, c.TempoTotalSegundos)
}

func TestPainelValidacoesHTTP(t *testing.T) {
	r, gdb := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/upload/processar", gin.H{"linhas": []dto.LinhaImportacao{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/pc/carga-chegou/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/pc/carga-chegou/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// checkin sem login
	expected := time.Now().UTC().Add(time.Hour)
	carga := models.Carga{
		AppointmentID:       "APT-VAL",
		Status:              "arrival_scheduled",
		ExpectedArrivalDate: &expected,
		Units:               10,
	}
	require.NoError(t, gdb.Create(&carga).Error)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/pc/checkin/%d", carga.ID), gin.H{"aa_responsavel": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransferinEDashboardHTTP(t *testing.T) {
	r, gdb := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/transferin/listar", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var transfers []dto.TransferenciaListDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transfers))
	assert.Empty(t, transfers)

	// dashboard sem range abre zerado, nunca 4xx
	w = doJSON(t, r, http.MethodGet, "/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats dto.DashboardStatsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Zero(t, stats.TotalNotasFechadas)
	assert.NotNil(t, stats.PorLogin)

	// com range, agrega o que tem no banco
	fim := time.Now().UTC()
	login := "jsilva"
	tempo := 3600
	require.NoError(t, gdb.Create(&models.Carga{
		AppointmentID:      "APT-DASH",
		Status:             "closed",
		Units:              90,
		AAResponsavel:      &login,
		EndTime:            &fim,
		TempoTotalSegundos: &tempo,
		CreatedAt:          fim.Add(-2 * time.Hour),
	}).Error)

	dia := fim.Format("2006-01-02")
	w = doJSON(t, r, http.MethodGet, "/dashboard/stats?dataInicio="+dia+"&dataFim="+dia, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalNotasFechadas)
	assert.Equal(t, 90, stats.TotalUnits)
}

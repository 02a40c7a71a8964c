package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/doca-panel/internal/dto"
	"github.com/BruksfildServices01/doca-panel/internal/httpresp"
	ucDashboard "github.com/BruksfildServices01/doca-panel/internal/usecase/dashboard"
)

// ======================================================
// HANDLER — DASHBOARD (/dashboard)
// ======================================================

type DashboardHandler struct {
	statsUC *ucDashboard.Stats
	log     *zap.Logger
}

func NewDashboardHandler(
	statsUC *ucDashboard.Stats,
	log *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		statsUC: statsUC,
		log:     log,
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	dataInicio := c.Query("dataInicio")
	dataFim := c.Query("dataFim")

	// Range ausente devolve o shape zerado, não erro (o front abre o
	// dashboard antes de escolher datas).
	if dataInicio == "" || dataFim == "" {
		httpresp.OK(c, dto.EmptyDashboardStats())
		return
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), dataInicio, dataFim)
	if err != nil {
		h.log.Error("erro em /dashboard/stats", zap.Error(err))
		httpresp.OK(c, dto.EmptyDashboardStats())
		return
	}

	httpresp.OK(c, stats)
}

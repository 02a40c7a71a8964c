package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/doca-panel/internal/audit"
	"github.com/BruksfildServices01/doca-panel/internal/cache"
	"github.com/BruksfildServices01/doca-panel/internal/clock"
	"github.com/BruksfildServices01/doca-panel/internal/config"
	"github.com/BruksfildServices01/doca-panel/internal/handlers"
	infraRepo "github.com/BruksfildServices01/doca-panel/internal/infra/repository"
	ucCarga "github.com/BruksfildServices01/doca-panel/internal/usecase/carga"
	ucDashboard "github.com/BruksfildServices01/doca-panel/internal/usecase/dashboard"
	ucTransfer "github.com/BruksfildServices01/doca-panel/internal/usecase/transferencia"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	statsCache cache.Cache,
	log *zap.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clk := clock.System()

	cargaRepo := infraRepo.NewCargaGormRepository(db)
	transferRepo := infraRepo.NewTransferenciaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — CARGAS
	// ======================================================
	ingestUC := ucCarga.NewIngestCargas(cargaRepo, clk, auditDispatcher, log)
	listCargasUC := ucCarga.NewListCargas(cargaRepo, clk, log)
	arriveUC := ucCarga.NewArriveCarga(cargaRepo, clk, auditDispatcher)
	checkinUC := ucCarga.NewCheckinCarga(cargaRepo, clk, auditDispatcher)
	closeUC := ucCarga.NewCloseCarga(cargaRepo, clk, auditDispatcher)
	deleteUC := ucCarga.NewDeleteCarga(cargaRepo, clk, auditDispatcher)
	commentCargaUC := ucCarga.NewCommentCarga(cargaRepo, clk, auditDispatcher, log)

	// ======================================================
	// 🧠 USE CASES — TRANSFER IN
	// ======================================================
	syncUC := ucTransfer.NewSyncTransferencias(cargaRepo, transferRepo, clk, cfg.Timezone, log)
	listTransferUC := ucTransfer.NewListTransferencias(syncUC, transferRepo, clk, log)
	fillUC := ucTransfer.NewFillTransferInfo(transferRepo, cargaRepo, clk, cfg.Timezone, auditDispatcher)
	finalizeUC := ucTransfer.NewFinalizeTransferencia(transferRepo, clk, auditDispatcher)
	commentTransferUC := ucTransfer.NewCommentTransferencia(transferRepo, clk, auditDispatcher)

	// ======================================================
	// 🧠 USE CASES — DASHBOARD
	// ======================================================
	statsUC := ucDashboard.NewStats(cargaRepo, transferRepo, statsCache, log)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	painelHandler := handlers.NewPainelHandler(
		listCargasUC,
		arriveUC,
		checkinUC,
		closeUC,
		deleteUC,
		commentCargaUC,
		log,
	)

	transferinHandler := handlers.NewTransferinHandler(
		listTransferUC,
		fillUC,
		finalizeUC,
		commentTransferUC,
		log,
	)

	dashboardHandler := handlers.NewDashboardHandler(statsUC, log)
	uploadHandler := handlers.NewUploadHandler(ingestUC)

	// ======================================================
	// 🌐 ROTAS
	// ======================================================
	upload := r.Group("/upload")
	{
		upload.POST("/processar", uploadHandler.Processar)
	}

	pc := r.Group("/pc")
	{
		pc.GET("/listar", painelHandler.Listar)
		pc.POST("/carga-chegou/:id", painelHandler.CargaChegou)
		pc.POST("/checkin/:id", painelHandler.Checkin)
		pc.POST("/finalizar/:id", painelHandler.Finalizar)
		pc.POST("/deletar/:id", painelHandler.Deletar)
		pc.POST("/comentar/:id", painelHandler.Comentar)
	}

	transferin := r.Group("/transferin")
	{
		transferin.GET("/listar", transferinHandler.Listar)
		transferin.POST("/atualizar/:id", transferinHandler.Atualizar)
		transferin.POST("/finalizar/:id", transferinHandler.Finalizar)
		transferin.POST("/comentar/:id", transferinHandler.Comentar)
	}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
	}
}

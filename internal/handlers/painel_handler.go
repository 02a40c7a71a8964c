package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/doca-panel/internal/dto"
	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/httpresp"
	ucCarga "github.com/BruksfildServices01/doca-panel/internal/usecase/carga"
)

// ======================================================
// HANDLER — PAINEL DE CARGAS (/pc)
// ======================================================

type PainelHandler struct {
	listUC    *ucCarga.ListCargas
	arriveUC  *ucCarga.ArriveCarga
	checkinUC *ucCarga.CheckinCarga
	closeUC   *ucCarga.CloseCarga
	deleteUC  *ucCarga.DeleteCarga
	commentUC *ucCarga.CommentCarga
	log       *zap.Logger
}

func NewPainelHandler(
	listUC *ucCarga.ListCargas,
	arriveUC *ucCarga.ArriveCarga,
	checkinUC *ucCarga.CheckinCarga,
	closeUC *ucCarga.CloseCarga,
	deleteUC *ucCarga.DeleteCarga,
	commentUC *ucCarga.CommentCarga,
	log *zap.Logger,
) *PainelHandler {
	return &PainelHandler{
		listUC:    listUC,
		arriveUC:  arriveUC,
		checkinUC: checkinUC,
		closeUC:   closeUC,
		deleteUC:  deleteUC,
		commentUC: commentUC,
		log:       log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckinRequest struct {
	AAResponsavel string `json:"aa_responsavel"`
}

type DeletarRequest struct {
	Motivo string `json:"motivo"`
}

type ComentarRequest struct {
	Comentario string `json:"comentario"`
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LISTAR
// ======================================================

func (h *PainelHandler) Listar(c *gin.Context) {
	lista, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		// leitura nunca estoura erro no painel
		h.log.Error("erro em /pc/listar", zap.Error(err))
		httpresp.EmptyList[dto.CargaListDTO](c)
		return
	}

	httpresp.OK(c, lista)
}

// ======================================================
// CARGA CHEGOU
// ======================================================

func (h *PainelHandler) CargaChegou(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.arriveUC.Execute(c.Request.Context(), id); err != nil {
		httperr.FromDomain(c, err, "Carga não está em ARRIVAL_SCHEDULED.")
		return
	}

	httpresp.Message(c, "Status atualizado para ARRIVAL e SLA de 4h iniciado.")
}

// ======================================================
// CHECKIN
// ======================================================

func (h *PainelHandler) Checkin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CheckinRequest
	_ = c.ShouldBindJSON(&req)

	if _, err := h.checkinUC.Execute(c.Request.Context(), id, req.AAResponsavel); err != nil {
		httperr.FromDomain(c, err, "Não foi possível realizar o checkin.")
		return
	}

	httpresp.Message(c, "Checkin realizado")
}

// ======================================================
// FINALIZAR
// ======================================================

func (h *PainelHandler) Finalizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.closeUC.Execute(c.Request.Context(), id); err != nil {
		httperr.FromDomain(c, err, "Não foi possível finalizar a carga.")
		return
	}

	httpresp.Message(c, "Carga finalizada")
}

// ======================================================
// DELETAR (soft)
// ======================================================

func (h *PainelHandler) Deletar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeletarRequest
	_ = c.ShouldBindJSON(&req)

	if _, err := h.deleteUC.Execute(c.Request.Context(), id, req.Motivo); err != nil {
		httperr.FromDomain(c, err, "Não foi possível deletar a carga.")
		return
	}

	httpresp.Message(c, "Carga marcada como deletada")
}

// ======================================================
// COMENTAR ATRASO
// ======================================================

func (h *PainelHandler) Comentar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ComentarRequest
	_ = c.ShouldBindJSON(&req)

	if _, err := h.commentUC.Execute(c.Request.Context(), id, req.Comentario); err != nil {
		httperr.FromDomain(c, err, "Comentário permitido apenas para carga atrasada.")
		return
	}

	httpresp.Message(c, "Comentário salvo")
}

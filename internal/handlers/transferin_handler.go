package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/doca-panel/internal/dto"
	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/httpresp"
	ucTransfer "github.com/BruksfildServices01/doca-panel/internal/usecase/transferencia"
)

// ======================================================
// HANDLER — TRANSFER IN (/transferin)
// ======================================================

type TransferinHandler struct {
	listUC     *ucTransfer.ListTransferencias
	fillUC     *ucTransfer.FillTransferInfo
	finalizeUC *ucTransfer.FinalizeTransferencia
	commentUC  *ucTransfer.CommentTransferencia
	log        *zap.Logger
}

func NewTransferinHandler(
	listUC *ucTransfer.ListTransferencias,
	fillUC *ucTransfer.FillTransferInfo,
	finalizeUC *ucTransfer.FinalizeTransferencia,
	commentUC *ucTransfer.CommentTransferencia,
	log *zap.Logger,
) *TransferinHandler {
	return &TransferinHandler{
		listUC:     listUC,
		fillUC:     fillUC,
		finalizeUC: finalizeUC,
		commentUC:  commentUC,
		log:        log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AtualizarTransferenciaRequest struct {
	AppointmentID    string `json:"appointment_id"`
	VRID             string `json:"vrid"`
	Origem           string `json:"origem"`
	LateStowDeadline string `json:"late_stow_deadline"`
}

// ======================================================
// LISTAR
// ======================================================

func (h *TransferinHandler) Listar(c *gin.Context) {
	filter := ucTransfer.ListFilter{
		Appointment: c.Query("appointment"),
		Origem:      c.Query("origem"),
		StatusCard:  c.Query("status"),
	}

	lista, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("erro em /transferin/listar", zap.Error(err))
		httpresp.EmptyList[dto.TransferenciaListDTO](c)
		return
	}

	httpresp.OK(c, lista)
}

// ======================================================
// ATUALIZAR (preencher info)
// ======================================================

func (h *TransferinHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AtualizarTransferenciaRequest
	_ = c.ShouldBindJSON(&req)

	_, err := h.fillUC.Execute(
		c.Request.Context(),
		id,
		req.AppointmentID,
		req.Origem,
		req.VRID,
		req.LateStowDeadline,
	)
	if err != nil {
		httperr.FromDomain(c, err, "Não foi possível atualizar a transferência.")
		return
	}

	httpresp.Message(c, "Informações da transferência atualizadas")
}

// ======================================================
// FINALIZAR
// ======================================================

func (h *TransferinHandler) Finalizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.finalizeUC.Execute(c.Request.Context(), id); err != nil {
		httperr.FromDomain(c, err, "Não foi possível finalizar a transferência.")
		return
	}

	httpresp.Message(c, "Transferência finalizada")
}

// ======================================================
// COMENTAR
// ======================================================

func (h *TransferinHandler) Comentar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ComentarRequest
	_ = c.ShouldBindJSON(&req)

	if _, err := h.commentUC.Execute(c.Request.Context(), id, req.Comentario); err != nil {
		httperr.FromDomain(c, err, "Comentário permitido apenas para transferência vencida.")
		return
	}

	httpresp.Message(c, "Comentário salvo")
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/doca-panel/internal/dto"
	"github.com/BruksfildServices01/doca-panel/internal/httperr"
	"github.com/BruksfildServices01/doca-panel/internal/httpresp"
	ucCarga "github.com/BruksfildServices01/doca-panel/internal/usecase/carga"
)

// ======================================================
// HANDLER — UPLOAD (/upload)
// ======================================================

type UploadHandler struct {
	ingestUC *ucCarga.IngestCargas
}

func NewUploadHandler(ingestUC *ucCarga.IngestCargas) *UploadHandler {
	return &UploadHandler{ingestUC: ingestUC}
}

type ProcessarRequest struct {
	Linhas []dto.LinhaImportacao `json:"linhas"`
}

func (h *UploadHandler) Processar(c *gin.Context) {
	var req ProcessarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nenhuma linha enviada.")
		return
	}

	if len(req.Linhas) == 0 {
		httperr.BadRequest(c, "empty_upload", "Nenhuma linha enviada.")
		return
	}

	resultado, err := h.ingestUC.Execute(c.Request.Context(), req.Linhas)
	if err != nil {
		httperr.FromDomain(c, err, "Erro ao processar a planilha.")
		return
	}

	httpresp.OK(c, resultado)
}

package handler

import (
	"net/http"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// Solicitar enfileira a geração assíncrona da planilha de pedidos.
// A resposta 202 devolve o job e o nome do arquivo que será gravado.
func (h *RelatoriosHandler) Solicitar(c *gin.Context) {
	var req dto.SolicitarRelatorioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Solicitar(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

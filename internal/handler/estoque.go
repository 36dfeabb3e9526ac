package handler

import (
	"net/http"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/middleware"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type EstoqueHandler struct{ svc service.EstoqueService }

func NewEstoqueHandler(svc service.EstoqueService) *EstoqueHandler {
	return &EstoqueHandler{svc: svc}
}

// RegistrarPerda dá baixa manual no estoque com motivo auditável.
func (h *EstoqueHandler) RegistrarPerda(c *gin.Context) {
	var req dto.BaixaEstoqueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.UsuarioID == "" {
		req.UsuarioID = middleware.GetClaims(c).UserID
	}
	resp, err := h.svc.RegistrarPerda(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EstoqueHandler) ListarPerdas(c *gin.Context) {
	filter := dto.PerdaFilter{
		ProdutoID:  c.Query("produto_id"),
		DataInicio: c.Query("data_inicio"),
		DataFim:    c.Query("data_fim"),
		Page:       parsePage(c),
		Limit:      parseLimit(c),
	}
	resp, err := h.svc.ListarPerdas(c.Request.Context(), filter)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

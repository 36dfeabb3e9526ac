package handler

import (
	"net/http"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanceiroHandler struct{ svc service.FinanceiroService }

func NewFinanceiroHandler(svc service.FinanceiroService) *FinanceiroHandler {
	return &FinanceiroHandler{svc: svc}
}

// ─── Categorias ──────────────────────────────────────────────────────────────

func (h *FinanceiroHandler) CriarCategoria(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarCategoria(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FinanceiroHandler) ListarCategorias(c *gin.Context) {
	resp, err := h.svc.ListarCategorias(c.Request.Context(), c.Query("tipo"))
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FinanceiroHandler) AtualizarCategoria(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarCategoria(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FinanceiroHandler) RemoverCategoria(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.RemoverCategoria(c.Request.Context(), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ─── Contas a pagar ──────────────────────────────────────────────────────────

func (h *FinanceiroHandler) CriarContaPagar(c *gin.Context) {
	var req dto.CriarContaPagarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarContaPagar(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FinanceiroHandler) ListarContasPagar(c *gin.Context) {
	resp, err := h.svc.ListarContasPagar(c.Request.Context(), contaFilter(c))
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FinanceiroHandler) AtualizarContaPagar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarContaPagarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarContaPagar(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FinanceiroHandler) RemoverContaPagar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.RemoverContaPagar(c.Request.Context(), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PagarConta dá baixa na conta; pagamento em DINHEIRO gera sangria no caixa
// aberto do operador quando houver.
func (h *FinanceiroHandler) PagarConta(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.PagarContaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PagarConta(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ─── Contas a receber ────────────────────────────────────────────────────────

func (h *FinanceiroHandler) CriarContaReceber(c *gin.Context) {
	var req dto.CriarContaReceberRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarContaReceber(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FinanceiroHandler) ListarContasReceber(c *gin.Context) {
	resp, err := h.svc.ListarContasReceber(c.Request.Context(), contaFilter(c))
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FinanceiroHandler) AtualizarContaReceber(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarContaReceberRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarContaReceber(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FinanceiroHandler) RemoverContaReceber(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.RemoverContaReceber(c.Request.Context(), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FinanceiroHandler) ReceberConta(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ReceberContaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ReceberConta(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ─── Dashboard ───────────────────────────────────────────────────────────────

func (h *FinanceiroHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func contaFilter(c *gin.Context) dto.ContaFilter {
	filter := dto.ContaFilter{
		Status:      c.Query("status"),
		CategoriaID: c.Query("categoria_id"),
		Origem:      c.Query("origem"),
	}
	if v := c.Query("data_inicio"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.DataInicio = &t
		}
	}
	if v := c.Query("data_fim"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.DataFim = &t
		}
	}
	return filter
}

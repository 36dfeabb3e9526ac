package handler

import (
	"net/http"
	"strconv"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/middleware"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type HospedesHandler struct{ svc service.HospedeService }

func NewHospedesHandler(svc service.HospedeService) *HospedesHandler {
	return &HospedesHandler{svc: svc}
}

// CheckIn cria o hóspede, vincula a pulseira e, quando informado, lança o
// pedido de entrada e o pagamento na mesma transação.
func (h *HospedesHandler) CheckIn(c *gin.Context) {
	var req dto.CheckinRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.UsuarioID == "" {
		req.UsuarioID = middleware.GetClaims(c).UserID
	}
	resp, err := h.svc.CheckIn(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Checkout quita a dívida, desvincula a pulseira e libera o quarto quando o
// hóspede é o último ocupante.
func (h *HospedesHandler) Checkout(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.UsuarioID == "" {
		req.UsuarioID = middleware.GetClaims(c).UserID
	}
	resp, err := h.svc.Checkout(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HospedesHandler) Listar(c *gin.Context) {
	filter := dto.HospedeFilter{
		Tipo:  c.Query("tipo"),
		Busca: c.Query("busca"),
		Page:  parsePage(c),
		Limit: parseLimit(c),
	}
	if v := c.Query("ativo"); v != "" {
		ativo := v == "true"
		filter.Ativo = &ativo
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HospedesHandler) BuscarPorID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorPulseira resolve o hóspede ativo pela pulseira NFC.
func (h *HospedesHandler) BuscarPorPulseira(c *gin.Context) {
	uid := c.Param("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "UID da pulseira é obrigatório"})
		return
	}
	resp, err := h.svc.BuscarPorPulseira(c.Request.Context(), uid)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HospedesHandler) Atualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarHospedeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ZerarDivida é o override administrativo que zera a dívida sem pagamento.
func (h *HospedesHandler) ZerarDivida(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ZerarDivida(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desativar encerra o hóspede sem checkout, para correções administrativas.
func (h *HospedesHandler) Desativar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Desativar(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HospedesHandler) ListarPagamentos(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	pagamentos, err := h.svc.ListarPagamentos(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pagamentos})
}

func parsePage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}

func parseLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return limit
}

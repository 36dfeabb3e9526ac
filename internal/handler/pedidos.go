package handler

import (
	"net/http"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/middleware"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Criar lança um lote de pedidos em uma transação: débito do hóspede, baixa
// de estoque e expansão por unidade acontecem juntos ou nada acontece.
func (h *PedidosHandler) Criar(c *gin.Context) {
	var req dto.CriarPedidosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.UsuarioID == "" {
		req.UsuarioID = middleware.GetClaims(c).UserID
	}
	resp, err := h.svc.CriarPedidos(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	filter := dto.PedidoFilter{
		Status:    c.Query("status"),
		HospedeID: c.Query("hospede_id"),
		Metodo:    c.Query("metodo"),
		UsuarioID: c.Query("usuario_id"),
		Busca:     c.Query("busca"),
		Recente:   c.Query("recente") == "true",
		Page:      parsePage(c),
		Limit:     parseLimit(c),
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) BuscarPorID(c *gin.Context) {
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

// AtualizarStatus move o pedido no fluxo da cozinha. Cancelamento não passa
// por aqui: exige o endpoint autorizado.
func (h *PedidosHandler) AtualizarStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarStatusPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarStatus(c.Request.Context(), id, model.StatusPedido(req.Status))
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancelar estorna o pedido com autorização de gerente: devolve estoque e
// abate a dívida do hóspede.
func (h *PedidosHandler) Cancelar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CancelarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cancelar(c.Request.Context(), id, req.GerentePin)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

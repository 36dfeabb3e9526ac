package handler

import (
	"net/http"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/middleware"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CaixaHandler struct{ svc service.CaixaService }

func NewCaixaHandler(svc service.CaixaService) *CaixaHandler { return &CaixaHandler{svc: svc} }

func operadorID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "ID de usuário inválido no token"})
		return uuid.Nil, false
	}
	return id, true
}

// Abrir inicia a sessão de caixa do operador autenticado.
func (h *CaixaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID, ok := operadorID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Fechar encerra a sessão e devolve a quebra de caixa.
func (h *CaixaHandler) Fechar(c *gin.Context) {
	var req dto.FecharCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID, ok := operadorID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Fechar(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CaixaHandler) Sangria(c *gin.Context) {
	var req dto.SangriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID, ok := operadorID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Sangria(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CaixaHandler) Suprimento(c *gin.Context) {
	var req dto.SuprimentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID, ok := operadorID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Suprimento(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Status devolve a sessão aberta do operador com resumo e últimos lançamentos.
func (h *CaixaHandler) Status(c *gin.Context) {
	usuarioID, ok := operadorID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Status(c.Request.Context(), usuarioID)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/repository"
	"github.com/jeffersonaandrade/pousada-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type FinanceiroService interface {
	CriarCategoria(ctx context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	ListarCategorias(ctx context.Context, tipo string) ([]dto.CategoriaResponse, error)
	AtualizarCategoria(ctx context.Context, id uuid.UUID, req dto.AtualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	RemoverCategoria(ctx context.Context, id uuid.UUID) error

	CriarContaPagar(ctx context.Context, req dto.CriarContaPagarRequest) (*dto.ContaPagarResponse, error)
	ListarContasPagar(ctx context.Context, filter dto.ContaFilter) ([]dto.ContaPagarResponse, error)
	AtualizarContaPagar(ctx context.Context, id uuid.UUID, req dto.AtualizarContaPagarRequest) (*dto.ContaPagarResponse, error)
	RemoverContaPagar(ctx context.Context, id uuid.UUID) error
	// PagarConta dá baixa definitiva. DINHEIRO com operador informado também
	// registra uma sangria no caixa aberto (soft-fail, apenas logado).
	PagarConta(ctx context.Context, id uuid.UUID, req dto.PagarContaRequest) (*dto.ContaPagarResponse, error)

	CriarContaReceber(ctx context.Context, req dto.CriarContaReceberRequest) (*dto.ContaReceberResponse, error)
	ListarContasReceber(ctx context.Context, filter dto.ContaFilter) ([]dto.ContaReceberResponse, error)
	AtualizarContaReceber(ctx context.Context, id uuid.UUID, req dto.AtualizarContaReceberRequest) (*dto.ContaReceberResponse, error)
	RemoverContaReceber(ctx context.Context, id uuid.UUID) error
	ReceberConta(ctx context.Context, id uuid.UUID, req dto.ReceberContaRequest) (*dto.ContaReceberResponse, error)

	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type financeiroService struct {
	repo  repository.FinanceiroRepository
	caixa CaixaService
}

func NewFinanceiroService(repo repository.FinanceiroRepository, caixa CaixaService) FinanceiroService {
	return &financeiroService{repo: repo, caixa: caixa}
}

// ── Categorias ────────────────────────────────────────────────────────────────

func (s *financeiroService) CriarCategoria(ctx context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	tipo := model.TipoCategoria(req.Tipo)
	if !tipo.Valid() {
		return nil, apperr.Validation("tipo de categoria inválido")
	}
	c := &model.CategoriaFinanceira{Nome: req.Nome, Tipo: tipo}
	if err := s.repo.CreateCategoria(ctx, c); err != nil {
		return nil, apperr.Internal("falha ao criar categoria", err)
	}
	return categoriaToResponse(c), nil
}

func (s *financeiroService) ListarCategorias(ctx context.Context, tipo string) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.ListCategorias(ctx, model.TipoCategoria(tipo))
	if err != nil {
		return nil, apperr.Internal("falha ao listar categorias", err)
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		out = append(out, *categoriaToResponse(&categorias[i]))
	}
	return out, nil
}

func (s *financeiroService) AtualizarCategoria(ctx context.Context, id uuid.UUID, req dto.AtualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindCategoriaByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("categoria")
	}
	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Tipo != nil {
		tipo := model.TipoCategoria(*req.Tipo)
		if !tipo.Valid() {
			return nil, apperr.Validation("tipo de categoria inválido")
		}
		if tipo != c.Tipo {
			// Mudar o tipo de uma categoria em uso desalinharia as contas.
			vinculadas, err := s.repo.CountContasPorCategoria(ctx, id)
			if err != nil {
				return nil, apperr.Internal("falha ao verificar contas da categoria", err)
			}
			if vinculadas > 0 {
				return nil, apperr.Business("categoria possui contas vinculadas; o tipo não pode mudar")
			}
			c.Tipo = tipo
		}
	}
	if err := s.repo.UpdateCategoria(ctx, c); err != nil {
		return nil, apperr.Internal("falha ao atualizar categoria", err)
	}
	return categoriaToResponse(c), nil
}

func (s *financeiroService) RemoverCategoria(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindCategoriaByID(ctx, id); err != nil {
		return apperr.NotFound("categoria")
	}
	vinculadas, err := s.repo.CountContasPorCategoria(ctx, id)
	if err != nil {
		return apperr.Internal("falha ao verificar contas da categoria", err)
	}
	if vinculadas > 0 {
		return apperr.Business(fmt.Sprintf(
			"categoria possui %d conta(s) vinculada(s) e não pode ser removida", vinculadas))
	}
	if err := s.repo.DeleteCategoria(ctx, id); err != nil {
		return apperr.Internal("falha ao remover categoria", err)
	}
	return nil
}

// ── Contas a pagar ────────────────────────────────────────────────────────────

func (s *financeiroService) CriarContaPagar(ctx context.Context, req dto.CriarContaPagarRequest) (*dto.ContaPagarResponse, error) {
	categoria, err := s.validarCategoria(ctx, req.CategoriaID, model.CategoriaDespesa)
	if err != nil {
		return nil, err
	}
	c := &model.ContaPagar{
		Descricao:      req.Descricao,
		Valor:          req.Valor,
		DataVencimento: req.DataVencimento,
		CategoriaID:    categoria.ID,
		Fornecedor:     req.Fornecedor,
		Observacao:     req.Observacao,
		Status:         derivarStatusConta(req.DataVencimento),
	}
	if err := s.repo.CreateContaPagar(ctx, c); err != nil {
		return nil, apperr.Internal("falha ao criar conta a pagar", err)
	}
	c.Categoria = categoria
	return contaPagarToResponse(c), nil
}

func (s *financeiroService) ListarContasPagar(ctx context.Context, filter dto.ContaFilter) ([]dto.ContaPagarResponse, error) {
	s.promoverVencidas(ctx)
	contas, err := s.repo.ListContasPagar(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("falha ao listar contas a pagar", err)
	}
	out := make([]dto.ContaPagarResponse, 0, len(contas))
	for i := range contas {
		out = append(out, *contaPagarToResponse(&contas[i]))
	}
	return out, nil
}

func (s *financeiroService) AtualizarContaPagar(ctx context.Context, id uuid.UUID, req dto.AtualizarContaPagarRequest) (*dto.ContaPagarResponse, error) {
	c, err := s.repo.FindContaPagarByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("conta a pagar")
	}
	if c.Status == model.ContaPaga {
		return nil, apperr.Business("conta paga não pode ser editada")
	}
	if req.Descricao != nil {
		c.Descricao = *req.Descricao
	}
	if req.Valor != nil {
		if !req.Valor.IsPositive() {
			return nil, apperr.Validation("valor deve ser maior que zero")
		}
		c.Valor = *req.Valor
	}
	if req.DataVencimento != nil {
		c.DataVencimento = *req.DataVencimento
		c.Status = derivarStatusConta(*req.DataVencimento)
	}
	if req.CategoriaID != nil {
		categoria, err := s.validarCategoria(ctx, *req.CategoriaID, model.CategoriaDespesa)
		if err != nil {
			return nil, err
		}
		c.CategoriaID = categoria.ID
		c.Categoria = categoria
	}
	if req.Fornecedor != nil {
		c.Fornecedor = req.Fornecedor
	}
	if req.Observacao != nil {
		c.Observacao = req.Observacao
	}
	if err := s.repo.UpdateContaPagar(ctx, c); err != nil {
		return nil, apperr.Internal("falha ao atualizar conta a pagar", err)
	}
	return contaPagarToResponse(c), nil
}

func (s *financeiroService) RemoverContaPagar(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.FindContaPagarByID(ctx, id)
	if err != nil {
		return apperr.NotFound("conta a pagar")
	}
	if c.Status == model.ContaPaga {
		return apperr.Business("conta paga não pode ser removida")
	}
	if err := s.repo.DeleteContaPagar(ctx, id); err != nil {
		return apperr.Internal("falha ao remover conta a pagar", err)
	}
	return nil
}

func (s *financeiroService) PagarConta(ctx context.Context, id uuid.UUID, req dto.PagarContaRequest) (*dto.ContaPagarResponse, error) {
	metodo := model.MetodoPagamento(req.MetodoPagamento)
	if !metodo.Valid() {
		return nil, apperr.Validation("método de pagamento inválido")
	}
	c, err := s.repo.FindContaPagarByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("conta a pagar")
	}
	if c.Status == model.ContaPaga {
		return nil, apperr.Business("conta já está paga")
	}

	quando := timeutil.NowBrasil()
	if req.DataPagamento != nil {
		quando = *req.DataPagamento
	}

	// Baixa em dinheiro com operador identificado vira sangria do caixa
	// aberto. O caixa ausente ou insuficiente não bloqueia a baixa.
	if metodo == model.PagamentoDinheiro && req.UsuarioID != "" {
		if operadorID, err := uuid.Parse(req.UsuarioID); err == nil {
			if st, err := s.caixa.Status(ctx, operadorID); err == nil && st.TemCaixaAberto {
				if caixaID, err := uuid.Parse(st.Caixa.ID); err == nil {
					c.CaixaID = &caixaID
				}
				obs := fmt.Sprintf("Pagamento de conta: %s", c.Descricao)
				if _, err := s.caixa.Sangria(ctx, operadorID, dto.SangriaRequest{Valor: c.Valor, Observacao: obs}); err != nil {
					log.Warn().Err(err).Str("conta_id", id.String()).
						Msg("falha ao registrar sangria do pagamento de conta")
				}
			} else {
				log.Warn().Str("conta_id", id.String()).
					Msg("pagamento em dinheiro sem caixa aberto; sangria não registrada")
			}
		}
	}

	c.Status = model.ContaPaga
	c.DataPagamento = &quando
	c.Metodo = &metodo
	if err := s.repo.UpdateContaPagar(ctx, c); err != nil {
		return nil, apperr.Internal("falha ao dar baixa na conta", err)
	}
	return contaPagarToResponse(c), nil
}

// ── Contas a receber ──────────────────────────────────────────────────────────

func (s *financeiroService) CriarContaReceber(ctx context.Context, req dto.CriarContaReceberRequest) (*dto.ContaReceberResponse, error) {
	categoria, err := s.validarCategoria(ctx, req.CategoriaID, model.CategoriaReceita)
	if err != nil {
		return nil, err
	}
	c := &model.ContaReceber{
		Descricao:      req.Descricao,
		Valor:          req.Valor,
		DataVencimento: req.DataVencimento,
		CategoriaID:    categoria.ID,
		Origem:         req.Origem,
		Observacao:     req.Observacao,
		Status:         derivarStatusConta(req.DataVencimento),
	}
	if err := s.repo.CreateContaReceber(ctx, c); err != nil {
		return nil, apperr.Internal("falha ao criar conta a receber", err)
	}
	c.Categoria = categoria
	return contaReceberToResponse(c), nil
}

func (s *financeiroService) ListarContasReceber(ctx context.Context, filter dto.ContaFilter) ([]dto.ContaReceberResponse, error) {
	s.promoverVencidas(ctx)
	contas, err := s.repo.ListContasReceber(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("falha ao listar contas a receber", err)
	}
	out := make([]dto.ContaReceberResponse, 0, len(contas))
	for i := range contas {
		out = append(out, *contaReceberToResponse(&contas[i]))
	}
	return out, nil
}

func (s *financeiroService) AtualizarContaReceber(ctx context.Context, id uuid.UUID, req dto.AtualizarContaReceberRequest) (*dto.ContaReceberResponse, error) {
	c, err := s.repo.FindContaReceberByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("conta a receber")
	}
	if c.Status == model.ContaRecebida {
		return nil, apperr.Business("conta recebida não pode ser editada")
	}
	if req.Descricao != nil {
		c.Descricao = *req.Descricao
	}
	if req.Valor != nil {
		if !req.Valor.IsPositive() {
			return nil, apperr.Validation("valor deve ser maior que zero")
		}
		c.Valor = *req.Valor
	}
	if req.DataVencimento != nil {
		c.DataVencimento = *req.DataVencimento
		c.Status = derivarStatusConta(*req.DataVencimento)
	}
	if req.CategoriaID != nil {
		categoria, err := s.validarCategoria(ctx, *req.CategoriaID, model.CategoriaReceita)
		if err != nil {
			return nil, err
		}
		c.CategoriaID = categoria.ID
		c.Categoria = categoria
	}
	if req.Origem != nil {
		c.Origem = *req.Origem
	}
	if req.Observacao != nil {
		c.Observacao = req.Observacao
	}
	if err := s.repo.UpdateContaReceber(ctx, c); err != nil {
		return nil, apperr.Internal("falha ao atualizar conta a receber", err)
	}
	return contaReceberToResponse(c), nil
}

func (s *financeiroService) RemoverContaReceber(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.FindContaReceberByID(ctx, id)
	if err != nil {
		return apperr.NotFound("conta a receber")
	}
	if c.Status == model.ContaRecebida {
		return apperr.Business("conta recebida não pode ser removida")
	}
	if err := s.repo.DeleteContaReceber(ctx, id); err != nil {
		return apperr.Internal("falha ao remover conta a receber", err)
	}
	return nil
}

func (s *financeiroService) ReceberConta(ctx context.Context, id uuid.UUID, req dto.ReceberContaRequest) (*dto.ContaReceberResponse, error) {
	c, err := s.repo.FindContaReceberByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("conta a receber")
	}
	if c.Status == model.ContaRecebida {
		return nil, apperr.Business("conta já foi recebida")
	}
	quando := timeutil.NowBrasil()
	if req.DataRecebimento != nil {
		quando = *req.DataRecebimento
	}
	c.Status = model.ContaRecebida
	c.DataRecebimento = &quando
	if err := s.repo.UpdateContaReceber(ctx, c); err != nil {
		return nil, apperr.Internal("falha ao dar baixa na conta", err)
	}
	return contaReceberToResponse(c), nil
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

func (s *financeiroService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	s.promoverVencidas(ctx)

	pagar, err := s.repo.ListContasPagar(ctx, dto.ContaFilter{})
	if err != nil {
		return nil, apperr.Internal("falha ao montar dashboard", err)
	}
	receber, err := s.repo.ListContasReceber(ctx, dto.ContaFilter{})
	if err != nil {
		return nil, apperr.Internal("falha ao montar dashboard", err)
	}

	hoje := timeutil.StartOfDay(timeutil.NowBrasil())
	ladoPagar := dto.LadoDashboard{}
	for i := range pagar {
		if pagar[i].Status == model.ContaPaga {
			continue
		}
		classificarFaixa(&ladoPagar, pagar[i].DataVencimento, pagar[i].Valor, hoje)
	}
	ladoReceber := dto.LadoDashboard{}
	for i := range receber {
		if receber[i].Status == model.ContaRecebida {
			continue
		}
		classificarFaixa(&ladoReceber, receber[i].DataVencimento, receber[i].Valor, hoje)
	}

	return &dto.DashboardResponse{
		ContasPagar:   ladoPagar,
		ContasReceber: ladoReceber,
	}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// derivarStatusConta deriva o status do vencimento: vence hoje ou depois é
// PENDENTE, antes de hoje é ATRASADO.
func derivarStatusConta(vencimento time.Time) model.StatusConta {
	hoje := timeutil.StartOfDay(timeutil.NowBrasil())
	if timeutil.StartOfDay(vencimento).Before(hoje) {
		return model.ContaAtrasada
	}
	return model.ContaPendente
}

func (s *financeiroService) validarCategoria(ctx context.Context, categoriaID string, esperado model.TipoCategoria) (*model.CategoriaFinanceira, error) {
	cid, err := uuid.Parse(categoriaID)
	if err != nil {
		return nil, apperr.Validation("categoria_id inválido")
	}
	categoria, err := s.repo.FindCategoriaByID(ctx, cid)
	if err != nil {
		return nil, apperr.NotFound("categoria")
	}
	if categoria.Tipo != esperado {
		return nil, apperr.Business(fmt.Sprintf(
			"categoria %s é do tipo %s; esta conta exige %s", categoria.Nome, categoria.Tipo, esperado))
	}
	return categoria, nil
}

func (s *financeiroService) promoverVencidas(ctx context.Context) {
	hoje := timeutil.StartOfDay(timeutil.NowBrasil())
	if err := s.repo.AtualizarStatusVencidas(ctx, hoje); err != nil {
		log.Warn().Err(err).Msg("falha ao promover contas vencidas")
	}
}

func classificarFaixa(lado *dto.LadoDashboard, vencimento time.Time, valor decimal.Decimal, hoje time.Time) {
	dia := timeutil.StartOfDay(vencimento)
	switch {
	case dia.Before(hoje):
		lado.Vencidas.Quantidade++
		lado.Vencidas.Valor = lado.Vencidas.Valor.Add(valor)
	case dia.Equal(hoje):
		lado.Hoje.Quantidade++
		lado.Hoje.Valor = lado.Hoje.Valor.Add(valor)
	default:
		lado.Futuras.Quantidade++
		lado.Futuras.Valor = lado.Futuras.Valor.Add(valor)
	}
	lado.Total.Quantidade++
	lado.Total.Valor = lado.Total.Valor.Add(valor)
}

func categoriaToResponse(c *model.CategoriaFinanceira) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID.String(), Nome: c.Nome, Tipo: string(c.Tipo)}
}

func contaPagarToResponse(c *model.ContaPagar) *dto.ContaPagarResponse {
	resp := &dto.ContaPagarResponse{
		ID:             c.ID.String(),
		Descricao:      c.Descricao,
		Valor:          c.Valor,
		DataVencimento: c.DataVencimento.Format("2006-01-02"),
		Fornecedor:     c.Fornecedor,
		Observacao:     c.Observacao,
		Status:         string(c.Status),
	}
	if c.Categoria != nil {
		resp.Categoria = categoriaToResponse(c.Categoria)
	}
	if c.DataPagamento != nil {
		t := timeutil.FormatBrasil(*c.DataPagamento)
		resp.DataPagamento = &t
	}
	if c.Metodo != nil {
		m := string(*c.Metodo)
		resp.Metodo = &m
	}
	return resp
}

func contaReceberToResponse(c *model.ContaReceber) *dto.ContaReceberResponse {
	resp := &dto.ContaReceberResponse{
		ID:             c.ID.String(),
		Descricao:      c.Descricao,
		Valor:          c.Valor,
		DataVencimento: c.DataVencimento.Format("2006-01-02"),
		Origem:         c.Origem,
		Observacao:     c.Observacao,
		Status:         string(c.Status),
	}
	if c.Categoria != nil {
		resp.Categoria = categoriaToResponse(c.Categoria)
	}
	if c.DataRecebimento != nil {
		t := timeutil.FormatBrasil(*c.DataRecebimento)
		resp.DataRecebimento = &t
	}
	return resp
}

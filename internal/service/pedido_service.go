package service

import (
	"context"
	"fmt"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/repository"
	"github.com/jeffersonaandrade/pousada-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Eventos emitidos para a cozinha/bar via broadcast fire-and-forget.
const (
	EventoNovoPedido       = "new_order"
	EventoPedidoAtualizado = "order_updated"
	EventoPedidoCancelado  = "order_cancelled"
)

// Notifier transmite eventos de pedido em tempo real. A entrega é melhor
// esforço e nunca condiciona a correção da transação que a originou.
type Notifier interface {
	NotificarPedido(ctx context.Context, evento string, pedido *model.Pedido)
}

type PedidoService interface {
	// CriarPedidos cria um lote de pedidos em uma transação única: ou todos
	// os itens entram, ou nenhum.
	CriarPedidos(ctx context.Context, req dto.CriarPedidosRequest) ([]dto.PedidoResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error)
	AtualizarStatus(ctx context.Context, id uuid.UUID, novoStatus model.StatusPedido) (*dto.PedidoResponse, error)
	// Cancelar exige PIN de gerente/administrador e reverte estoque e dívida.
	Cancelar(ctx context.Context, id uuid.UUID, gerentePin string) (*dto.PedidoResponse, error)
}

type pedidoService struct {
	repo        repository.PedidoRepository
	produtoRepo repository.ProdutoRepository
	hospedeRepo repository.HospedeRepository
	usuarios    UsuarioService
	notifier    Notifier
}

func NewPedidoService(
	repo repository.PedidoRepository,
	produtoRepo repository.ProdutoRepository,
	hospedeRepo repository.HospedeRepository,
	usuarios UsuarioService,
	notifier Notifier,
) PedidoService {
	return &pedidoService{
		repo:        repo,
		produtoRepo: produtoRepo,
		hospedeRepo: hospedeRepo,
		usuarios:    usuarios,
		notifier:    notifier,
	}
}

// ── CriarPedidos ──────────────────────────────────────────────────────────────
// Caminho NFC: o hóspede é resolvido pela pulseira e o lote é auto-aprovado.
// Caminho MANUAL: exige PIN válido de gerente/administrador.
//
// O limite de gasto de DAY_USE é verificado duas vezes: um pre-check fora da
// transação (resposta rápida para o caso comum) e uma re-verificação depois
// do incremento da dívida, dentro da transação. O incremento acontece ANTES
// de qualquer baixa de estoque: dois lotes concorrentes contra o mesmo
// hóspede serializam no update da dívida e o segundo lê o valor já
// incrementado, fechando a janela em que ambos passariam pelo pre-check com
// uma leitura obsoleta.

func (s *pedidoService) CriarPedidos(ctx context.Context, req dto.CriarPedidosRequest) ([]dto.PedidoResponse, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validation("o lote precisa de ao menos um item")
	}

	metodo := model.MetodoCriacao(req.Metodo)
	if req.Metodo == "" {
		if req.UIDPulseira != "" {
			metodo = model.CriacaoNFC
		} else {
			metodo = model.CriacaoManual
		}
	}
	if !metodo.Valid() {
		return nil, apperr.Validation("método de criação inválido")
	}

	// 1. Resolve o hóspede.
	hospede, err := s.resolverHospede(ctx, req)
	if err != nil {
		return nil, err
	}
	if !hospede.Ativo {
		return nil, apperr.Business("hóspede já fez checkout e não pode receber pedidos")
	}

	// 2. Autorização do caminho manual.
	var gerenteID *uuid.UUID
	if metodo == model.CriacaoManual {
		if req.GerentePin == "" {
			return nil, apperr.Validation("pedido manual exige PIN de gerente")
		}
		gerente, err := s.usuarios.ResolverPinAutorizador(ctx, req.GerentePin)
		if err != nil {
			return nil, err
		}
		gerenteID = &gerente.ID
	}

	var usuarioID *uuid.UUID
	if req.UsuarioID != "" {
		uid, err := uuid.Parse(req.UsuarioID)
		if err != nil {
			return nil, apperr.Validation("usuario_id inválido")
		}
		usuarioID = &uid
	}

	// 3. Pre-flight: resolve produtos, valida estoque e acumula o total.
	type linhaResolvida struct {
		produto    *model.Produto
		quantidade int
		valorLinha decimal.Decimal
	}
	linhas := make([]linhaResolvida, 0, len(req.Items))
	total := decimal.Zero

	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, apperr.Validation("produto_id inválido")
		}
		qtd := item.Quantidade
		if qtd == 0 {
			qtd = 1
		}
		p, err := s.produtoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, apperr.NotFound("produto")
		}
		if p.Estoque <= 0 {
			return nil, apperr.Business(fmt.Sprintf("produto %s está esgotado", p.Nome))
		}
		if p.Estoque < qtd {
			return nil, apperr.Business(fmt.Sprintf(
				"estoque insuficiente de %s: disponível %d, solicitado %d", p.Nome, p.Estoque, qtd))
		}
		valorLinha := p.Preco.Mul(decimal.NewFromInt(int64(qtd)))
		total = total.Add(valorLinha)
		linhas = append(linhas, linhaResolvida{produto: p, quantidade: qtd, valorLinha: valorLinha})
	}

	// 4. Pre-check do limite DAY_USE (leitura possivelmente obsoleta;
	// a verdade é a re-verificação dentro da transação).
	if err := verificarLimite(hospede, hospede.DividaAtual, total); err != nil {
		return nil, err
	}

	// 5. Transação: incrementa dívida, re-verifica limite, baixa estoque,
	// cria uma linha de pedido por unidade.
	agora := timeutil.NowBrasil()
	var criados []model.Pedido

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.hospedeRepo.IncrementarDividaTx(tx, hospede.ID, total); err != nil {
			return apperr.Internal("falha ao incrementar dívida", err)
		}

		atualizado, err := s.hospedeRepo.FindByIDTx(tx, hospede.ID)
		if err != nil {
			return apperr.NotFound("hóspede")
		}
		if err := verificarLimite(atualizado, atualizado.DividaAtual, decimal.Zero); err != nil {
			return err
		}

		for _, linha := range linhas {
			// Re-lê o estoque dentro da transação antes da baixa.
			p, err := s.produtoRepo.FindByIDTx(tx, linha.produto.ID)
			if err != nil {
				return apperr.NotFound("produto")
			}
			if p.Estoque < linha.quantidade {
				return apperr.Business(fmt.Sprintf(
					"estoque insuficiente de %s: disponível %d, solicitado %d",
					p.Nome, p.Estoque, linha.quantidade))
			}
			if err := s.produtoRepo.AjustarEstoqueTx(tx, p.ID, -linha.quantidade); err != nil {
				return apperr.Internal("falha ao baixar estoque", err)
			}

			for i := 0; i < linha.quantidade; i++ {
				pedido := model.Pedido{
					HospedeID: hospede.ID,
					ProdutoID: p.ID,
					Valor:     p.Preco,
					Status:    model.PedidoPendente,
					Metodo:    metodo,
					GerenteID: gerenteID,
					UsuarioID: usuarioID,
					Data:      agora,
				}
				if err := s.repo.CreateTx(tx, &pedido); err != nil {
					return apperr.Internal("falha ao criar pedido", err)
				}
				pedido.Produto = p
				pedido.Hospede = atualizado
				criados = append(criados, pedido)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.notifier != nil {
		for i := range criados {
			s.notifier.NotificarPedido(ctx, EventoNovoPedido, &criados[i])
		}
	}

	out := make([]dto.PedidoResponse, 0, len(criados))
	for i := range criados {
		out = append(out, *pedidoToResponse(&criados[i]))
	}
	return out, nil
}

// verificarLimite aplica o limite de gasto de DAY_USE. Estourar o limite é um
// erro de política (403), não um erro de dados.
func verificarLimite(h *model.Hospede, divida, adicional decimal.Decimal) error {
	if h.Tipo != model.TipoHospedeDayUse || h.LimiteGasto == nil {
		return nil
	}
	projetada := divida.Add(adicional)
	if projetada.GreaterThan(*h.LimiteGasto) {
		return apperr.Forbidden(fmt.Sprintf(
			"limite de gasto excedido: limite R$ %s, consumo projetado R$ %s",
			h.LimiteGasto.StringFixed(2), projetada.StringFixed(2)))
	}
	return nil
}

func (s *pedidoService) resolverHospede(ctx context.Context, req dto.CriarPedidosRequest) (*model.Hospede, error) {
	if req.UIDPulseira != "" {
		h, err := s.hospedeRepo.FindAtivoPorPulseira(ctx, req.UIDPulseira)
		if err != nil {
			return nil, apperr.NotFound("hóspede ativo com esta pulseira")
		}
		return h, nil
	}
	if req.HospedeID == "" {
		return nil, apperr.Validation("informe hospede_id ou uid_pulseira")
	}
	id, err := uuid.Parse(req.HospedeID)
	if err != nil {
		return nil, apperr.Validation("hospede_id inválido")
	}
	h, err := s.hospedeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("hóspede")
	}
	return h, nil
}

// ── BuscarPorID / Listar ──────────────────────────────────────────────────────

func (s *pedidoService) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("pedido")
	}
	return pedidoToResponse(p), nil
}

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	pedidos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("falha ao listar pedidos", err)
	}
	items := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		items = append(items, *pedidoToResponse(&pedidos[i]))
	}
	return &dto.PedidoListResponse{
		Data:       items,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// ── AtualizarStatus ───────────────────────────────────────────────────────────
// DataInicioPreparo é gravada só na primeira transição para PREPARANDO;
// DataPronto é regravada a cada transição para PRONTO.

func (s *pedidoService) AtualizarStatus(ctx context.Context, id uuid.UUID, novoStatus model.StatusPedido) (*dto.PedidoResponse, error) {
	if !novoStatus.Valid() {
		return nil, apperr.Validation("status de pedido inválido")
	}
	if novoStatus == model.PedidoCancelado {
		return nil, apperr.Business("cancelamento exige autorização; use a operação de cancelar")
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("pedido")
	}
	if p.Status == model.PedidoCancelado {
		return nil, apperr.Business("pedido cancelado não pode mudar de status")
	}

	agora := timeutil.NowBrasil()
	switch novoStatus {
	case model.PedidoPreparando:
		if p.DataInicioPreparo == nil {
			p.DataInicioPreparo = &agora
		}
	case model.PedidoPronto:
		p.DataPronto = &agora
	}
	p.Status = novoStatus

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperr.Internal("falha ao atualizar pedido", err)
	}

	if s.notifier != nil {
		s.notifier.NotificarPedido(ctx, EventoPedidoAtualizado, p)
	}
	return pedidoToResponse(p), nil
}

// ── Cancelar ──────────────────────────────────────────────────────────────────

func (s *pedidoService) Cancelar(ctx context.Context, id uuid.UUID, gerentePin string) (*dto.PedidoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("pedido")
	}
	if p.Status == model.PedidoCancelado {
		return nil, apperr.Business("pedido já está cancelado")
	}

	if _, err := s.usuarios.ResolverPinAutorizador(ctx, gerentePin); err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.produtoRepo.AjustarEstoqueTx(tx, p.ProdutoID, 1); err != nil {
			return apperr.Internal("falha ao devolver estoque", err)
		}
		if err := s.hospedeRepo.IncrementarDividaTx(tx, p.HospedeID, p.Valor.Neg()); err != nil {
			return apperr.Internal("falha ao estornar dívida", err)
		}
		p.Status = model.PedidoCancelado
		return s.repo.UpdateTx(tx, p)
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.notifier != nil {
		s.notifier.NotificarPedido(ctx, EventoPedidoCancelado, p)
	}
	return pedidoToResponse(p), nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:        p.ID.String(),
		HospedeID: p.HospedeID.String(),
		ProdutoID: p.ProdutoID.String(),
		Valor:     p.Valor,
		Status:    string(p.Status),
		Metodo:    string(p.Metodo),
		Data:      timeutil.FormatBrasil(p.Data),
	}
	if p.Hospede != nil {
		resp.HospedeNome = p.Hospede.Nome
	}
	if p.Produto != nil {
		resp.ProdutoNome = p.Produto.Nome
		resp.Setor = p.Produto.Setor
	}
	if p.GerenteID != nil {
		g := p.GerenteID.String()
		resp.GerenteID = &g
	}
	if p.UsuarioID != nil {
		u := p.UsuarioID.String()
		resp.UsuarioID = &u
	}
	if p.DataInicioPreparo != nil {
		t := timeutil.FormatBrasil(*p.DataInicioPreparo)
		resp.DataInicioPreparo = &t
	}
	if p.DataPronto != nil {
		t := timeutil.FormatBrasil(*p.DataPronto)
		resp.DataPronto = &t
	}
	return resp
}

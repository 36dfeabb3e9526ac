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
	"gorm.io/gorm"
)

// Tolerância de 1 centavo na reconciliação de checkout, absorvendo resíduos
// de arredondamento de chamadores antigos.
var toleranciaCheckout = decimal.NewFromFloat(0.01)

type HospedeService interface {
	CheckIn(ctx context.Context, req dto.CheckinRequest) (*dto.HospedeResponse, error)
	Checkout(ctx context.Context, id uuid.UUID, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.HospedeResponse, error)
	BuscarPorPulseira(ctx context.Context, uid string) (*dto.HospedeResponse, error)
	Listar(ctx context.Context, filter dto.HospedeFilter) (*dto.HospedeListResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarHospedeRequest) (*dto.HospedeResponse, error)
	// ZerarDivida é um override administrativo: zera a dívida sem exigir
	// comprovação de pagamento. Restrito na borda a ADMIN.
	ZerarDivida(ctx context.Context, id uuid.UUID) (*dto.HospedeResponse, error)
	// Desativar encerra o hóspede sem o fluxo de checkout: nada é cobrado,
	// nenhum quarto é liberado. Restrito na borda a ADMIN.
	Desativar(ctx context.Context, id uuid.UUID) (*dto.HospedeResponse, error)
	ListarPagamentos(ctx context.Context, id uuid.UUID) ([]model.Pagamento, error)
}

type hospedeService struct {
	repo          repository.HospedeRepository
	quartoRepo    repository.QuartoRepository
	produtoRepo   repository.ProdutoRepository
	pedidoRepo    repository.PedidoRepository
	pagamentoRepo repository.PagamentoRepository
	caixa         CaixaService
}

func NewHospedeService(
	repo repository.HospedeRepository,
	quartoRepo repository.QuartoRepository,
	produtoRepo repository.ProdutoRepository,
	pedidoRepo repository.PedidoRepository,
	pagamentoRepo repository.PagamentoRepository,
	caixa CaixaService,
) HospedeService {
	return &hospedeService{
		repo:          repo,
		quartoRepo:    quartoRepo,
		produtoRepo:   produtoRepo,
		pedidoRepo:    pedidoRepo,
		pagamentoRepo: pagamentoRepo,
		caixa:         caixa,
	}
}

// ── CheckIn ───────────────────────────────────────────────────────────────────
// Tudo acontece em uma transação: a unicidade da pulseira entre hóspedes
// ativos é re-verificada DENTRO dela (dois check-ins simultâneos com a mesma
// pulseira não podem ambos passar por uma consulta prévia), o quarto só é
// ocupado se ainda estiver LIVRE (check-in de segundo hóspede no mesmo quarto
// é válido e não falha), e o pedido/pagamento de entrada entra no mesmo commit.

func (s *hospedeService) CheckIn(ctx context.Context, req dto.CheckinRequest) (*dto.HospedeResponse, error) {
	tipo := model.TipoHospede(req.Tipo)
	if !tipo.Valid() {
		return nil, apperr.Validation("tipo de hóspede inválido")
	}
	if tipo == model.TipoHospedeDayUse && (req.Documento == nil || *req.Documento == "") {
		return nil, apperr.Validation("hóspede Day Use exige documento")
	}
	if tipo == model.TipoHospedeResidente && req.QuartoID == "" && req.Quarto == "" {
		return nil, apperr.Validation("hóspede exige quarto (id ou número)")
	}

	var metodoPagamento model.MetodoPagamento
	if req.PagoNaEntrada {
		metodoPagamento = model.MetodoPagamento(req.MetodoPagamento)
		if !metodoPagamento.Valid() {
			return nil, apperr.Validation("pagamento na entrada exige método válido")
		}
	}

	var operadorID *uuid.UUID
	if req.UsuarioID != "" {
		uid, err := uuid.Parse(req.UsuarioID)
		if err != nil {
			return nil, apperr.Validation("usuario_id inválido")
		}
		operadorID = &uid
	}

	// Resolve a referência de quarto fora da transação (leitura pura).
	quarto, err := s.resolverQuarto(ctx, req)
	if err != nil {
		return nil, err
	}

	agora := timeutil.NowBrasil()
	hospede := &model.Hospede{
		Tipo:        tipo,
		Nome:        req.Nome,
		Documento:   req.Documento,
		Telefone:    req.Telefone,
		Email:       req.Email,
		LimiteGasto: req.LimiteGasto,
		DividaAtual: decimal.Zero,
		Ativo:       true,
		Origem:      "BALCAO",
		DataCheckin: agora,
	}
	if req.Origem != "" {
		hospede.Origem = req.Origem
	}
	if req.UIDPulseira != "" {
		uid := req.UIDPulseira
		hospede.UIDPulseira = &uid
	}
	if quarto != nil {
		hospede.QuartoID = &quarto.ID
		hospede.Quarto = &quarto.Numero
	} else if req.Quarto != "" {
		// Número legado sem quarto cadastrado: mantém só a string.
		legado := req.Quarto
		hospede.Quarto = &legado
	}

	// Valor de entrada define a dívida inicial, salvo quando pago na hora.
	if req.ValorEntrada != nil && req.ValorEntrada.IsPositive() && !req.PagoNaEntrada {
		hospede.DividaAtual = *req.ValorEntrada
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if hospede.UIDPulseira != nil {
			if existente, err := s.repo.FindAtivoPorPulseiraTx(tx, *hospede.UIDPulseira); err == nil && existente != nil {
				return apperr.Conflict(fmt.Sprintf(
					"pulseira %s já está vinculada ao hóspede ativo %s", *hospede.UIDPulseira, existente.Nome))
			}
		}

		if quarto != nil {
			atual, err := s.quartoRepo.FindByIDTx(tx, quarto.ID)
			if err != nil {
				return apperr.NotFound("quarto")
			}
			if atual.Status == model.QuartoLivre {
				if err := s.quartoRepo.UpdateStatusTx(tx, quarto.ID, model.QuartoOcupado); err != nil {
					return apperr.Internal("falha ao ocupar quarto", err)
				}
			}
		}

		if err := s.repo.CreateTx(tx, hospede); err != nil {
			return apperr.Internal("falha ao criar hóspede", err)
		}

		if req.ValorEntrada != nil && req.ValorEntrada.IsPositive() {
			if err := s.criarPedidoEntradaTx(tx, hospede, tipo, *req.ValorEntrada, agora, operadorID); err != nil {
				return err
			}
			if req.PagoNaEntrada {
				pagamento := &model.Pagamento{
					HospedeID: hospede.ID,
					Valor:     *req.ValorEntrada,
					Metodo:    metodoPagamento,
					Data:      agora,
				}
				if err := s.pagamentoRepo.CreateTx(tx, pagamento); err != nil {
					return apperr.Internal("falha ao registrar pagamento de entrada", err)
				}
				if metodoPagamento == model.PagamentoDinheiro && operadorID != nil {
					obs := fmt.Sprintf("Entrada: %s", hospede.Nome)
					if err := s.caixa.RegistrarVendaTx(tx, *operadorID, *req.ValorEntrada, obs); err != nil {
						log.Warn().Err(err).Msg("falha ao lançar venda de entrada no caixa")
					}
				}
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return hospedeToResponse(hospede), nil
}

// criarPedidoEntradaTx cria (ou reusa) o produto de serviço da taxa de
// entrada, atualiza seu preço para o valor cobrado e grava um pedido já
// ENTREGUE nessa taxa.
func (s *hospedeService) criarPedidoEntradaTx(tx *gorm.DB, hospede *model.Hospede, tipo model.TipoHospede, valor decimal.Decimal, agora time.Time, operadorID *uuid.UUID) error {
	nome := model.ProdutoDiaria
	if tipo == model.TipoHospedeDayUse {
		nome = model.ProdutoDayUse
	}

	produto, err := s.produtoRepo.FindByNomeTx(tx, nome)
	if err != nil {
		setor := "RECEPCAO"
		produto = &model.Produto{
			Nome:            nome,
			Preco:           valor,
			Estoque:         model.EstoqueServico,
			Setor:           &setor,
			VisivelCardapio: false,
		}
		if err := s.produtoRepo.CreateTx(tx, produto); err != nil {
			return apperr.Internal("falha ao criar produto de serviço", err)
		}
	} else if !produto.Preco.Equal(valor) {
		// O valor cobrado na entrada vira o preço corrente do serviço.
		if err := s.produtoRepo.AtualizarPrecoTx(tx, produto.ID, valor); err != nil {
			return apperr.Internal("falha ao atualizar preço do serviço", err)
		}
		produto.Preco = valor
	}

	pedido := &model.Pedido{
		HospedeID: hospede.ID,
		ProdutoID: produto.ID,
		Valor:     valor,
		Status:    model.PedidoEntregue,
		Metodo:    model.CriacaoManual,
		UsuarioID: operadorID,
		Data:      agora,
	}
	if err := s.pedidoRepo.CreateTx(tx, pedido); err != nil {
		return apperr.Internal("falha ao criar pedido de entrada", err)
	}
	return nil
}

// ── Checkout ──────────────────────────────────────────────────────────────────

func (s *hospedeService) Checkout(ctx context.Context, id uuid.UUID, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	metodo := model.MetodoPagamento(req.MetodoPagamento)
	if !metodo.Valid() {
		return nil, apperr.Validation("método de pagamento inválido")
	}

	// Leitura prévia fora da transação preserva o vínculo de quarto antes da
	// mutação; o estado autoritativo é relido dentro dela.
	hospede, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("hóspede")
	}
	if !hospede.Ativo {
		return nil, apperr.Business("checkout já foi realizado para este hóspede")
	}

	var operadorID *uuid.UUID
	if req.UsuarioID != "" {
		uid, err := uuid.Parse(req.UsuarioID)
		if err != nil {
			return nil, apperr.Validation("usuario_id inválido")
		}
		operadorID = &uid
	}

	quartoID := hospede.QuartoID
	agora := timeutil.NowBrasil()

	var (
		valorPago          decimal.Decimal
		totalPago          decimal.Decimal
		quartoStatus       *string
		ocupantesRestantes int
		mensagemQuarto     string
	)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		atual, err := s.repo.FindByIDTx(tx, id)
		if err != nil {
			return apperr.NotFound("hóspede")
		}
		if !atual.Ativo {
			return apperr.Business("checkout já foi realizado para este hóspede")
		}

		valorPago = atual.DividaAtual
		if req.ValorPagamento != nil {
			valorPago = *req.ValorPagamento
		}
		if !valorPago.IsPositive() {
			return apperr.Business("valor de pagamento deve ser maior que zero")
		}

		pagamento := &model.Pagamento{
			HospedeID: atual.ID,
			Valor:     valorPago,
			Metodo:    metodo,
			Data:      agora,
		}
		if err := s.pagamentoRepo.CreateTx(tx, pagamento); err != nil {
			return apperr.Internal("falha ao registrar pagamento", err)
		}
		if metodo == model.PagamentoDinheiro && operadorID != nil {
			obs := fmt.Sprintf("Checkout: %s", atual.Nome)
			if err := s.caixa.RegistrarVendaTx(tx, *operadorID, valorPago, obs); err != nil {
				log.Warn().Err(err).Msg("falha ao lançar venda de checkout no caixa")
			}
		}

		// Reconciliação: tudo que o hóspede já pagou contra a dívida atual.
		totalPago, err = s.pagamentoRepo.SumByHospedeTx(tx, atual.ID)
		if err != nil {
			return apperr.Internal("falha ao somar pagamentos", err)
		}
		diferenca := atual.DividaAtual.Sub(totalPago)
		if !req.ForcarCheckout && diferenca.Abs().GreaterThan(toleranciaCheckout) {
			return apperr.Business(fmt.Sprintf(
				"pagamento não confere: dívida R$ %s, total pago R$ %s, diferença R$ %s",
				atual.DividaAtual.StringFixed(2), totalPago.StringFixed(2), diferenca.StringFixed(2)))
		}

		// Liberação do quarto ciente de múltiplos ocupantes: conta os outros
		// hóspedes ativos do quarto na mesma transação da desativação.
		if quartoID != nil {
			self := atual.ID
			restantes, err := s.quartoRepo.CountHospedesAtivosTx(tx, *quartoID, &self)
			if err != nil {
				return apperr.Internal("falha ao contar ocupantes", err)
			}
			ocupantesRestantes = int(restantes)
			if restantes > 0 {
				st := string(model.QuartoOcupado)
				quartoStatus = &st
				mensagemQuarto = fmt.Sprintf(
					"quarto permanece ocupado: %d hóspede(s) ainda ativo(s)", restantes)
			} else {
				if err := s.quartoRepo.UpdateStatusTx(tx, *quartoID, model.QuartoLimpeza); err != nil {
					return apperr.Internal("falha ao liberar quarto", err)
				}
				st := string(model.QuartoLimpeza)
				quartoStatus = &st
				mensagemQuarto = "quarto liberado para limpeza"
			}
		}

		return s.repo.EncerrarTx(tx, atual.ID, agora)
	})
	if txErr != nil {
		return nil, txErr
	}

	hospede.DividaAtual = decimal.Zero
	hospede.Ativo = false
	hospede.UIDPulseira = nil
	hospede.DataCheckout = &agora

	return &dto.CheckoutResponse{
		Hospede:            *hospedeToResponse(hospede),
		QuartoStatus:       quartoStatus,
		OcupantesRestantes: ocupantesRestantes,
		MensagemQuarto:     mensagemQuarto,
		TotalPago:          totalPago,
	}, nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *hospedeService) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.HospedeResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("hóspede")
	}
	return hospedeToResponse(h), nil
}

func (s *hospedeService) BuscarPorPulseira(ctx context.Context, uid string) (*dto.HospedeResponse, error) {
	h, err := s.repo.FindAtivoPorPulseira(ctx, uid)
	if err != nil {
		return nil, apperr.NotFound("hóspede ativo com esta pulseira")
	}
	return hospedeToResponse(h), nil
}

func (s *hospedeService) Listar(ctx context.Context, filter dto.HospedeFilter) (*dto.HospedeListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	hospedes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("falha ao listar hóspedes", err)
	}
	items := make([]dto.HospedeResponse, 0, len(hospedes))
	for i := range hospedes {
		items = append(items, *hospedeToResponse(&hospedes[i]))
	}
	return &dto.HospedeListResponse{
		Data:       items,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func (s *hospedeService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarHospedeRequest) (*dto.HospedeResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("hóspede")
	}
	if req.Nome != nil {
		h.Nome = *req.Nome
	}
	if req.Documento != nil {
		h.Documento = req.Documento
	}
	if req.Telefone != nil {
		h.Telefone = req.Telefone
	}
	if req.Email != nil {
		h.Email = req.Email
	}
	if req.LimiteGasto != nil {
		h.LimiteGasto = req.LimiteGasto
	}
	if req.Origem != nil {
		h.Origem = *req.Origem
	}
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, apperr.Internal("falha ao atualizar hóspede", err)
	}
	return hospedeToResponse(h), nil
}

func (s *hospedeService) ZerarDivida(ctx context.Context, id uuid.UUID) (*dto.HospedeResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("hóspede")
	}
	if err := s.repo.ZerarDivida(ctx, id); err != nil {
		return nil, apperr.Internal("falha ao zerar dívida", err)
	}
	h.DividaAtual = decimal.Zero
	log.Info().Str("hospede_id", id.String()).Msg("dívida zerada por override administrativo")
	return hospedeToResponse(h), nil
}

func (s *hospedeService) Desativar(ctx context.Context, id uuid.UUID) (*dto.HospedeResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("hóspede")
	}
	if !h.Ativo {
		return nil, apperr.Business("hóspede já está inativo")
	}
	if err := s.repo.Desativar(ctx, id); err != nil {
		return nil, apperr.Internal("falha ao desativar hóspede", err)
	}
	h.Ativo = false
	log.Info().Str("hospede_id", id.String()).Msg("hóspede desativado por override administrativo")
	return hospedeToResponse(h), nil
}

func (s *hospedeService) ListarPagamentos(ctx context.Context, id uuid.UUID) ([]model.Pagamento, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apperr.NotFound("hóspede")
	}
	return s.pagamentoRepo.ListByHospede(ctx, id)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *hospedeService) resolverQuarto(ctx context.Context, req dto.CheckinRequest) (*model.Quarto, error) {
	if req.QuartoID != "" {
		qid, err := uuid.Parse(req.QuartoID)
		if err != nil {
			return nil, apperr.Validation("quarto_id inválido")
		}
		q, err := s.quartoRepo.FindByID(ctx, qid)
		if err != nil {
			return nil, apperr.NotFound("quarto")
		}
		return q, nil
	}
	if req.Quarto != "" {
		// Fallback legado por número; ausência não é erro para DAY_USE/VIP.
		q, err := s.quartoRepo.FindByNumero(ctx, req.Quarto)
		if err != nil {
			if model.TipoHospede(req.Tipo) == model.TipoHospedeResidente {
				return nil, apperr.NotFound("quarto")
			}
			return nil, nil
		}
		return q, nil
	}
	return nil, nil
}

func hospedeToResponse(h *model.Hospede) *dto.HospedeResponse {
	resp := &dto.HospedeResponse{
		ID:          h.ID.String(),
		Tipo:        string(h.Tipo),
		Nome:        h.Nome,
		Documento:   h.Documento,
		Telefone:    h.Telefone,
		Email:       h.Email,
		Quarto:      h.Quarto,
		UIDPulseira: h.UIDPulseira,
		LimiteGasto: h.LimiteGasto,
		DividaAtual: h.DividaAtual,
		Ativo:       h.Ativo,
		Origem:      h.Origem,
		DataCheckin: timeutil.FormatBrasil(h.DataCheckin),
	}
	if h.QuartoID != nil {
		q := h.QuartoID.String()
		resp.QuartoID = &q
	}
	if h.DataCheckout != nil {
		t := timeutil.FormatBrasil(*h.DataCheckout)
		resp.DataCheckout = &t
	}
	return resp
}

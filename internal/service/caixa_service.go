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
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CaixaService interface {
	Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error)
	Fechar(ctx context.Context, usuarioID uuid.UUID, req dto.FecharCaixaRequest) (*dto.FechamentoCaixaResponse, error)
	Sangria(ctx context.Context, usuarioID uuid.UUID, req dto.SangriaRequest) (*dto.LancamentoResponse, error)
	Suprimento(ctx context.Context, usuarioID uuid.UUID, req dto.SuprimentoRequest) (*dto.LancamentoResponse, error)
	Status(ctx context.Context, usuarioID uuid.UUID) (*dto.StatusCaixaResponse, error)

	// RegistrarVenda grava uma venda em dinheiro no caixa aberto do operador.
	// Sem caixa aberto a venda NÃO falha: a operação primária (pagamento do
	// hóspede) já foi consistida e não pode ser desfeita por um livro de
	// caixa ausente. O caso é apenas logado.
	RegistrarVenda(ctx context.Context, usuarioID uuid.UUID, valor decimal.Decimal, observacao string) error
	// RegistrarVendaTx é a variante usada dentro de transações de check-in e
	// checkout. Mesma política soft-fail.
	RegistrarVendaTx(tx *gorm.DB, usuarioID uuid.UUID, valor decimal.Decimal, observacao string) error
}

type caixaService struct {
	repo     repository.CaixaRepository
	usuarios repository.UsuarioRepository
}

func NewCaixaService(repo repository.CaixaRepository, usuarios repository.UsuarioRepository) CaixaService {
	return &caixaService{repo: repo, usuarios: usuarios}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────
// A unicidade da sessão aberta é re-verificada dentro da transação que a cria;
// o índice parcial único em (usuario_id) WHERE status = 'ABERTO' é a garantia
// final contra duas aberturas simultâneas.

func (s *caixaService) Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error) {
	if req.SaldoInicial.IsNegative() {
		return nil, apperr.Business("saldo inicial não pode ser negativo")
	}
	usuario, err := s.usuarios.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, apperr.NotFound("funcionário")
	}

	caixa := &model.Caixa{
		UsuarioID:    usuarioID,
		SaldoInicial: req.SaldoInicial,
		Status:       model.CaixaAberto,
		DataAbertura: timeutil.NowBrasil(),
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if existing, err := s.repo.FindAbertoPorUsuarioTx(tx, usuarioID); err == nil && existing != nil {
			return apperr.Business("já existe um caixa aberto para este operador")
		}
		if err := s.repo.CreateTx(tx, caixa); err != nil {
			return apperr.Internal("falha ao abrir caixa", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	caixa.Usuario = usuario
	return caixaToResponse(caixa), nil
}

// ── Fechar ────────────────────────────────────────────────────────────────────
// Contagem cega: o operador declara os saldos antes de ver o esperado.
// A quebra assinada (declarado − esperado) é persistida na observação. O saldo
// esperado é calculado na mesma transação que fecha a sessão, para que nenhum
// lançamento concorrente escape da conferência.

func (s *caixaService) Fechar(ctx context.Context, usuarioID uuid.UUID, req dto.FecharCaixaRequest) (*dto.FechamentoCaixaResponse, error) {
	var (
		caixa  *model.Caixa
		resumo *dto.ResumoCaixa
		quebra decimal.Decimal
	)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		caixa, err = s.repo.FindAbertoPorUsuarioTx(tx, usuarioID)
		if err != nil {
			return apperr.Business("não há caixa aberto para este operador")
		}

		resumo, err = s.montarResumoTx(tx, caixa)
		if err != nil {
			return err
		}

		quebra = req.SaldoFinalDinheiro.Sub(resumo.SaldoEsperadoDinheiro)

		obs := fmt.Sprintf("Quebra de caixa: R$ %s (esperado R$ %s, declarado R$ %s)",
			quebra.StringFixed(2),
			resumo.SaldoEsperadoDinheiro.StringFixed(2),
			req.SaldoFinalDinheiro.StringFixed(2))
		if req.Observacao != "" {
			obs = req.Observacao + " | " + obs
		}

		agora := timeutil.NowBrasil()
		caixa.Status = model.CaixaFechado
		caixa.DataFechamento = &agora
		caixa.SaldoFinalDinheiro = &req.SaldoFinalDinheiro
		caixa.SaldoFinalCartao = req.SaldoFinalCartao
		caixa.Observacao = &obs

		if err := s.repo.UpdateTx(tx, caixa); err != nil {
			return apperr.Internal("falha ao fechar caixa", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.FechamentoCaixaResponse{
		Caixa:       *caixaToResponse(caixa),
		Resumo:      *resumo,
		QuebraCaixa: quebra,
	}, nil
}

// ── Sangria ───────────────────────────────────────────────────────────────────
// Retirada de dinheiro físico. Não pode exceder o saldo esperado: não se
// retira mais do que logicamente existe na gaveta. O teto é conferido duas
// vezes na mesma transação, antes e depois de gravar o lançamento, para que
// duas sangrias simultâneas não passem ambas pela mesma leitura de saldo.

func (s *caixaService) Sangria(ctx context.Context, usuarioID uuid.UUID, req dto.SangriaRequest) (*dto.LancamentoResponse, error) {
	if !req.Valor.IsPositive() {
		return nil, apperr.Validation("valor da sangria deve ser maior que zero")
	}

	var l *model.LancamentoCaixa
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		caixa, err := s.repo.FindAbertoPorUsuarioTx(tx, usuarioID)
		if err != nil {
			return apperr.Business("não há caixa aberto para este operador")
		}
		resumo, err := s.montarResumoTx(tx, caixa)
		if err != nil {
			return err
		}
		if req.Valor.GreaterThan(resumo.SaldoEsperadoDinheiro) {
			return apperr.Business(fmt.Sprintf(
				"sangria de R$ %s excede o saldo em caixa de R$ %s",
				req.Valor.StringFixed(2), resumo.SaldoEsperadoDinheiro.StringFixed(2)))
		}

		l = &model.LancamentoCaixa{
			CaixaID:    caixa.ID,
			Tipo:       model.LancamentoSangria,
			Valor:      req.Valor.Neg(),
			Observacao: req.Observacao,
			Data:       timeutil.NowBrasil(),
		}
		if err := s.repo.CreateLancamentoTx(tx, l); err != nil {
			return apperr.Internal("falha ao registrar sangria", err)
		}

		// Releitura com o lançamento já gravado: se outra sangria entrou entre
		// a conferência acima e esta, o saldo fica negativo e tudo reverte.
		depois, err := s.montarResumoTx(tx, caixa)
		if err != nil {
			return err
		}
		if depois.SaldoEsperadoDinheiro.IsNegative() {
			return apperr.Business(fmt.Sprintf(
				"sangria de R$ %s excede o saldo em caixa de R$ %s",
				req.Valor.StringFixed(2),
				depois.SaldoEsperadoDinheiro.Add(req.Valor).StringFixed(2)))
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return lancamentoToResponse(l), nil
}

// ── Suprimento ────────────────────────────────────────────────────────────────

func (s *caixaService) Suprimento(ctx context.Context, usuarioID uuid.UUID, req dto.SuprimentoRequest) (*dto.LancamentoResponse, error) {
	if !req.Valor.IsPositive() {
		return nil, apperr.Validation("valor do suprimento deve ser maior que zero")
	}

	var l *model.LancamentoCaixa
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		caixa, err := s.repo.FindAbertoPorUsuarioTx(tx, usuarioID)
		if err != nil {
			return apperr.Business("não há caixa aberto para este operador")
		}

		l = &model.LancamentoCaixa{
			CaixaID:    caixa.ID,
			Tipo:       model.LancamentoSuprimento,
			Valor:      req.Valor,
			Observacao: req.Observacao,
			Data:       timeutil.NowBrasil(),
		}
		if err := s.repo.CreateLancamentoTx(tx, l); err != nil {
			return apperr.Internal("falha ao registrar suprimento", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return lancamentoToResponse(l), nil
}

// ── RegistrarVenda ────────────────────────────────────────────────────────────

func (s *caixaService) RegistrarVenda(ctx context.Context, usuarioID uuid.UUID, valor decimal.Decimal, observacao string) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.RegistrarVendaTx(tx, usuarioID, valor, observacao)
	})
}

func (s *caixaService) RegistrarVendaTx(tx *gorm.DB, usuarioID uuid.UUID, valor decimal.Decimal, observacao string) error {
	if !valor.IsPositive() {
		return apperr.Validation("valor da venda deve ser maior que zero")
	}
	caixa, err := s.repo.FindAbertoPorUsuarioTx(tx, usuarioID)
	if err != nil {
		log.Warn().
			Str("usuario_id", usuarioID.String()).
			Str("valor", valor.StringFixed(2)).
			Msg("venda em dinheiro sem caixa aberto; lançamento não registrado")
		return nil
	}

	l := &model.LancamentoCaixa{
		CaixaID:    caixa.ID,
		Tipo:       model.LancamentoVenda,
		Valor:      valor,
		Observacao: observacao,
		Data:       timeutil.NowBrasil(),
	}
	return s.repo.CreateLancamentoTx(tx, l)
}

// ── Status ────────────────────────────────────────────────────────────────────

func (s *caixaService) Status(ctx context.Context, usuarioID uuid.UUID) (*dto.StatusCaixaResponse, error) {
	caixa, err := s.repo.FindAbertoPorUsuario(ctx, usuarioID)
	if err != nil {
		return &dto.StatusCaixaResponse{TemCaixaAberto: false}, nil
	}

	resumo, err := s.montarResumoTx(s.lancamentoDB(ctx), caixa)
	if err != nil {
		return nil, err
	}
	lancamentos, err := s.repo.ListLancamentos(ctx, caixa.ID, 10)
	if err != nil {
		return nil, apperr.Internal("falha ao listar lançamentos", err)
	}
	ultimos := make([]dto.LancamentoResponse, 0, len(lancamentos))
	for i := range lancamentos {
		ultimos = append(ultimos, *lancamentoToResponse(&lancamentos[i]))
	}

	return &dto.StatusCaixaResponse{
		TemCaixaAberto:     true,
		Caixa:              caixaToResponse(caixa),
		Resumo:             resumo,
		UltimosLancamentos: ultimos,
	}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// montarResumoTx aplica a fórmula única de reconciliação:
// saldoInicial + vendas − |sangrias| + suprimentos.
func (s *caixaService) montarResumoTx(tx *gorm.DB, caixa *model.Caixa) (*dto.ResumoCaixa, error) {
	vendas, err := s.repo.SumLancamentosPorTipoTx(tx, caixa.ID, model.LancamentoVenda)
	if err != nil {
		return nil, apperr.Internal("falha ao somar vendas", err)
	}
	sangrias, err := s.repo.SumLancamentosPorTipoTx(tx, caixa.ID, model.LancamentoSangria)
	if err != nil {
		return nil, apperr.Internal("falha ao somar sangrias", err)
	}
	suprimentos, err := s.repo.SumLancamentosPorTipoTx(tx, caixa.ID, model.LancamentoSuprimento)
	if err != nil {
		return nil, apperr.Internal("falha ao somar suprimentos", err)
	}
	total, err := s.repo.CountLancamentosTx(tx, caixa.ID)
	if err != nil {
		return nil, apperr.Internal("falha ao contar lançamentos", err)
	}

	// Sangrias são persistidas negativas; o resumo expõe a magnitude.
	sangriasAbs := sangrias.Abs()
	esperado := caixa.SaldoInicial.Add(vendas).Sub(sangriasAbs).Add(suprimentos)

	return &dto.ResumoCaixa{
		SaldoInicial:          caixa.SaldoInicial,
		VendasDinheiro:        vendas,
		Sangrias:              sangriasAbs,
		Suprimentos:           suprimentos,
		SaldoEsperadoDinheiro: esperado,
		TotalLancamentos:      int(total),
	}, nil
}

// lancamentoDB devolve o handle fora de transação (nil em modo de teste).
func (s *caixaService) lancamentoDB(ctx context.Context) *gorm.DB {
	if s.repo.DB() == nil {
		return nil
	}
	return s.repo.DB().WithContext(ctx)
}

func caixaToResponse(c *model.Caixa) *dto.CaixaResponse {
	resp := &dto.CaixaResponse{
		ID:                 c.ID.String(),
		UsuarioID:          c.UsuarioID.String(),
		SaldoInicial:       c.SaldoInicial,
		Status:             string(c.Status),
		DataAbertura:       timeutil.FormatBrasil(c.DataAbertura),
		SaldoFinalDinheiro: c.SaldoFinalDinheiro,
		SaldoFinalCartao:   c.SaldoFinalCartao,
		Observacao:         c.Observacao,
	}
	if c.Usuario != nil {
		resp.UsuarioNome = c.Usuario.Nome
	}
	if c.DataFechamento != nil {
		t := timeutil.FormatBrasil(*c.DataFechamento)
		resp.DataFechamento = &t
	}
	return resp
}

func lancamentoToResponse(l *model.LancamentoCaixa) *dto.LancamentoResponse {
	return &dto.LancamentoResponse{
		ID:         l.ID.String(),
		Tipo:       string(l.Tipo),
		Valor:      l.Valor,
		Observacao: l.Observacao,
		Data:       timeutil.FormatBrasil(l.Data),
	}
}

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"
	"github.com/jeffersonaandrade/pousada-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type financeiroFixture struct {
	svc      service.FinanceiroService
	repo     *stubFinanceiroRepo
	caixas   *stubCaixaRepo
	usuarios *stubUsuarioRepo
}

func buildFinanceiroSvc() *financeiroFixture {
	f := &financeiroFixture{
		repo:     newStubFinanceiroRepo(),
		caixas:   newStubCaixaRepo(),
		usuarios: newStubUsuarioRepo(),
	}
	caixaSvc := service.NewCaixaService(f.caixas, f.usuarios)
	f.svc = service.NewFinanceiroService(f.repo, caixaSvc)
	return f
}

func seedCategoria(r *stubFinanceiroRepo, nome string, tipo model.TipoCategoria) *model.CategoriaFinanceira {
	c := &model.CategoriaFinanceira{ID: uuid.New(), Nome: nome, Tipo: tipo}
	r.categorias[c.ID] = c
	return c
}

func TestCriarContaPagarDerivaStatus(t *testing.T) {
	f := buildFinanceiroSvc()
	ctx := context.Background()
	cat := seedCategoria(f.repo, "Fornecedores", model.CategoriaDespesa)
	agora := timeutil.NowBrasil()

	atrasada, err := f.svc.CriarContaPagar(ctx, dto.CriarContaPagarRequest{
		Descricao:      "Conta de luz",
		Valor:          decimal.NewFromInt(300),
		DataVencimento: agora.AddDate(0, 0, -2),
		CategoriaID:    cat.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, string(model.ContaAtrasada), atrasada.Status)

	pendente, err := f.svc.CriarContaPagar(ctx, dto.CriarContaPagarRequest{
		Descricao:      "Aluguel",
		Valor:          decimal.NewFromInt(2000),
		DataVencimento: agora.AddDate(0, 0, 5),
		CategoriaID:    cat.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, string(model.ContaPendente), pendente.Status)
}

func TestCriarContaPagarCategoriaDeReceita(t *testing.T) {
	f := buildFinanceiroSvc()
	cat := seedCategoria(f.repo, "Hospedagem", model.CategoriaReceita)

	_, err := f.svc.CriarContaPagar(context.Background(), dto.CriarContaPagarRequest{
		Descricao:      "Conta errada",
		Valor:          decimal.NewFromInt(100),
		DataVencimento: timeutil.NowBrasil().AddDate(0, 0, 1),
		CategoriaID:    cat.ID.String(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
	assert.Contains(t, err.Error(), "esta conta exige DESPESA")
}

func TestContaPagaEhImutavel(t *testing.T) {
	f := buildFinanceiroSvc()
	ctx := context.Background()
	cat := seedCategoria(f.repo, "Manutenção", model.CategoriaDespesa)

	conta, err := f.svc.CriarContaPagar(ctx, dto.CriarContaPagarRequest{
		Descricao:      "Reparo da bomba",
		Valor:          decimal.NewFromInt(450),
		DataVencimento: timeutil.NowBrasil().AddDate(0, 0, 3),
		CategoriaID:    cat.ID.String(),
	})
	require.NoError(t, err)
	id := uuid.MustParse(conta.ID)

	paga, err := f.svc.PagarConta(ctx, id, dto.PagarContaRequest{MetodoPagamento: "PIX"})
	require.NoError(t, err)
	assert.Equal(t, string(model.ContaPaga), paga.Status)
	require.NotNil(t, paga.DataPagamento)

	_, err = f.svc.PagarConta(ctx, id, dto.PagarContaRequest{MetodoPagamento: "PIX"})
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))

	nova := "Outra descrição"
	_, err = f.svc.AtualizarContaPagar(ctx, id, dto.AtualizarContaPagarRequest{Descricao: &nova})
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))

	err = f.svc.RemoverContaPagar(ctx, id)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
}

func TestPagarContaEmDinheiroRegistraSangria(t *testing.T) {
	f := buildFinanceiroSvc()
	ctx := context.Background()

	operador := seedUsuario(f.usuarios, "Caixa", "8888", model.CargoGerente)
	caixaSvc := service.NewCaixaService(f.caixas, f.usuarios)
	_, err := caixaSvc.Abrir(ctx, operador.ID, dto.AbrirCaixaRequest{SaldoInicial: decimal.NewFromInt(500)})
	require.NoError(t, err)

	cat := seedCategoria(f.repo, "Insumos", model.CategoriaDespesa)
	conta, err := f.svc.CriarContaPagar(ctx, dto.CriarContaPagarRequest{
		Descricao:      "Gelo e bebidas",
		Valor:          decimal.NewFromInt(200),
		DataVencimento: timeutil.NowBrasil(),
		CategoriaID:    cat.ID.String(),
	})
	require.NoError(t, err)

	_, err = f.svc.PagarConta(ctx, uuid.MustParse(conta.ID), dto.PagarContaRequest{
		MetodoPagamento: "DINHEIRO",
		UsuarioID:       operador.ID.String(),
	})
	require.NoError(t, err)

	require.Len(t, f.caixas.lancamentos, 1)
	l := f.caixas.lancamentos[0]
	assert.Equal(t, model.LancamentoSangria, l.Tipo)
	assert.True(t, l.Valor.Equal(decimal.NewFromInt(-200)))
	assert.Contains(t, l.Observacao, "Gelo e bebidas")
}

func TestReceberConta(t *testing.T) {
	f := buildFinanceiroSvc()
	ctx := context.Background()
	cat := seedCategoria(f.repo, "Eventos", model.CategoriaReceita)

	conta, err := f.svc.CriarContaReceber(ctx, dto.CriarContaReceberRequest{
		Descricao:      "Aluguel do salão",
		Valor:          decimal.NewFromInt(900),
		DataVencimento: timeutil.NowBrasil().AddDate(0, 0, 10),
		CategoriaID:    cat.ID.String(),
		Origem:         "OUTROS",
	})
	require.NoError(t, err)
	id := uuid.MustParse(conta.ID)

	recebida, err := f.svc.ReceberConta(ctx, id, dto.ReceberContaRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(model.ContaRecebida), recebida.Status)
	require.NotNil(t, recebida.DataRecebimento)

	_, err = f.svc.ReceberConta(ctx, id, dto.ReceberContaRequest{})
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
	err = f.svc.RemoverContaReceber(ctx, id)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
}

func TestCategoriaComContasVinculadas(t *testing.T) {
	f := buildFinanceiroSvc()
	ctx := context.Background()
	cat := seedCategoria(f.repo, "Limpeza", model.CategoriaDespesa)

	_, err := f.svc.CriarContaPagar(ctx, dto.CriarContaPagarRequest{
		Descricao:      "Produtos de limpeza",
		Valor:          decimal.NewFromInt(150),
		DataVencimento: timeutil.NowBrasil().AddDate(0, 0, 7),
		CategoriaID:    cat.ID.String(),
	})
	require.NoError(t, err)

	err = f.svc.RemoverCategoria(ctx, cat.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))

	receita := "RECEITA"
	_, err = f.svc.AtualizarCategoria(ctx, cat.ID, dto.AtualizarCategoriaRequest{Tipo: &receita})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))

	// Renomear segue permitido.
	nome := "Limpeza e Higiene"
	atualizada, err := f.svc.AtualizarCategoria(ctx, cat.ID, dto.AtualizarCategoriaRequest{Nome: &nome})
	require.NoError(t, err)
	assert.Equal(t, nome, atualizada.Nome)
}

func TestDashboardClassificaFaixas(t *testing.T) {
	f := buildFinanceiroSvc()
	ctx := context.Background()
	despesa := seedCategoria(f.repo, "Geral", model.CategoriaDespesa)
	receita := seedCategoria(f.repo, "Vendas", model.CategoriaReceita)
	agora := timeutil.NowBrasil()

	criaPagar := func(desc string, venc time.Time, valor int64) *dto.ContaPagarResponse {
		c, err := f.svc.CriarContaPagar(ctx, dto.CriarContaPagarRequest{
			Descricao: desc, Valor: decimal.NewFromInt(valor),
			DataVencimento: venc, CategoriaID: despesa.ID.String(),
		})
		require.NoError(t, err)
		return c
	}

	criaPagar("Vencida", agora.AddDate(0, 0, -3), 100)
	criaPagar("Hoje", agora, 50)
	criaPagar("Futura", agora.AddDate(0, 0, 3), 200)
	quitada := criaPagar("Quitada", agora.AddDate(0, 0, 3), 999)
	_, err := f.svc.PagarConta(ctx, uuid.MustParse(quitada.ID), dto.PagarContaRequest{MetodoPagamento: "PIX"})
	require.NoError(t, err)

	_, err = f.svc.CriarContaReceber(ctx, dto.CriarContaReceberRequest{
		Descricao: "Receber futura", Valor: decimal.NewFromInt(70),
		DataVencimento: agora.AddDate(0, 0, 2), CategoriaID: receita.ID.String(),
		Origem: "HOSPEDE",
	})
	require.NoError(t, err)

	dash, err := f.svc.Dashboard(ctx)
	require.NoError(t, err)

	// Contas pagas ficam fora de todas as faixas.
	assert.Equal(t, 1, dash.ContasPagar.Vencidas.Quantidade)
	assert.True(t, dash.ContasPagar.Vencidas.Valor.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, dash.ContasPagar.Hoje.Quantidade)
	assert.Equal(t, 1, dash.ContasPagar.Futuras.Quantidade)
	assert.Equal(t, 3, dash.ContasPagar.Total.Quantidade)
	assert.True(t, dash.ContasPagar.Total.Valor.Equal(decimal.NewFromInt(350)))

	assert.Equal(t, 1, dash.ContasReceber.Futuras.Quantidade)
	assert.Equal(t, 1, dash.ContasReceber.Total.Quantidade)
}

func TestListarPromoveVencidas(t *testing.T) {
	f := buildFinanceiroSvc()
	ctx := context.Background()
	cat := seedCategoria(f.repo, "Diversos", model.CategoriaDespesa)

	// Conta criada PENDENTE cujo vencimento já passou deve aparecer ATRASADO
	// na listagem seguinte.
	c := &model.ContaPagar{
		ID:             uuid.New(),
		Descricao:      "Esquecida",
		Valor:          decimal.NewFromInt(10),
		DataVencimento: timeutil.NowBrasil().AddDate(0, 0, -1),
		CategoriaID:    cat.ID,
		Status:         model.ContaPendente,
	}
	f.repo.pagar[c.ID] = c

	contas, err := f.svc.ListarContasPagar(ctx, dto.ContaFilter{})
	require.NoError(t, err)
	require.Len(t, contas, 1)
	assert.Equal(t, string(model.ContaAtrasada), contas[0].Status)
}

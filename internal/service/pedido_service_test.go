package service_test

import (
	"context"
	"testing"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pedidoFixture struct {
	svc      service.PedidoService
	pedidos  *stubPedidoRepo
	produtos *stubProdutoRepo
	hospedes *stubHospedeRepo
	usuarios *stubUsuarioRepo
	notifier *fakeNotifier
}

func buildPedidoSvc() *pedidoFixture {
	f := &pedidoFixture{
		pedidos:  newStubPedidoRepo(),
		produtos: newStubProdutoRepo(),
		hospedes: newStubHospedeRepo(),
		usuarios: newStubUsuarioRepo(),
		notifier: &fakeNotifier{},
	}
	f.svc = service.NewPedidoService(
		f.pedidos, f.produtos, f.hospedes,
		service.NewUsuarioService(f.usuarios), f.notifier)
	return f
}

func seedProduto(r *stubProdutoRepo, nome string, preco float64, estoque int) *model.Produto {
	p := &model.Produto{
		ID:              uuid.New(),
		Nome:            nome,
		Preco:           decimal.NewFromFloat(preco),
		Estoque:         estoque,
		VisivelCardapio: true,
	}
	r.produtos[p.ID] = p
	return p
}

func seedHospede(r *stubHospedeRepo, nome, pulseira string, tipo model.TipoHospede) *model.Hospede {
	h := &model.Hospede{
		ID:          uuid.New(),
		Tipo:        tipo,
		Nome:        nome,
		DividaAtual: decimal.Zero,
		Ativo:       true,
		Origem:      "BALCAO",
	}
	if pulseira != "" {
		h.UIDPulseira = &pulseira
	}
	r.hospedes[h.ID] = h
	return h
}

func TestCriarPedidosNFC(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	seedHospede(f.hospedes, "Maria", "PULSEIRA01", model.TipoHospedeResidente)
	cerveja := seedProduto(f.produtos, "Cerveja", 8.50, 10)

	resp, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		UIDPulseira: "PULSEIRA01",
		Items:       []dto.ItemPedidoRequest{{ProdutoID: cerveja.ID.String(), Quantidade: 3}},
	})
	require.NoError(t, err)

	// Cada unidade vira uma linha própria, com o preço congelado na criação.
	require.Len(t, resp, 3)
	for _, p := range resp {
		assert.True(t, p.Valor.Equal(decimal.NewFromFloat(8.50)))
		assert.Equal(t, string(model.PedidoPendente), p.Status)
		assert.Equal(t, string(model.CriacaoNFC), p.Metodo)
	}

	assert.Equal(t, 7, f.produtos.produtos[cerveja.ID].Estoque)
	for _, h := range f.hospedes.hospedes {
		assert.True(t, h.DividaAtual.Equal(decimal.NewFromFloat(25.50)))
	}
	assert.Equal(t, []string{"new_order", "new_order", "new_order"}, f.notifier.eventos)
}

func TestCriarPedidosEstoqueInsuficiente(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	h := seedHospede(f.hospedes, "José", "PULSEIRA02", model.TipoHospedeResidente)
	agua := seedProduto(f.produtos, "Água", 5.00, 3)

	_, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		UIDPulseira: "PULSEIRA02",
		Items:       []dto.ItemPedidoRequest{{ProdutoID: agua.ID.String(), Quantidade: 5}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
	assert.Contains(t, err.Error(), "estoque insuficiente")

	// Nada muda quando o lote falha.
	assert.Equal(t, 3, f.produtos.produtos[agua.ID].Estoque)
	assert.True(t, f.hospedes.hospedes[h.ID].DividaAtual.IsZero())
	assert.Empty(t, f.pedidos.pedidos)
	assert.Empty(t, f.notifier.eventos)
}

func TestCriarPedidosProdutoEsgotado(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	seedHospede(f.hospedes, "Ana", "PULSEIRA03", model.TipoHospedeResidente)
	suco := seedProduto(f.produtos, "Suco", 7.00, 0)

	_, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		UIDPulseira: "PULSEIRA03",
		Items:       []dto.ItemPedidoRequest{{ProdutoID: suco.ID.String(), Quantidade: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
	assert.Contains(t, err.Error(), "esgotado")
}

func TestCriarPedidosManualExigeAutorizacao(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	seedUsuario(f.usuarios, "Carlos", "4321", model.CargoGarcom)
	gerente := seedUsuario(f.usuarios, "Paula", "1234", model.CargoGerente)

	h := seedHospede(f.hospedes, "Pedro", "", model.TipoHospedeResidente)
	feijoada := seedProduto(f.produtos, "Feijoada", 45.00, 5)

	item := []dto.ItemPedidoRequest{{ProdutoID: feijoada.ID.String(), Quantidade: 1}}

	_, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		HospedeID: h.ID.String(), Metodo: "MANUAL", Items: item,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		HospedeID: h.ID.String(), Metodo: "MANUAL", GerentePin: "4321", Items: item,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	resp, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		HospedeID: h.ID.String(), Metodo: "MANUAL", GerentePin: "1234", Items: item,
	})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].GerenteID)
	assert.Equal(t, gerente.ID.String(), *resp[0].GerenteID)
}

func TestCriarPedidosLimiteDayUse(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	h := seedHospede(f.hospedes, "Lucas", "PULSEIRA04", model.TipoHospedeDayUse)
	limite := decimal.NewFromInt(50)
	h.LimiteGasto = &limite
	h.DividaAtual = decimal.NewFromInt(45)

	caipirinha := seedProduto(f.produtos, "Caipirinha", 10.00, 20)

	_, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		UIDPulseira: "PULSEIRA04",
		Items:       []dto.ItemPedidoRequest{{ProdutoID: caipirinha.ID.String(), Quantidade: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.Contains(t, err.Error(), "limite de gasto excedido")
	assert.True(t, f.hospedes.hospedes[h.ID].DividaAtual.Equal(decimal.NewFromInt(45)))

	// Consumo que encosta no limite sem ultrapassar passa.
	refrigerante := seedProduto(f.produtos, "Refrigerante", 5.00, 20)
	_, err = f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		UIDPulseira: "PULSEIRA04",
		Items:       []dto.ItemPedidoRequest{{ProdutoID: refrigerante.ID.String(), Quantidade: 1}},
	})
	require.NoError(t, err)
	assert.True(t, f.hospedes.hospedes[h.ID].DividaAtual.Equal(decimal.NewFromInt(50)))
}

// stubHospedeRepoCorrida simula um pedido concorrente entre a leitura prévia e
// a releitura dentro da transação: o incremento é retido (em produção a
// transação abortada o reverteria) e a releitura devolve a dívida acrescida do
// incremento retido mais o valor que o pedido concorrente teria gravado.
type stubHospedeRepoCorrida struct {
	*stubHospedeRepo
	concorrente decimal.Decimal
	retido      decimal.Decimal
}

func (r *stubHospedeRepoCorrida) IncrementarDividaTx(_ *gorm.DB, _ uuid.UUID, delta decimal.Decimal) error {
	r.retido = r.retido.Add(delta)
	return nil
}

func (r *stubHospedeRepoCorrida) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Hospede, error) {
	h, err := r.stubHospedeRepo.FindByIDTx(tx, id)
	if err != nil {
		return nil, err
	}
	h.DividaAtual = h.DividaAtual.Add(r.retido).Add(r.concorrente)
	return h, nil
}

func TestCriarPedidosLimiteRevalidadoNaTransacao(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	hospedes := &stubHospedeRepoCorrida{
		stubHospedeRepo: f.hospedes,
		concorrente:     decimal.NewFromInt(15),
	}
	f.svc = service.NewPedidoService(
		f.pedidos, f.produtos, hospedes,
		service.NewUsuarioService(f.usuarios), f.notifier)

	h := seedHospede(f.hospedes, "Bruno", "PULSEIRA09", model.TipoHospedeDayUse)
	limite := decimal.NewFromInt(50)
	h.LimiteGasto = &limite
	h.DividaAtual = decimal.NewFromInt(30)

	caipirinha := seedProduto(f.produtos, "Caipirinha", 10.00, 20)

	// Pré-cheque vê 30 + 10 = 40 dentro do limite, mas a releitura dentro da
	// transação observa também os 15 do pedido concorrente: 55 > 50.
	_, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		UIDPulseira: "PULSEIRA09",
		Items:       []dto.ItemPedidoRequest{{ProdutoID: caipirinha.ID.String(), Quantidade: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.Contains(t, err.Error(), "limite de gasto excedido")

	// O lote inteiro aborta: dívida gravada intacta, estoque intacto, nenhuma
	// linha de pedido e nenhum evento emitido.
	assert.True(t, f.hospedes.hospedes[h.ID].DividaAtual.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 20, f.produtos.produtos[caipirinha.ID].Estoque)
	assert.Empty(t, f.pedidos.pedidos)
	assert.Empty(t, f.notifier.eventos)
}

func TestCriarPedidosHospedeInativo(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	h := seedHospede(f.hospedes, "Rita", "", model.TipoHospedeResidente)
	h.Ativo = false
	p := seedProduto(f.produtos, "Café", 4.00, 10)

	_, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		HospedeID: h.ID.String(),
		Items:     []dto.ItemPedidoRequest{{ProdutoID: p.ID.String()}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
}

func TestAtualizarStatusTimestamps(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	seedHospede(f.hospedes, "Bruno", "PULSEIRA05", model.TipoHospedeResidente)
	p := seedProduto(f.produtos, "Hambúrguer", 30.00, 5)
	resp, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		UIDPulseira: "PULSEIRA05",
		Items:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String()}},
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp[0].ID)

	atual, err := f.svc.AtualizarStatus(ctx, id, model.PedidoPreparando)
	require.NoError(t, err)
	require.NotNil(t, atual.DataInicioPreparo)
	inicioPreparo := *atual.DataInicioPreparo

	atual, err = f.svc.AtualizarStatus(ctx, id, model.PedidoPronto)
	require.NoError(t, err)
	require.NotNil(t, atual.DataPronto)

	// Voltar para PREPARANDO não regrava o início do preparo.
	atual, err = f.svc.AtualizarStatus(ctx, id, model.PedidoPreparando)
	require.NoError(t, err)
	require.NotNil(t, atual.DataInicioPreparo)
	assert.Equal(t, inicioPreparo, *atual.DataInicioPreparo)

	assert.Contains(t, f.notifier.eventos, "order_updated")
}

func TestAtualizarStatusNaoCancela(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	seedHospede(f.hospedes, "Clara", "PULSEIRA06", model.TipoHospedeResidente)
	p := seedProduto(f.produtos, "Batata", 15.00, 5)
	resp, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		UIDPulseira: "PULSEIRA06",
		Items:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String()}},
	})
	require.NoError(t, err)

	_, err = f.svc.AtualizarStatus(ctx, uuid.MustParse(resp[0].ID), model.PedidoCancelado)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
	assert.Contains(t, err.Error(), "cancelamento exige autorização")
}

func TestCancelarReverteEstoqueEDivida(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	seedUsuario(f.usuarios, "Paula", "1234", model.CargoGerente)
	h := seedHospede(f.hospedes, "Diego", "PULSEIRA07", model.TipoHospedeResidente)
	p := seedProduto(f.produtos, "Porção", 25.00, 4)

	resp, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		UIDPulseira: "PULSEIRA07",
		Items:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String()}},
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp[0].ID)
	assert.Equal(t, 3, f.produtos.produtos[p.ID].Estoque)

	cancelado, err := f.svc.Cancelar(ctx, id, "1234")
	require.NoError(t, err)
	assert.Equal(t, string(model.PedidoCancelado), cancelado.Status)

	assert.Equal(t, 4, f.produtos.produtos[p.ID].Estoque)
	assert.True(t, f.hospedes.hospedes[h.ID].DividaAtual.IsZero())
	assert.Contains(t, f.notifier.eventos, "order_cancelled")

	// Cancelamento é terminal.
	_, err = f.svc.Cancelar(ctx, id, "1234")
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
	_, err = f.svc.AtualizarStatus(ctx, id, model.PedidoEntregue)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
}

func TestCancelarPinInvalido(t *testing.T) {
	f := buildPedidoSvc()
	ctx := context.Background()

	seedUsuario(f.usuarios, "Paula", "1234", model.CargoGerente)
	seedHospede(f.hospedes, "Igor", "PULSEIRA08", model.TipoHospedeResidente)
	p := seedProduto(f.produtos, "Pastel", 12.00, 4)

	resp, err := f.svc.CriarPedidos(ctx, dto.CriarPedidosRequest{
		UIDPulseira: "PULSEIRA08",
		Items:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String()}},
	})
	require.NoError(t, err)

	_, err = f.svc.Cancelar(ctx, uuid.MustParse(resp[0].ID), "0000")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.Equal(t, 3, f.produtos.produtos[p.ID].Estoque)
}

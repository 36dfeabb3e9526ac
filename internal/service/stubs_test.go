package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/repository"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

// ── stubUsuarioRepo ───────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context, incluirInativos bool) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if !incluirInativos && !u.Ativo {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAtivos(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Ativo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Desativar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errNotFound
	}
	u.Ativo = false
	return nil
}

func (r *stubUsuarioRepo) DB() *gorm.DB { return nil }

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// seedUsuario cadastra um funcionário com PIN em claro, como o serviço faria.
func seedUsuario(r *stubUsuarioRepo, nome, pin string, cargo model.Cargo) *model.Usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	u := &model.Usuario{ID: uuid.New(), Nome: nome, PinHash: string(hash), Cargo: cargo, Ativo: true}
	r.usuarios[u.ID] = u
	return u
}

// ── stubHospedeRepo ───────────────────────────────────────────────────────────

type stubHospedeRepo struct {
	hospedes map[uuid.UUID]*model.Hospede
}

func newStubHospedeRepo() *stubHospedeRepo {
	return &stubHospedeRepo{hospedes: make(map[uuid.UUID]*model.Hospede)}
}

func (r *stubHospedeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Hospede, error) {
	h, ok := r.hospedes[id]
	if !ok {
		return nil, errNotFound
	}
	copia := *h
	return &copia, nil
}

func (r *stubHospedeRepo) FindAtivoPorPulseira(_ context.Context, uid string) (*model.Hospede, error) {
	return r.porPulseira(uid)
}

func (r *stubHospedeRepo) porPulseira(uid string) (*model.Hospede, error) {
	for _, h := range r.hospedes {
		if h.Ativo && h.UIDPulseira != nil && *h.UIDPulseira == uid {
			copia := *h
			return &copia, nil
		}
	}
	return nil, errNotFound
}

func (r *stubHospedeRepo) List(_ context.Context, filter dto.HospedeFilter) ([]model.Hospede, int64, error) {
	var out []model.Hospede
	for _, h := range r.hospedes {
		if filter.Ativo != nil && h.Ativo != *filter.Ativo {
			continue
		}
		out = append(out, *h)
	}
	return out, int64(len(out)), nil
}

func (r *stubHospedeRepo) Update(_ context.Context, h *model.Hospede) error {
	r.hospedes[h.ID] = h
	return nil
}

func (r *stubHospedeRepo) Desativar(_ context.Context, id uuid.UUID) error {
	h, ok := r.hospedes[id]
	if !ok {
		return errNotFound
	}
	h.Ativo = false
	return nil
}

func (r *stubHospedeRepo) ZerarDivida(_ context.Context, id uuid.UUID) error {
	h, ok := r.hospedes[id]
	if !ok {
		return errNotFound
	}
	h.DividaAtual = decimal.Zero
	return nil
}

func (r *stubHospedeRepo) CreateTx(_ *gorm.DB, h *model.Hospede) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	copia := *h
	r.hospedes[h.ID] = &copia
	return nil
}

func (r *stubHospedeRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Hospede, error) {
	h, ok := r.hospedes[id]
	if !ok {
		return nil, errNotFound
	}
	copia := *h
	return &copia, nil
}

func (r *stubHospedeRepo) FindAtivoPorPulseiraTx(_ *gorm.DB, uid string) (*model.Hospede, error) {
	return r.porPulseira(uid)
}

func (r *stubHospedeRepo) IncrementarDividaTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	h, ok := r.hospedes[id]
	if !ok {
		return errNotFound
	}
	h.DividaAtual = h.DividaAtual.Add(delta)
	return nil
}

func (r *stubHospedeRepo) EncerrarTx(_ *gorm.DB, id uuid.UUID, dataCheckout time.Time) error {
	h, ok := r.hospedes[id]
	if !ok {
		return errNotFound
	}
	h.DividaAtual = decimal.Zero
	h.Ativo = false
	h.UIDPulseira = nil
	h.DataCheckout = &dataCheckout
	return nil
}

func (r *stubHospedeRepo) DB() *gorm.DB { return nil }

var _ repository.HospedeRepository = (*stubHospedeRepo)(nil)

// ── stubQuartoRepo ────────────────────────────────────────────────────────────
// Conta hóspedes ativos consultando o stub de hóspedes compartilhado.

type stubQuartoRepo struct {
	quartos  map[uuid.UUID]*model.Quarto
	hospedes *stubHospedeRepo
}

func newStubQuartoRepo(hospedes *stubHospedeRepo) *stubQuartoRepo {
	return &stubQuartoRepo{quartos: make(map[uuid.UUID]*model.Quarto), hospedes: hospedes}
}

func (r *stubQuartoRepo) Create(_ context.Context, q *model.Quarto) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	r.quartos[q.ID] = q
	return nil
}

func (r *stubQuartoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Quarto, error) {
	q, ok := r.quartos[id]
	if !ok {
		return nil, errNotFound
	}
	return q, nil
}

func (r *stubQuartoRepo) FindByNumero(_ context.Context, numero string) (*model.Quarto, error) {
	for _, q := range r.quartos {
		if q.Numero == numero {
			return q, nil
		}
	}
	return nil, errNotFound
}

func (r *stubQuartoRepo) List(_ context.Context) ([]model.Quarto, error) {
	var out []model.Quarto
	for _, q := range r.quartos {
		out = append(out, *q)
	}
	return out, nil
}

func (r *stubQuartoRepo) Update(_ context.Context, q *model.Quarto) error {
	r.quartos[q.ID] = q
	return nil
}

func (r *stubQuartoRepo) HospedeAtivo(_ context.Context, quartoID uuid.UUID) (*model.Hospede, error) {
	for _, h := range r.hospedes.hospedes {
		if h.Ativo && h.QuartoID != nil && *h.QuartoID == quartoID {
			return h, nil
		}
	}
	return nil, errNotFound
}

func (r *stubQuartoRepo) contarAtivos(quartoID uuid.UUID, exceto *uuid.UUID) int64 {
	var n int64
	for _, h := range r.hospedes.hospedes {
		if !h.Ativo || h.QuartoID == nil || *h.QuartoID != quartoID {
			continue
		}
		if exceto != nil && h.ID == *exceto {
			continue
		}
		n++
	}
	return n
}

func (r *stubQuartoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Quarto, error) {
	q, ok := r.quartos[id]
	if !ok {
		return nil, errNotFound
	}
	return q, nil
}

func (r *stubQuartoRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status model.StatusQuarto) error {
	q, ok := r.quartos[id]
	if !ok {
		return errNotFound
	}
	q.Status = status
	return nil
}

func (r *stubQuartoRepo) CountHospedesAtivosTx(_ *gorm.DB, quartoID uuid.UUID, excetoHospede *uuid.UUID) (int64, error) {
	return r.contarAtivos(quartoID, excetoHospede), nil
}

func (r *stubQuartoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.quartos, id)
	return nil
}

func (r *stubQuartoRepo) DB() *gorm.DB { return nil }

var _ repository.QuartoRepository = (*stubQuartoRepo)(nil)

// ── stubProdutoRepo ───────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos     map[uuid.UUID]*model.Produto
	pedidosCount map[uuid.UUID]int64
	perdasCount  map[uuid.UUID]int64
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{
		produtos:     make(map[uuid.UUID]*model.Produto),
		pedidosCount: make(map[uuid.UUID]int64),
		perdasCount:  make(map[uuid.UUID]int64),
	}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, errNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubProdutoRepo) List(_ context.Context, _ dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.produtos, id)
	return nil
}

func (r *stubProdutoRepo) AjustarEstoque(_ context.Context, id uuid.UUID, delta int) error {
	return r.ajustar(id, delta)
}

func (r *stubProdutoRepo) ajustar(id uuid.UUID, delta int) error {
	p, ok := r.produtos[id]
	if !ok {
		return errNotFound
	}
	p.Estoque += delta
	return nil
}

func (r *stubProdutoRepo) CountPedidos(_ context.Context, produtoID uuid.UUID) (int64, error) {
	return r.pedidosCount[produtoID], nil
}

func (r *stubProdutoRepo) CountPerdas(_ context.Context, produtoID uuid.UUID) (int64, error) {
	return r.perdasCount[produtoID], nil
}

func (r *stubProdutoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, errNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubProdutoRepo) FindByNomeTx(_ *gorm.DB, nome string) (*model.Produto, error) {
	for _, p := range r.produtos {
		if p.Nome == nome {
			copia := *p
			return &copia, nil
		}
	}
	return nil, errNotFound
}

func (r *stubProdutoRepo) CreateTx(_ *gorm.DB, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	copia := *p
	r.produtos[p.ID] = &copia
	return nil
}

func (r *stubProdutoRepo) AjustarEstoqueTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	return r.ajustar(id, delta)
}

func (r *stubProdutoRepo) AtualizarPrecoTx(_ *gorm.DB, id uuid.UUID, preco decimal.Decimal) error {
	p, ok := r.produtos[id]
	if !ok {
		return errNotFound
	}
	p.Preco = preco
	return nil
}

func (r *stubProdutoRepo) DB() *gorm.DB { return nil }

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── stubPedidoRepo ────────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, errNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubPedidoRepo) List(_ context.Context, _ dto.PedidoFilter) ([]model.Pedido, int64, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPedidoRepo) ListPorPeriodo(_ context.Context, inicio, fim time.Time) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if !p.Data.Before(inicio) && p.Data.Before(fim) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	copia := *p
	r.pedidos[p.ID] = &copia
	return nil
}

func (r *stubPedidoRepo) CreateTx(_ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	copia := *p
	r.pedidos[p.ID] = &copia
	return nil
}

func (r *stubPedidoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, errNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubPedidoRepo) UpdateTx(_ *gorm.DB, p *model.Pedido) error {
	copia := *p
	r.pedidos[p.ID] = &copia
	return nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── stubPagamentoRepo ─────────────────────────────────────────────────────────

type stubPagamentoRepo struct {
	pagamentos []model.Pagamento
}

func newStubPagamentoRepo() *stubPagamentoRepo { return &stubPagamentoRepo{} }

func (r *stubPagamentoRepo) ListByHospede(_ context.Context, hospedeID uuid.UUID) ([]model.Pagamento, error) {
	var out []model.Pagamento
	for _, p := range r.pagamentos {
		if p.HospedeID == hospedeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPagamentoRepo) CreateTx(_ *gorm.DB, p *model.Pagamento) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagamentos = append(r.pagamentos, *p)
	return nil
}

func (r *stubPagamentoRepo) SumByHospedeTx(_ *gorm.DB, hospedeID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.pagamentos {
		if p.HospedeID == hospedeID {
			total = total.Add(p.Valor)
		}
	}
	return total, nil
}

func (r *stubPagamentoRepo) DB() *gorm.DB { return nil }

var _ repository.PagamentoRepository = (*stubPagamentoRepo)(nil)

// ── stubCaixaRepo ─────────────────────────────────────────────────────────────

type stubCaixaRepo struct {
	caixas      map[uuid.UUID]*model.Caixa
	lancamentos []model.LancamentoCaixa
}

func newStubCaixaRepo() *stubCaixaRepo {
	return &stubCaixaRepo{caixas: make(map[uuid.UUID]*model.Caixa)}
}

func (r *stubCaixaRepo) FindAbertoPorUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Caixa, error) {
	return r.aberto(usuarioID)
}

func (r *stubCaixaRepo) aberto(usuarioID uuid.UUID) (*model.Caixa, error) {
	for _, c := range r.caixas {
		if c.UsuarioID == usuarioID && c.Status == model.CaixaAberto {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *stubCaixaRepo) ListLancamentos(_ context.Context, caixaID uuid.UUID, limit int) ([]model.LancamentoCaixa, error) {
	var out []model.LancamentoCaixa
	for _, l := range r.lancamentos {
		if l.CaixaID == caixaID {
			out = append(out, l)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubCaixaRepo) CreateTx(_ *gorm.DB, c *model.Caixa) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.caixas[c.ID] = c
	return nil
}

func (r *stubCaixaRepo) UpdateTx(_ *gorm.DB, c *model.Caixa) error {
	r.caixas[c.ID] = c
	return nil
}

func (r *stubCaixaRepo) FindAbertoPorUsuarioTx(_ *gorm.DB, usuarioID uuid.UUID) (*model.Caixa, error) {
	return r.aberto(usuarioID)
}

func (r *stubCaixaRepo) CreateLancamentoTx(_ *gorm.DB, l *model.LancamentoCaixa) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.lancamentos = append(r.lancamentos, *l)
	return nil
}

func (r *stubCaixaRepo) CountLancamentosTx(_ *gorm.DB, caixaID uuid.UUID) (int64, error) {
	var n int64
	for _, l := range r.lancamentos {
		if l.CaixaID == caixaID {
			n++
		}
	}
	return n, nil
}

func (r *stubCaixaRepo) SumLancamentosPorTipoTx(_ *gorm.DB, caixaID uuid.UUID, tipo model.TipoLancamento) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.lancamentos {
		if l.CaixaID == caixaID && l.Tipo == tipo {
			total = total.Add(l.Valor)
		}
	}
	return total, nil
}

func (r *stubCaixaRepo) DB() *gorm.DB { return nil }

var _ repository.CaixaRepository = (*stubCaixaRepo)(nil)

// ── stubPerdaRepo ─────────────────────────────────────────────────────────────

type stubPerdaRepo struct {
	perdas []model.PerdaEstoque
}

func newStubPerdaRepo() *stubPerdaRepo { return &stubPerdaRepo{} }

func (r *stubPerdaRepo) List(_ context.Context, _ dto.PerdaFilter) ([]model.PerdaEstoque, int64, error) {
	return r.perdas, int64(len(r.perdas)), nil
}

func (r *stubPerdaRepo) CreateTx(_ *gorm.DB, p *model.PerdaEstoque) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.perdas = append(r.perdas, *p)
	return nil
}

func (r *stubPerdaRepo) DB() *gorm.DB { return nil }

var _ repository.PerdaRepository = (*stubPerdaRepo)(nil)

// ── stubFinanceiroRepo ────────────────────────────────────────────────────────

type stubFinanceiroRepo struct {
	categorias map[uuid.UUID]*model.CategoriaFinanceira
	pagar      map[uuid.UUID]*model.ContaPagar
	receber    map[uuid.UUID]*model.ContaReceber
}

func newStubFinanceiroRepo() *stubFinanceiroRepo {
	return &stubFinanceiroRepo{
		categorias: make(map[uuid.UUID]*model.CategoriaFinanceira),
		pagar:      make(map[uuid.UUID]*model.ContaPagar),
		receber:    make(map[uuid.UUID]*model.ContaReceber),
	}
}

func (r *stubFinanceiroRepo) CreateCategoria(_ context.Context, c *model.CategoriaFinanceira) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubFinanceiroRepo) FindCategoriaByID(_ context.Context, id uuid.UUID) (*model.CategoriaFinanceira, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubFinanceiroRepo) ListCategorias(_ context.Context, tipo model.TipoCategoria) ([]model.CategoriaFinanceira, error) {
	var out []model.CategoriaFinanceira
	for _, c := range r.categorias {
		if tipo != "" && c.Tipo != tipo {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubFinanceiroRepo) UpdateCategoria(_ context.Context, c *model.CategoriaFinanceira) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubFinanceiroRepo) DeleteCategoria(_ context.Context, id uuid.UUID) error {
	delete(r.categorias, id)
	return nil
}

func (r *stubFinanceiroRepo) CountContasPorCategoria(_ context.Context, categoriaID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.pagar {
		if c.CategoriaID == categoriaID {
			n++
		}
	}
	for _, c := range r.receber {
		if c.CategoriaID == categoriaID {
			n++
		}
	}
	return n, nil
}

func (r *stubFinanceiroRepo) CreateContaPagar(_ context.Context, c *model.ContaPagar) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.pagar[c.ID] = c
	return nil
}

func (r *stubFinanceiroRepo) FindContaPagarByID(_ context.Context, id uuid.UUID) (*model.ContaPagar, error) {
	c, ok := r.pagar[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubFinanceiroRepo) ListContasPagar(_ context.Context, _ dto.ContaFilter) ([]model.ContaPagar, error) {
	var out []model.ContaPagar
	for _, c := range r.pagar {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubFinanceiroRepo) UpdateContaPagar(_ context.Context, c *model.ContaPagar) error {
	r.pagar[c.ID] = c
	return nil
}

func (r *stubFinanceiroRepo) DeleteContaPagar(_ context.Context, id uuid.UUID) error {
	delete(r.pagar, id)
	return nil
}

func (r *stubFinanceiroRepo) CreateContaReceber(_ context.Context, c *model.ContaReceber) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.receber[c.ID] = c
	return nil
}

func (r *stubFinanceiroRepo) FindContaReceberByID(_ context.Context, id uuid.UUID) (*model.ContaReceber, error) {
	c, ok := r.receber[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubFinanceiroRepo) ListContasReceber(_ context.Context, _ dto.ContaFilter) ([]model.ContaReceber, error) {
	var out []model.ContaReceber
	for _, c := range r.receber {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubFinanceiroRepo) UpdateContaReceber(_ context.Context, c *model.ContaReceber) error {
	r.receber[c.ID] = c
	return nil
}

func (r *stubFinanceiroRepo) DeleteContaReceber(_ context.Context, id uuid.UUID) error {
	delete(r.receber, id)
	return nil
}

func (r *stubFinanceiroRepo) AtualizarStatusVencidas(_ context.Context, limite time.Time) error {
	for _, c := range r.pagar {
		if c.Status == model.ContaPendente && c.DataVencimento.Before(limite) {
			c.Status = model.ContaAtrasada
		}
	}
	for _, c := range r.receber {
		if c.Status == model.ContaPendente && c.DataVencimento.Before(limite) {
			c.Status = model.ContaAtrasada
		}
	}
	return nil
}

func (r *stubFinanceiroRepo) DB() *gorm.DB { return nil }

var _ repository.FinanceiroRepository = (*stubFinanceiroRepo)(nil)

// ── fakeNotifier ──────────────────────────────────────────────────────────────

type fakeNotifier struct {
	eventos []string
}

func (n *fakeNotifier) NotificarPedido(_ context.Context, evento string, _ *model.Pedido) {
	n.eventos = append(n.eventos, evento)
}

var _ service.Notifier = (*fakeNotifier)(nil)

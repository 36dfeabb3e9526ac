package model

// Enumerações fechadas do domínio. Todos os valores são validados na borda
// de persistência via Valid(); transições de estado fazem switch exaustivo.

// TipoHospede classifica o cliente no check-in.
type TipoHospede string

const (
	TipoHospedeResidente TipoHospede = "HOSPEDE"
	TipoHospedeDayUse    TipoHospede = "DAY_USE"
	TipoHospedeVIP       TipoHospede = "VIP"
)

func (t TipoHospede) Valid() bool {
	switch t {
	case TipoHospedeResidente, TipoHospedeDayUse, TipoHospedeVIP:
		return true
	}
	return false
}

// StatusQuarto é o estado operacional de um quarto.
type StatusQuarto string

const (
	QuartoLivre      StatusQuarto = "LIVRE"
	QuartoOcupado    StatusQuarto = "OCUPADO"
	QuartoLimpeza    StatusQuarto = "LIMPEZA"
	QuartoManutencao StatusQuarto = "MANUTENCAO"
)

func (s StatusQuarto) Valid() bool {
	switch s {
	case QuartoLivre, QuartoOcupado, QuartoLimpeza, QuartoManutencao:
		return true
	}
	return false
}

// StatusPedido é a máquina de estados de um pedido.
// PENDENTE → PREPARANDO → PRONTO → ENTREGUE; CANCELADO é terminal e
// alcançável de qualquer estado não terminal.
type StatusPedido string

const (
	PedidoPendente   StatusPedido = "PENDENTE"
	PedidoPreparando StatusPedido = "PREPARANDO"
	PedidoPronto     StatusPedido = "PRONTO"
	PedidoEntregue   StatusPedido = "ENTREGUE"
	PedidoCancelado  StatusPedido = "CANCELADO"
)

func (s StatusPedido) Valid() bool {
	switch s {
	case PedidoPendente, PedidoPreparando, PedidoPronto, PedidoEntregue, PedidoCancelado:
		return true
	}
	return false
}

// MetodoCriacao indica como o pedido entrou no sistema.
type MetodoCriacao string

const (
	CriacaoNFC    MetodoCriacao = "NFC"
	CriacaoManual MetodoCriacao = "MANUAL"
)

func (m MetodoCriacao) Valid() bool {
	return m == CriacaoNFC || m == CriacaoManual
}

// MetodoPagamento cobre pagamentos de hóspede e baixas financeiras.
type MetodoPagamento string

const (
	PagamentoPix      MetodoPagamento = "PIX"
	PagamentoDinheiro MetodoPagamento = "DINHEIRO"
	PagamentoCredito  MetodoPagamento = "CARTAO"
	PagamentoDebito   MetodoPagamento = "DEBITO"
)

func (m MetodoPagamento) Valid() bool {
	switch m {
	case PagamentoPix, PagamentoDinheiro, PagamentoCredito, PagamentoDebito:
		return true
	}
	return false
}

// Cargo é o papel de um funcionário.
type Cargo string

const (
	CargoGarcom  Cargo = "WAITER"
	CargoGerente Cargo = "MANAGER"
	CargoAdmin   Cargo = "ADMIN"
	CargoLimpeza Cargo = "CLEANER"
)

func (c Cargo) Valid() bool {
	switch c {
	case CargoGarcom, CargoGerente, CargoAdmin, CargoLimpeza:
		return true
	}
	return false
}

// PodeAutorizar reports whether the role may approve manual orders and cancels.
func (c Cargo) PodeAutorizar() bool {
	return c == CargoGerente || c == CargoAdmin
}

// StatusCaixa é o estado de uma sessão de caixa.
type StatusCaixa string

const (
	CaixaAberto  StatusCaixa = "ABERTO"
	CaixaFechado StatusCaixa = "FECHADO"
)

// TipoLancamento classifica entradas do livro de caixa.
// Lançamentos são imutáveis; sangrias são gravadas com valor negativo.
type TipoLancamento string

const (
	LancamentoVenda      TipoLancamento = "VENDA"
	LancamentoSangria    TipoLancamento = "SANGRIA"
	LancamentoSuprimento TipoLancamento = "SUPRIMENTO"
)

// TipoCategoria distingue categorias financeiras de despesa e receita.
type TipoCategoria string

const (
	CategoriaDespesa TipoCategoria = "DESPESA"
	CategoriaReceita TipoCategoria = "RECEITA"
)

func (t TipoCategoria) Valid() bool {
	return t == CategoriaDespesa || t == CategoriaReceita
}

// StatusConta é o ciclo de vida de contas a pagar/receber.
// PAGO e RECEBIDO são terminais: a conta não pode mais ser editada nem removida.
type StatusConta string

const (
	ContaPendente StatusConta = "PENDENTE"
	ContaAtrasada StatusConta = "ATRASADO"
	ContaPaga     StatusConta = "PAGO"
	ContaRecebida StatusConta = "RECEBIDO"
)

package infra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/timeutil"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const pedidosExchange = "pedidos_fanout"

// AMQPNotifier transmite eventos de pedido para a cozinha/bar por um exchange
// fanout. Publicação é fire-and-forget: falha de broker nunca propaga para a
// transação que originou o evento.
type AMQPNotifier struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPNotifier(amqpURL string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(pedidosExchange, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &AMQPNotifier{conn: conn, ch: ch}, nil
}

func (n *AMQPNotifier) Close() {
	if n == nil {
		return
	}
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
}

type pedidoEvento struct {
	Evento    string `json:"evento"`
	PedidoID  string `json:"pedido_id"`
	HospedeID string `json:"hospede_id"`
	Produto   string `json:"produto,omitempty"`
	Setor     string `json:"setor,omitempty"`
	Status    string `json:"status"`
	Valor     string `json:"valor"`
	Data      string `json:"data"`
}

// NotificarPedido implementa service.Notifier.
func (n *AMQPNotifier) NotificarPedido(ctx context.Context, evento string, pedido *model.Pedido) {
	ev := pedidoEvento{
		Evento:    evento,
		PedidoID:  pedido.ID.String(),
		HospedeID: pedido.HospedeID.String(),
		Status:    string(pedido.Status),
		Valor:     pedido.Valor.StringFixed(2),
		Data:      timeutil.FormatBrasil(pedido.Data),
	}
	if pedido.Produto != nil {
		ev.Produto = pedido.Produto.Nome
		if pedido.Produto.Setor != nil {
			ev.Setor = *pedido.Produto.Setor
		}
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Warn().Err(err).Msg("falha ao serializar evento de pedido")
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err = n.ch.PublishWithContext(publishCtx, pedidosExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		log.Warn().Err(err).Str("evento", evento).Msg("falha ao publicar evento de pedido")
	}
}

package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/xavierca1/agency-site/internal/entity"
)

// Mailer é quem de fato entrega a notificação (mail.EmailSender).
type Mailer interface {
	Send(ctx context.Context, n entity.Notification) error
}

// Acknowledger é o subconjunto de amqp.Delivery usado pelo worker.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  Mailer
	Logger  logrus.FieldLogger
}

func NewWorker(ch *amqp.Channel, mailer Mailer, logger logrus.FieldLogger) *Worker {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
		Logger:  logger.WithField("component", "notification_worker"),
	}
}

// Start consome a fila até o ctx ser cancelado ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false, // ack manual
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	w.Logger.WithField("queue", queueName).Info(" [*] Worker rodando e aguardando mensagens")

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("⚠️ Worker de notificações encerrado")
			return nil
		case d, ok := <-msgs:
			if !ok {
				w.Logger.Warn("⚠️ canal de consumo fechado")
				return nil
			}
			w.Handle(ctx, d.Body, d)
		}
	}
}

// Handle processa uma mensagem: ack no sucesso, nack sem requeue (vai pra DLQ) no erro.
func (w *Worker) Handle(ctx context.Context, body []byte, ack Acknowledger) {
	var n entity.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		w.Logger.WithError(err).Error("❌ [WORKER] JSON inválido")
		ack.Nack(false, false)
		return
	}

	log := w.Logger.WithFields(logrus.Fields{"kind": n.Kind, "ref_id": n.RefID})
	log.Info("📥 [WORKER] notificação recebida")

	if err := w.Mailer.Send(ctx, n); err != nil {
		log.WithError(err).Error("❌ [WORKER] falha ao enviar notificação")
		ack.Nack(false, false)
		return
	}
	ack.Ack(false)
}

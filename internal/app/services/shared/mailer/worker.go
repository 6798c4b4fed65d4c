package mailer

import (
	"context"

	"nutrivida-service/internal/app/drivers/mailer"
	"nutrivida-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the mailer queue and delivers each payload through SMTP.
// Delivery is best effort: a failed message is logged and dropped, never
// requeued, so a broken mail server cannot wedge the queue.
type Worker struct {
	conn   *amqp091.Connection
	client *mailer.SMTPClient
	queue  string
	log    *zap.Logger
}

func NewWorker(conn *amqp091.Connection, client *mailer.SMTPClient, queue string, log *zap.Logger) *Worker {
	return &Worker{conn: conn, client: client, queue: queue, log: log}
}

// Run consumes until the context is cancelled or the channel closes.
func (w *Worker) Run(ctx context.Context) error {
	channel, err := w.conn.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	deliveries, err := channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(delivery)
		}
	}
}

func (w *Worker) handle(delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.log.Error("mailer worker: cannot decode payload", zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	if err := deliver(w.client, &payload); err != nil {
		w.log.Error("mailer worker: delivery failed",
			zap.String("receiver", payload.ReceiverEmail),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	delivery.Ack(false)
}

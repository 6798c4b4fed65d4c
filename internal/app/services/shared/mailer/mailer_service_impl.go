package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/drivers/mailer"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type mailerService struct {
	Channel *amqp091.Channel
	Client  *mailer.SMTPClient
	Queue   string
}

// NewMailerService publishes outgoing mail onto the rabbitmq queue; the
// worker in this package drains it through SMTP. Publishing and delivery are
// split so callers never block on the mail server.
func NewMailerService(client *mailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Client:  client,
		Queue:   queue,
	}, nil
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrMailerPublish(err)
	}

	return nil
}

// deliver pushes one payload through SMTP. Called by the queue worker only.
func deliver(client *mailer.SMTPClient, payload *requests.EmailPayload) error {
	contentType := "text/plain; charset=\"UTF-8\""
	if payload.HTML {
		contentType = "text/html; charset=\"UTF-8\""
	}
	msg := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: %s\r\n\r\n%s",
		payload.ReceiverEmail, payload.Subject, contentType, payload.Body,
	))
	addr := fmt.Sprintf("%s:%d", client.Host, client.Port)
	if err := smtp.SendMail(addr, client.Auth, client.EmailSender, []string{payload.ReceiverEmail}, msg); err != nil {
		return exceptions.ErrSMTPSendEmail(err, client.Host)
	}
	return nil
}

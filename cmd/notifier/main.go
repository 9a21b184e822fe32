package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/raid-bits/shift-compliance/backend/internal/config"
	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

func main() {
	/**********************************************
	 * create logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * load configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("could not load configuration", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * create the mail client
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("could not create the mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// make sure the mail server is reachable before consuming anything
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("could not connect to the mail server", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * connect to rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("could not connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("could not open a channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"notification_queue", // queue name
		true,                 // durable
		false,                // do not auto-delete when the last consumer goes away
		false,                // not exclusive
		false,                // wait for the broker to confirm the declaration
		nil,                  // no extra arguments
	)
	if err != nil {
		logger.Error("could not declare the queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name, // queue
		"",     // consumer tag assigned by the broker
		false,  // manual ack
		false,  // not exclusive
		false,  // no-local is unsupported by rabbitmq, must stay false
		false,  // wait for the broker's response
		nil,    // no extra arguments
	)
	if err != nil {
		logger.Error("could not start consuming", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("message received", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("could not decode the mail message", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				if len(mailMessage.Recipients) == 0 {
					logger.Error("mail message carries no recipients")
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.From); err != nil {
					logger.Error("could not set the sender", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				addresses := make([]string, 0, len(mailMessage.Recipients))
				for _, recipient := range mailMessage.Recipients {
					addresses = append(addresses, recipient.Email)
				}
				if err := m.To(addresses...); err != nil {
					logger.Error("could not set the recipients", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m.Subject(mailMessage.Subject)
				m.SetBodyString(mail.TypeTextHTML, mailMessage.Body)

				if err := client.DialAndSend(m); err != nil {
					logger.Error("could not send the mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // requeue so the batch is retried
					continue
				}

				logger.Info("batch sent", slog.Int("recipients", len(addresses)))
				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("waiting for messages... (press CTRL+C to exit)")
	<-sigChan

	slog.Info("shutting down notifier worker...")
	cancel()
	wg.Wait()
	slog.Info("notifier worker stopped")
}

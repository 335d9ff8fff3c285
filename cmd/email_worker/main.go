package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/pogojump/pogojump-api/config"
	"github.com/pogojump/pogojump-api/pkg/helpers"
	"github.com/pogojump/pogojump-api/pkg/mailer"
)

// logSender stands in for Mailgun when MAIL_SEND_ENABLED=false.
type logSender struct {
	logger *logrus.Logger
}

func (s logSender) Send(_ context.Context, to, subject, _, _ string) error {
	s.logger.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("mail sending disabled; skipped")
	return nil
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	var sender mailer.Sender = logSender{logger: logger}
	if cfg.MailSendEnabled {
		if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
			log.Fatal("Mailgun not configured")
		}
		sender = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	if err := helpers.DeclareQueue(ch, cfg.RabbitMQEmailQueue); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	ctx := context.Background()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			fields := logrus.Fields{"message_id": msg.MessageId, "type": msg.Type, "redelivered": msg.Redelivered}

			var job mailer.EmailJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				helpers.LogError(logger, "bad message", err, fields)
				_ = msg.Nack(false, false)
				continue
			}

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			err := mailer.Deliver(c, sender, job)
			cancel()
			switch decide(err, msg.Redelivered) {
			case outcomeAck:
				_ = msg.Ack(false)
			case outcomeRetry:
				helpers.LogError(logger, "send failed; requeued", err, fields)
				_ = msg.Nack(false, true)
			case outcomeDrop:
				helpers.LogError(logger, "dropping email job", err, fields)
				_ = msg.Nack(false, false)
			}
		}
		close(done)
	}()

	logger.WithField("queue", cfg.RabbitMQEmailQueue).Info("email worker listening")
	<-stop
	logger.Info("shutting down")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

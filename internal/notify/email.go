// Package notify delivers one-time password e-mails.
package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// EmailSender delivers a single e-mail.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	log       *logrus.Logger
}

// NewSendGridSender returns nil when no API key is configured.
func NewSendGridSender(cfg SendGridConfig, log *logrus.Logger) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.FromName == "" {
		cfg.FromName = "Healthcare Portal"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		log:       log,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.log.WithFields(logrus.Fields{"Function": "Send", "To": msg.To, "Error": err}).Error("SendGrid send failed")
		return fmt.Errorf("notify: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		s.log.WithFields(logrus.Fields{
			"Function": "Send",
			"To":       msg.To,
			"Status":   response.StatusCode,
		}).Error("SendGrid returned error status")
		return fmt.Errorf("notify: sendgrid returned status %d", response.StatusCode)
	}

	s.log.WithFields(logrus.Fields{"Function": "Send", "To": msg.To, "Subject": msg.Subject}).Info("Email sent")
	return nil
}

// StubEmailSender logs instead of sending. It is used when SendGrid is not configured.
type StubEmailSender struct {
	log *logrus.Logger
}

// NewStubEmailSender creates a sender that only logs.
func NewStubEmailSender(log *logrus.Logger) *StubEmailSender {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &StubEmailSender{log: log}
}

func (s *StubEmailSender) Send(_ context.Context, msg EmailMessage) error {
	s.log.WithFields(logrus.Fields{
		"Function": "Send",
		"To":       msg.To,
		"Subject":  msg.Subject,
	}).Info("Email delivery disabled, message not sent")
	return nil
}

// NewSender picks SendGrid when configured and the logging stub otherwise.
func NewSender(cfg SendGridConfig, log *logrus.Logger) EmailSender {
	if sg := NewSendGridSender(cfg, log); sg != nil {
		return sg
	}
	return NewStubEmailSender(log)
}

// OTPMessage renders the password reset e-mail for code.
func OTPMessage(to, name, code string) EmailMessage {
	return EmailMessage{
		To:      to,
		ToName:  name,
		Subject: "Your password reset code",
		Body:    fmt.Sprintf("Your one-time password reset code is %s.\nIf you did not ask to reset your password you can ignore this e-mail.", code),
	}
}

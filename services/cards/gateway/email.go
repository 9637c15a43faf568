package gateway

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/tapcard/tapcard/internal/pkg/models"
)

// EmailSender delivers one-time codes over SMTP
type EmailSender struct {
	cfg *models.SMTPConfig
}

// NewEmailSender creates a new email sender
func NewEmailSender(cfg *models.SMTPConfig) *EmailSender {
	return &EmailSender{cfg: cfg}
}

// SendCode emails a one-time activation code to the destination address.
// The SMTP dial has no context support, so the send runs in a goroutine and
// the ctx deadline bounds how long we wait for it.
func (s *EmailSender) SendCode(ctx context.Context, destination, code string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{destination}
	e.Subject = "Your card activation code"
	e.Text = []byte(fmt.Sprintf(
		"Your card activation code is %s.\n\n"+
			"The code expires in a few minutes. If you did not request it, ignore this message.\n",
		code,
	))

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Send(addr, auth)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

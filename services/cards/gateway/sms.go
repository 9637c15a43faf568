package gateway

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/tapcard/tapcard/internal/pkg/models"
)

// SMSSender delivers one-time codes over Twilio SMS
type SMSSender struct {
	client *twilio.RestClient
	from   string
}

// NewSMSSender creates a new SMS sender
func NewSMSSender(cfg *models.TwilioConfig) *SMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &SMSSender{
		client: client,
		from:   cfg.FromNumber,
	}
}

// SendCode texts a one-time activation code to the destination number.
// The Twilio REST call has no context support, so it runs in a goroutine and
// the ctx deadline bounds how long we wait for it.
func (s *SMSSender) SendCode(ctx context.Context, destination, code string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(destination)
	params.SetBody(fmt.Sprintf("Your card activation code is %s. It expires in a few minutes.", code))

	errCh := make(chan error, 1)
	go func() {
		_, err := s.client.Api.CreateMessage(params)
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to send sms: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

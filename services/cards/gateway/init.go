package gateway

import (
	"time"

	httppkg "github.com/tapcard/tapcard/internal/pkg/http"
	"github.com/tapcard/tapcard/internal/pkg/models"
	natspkg "github.com/tapcard/tapcard/internal/pkg/nats"
)

// CardGW composes the outbound edges of the cards service: code delivery,
// the profile-store lookup and NATS event publishing
type CardGW struct {
	emailSender   *EmailSender
	smsSender     *SMSSender
	profileClient *httppkg.Client
	natsClient    *natspkg.Client
}

// NewCardGW creates a new gateway instance
func NewCardGW(cfg *models.Config, natsClient *natspkg.Client) *CardGW {
	return &CardGW{
		emailSender:   NewEmailSender(&cfg.SMTP),
		smsSender:     NewSMSSender(&cfg.Twilio),
		profileClient: httppkg.NewClient(cfg.Services.ProfileServiceURL, 10*time.Second),
		natsClient:    natsClient,
	}
}

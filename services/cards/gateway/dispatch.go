package gateway

import (
	"context"

	"github.com/tapcard/tapcard/internal/pkg/models"
	"github.com/tapcard/tapcard/services/cards"
)

// SendOTP dispatches a one-time code over the requested channel
func (g *CardGW) SendOTP(ctx context.Context, channel models.Channel, destination, code string) error {
	switch channel {
	case models.ChannelEmail:
		return g.emailSender.SendCode(ctx, destination, code)
	case models.ChannelSMS:
		return g.smsSender.SendCode(ctx, destination, code)
	default:
		return cards.ErrInvalidChannel
	}
}

package cards

import (
	"context"

	"github.com/tapcard/tapcard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tapcard/tapcard/services/cards CardGW

// CardGW defines the card gateways interface
type CardGW interface {
	// Channel dispatch. The plaintext code lives only in this payload.
	SendOTP(ctx context.Context, channel models.Channel, destination, code string) error

	// Profile-store collaborator lookup for stored contact fields
	GetProfileContact(ctx context.Context, profileID string) (*models.ProfileContact, error)

	// NATS events
	PublishCardCreated(ctx context.Context, event *models.CardCreatedEvent) error
	PublishCardActivated(ctx context.Context, event *models.CardActivatedEvent) error
	PublishCardRevoked(ctx context.Context, event *models.CardRevokedEvent) error
}

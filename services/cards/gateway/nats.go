package gateway

import (
	"context"
	"encoding/json"

	"github.com/tapcard/tapcard/internal/pkg/constants"
	"github.com/tapcard/tapcard/internal/pkg/models"
)

// PublishCardCreated publishes a card created event to NATS
func (g *CardGW) PublishCardCreated(ctx context.Context, event *models.CardCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectCardCreated, data)
}

// PublishCardActivated publishes a card activated event to NATS
func (g *CardGW) PublishCardActivated(ctx context.Context, event *models.CardActivatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectCardActivated, data)
}

// PublishCardRevoked publishes a card revoked event to NATS
func (g *CardGW) PublishCardRevoked(ctx context.Context, event *models.CardRevokedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectCardRevoked, data)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tapcard/tapcard/internal/pkg/logger"
	"github.com/tapcard/tapcard/internal/pkg/models"
	"github.com/tapcard/tapcard/internal/utils"
	"github.com/tapcard/tapcard/services/cards"
)

// CreateCard mints a new pending card for the authenticated owner. If pin is
// empty a random one is generated; otherwise it must be exactly six digits.
func (u *CardUC) CreateCard(ctx context.Context, ownerProfileID, pin string) (*models.CreateCardResponse, error) {
	if pin == "" {
		generated, err := utils.GeneratePIN()
		if err != nil {
			return nil, fmt.Errorf("failed to generate pin: %w", err)
		}
		pin = generated
	} else if !utils.IsDigits(pin, utils.PinLength) {
		return nil, cards.ErrInvalidPIN
	}

	card, err := u.cardRepo.CreateCard(ctx, ownerProfileID, pin)
	if err != nil {
		if errors.Is(err, cards.ErrTokenConflict) {
			logger.Error("card token generation exhausted retries",
				logger.String("owner_profile_id", ownerProfileID),
				logger.Err(err))
		}
		return nil, err
	}

	logger.Info("Card created",
		logger.String("card_id", card.ID.String()),
		logger.String("owner_profile_id", ownerProfileID))

	if err := u.cardGW.PublishCardCreated(ctx, &models.CardCreatedEvent{
		CardID:         card.ID.String(),
		OwnerProfileID: card.OwnerProfileID,
		CreatedAt:      card.CreatedAt,
	}); err != nil {
		// the card exists either way; the event is best effort
		logger.Warn("Failed to publish card created event",
			logger.String("card_id", card.ID.String()),
			logger.Err(err))
	}

	return &models.CreateCardResponse{
		CardID:    card.ID.String(),
		CardToken: card.CardToken,
		Pin:       pin,
	}, nil
}

// RevokeCard performs the administrative revocation
func (u *CardUC) RevokeCard(ctx context.Context, cardID string) (*models.Card, error) {
	card, err := u.cardRepo.RevokeCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	logger.Info("Card revoked",
		logger.String("card_id", card.ID.String()),
		logger.String("owner_profile_id", card.OwnerProfileID))

	if err := u.cardGW.PublishCardRevoked(ctx, &models.CardRevokedEvent{
		CardID:         card.ID.String(),
		OwnerProfileID: card.OwnerProfileID,
		RevokedAt:      time.Now(),
	}); err != nil {
		logger.Warn("Failed to publish card revoked event",
			logger.String("card_id", card.ID.String()),
			logger.Err(err))
	}

	return card, nil
}

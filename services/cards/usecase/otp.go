package usecase

import (
	"context"
	"time"

	"github.com/tapcard/tapcard/internal/pkg/logger"
	"github.com/tapcard/tapcard/internal/pkg/models"
	"github.com/tapcard/tapcard/services/cards"
)

// dispatchTimeout bounds the outbound delivery call so a slow provider
// cannot hold the request open indefinitely
const dispatchTimeout = 10 * time.Second

// RequestOTP proves PIN possession for a card and issues plus delivers a
// one-time code over the requested channel. Issuing always supersedes any
// prior live challenge for the card.
func (u *CardUC) RequestOTP(ctx context.Context, req *models.RequestOTPRequest) error {
	channel := models.Channel(req.Channel)
	if channel != models.ChannelEmail && channel != models.ChannelSMS {
		return cards.ErrInvalidChannel
	}

	locked, err := u.otpRepo.IsPINLocked(ctx, req.CardToken)
	if err != nil {
		return err
	}
	if locked {
		return cards.ErrPINLocked
	}

	card, err := u.cardRepo.GetCardByToken(ctx, req.CardToken)
	if err != nil {
		return err
	}
	if card.Status == models.CardStatusRevoked {
		return cards.ErrCardRevoked
	}

	ok, err := u.cardRepo.VerifyPIN(ctx, card.ID.String(), req.Pin)
	if err != nil {
		return err
	}
	if !ok {
		nowLocked, recErr := u.otpRepo.RecordPINFailure(ctx, req.CardToken)
		if recErr != nil {
			logger.Warn("Failed to record pin failure",
				logger.String("card_id", card.ID.String()),
				logger.Err(recErr))
		}
		if nowLocked {
			logger.Warn("Card token locked after repeated wrong PINs",
				logger.String("card_id", card.ID.String()))
			return cards.ErrPINLocked
		}
		return cards.ErrInvalidCredentials
	}

	if err := u.otpRepo.ClearPINFailures(ctx, req.CardToken); err != nil {
		logger.Warn("Failed to clear pin failures",
			logger.String("card_id", card.ID.String()),
			logger.Err(err))
	}

	destination, err := u.resolveDestination(ctx, card, channel, req)
	if err != nil {
		return err
	}

	challenge, code, err := u.otpRepo.IssueChallenge(ctx, card.ID.String(), channel, destination)
	if err != nil {
		return err
	}

	logger.Info("OTP challenge issued",
		logger.String("card_id", card.ID.String()),
		logger.String("channel", string(channel)),
		logger.Int("attempts", challenge.AttemptsRemaining))

	// Dispatch only after the challenge is durably stored, so an accepted
	// delivery always corresponds to a verifiable code.
	dispatchCtx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()

	if err := u.cardGW.SendOTP(dispatchCtx, channel, destination, code); err != nil {
		logger.Error("Failed to deliver one-time code",
			logger.String("card_id", card.ID.String()),
			logger.String("channel", string(channel)),
			logger.Err(err))
		return cards.ErrDeliveryFailed
	}

	return nil
}

// resolveDestination picks the delivery address: the caller-supplied one for
// the requested channel wins, otherwise the profile's stored contact.
func (u *CardUC) resolveDestination(ctx context.Context, card *models.Card, channel models.Channel, req *models.RequestOTPRequest) (string, error) {
	if channel == models.ChannelEmail && req.Email != "" {
		return req.Email, nil
	}
	if channel == models.ChannelSMS && req.Phone != "" {
		return req.Phone, nil
	}

	contact, err := u.cardGW.GetProfileContact(ctx, card.OwnerProfileID)
	if err != nil {
		logger.Warn("Failed to fetch profile contact",
			logger.String("owner_profile_id", card.OwnerProfileID),
			logger.Err(err))
		return "", cards.ErrNoDestination
	}

	var destination string
	if channel == models.ChannelEmail {
		destination = contact.Email
	} else {
		destination = contact.Phone
	}
	if destination == "" {
		return "", cards.ErrNoDestination
	}
	return destination, nil
}

// VerifyOTP checks a delivered code against the card's live challenge and
// activates the card on success. Verifying an already-active card with a
// correct code is a success no-op.
func (u *CardUC) VerifyOTP(ctx context.Context, cardToken, code string) (*models.Card, error) {
	card, err := u.cardRepo.GetCardByToken(ctx, cardToken)
	if err != nil {
		return nil, err
	}
	if card.Status == models.CardStatusRevoked {
		return nil, cards.ErrCardRevoked
	}

	// A retry after a dropped response finds the card already active and the
	// challenge consumed. Succeed without touching the ledger.
	if card.Status == models.CardStatusActive {
		return card, nil
	}

	result, err := u.otpRepo.VerifyChallenge(ctx, card.ID.String(), code)
	if err != nil {
		return nil, err
	}

	switch result {
	case models.VerifyAccepted:
		// fall through to activation
	case models.VerifyWrongCode:
		return nil, cards.ErrWrongCode
	case models.VerifyAttemptsExhausted:
		return nil, cards.ErrAttemptsExhausted
	case models.VerifyExpired, models.VerifyNoChallenge:
		return nil, cards.ErrNoChallenge
	default:
		return nil, cards.ErrNoChallenge
	}

	activated, err := u.cardRepo.ActivateCard(ctx, card.ID.String())
	if err != nil {
		return nil, err
	}

	if activated.ActivatedAt != nil {
		logger.Info("Card activated",
			logger.String("card_id", activated.ID.String()),
			logger.String("owner_profile_id", activated.OwnerProfileID))

		if err := u.cardGW.PublishCardActivated(ctx, &models.CardActivatedEvent{
			CardID:         activated.ID.String(),
			OwnerProfileID: activated.OwnerProfileID,
			ActivatedAt:    *activated.ActivatedAt,
		}); err != nil {
			logger.Warn("Failed to publish card activated event",
				logger.String("card_id", activated.ID.String()),
				logger.Err(err))
		}
	}

	return activated, nil
}

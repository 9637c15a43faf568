package cards

import (
	"context"

	"github.com/tapcard/tapcard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tapcard/tapcard/services/cards CardUC

// CardUC represents the card usecase interface
type CardUC interface {
	// CreateCard mints a new pending card for the authenticated owner.
	// The response carries the plaintext token and PIN exactly once.
	CreateCard(ctx context.Context, ownerProfileID, pin string) (*models.CreateCardResponse, error)

	// RequestOTP proves PIN possession and issues + delivers a one-time code.
	// A new challenge always supersedes the previous one for the card.
	RequestOTP(ctx context.Context, req *models.RequestOTPRequest) error

	// VerifyOTP checks a delivered code and activates the card on success.
	// Verifying an already-active card is a success no-op.
	VerifyOTP(ctx context.Context, cardToken, code string) (*models.Card, error)

	// RevokeCard is the administrative revocation, reachable only over the
	// internal API
	RevokeCard(ctx context.Context, cardID string) (*models.Card, error)
}

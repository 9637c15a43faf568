package cards

import (
	"context"

	"github.com/tapcard/tapcard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tapcard/tapcard/services/cards CardRepo,OTPRepo

// CardRepo is the card store: the single source of truth for card existence
// and lifecycle state
type CardRepo interface {
	// CreateCard allocates a pending card with a fresh unique token and the
	// given PIN stored as a bcrypt hash. Returns ErrTokenConflict if token
	// generation repeatedly collides.
	CreateCard(ctx context.Context, ownerProfileID, pin string) (*models.Card, error)

	// GetCardByToken resolves a card by its public token
	GetCardByToken(ctx context.Context, cardToken string) (*models.Card, error)

	// GetCardByID resolves a card by its internal id
	GetCardByID(ctx context.Context, cardID string) (*models.Card, error)

	// ActivateCard transitions pending to active. Idempotent: an already
	// active card is returned unchanged; a revoked card fails.
	ActivateCard(ctx context.Context, cardID string) (*models.Card, error)

	// RevokeCard transitions a card to revoked
	RevokeCard(ctx context.Context, cardID string) (*models.Card, error)

	// VerifyPIN compares the PIN against the stored hash. The comparison
	// cost is dominated by bcrypt, so latency does not correlate with
	// matching prefix length.
	VerifyPIN(ctx context.Context, cardID, pin string) (bool, error)
}

// OTPRepo is the one-time-code ledger plus the PIN anti-abuse counters,
// both Redis-backed
type OTPRepo interface {
	// IssueChallenge creates the single live challenge for a card,
	// superseding any prior one, and returns the plaintext code exactly
	// once for dispatch.
	IssueChallenge(ctx context.Context, cardID string, channel models.Channel, destination string) (*models.OtpChallenge, string, error)

	// VerifyChallenge checks a submitted code against the live challenge.
	// Expiry is checked against server time before any comparison.
	VerifyChallenge(ctx context.Context, cardID, code string) (models.VerifyResult, error)

	// IsPINLocked reports whether the card token is temporarily blocked
	// after repeated wrong PINs
	IsPINLocked(ctx context.Context, cardToken string) (bool, error)

	// RecordPINFailure counts a wrong PIN; returns true once the failure
	// budget is spent and the lock engages
	RecordPINFailure(ctx context.Context, cardToken string) (bool, error)

	// ClearPINFailures resets the failure counter after a correct PIN
	ClearPINFailures(ctx context.Context, cardToken string) error
}

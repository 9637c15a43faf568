package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/tapcard/tapcard/internal/pkg/models"
	"github.com/tapcard/tapcard/internal/utils"
	"github.com/tapcard/tapcard/services/cards"
)

// tokenGenAttempts bounds the retry loop on card token collisions. With
// 128-bit tokens a single collision already warrants an alarm.
const tokenGenAttempts = 3

const uniqueViolationCode = "23505"

// CreateCard allocates a new card in pending status with a fresh unique
// token. The PIN is stored only as a bcrypt hash.
func (r *CardRepo) CreateCard(ctx context.Context, ownerProfileID, pin string) (*models.Card, error) {
	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pin: %w", err)
	}

	query := `
		INSERT INTO cards (id, owner_profile_id, card_token, pin_hash, status, created_at)
		VALUES (:id, :owner_profile_id, :card_token, :pin_hash, :status, :created_at)
	`

	for attempt := 0; attempt < tokenGenAttempts; attempt++ {
		token, err := utils.GenerateCardToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate card token: %w", err)
		}

		card := &models.Card{
			ID:             uuid.New(),
			OwnerProfileID: ownerProfileID,
			CardToken:      token,
			PinHash:        string(pinHash),
			Status:         models.CardStatusPending,
			CreatedAt:      time.Now(),
		}

		_, err = r.db.NamedExecContext(ctx, query, card)
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return nil, fmt.Errorf("failed to insert card: %w", err)
		}

		return card, nil
	}

	return nil, cards.ErrTokenConflict
}

// GetCardByToken retrieves a card by its public token
func (r *CardRepo) GetCardByToken(ctx context.Context, cardToken string) (*models.Card, error) {
	query := `
		SELECT id, owner_profile_id, card_token, pin_hash, status, created_at, activated_at
		FROM cards
		WHERE card_token = $1
	`

	var card models.Card
	err := r.db.GetContext(ctx, &card, query, cardToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cards.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return &card, nil
}

// GetCardByID retrieves a card by its internal id
func (r *CardRepo) GetCardByID(ctx context.Context, cardID string) (*models.Card, error) {
	query := `
		SELECT id, owner_profile_id, card_token, pin_hash, status, created_at, activated_at
		FROM cards
		WHERE id = $1
	`

	var card models.Card
	err := r.db.GetContext(ctx, &card, query, cardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cards.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return &card, nil
}

// ActivateCard transitions a pending card to active. The conditional UPDATE
// keeps the pending to active transition exactly-once under concurrent
// verifications; the loser of a race re-reads the current row.
func (r *CardRepo) ActivateCard(ctx context.Context, cardID string) (*models.Card, error) {
	card, err := r.GetCardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	switch card.Status {
	case models.CardStatusActive:
		// idempotent: re-activation is a no-op
		return card, nil
	case models.CardStatusRevoked:
		return nil, cards.ErrCardRevoked
	}

	now := time.Now()
	query := `
		UPDATE cards
		SET status = $1, activated_at = $2
		WHERE id = $3 AND status = $4
	`

	res, err := r.db.ExecContext(ctx, query, models.CardStatusActive, now, cardID, models.CardStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to activate card: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		// lost a race; the current row is authoritative
		card, err = r.GetCardByID(ctx, cardID)
		if err != nil {
			return nil, err
		}
		if card.Status == models.CardStatusRevoked {
			return nil, cards.ErrCardRevoked
		}
		return card, nil
	}

	card.Status = models.CardStatusActive
	card.ActivatedAt = &now
	return card, nil
}

// RevokeCard transitions a card to revoked. Revoking an already revoked
// card returns the current row unchanged.
func (r *CardRepo) RevokeCard(ctx context.Context, cardID string) (*models.Card, error) {
	card, err := r.GetCardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if card.Status == models.CardStatusRevoked {
		return card, nil
	}

	query := `
		UPDATE cards
		SET status = $1
		WHERE id = $2
	`

	if _, err := r.db.ExecContext(ctx, query, models.CardStatusRevoked, cardID); err != nil {
		return nil, fmt.Errorf("failed to revoke card: %w", err)
	}

	card.Status = models.CardStatusRevoked
	return card, nil
}

// VerifyPIN compares a PIN against the stored hash. bcrypt comparison cost
// dominates, so latency does not leak how many digits matched.
func (r *CardRepo) VerifyPIN(ctx context.Context, cardID, pin string) (bool, error) {
	query := `SELECT pin_hash FROM cards WHERE id = $1`

	var pinHash string
	err := r.db.GetContext(ctx, &pinHash, query, cardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, cards.ErrCardNotFound
		}
		return false, fmt.Errorf("failed to get pin hash: %w", err)
	}

	return bcrypt.CompareHashAndPassword([]byte(pinHash), []byte(pin)) == nil, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

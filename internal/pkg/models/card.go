package models

import (
	"time"

	"github.com/google/uuid"
)

// CardStatus represents the lifecycle state of a card
type CardStatus string

const (
	CardStatusPending CardStatus = "pending"
	CardStatusActive  CardStatus = "active"
	CardStatusRevoked CardStatus = "revoked"
)

// Card represents a provisioned card tied to one profile.
// The PIN is stored only as a bcrypt hash; the plaintext exists once,
// in the creation response.
type Card struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	OwnerProfileID string     `json:"owner_profile_id" db:"owner_profile_id"`
	CardToken      string     `json:"card_token" db:"card_token"`
	PinHash        string     `json:"-" db:"pin_hash"`
	Status         CardStatus `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	ActivatedAt    *time.Time `json:"activated_at,omitempty" db:"activated_at"`
}

// CreateCardRequest represents a request to mint a new card.
// The owner comes from the authenticated session, not the body.
type CreateCardRequest struct {
	Pin string `json:"pin,omitempty"`
}

// CreateCardResponse carries the plaintext token and PIN exactly once
type CreateCardResponse struct {
	CardID    string `json:"card_id"`
	CardToken string `json:"card_token"`
	Pin       string `json:"pin"`
}

// CardCreatedEvent is published when a card is minted
type CardCreatedEvent struct {
	CardID         string    `json:"card_id"`
	OwnerProfileID string    `json:"owner_profile_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// CardActivatedEvent is published when a card transitions to active
type CardActivatedEvent struct {
	CardID         string    `json:"card_id"`
	OwnerProfileID string    `json:"owner_profile_id"`
	ActivatedAt    time.Time `json:"activated_at"`
}

// CardRevokedEvent is published when a card is administratively revoked
type CardRevokedEvent struct {
	CardID         string    `json:"card_id"`
	OwnerProfileID string    `json:"owner_profile_id"`
	RevokedAt      time.Time `json:"revoked_at"`
}

package models

import (
	"time"
)

// Channel is the delivery medium for one-time codes
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// OtpChallenge represents the single live one-time-code challenge for a card.
// The code is stored only as a bcrypt hash; issuing a new challenge for the
// same card supersedes the previous one.
type OtpChallenge struct {
	CardID            string    `json:"card_id"`
	CodeHash          string    `json:"code_hash"`
	Channel           Channel   `json:"channel"`
	Destination       string    `json:"destination"`
	CreatedAt         time.Time `json:"created_at"`
	ExpiresAt         time.Time `json:"expires_at"`
	AttemptsRemaining int       `json:"attempts_remaining"`
	Consumed          bool      `json:"consumed"`
}

// VerifyResult is the outcome of checking a submitted code against the ledger
type VerifyResult int

const (
	VerifyAccepted VerifyResult = iota
	VerifyWrongCode
	VerifyExpired
	VerifyNoChallenge
	VerifyAttemptsExhausted
)

// String returns a readable name for logging
func (v VerifyResult) String() string {
	switch v {
	case VerifyAccepted:
		return "accepted"
	case VerifyWrongCode:
		return "wrong_code"
	case VerifyExpired:
		return "expired"
	case VerifyNoChallenge:
		return "no_challenge"
	case VerifyAttemptsExhausted:
		return "attempts_exhausted"
	default:
		return "unknown"
	}
}

// RequestOTPRequest represents a request to issue and deliver a one-time code
type RequestOTPRequest struct {
	CardToken string `json:"card_token" validate:"required"`
	Pin       string `json:"pin" validate:"required"`
	Channel   string `json:"channel" validate:"required"` // "email" or "sms"
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// VerifyOTPRequest represents a request to verify a delivered code
type VerifyOTPRequest struct {
	CardToken string `json:"card_token" validate:"required"`
	OTP       string `json:"otp" validate:"required"`
}

// ProfileContact holds the stored contact fields for a profile,
// as returned by the profile-store collaborator
type ProfileContact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

package cards

import "errors"

// Stable error kinds surfaced at the API boundary. Handlers map these to
// HTTP statuses; none of them carries more detail than the caller needs.
var (
	// ErrCardNotFound indicates an unknown card token
	ErrCardNotFound = errors.New("card not found")

	// ErrInvalidCredentials indicates a wrong PIN. It is deliberately not
	// distinguishable from an unknown token beyond the error kind, to avoid
	// token/PIN enumeration.
	ErrInvalidCredentials = errors.New("invalid card token or pin")

	// ErrInvalidPIN indicates a caller-supplied PIN of the wrong shape
	ErrInvalidPIN = errors.New("pin must be 6 digits")

	// ErrInvalidChannel indicates an unsupported delivery channel
	ErrInvalidChannel = errors.New("invalid channel")

	// ErrPINLocked indicates too many wrong PINs in a row
	ErrPINLocked = errors.New("temporarily blocked due to failed attempts")

	// ErrNoDestination indicates no address is resolvable for the channel
	ErrNoDestination = errors.New("no destination available for channel")

	// ErrDeliveryFailed indicates dispatch failed; the challenge remains issued
	ErrDeliveryFailed = errors.New("failed to deliver code")

	// ErrNoChallenge covers never-issued, expired and already-consumed challenges
	ErrNoChallenge = errors.New("no valid code, request a new one")

	// ErrWrongCode indicates a code mismatch with attempts remaining
	ErrWrongCode = errors.New("invalid code")

	// ErrAttemptsExhausted indicates too many wrong codes for this challenge
	ErrAttemptsExhausted = errors.New("too many attempts, request a new code")

	// ErrCardRevoked indicates an operation on a revoked card
	ErrCardRevoked = errors.New("card is revoked")

	// ErrTokenConflict indicates token generation kept colliding. Repeated
	// collisions suggest entropy or storage corruption, so this one alerts.
	ErrTokenConflict = errors.New("card token generation exhausted retries")
)

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/tapcard/tapcard/internal/pkg/constants"
	"github.com/tapcard/tapcard/internal/pkg/models"
	"github.com/tapcard/tapcard/internal/utils"
)

// casRetries bounds optimistic-lock retries when two verifications race on
// the same challenge key
const casRetries = 3

// IssueChallenge creates the single live challenge for a card. The SET
// overwrites any prior challenge for the card, which is the supersession
// rule: there is never more than one live challenge. The plaintext code is
// returned exactly once for dispatch and never stored or logged.
func (r *CardRepo) IssueChallenge(ctx context.Context, cardID string, channel models.Channel, destination string) (*models.OtpChallenge, string, error) {
	code, err := utils.GenerateOTPCode()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate code: %w", err)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash code: %w", err)
	}

	now := time.Now()
	ttl := time.Duration(r.cfg.OTP.TTLMinutes) * time.Minute

	challenge := &models.OtpChallenge{
		CardID:            cardID,
		CodeHash:          string(codeHash),
		Channel:           channel,
		Destination:       destination,
		CreatedAt:         now,
		ExpiresAt:         now.Add(ttl),
		AttemptsRemaining: r.cfg.OTP.MaxAttempts,
		Consumed:          false,
	}

	payload, err := json.Marshal(challenge)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal challenge: %w", err)
	}

	key := fmt.Sprintf(constants.KeyCardOTP, cardID)
	if err := r.redisClient.Set(ctx, key, payload, ttl); err != nil {
		return nil, "", fmt.Errorf("failed to store challenge in Redis: %w", err)
	}

	return challenge, code, nil
}

// VerifyChallenge checks a submitted code against the live challenge for a
// card. It runs under WATCH so that two concurrent verifications cannot both
// consume the same challenge: the attempts decrement and the consumed flag
// are compare-and-swap writes.
func (r *CardRepo) VerifyChallenge(ctx context.Context, cardID, code string) (models.VerifyResult, error) {
	key := fmt.Sprintf(constants.KeyCardOTP, cardID)

	var result models.VerifyResult

	txf := func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			result = models.VerifyNoChallenge
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read challenge: %w", err)
		}

		var challenge models.OtpChallenge
		if err := json.Unmarshal([]byte(val), &challenge); err != nil {
			return fmt.Errorf("failed to unmarshal challenge: %w", err)
		}

		if challenge.Consumed {
			if challenge.AttemptsRemaining <= 0 {
				// consumed without success: budget spent
				result = models.VerifyAttemptsExhausted
			} else {
				// consumed by a successful verification: closed
				result = models.VerifyNoChallenge
			}
			return nil
		}

		// Server-side clock is authoritative, even if the key has not been
		// evicted yet. Checked before any comparison.
		if time.Now().After(challenge.ExpiresAt) {
			result = models.VerifyExpired
			return nil
		}

		if bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code)) != nil {
			challenge.AttemptsRemaining--
			if challenge.AttemptsRemaining <= 0 {
				challenge.Consumed = true
			}
			result = models.VerifyWrongCode
		} else {
			challenge.Consumed = true
			result = models.VerifyAccepted
		}

		payload, err := json.Marshal(&challenge)
		if err != nil {
			return fmt.Errorf("failed to marshal challenge: %w", err)
		}

		ttl := time.Until(challenge.ExpiresAt)
		if ttl <= 0 {
			ttl = time.Second
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < casRetries; attempt++ {
		err := r.redisClient.Client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// another verification touched the key; re-read and retry
			continue
		}
		return models.VerifyNoChallenge, err
	}

	return models.VerifyNoChallenge, fmt.Errorf("challenge verification contended for card %s", cardID)
}

// IsPINLocked reports whether the card token is blocked after repeated
// wrong PINs
func (r *CardRepo) IsPINLocked(ctx context.Context, cardToken string) (bool, error) {
	key := fmt.Sprintf(constants.KeyCardPinLock, cardToken)

	_, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read pin lock: %w", err)
	}
	return true, nil
}

// RecordPINFailure counts a wrong PIN. Once the failure budget is spent the
// token is locked for the configured window and the counter resets.
func (r *CardRepo) RecordPINFailure(ctx context.Context, cardToken string) (bool, error) {
	failKey := fmt.Sprintf(constants.KeyCardPinFail, cardToken)
	lockWindow := time.Duration(r.cfg.OTP.PINLockMinutes) * time.Minute

	count, err := r.redisClient.Client.Incr(ctx, failKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count pin failure: %w", err)
	}
	if count == 1 {
		// the counter lives as long as a lock would
		if err := r.redisClient.Client.Expire(ctx, failKey, lockWindow).Err(); err != nil {
			return false, fmt.Errorf("failed to expire pin failure counter: %w", err)
		}
	}

	if count < int64(r.cfg.OTP.PINMaxFailures) {
		return false, nil
	}

	lockKey := fmt.Sprintf(constants.KeyCardPinLock, cardToken)
	if err := r.redisClient.Set(ctx, lockKey, "1", lockWindow); err != nil {
		return false, fmt.Errorf("failed to set pin lock: %w", err)
	}
	if err := r.redisClient.Delete(ctx, failKey); err != nil {
		return false, fmt.Errorf("failed to reset pin failure counter: %w", err)
	}

	return true, nil
}

// ClearPINFailures resets the failure counter after a correct PIN
func (r *CardRepo) ClearPINFailures(ctx context.Context, cardToken string) error {
	failKey := fmt.Sprintf(constants.KeyCardPinFail, cardToken)
	if err := r.redisClient.Delete(ctx, failKey); err != nil {
		return fmt.Errorf("failed to clear pin failures: %w", err)
	}
	return nil
}

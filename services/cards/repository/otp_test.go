package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tapcard/tapcard/internal/pkg/constants"
	"github.com/tapcard/tapcard/internal/pkg/database"
	"github.com/tapcard/tapcard/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func setupOTPRepoTest(t *testing.T) (*CardRepo, *miniredis.Miniredis) {
	mr, client := setupMiniredis(t)

	redisClient := &database.RedisClient{
		Client: client,
	}

	repo := &CardRepo{
		redisClient: redisClient,
		cfg: &models.Config{
			OTP: models.OTPConfig{
				TTLMinutes:     5,
				MaxAttempts:    5,
				PINMaxFailures: 5,
				PINLockMinutes: 15,
			},
		},
	}

	return repo, mr
}

func TestIssueChallenge(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	challenge, code, err := repo.IssueChallenge(context.Background(), "card-1", models.ChannelEmail, "owner@example.com")
	require.NoError(t, err)

	assert.Len(t, code, 6)
	assert.Equal(t, "card-1", challenge.CardID)
	assert.Equal(t, models.ChannelEmail, challenge.Channel)
	assert.Equal(t, "owner@example.com", challenge.Destination)
	assert.Equal(t, 5, challenge.AttemptsRemaining)
	assert.False(t, challenge.Consumed)

	// stored payload holds a hash of the code, never the plaintext
	key := fmt.Sprintf(constants.KeyCardOTP, "card-1")
	val, err := mr.Get(key)
	require.NoError(t, err)
	assert.NotContains(t, val, code)

	var stored models.OtpChallenge
	require.NoError(t, json.Unmarshal([]byte(val), &stored))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.CodeHash), []byte(code)))

	// the key expires with the challenge
	ttl := mr.TTL(key)
	assert.True(t, ttl > 4*time.Minute && ttl <= 5*time.Minute, "unexpected ttl %v", ttl)
}

func TestIssueChallenge_SupersedesPrevious(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	_, firstCode, err := repo.IssueChallenge(ctx, "card-1", models.ChannelEmail, "owner@example.com")
	require.NoError(t, err)

	_, secondCode, err := repo.IssueChallenge(ctx, "card-1", models.ChannelSMS, "+628123456789")
	require.NoError(t, err)

	// the first code is dead the moment the second is issued
	result, err := repo.VerifyChallenge(ctx, "card-1", firstCode)
	require.NoError(t, err)
	if firstCode != secondCode {
		assert.Equal(t, models.VerifyWrongCode, result)
	}

	result, err = repo.VerifyChallenge(ctx, "card-1", secondCode)
	require.NoError(t, err)
	assert.Equal(t, models.VerifyAccepted, result)
}

func TestVerifyChallenge_Accepted(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	_, code, err := repo.IssueChallenge(ctx, "card-1", models.ChannelEmail, "owner@example.com")
	require.NoError(t, err)

	result, err := repo.VerifyChallenge(ctx, "card-1", code)
	require.NoError(t, err)
	assert.Equal(t, models.VerifyAccepted, result)

	// a consumed challenge cannot be replayed
	result, err = repo.VerifyChallenge(ctx, "card-1", code)
	require.NoError(t, err)
	assert.Equal(t, models.VerifyNoChallenge, result)
}

func TestVerifyChallenge_NoChallenge(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	result, err := repo.VerifyChallenge(context.Background(), "card-1", "123456")
	require.NoError(t, err)
	assert.Equal(t, models.VerifyNoChallenge, result)
}

func TestVerifyChallenge_WrongCodeDecrementsAttempts(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	_, code, err := repo.IssueChallenge(ctx, "card-1", models.ChannelEmail, "owner@example.com")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	result, err := repo.VerifyChallenge(ctx, "card-1", wrong)
	require.NoError(t, err)
	assert.Equal(t, models.VerifyWrongCode, result)

	key := fmt.Sprintf(constants.KeyCardOTP, "card-1")
	val, err := mr.Get(key)
	require.NoError(t, err)

	var stored models.OtpChallenge
	require.NoError(t, json.Unmarshal([]byte(val), &stored))
	assert.Equal(t, 4, stored.AttemptsRemaining)
	assert.False(t, stored.Consumed)

	// the correct code still works while attempts remain
	result, err = repo.VerifyChallenge(ctx, "card-1", code)
	require.NoError(t, err)
	assert.Equal(t, models.VerifyAccepted, result)
}

func TestVerifyChallenge_AttemptsExhausted(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	_, code, err := repo.IssueChallenge(ctx, "card-1", models.ChannelEmail, "owner@example.com")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	for i := 0; i < 5; i++ {
		result, err := repo.VerifyChallenge(ctx, "card-1", wrong)
		require.NoError(t, err)
		assert.Equal(t, models.VerifyWrongCode, result)
	}

	// budget spent: even the correct code no longer activates
	result, err := repo.VerifyChallenge(ctx, "card-1", code)
	require.NoError(t, err)
	assert.Equal(t, models.VerifyAttemptsExhausted, result)
}

func TestVerifyChallenge_Expired(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	_, code, err := repo.IssueChallenge(ctx, "card-1", models.ChannelEmail, "owner@example.com")
	require.NoError(t, err)

	mr.FastForward(6 * time.Minute)

	result, err := repo.VerifyChallenge(ctx, "card-1", code)
	require.NoError(t, err)
	assert.Equal(t, models.VerifyNoChallenge, result)
}

func TestVerifyChallenge_ExpiredByServerClock(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()

	// a stale payload whose key has not been evicted yet is still expired
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	challenge := models.OtpChallenge{
		CardID:            "card-1",
		CodeHash:          string(hash),
		Channel:           models.ChannelEmail,
		Destination:       "owner@example.com",
		CreatedAt:         time.Now().Add(-10 * time.Minute),
		ExpiresAt:         time.Now().Add(-5 * time.Minute),
		AttemptsRemaining: 5,
	}
	payload, err := json.Marshal(&challenge)
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyCardOTP, "card-1")
	require.NoError(t, mr.Set(key, string(payload)))

	result, err := repo.VerifyChallenge(ctx, "card-1", "123456")
	require.NoError(t, err)
	assert.Equal(t, models.VerifyExpired, result)
}

func TestPINFailureLockout(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	token := "tok-1"

	locked, err := repo.IsPINLocked(ctx, token)
	require.NoError(t, err)
	assert.False(t, locked)

	for i := 0; i < 4; i++ {
		nowLocked, err := repo.RecordPINFailure(ctx, token)
		require.NoError(t, err)
		assert.False(t, nowLocked, "failure %d should not lock", i+1)
	}

	// fifth failure engages the lock
	nowLocked, err := repo.RecordPINFailure(ctx, token)
	require.NoError(t, err)
	assert.True(t, nowLocked)

	locked, err = repo.IsPINLocked(ctx, token)
	require.NoError(t, err)
	assert.True(t, locked)

	// the lock expires on its own
	mr.FastForward(16 * time.Minute)
	locked, err = repo.IsPINLocked(ctx, token)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestClearPINFailures(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	ctx := context.Background()
	token := "tok-1"

	for i := 0; i < 4; i++ {
		_, err := repo.RecordPINFailure(ctx, token)
		require.NoError(t, err)
	}

	require.NoError(t, repo.ClearPINFailures(ctx, token))

	// counter starts over after a correct PIN
	nowLocked, err := repo.RecordPINFailure(ctx, token)
	require.NoError(t, err)
	assert.False(t, nowLocked)

	locked, err := repo.IsPINLocked(ctx, token)
	require.NoError(t, err)
	assert.False(t, locked)
}

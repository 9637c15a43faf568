package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapcard/tapcard/internal/pkg/models"
	"github.com/tapcard/tapcard/services/cards"
	"github.com/tapcard/tapcard/services/cards/mocks"
)

type otpTestDeps struct {
	cardRepo *mocks.MockCardRepo
	otpRepo  *mocks.MockOTPRepo
	gw       *mocks.MockCardGW
	uc       *CardUC
}

func setupOTPTest(t *testing.T) (*otpTestDeps, func()) {
	ctrl := gomock.NewController(t)

	deps := &otpTestDeps{
		cardRepo: mocks.NewMockCardRepo(ctrl),
		otpRepo:  mocks.NewMockOTPRepo(ctrl),
		gw:       mocks.NewMockCardGW(ctrl),
	}
	deps.uc = NewCardUC(deps.cardRepo, deps.otpRepo, deps.gw, newTestConfig())

	return deps, ctrl.Finish
}

func pendingCard(id uuid.UUID) *models.Card {
	return &models.Card{
		ID:             id,
		OwnerProfileID: "profile-1",
		CardToken:      "tok-1",
		Status:         models.CardStatusPending,
		CreatedAt:      time.Now(),
	}
}

func TestRequestOTP_Success(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)

	deps.otpRepo.EXPECT().IsPINLocked(gomock.Any(), "tok-1").Return(false, nil)
	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)
	deps.cardRepo.EXPECT().VerifyPIN(gomock.Any(), cardID.String(), "123456").Return(true, nil)
	deps.otpRepo.EXPECT().ClearPINFailures(gomock.Any(), "tok-1").Return(nil)
	deps.otpRepo.EXPECT().
		IssueChallenge(gomock.Any(), cardID.String(), models.ChannelEmail, "owner@example.com").
		Return(&models.OtpChallenge{AttemptsRemaining: 5}, "111222", nil)
	deps.gw.EXPECT().
		SendOTP(gomock.Any(), models.ChannelEmail, "owner@example.com", "111222").
		Return(nil)

	err := deps.uc.RequestOTP(context.Background(), &models.RequestOTPRequest{
		CardToken: "tok-1",
		Pin:       "123456",
		Channel:   "email",
		Email:     "owner@example.com",
	})
	assert.NoError(t, err)
}

func TestRequestOTP_FallsBackToProfileContact(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)

	deps.otpRepo.EXPECT().IsPINLocked(gomock.Any(), "tok-1").Return(false, nil)
	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)
	deps.cardRepo.EXPECT().VerifyPIN(gomock.Any(), cardID.String(), "123456").Return(true, nil)
	deps.otpRepo.EXPECT().ClearPINFailures(gomock.Any(), "tok-1").Return(nil)
	deps.gw.EXPECT().
		GetProfileContact(gomock.Any(), "profile-1").
		Return(&models.ProfileContact{Phone: "+628123456789"}, nil)
	deps.otpRepo.EXPECT().
		IssueChallenge(gomock.Any(), cardID.String(), models.ChannelSMS, "+628123456789").
		Return(&models.OtpChallenge{AttemptsRemaining: 5}, "111222", nil)
	deps.gw.EXPECT().
		SendOTP(gomock.Any(), models.ChannelSMS, "+628123456789", "111222").
		Return(nil)

	err := deps.uc.RequestOTP(context.Background(), &models.RequestOTPRequest{
		CardToken: "tok-1",
		Pin:       "123456",
		Channel:   "sms",
	})
	assert.NoError(t, err)
}

func TestRequestOTP_NoDestination(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)

	deps.otpRepo.EXPECT().IsPINLocked(gomock.Any(), "tok-1").Return(false, nil)
	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)
	deps.cardRepo.EXPECT().VerifyPIN(gomock.Any(), cardID.String(), "123456").Return(true, nil)
	deps.otpRepo.EXPECT().ClearPINFailures(gomock.Any(), "tok-1").Return(nil)
	deps.gw.EXPECT().
		GetProfileContact(gomock.Any(), "profile-1").
		Return(&models.ProfileContact{Email: "owner@example.com"}, nil)

	// profile has an email but no phone, and the caller asked for sms
	err := deps.uc.RequestOTP(context.Background(), &models.RequestOTPRequest{
		CardToken: "tok-1",
		Pin:       "123456",
		Channel:   "sms",
	})
	assert.ErrorIs(t, err, cards.ErrNoDestination)
}

func TestRequestOTP_InvalidChannel(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	err := deps.uc.RequestOTP(context.Background(), &models.RequestOTPRequest{
		CardToken: "tok-1",
		Pin:       "123456",
		Channel:   "pigeon",
	})
	assert.ErrorIs(t, err, cards.ErrInvalidChannel)
}

func TestRequestOTP_WrongPIN(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)

	deps.otpRepo.EXPECT().IsPINLocked(gomock.Any(), "tok-1").Return(false, nil)
	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)
	deps.cardRepo.EXPECT().VerifyPIN(gomock.Any(), cardID.String(), "000000").Return(false, nil)
	deps.otpRepo.EXPECT().RecordPINFailure(gomock.Any(), "tok-1").Return(false, nil)

	err := deps.uc.RequestOTP(context.Background(), &models.RequestOTPRequest{
		CardToken: "tok-1",
		Pin:       "000000",
		Channel:   "email",
		Email:     "owner@example.com",
	})
	assert.ErrorIs(t, err, cards.ErrInvalidCredentials)
}

func TestRequestOTP_WrongPINLocksOut(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)

	deps.otpRepo.EXPECT().IsPINLocked(gomock.Any(), "tok-1").Return(false, nil)
	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)
	deps.cardRepo.EXPECT().VerifyPIN(gomock.Any(), cardID.String(), "000000").Return(false, nil)
	deps.otpRepo.EXPECT().RecordPINFailure(gomock.Any(), "tok-1").Return(true, nil)

	err := deps.uc.RequestOTP(context.Background(), &models.RequestOTPRequest{
		CardToken: "tok-1",
		Pin:       "000000",
		Channel:   "email",
		Email:     "owner@example.com",
	})
	assert.ErrorIs(t, err, cards.ErrPINLocked)
}

func TestRequestOTP_AlreadyLocked(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	// the lock is checked before the token resolves, so a locked caller
	// learns nothing about whether the token exists
	deps.otpRepo.EXPECT().IsPINLocked(gomock.Any(), "tok-1").Return(true, nil)

	err := deps.uc.RequestOTP(context.Background(), &models.RequestOTPRequest{
		CardToken: "tok-1",
		Pin:       "123456",
		Channel:   "email",
		Email:     "owner@example.com",
	})
	assert.ErrorIs(t, err, cards.ErrPINLocked)
}

func TestRequestOTP_RevokedCard(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)
	card.Status = models.CardStatusRevoked

	deps.otpRepo.EXPECT().IsPINLocked(gomock.Any(), "tok-1").Return(false, nil)
	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)

	err := deps.uc.RequestOTP(context.Background(), &models.RequestOTPRequest{
		CardToken: "tok-1",
		Pin:       "123456",
		Channel:   "email",
		Email:     "owner@example.com",
	})
	assert.ErrorIs(t, err, cards.ErrCardRevoked)
}

func TestRequestOTP_DeliveryFailure(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)

	deps.otpRepo.EXPECT().IsPINLocked(gomock.Any(), "tok-1").Return(false, nil)
	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)
	deps.cardRepo.EXPECT().VerifyPIN(gomock.Any(), cardID.String(), "123456").Return(true, nil)
	deps.otpRepo.EXPECT().ClearPINFailures(gomock.Any(), "tok-1").Return(nil)
	deps.otpRepo.EXPECT().
		IssueChallenge(gomock.Any(), cardID.String(), models.ChannelEmail, "owner@example.com").
		Return(&models.OtpChallenge{AttemptsRemaining: 5}, "111222", nil)
	deps.gw.EXPECT().
		SendOTP(gomock.Any(), models.ChannelEmail, "owner@example.com", "111222").
		Return(assert.AnError)

	err := deps.uc.RequestOTP(context.Background(), &models.RequestOTPRequest{
		CardToken: "tok-1",
		Pin:       "123456",
		Channel:   "email",
		Email:     "owner@example.com",
	})
	assert.ErrorIs(t, err, cards.ErrDeliveryFailed)
}

func TestVerifyOTP_ActivatesCard(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)
	activatedAt := time.Now()

	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)
	deps.otpRepo.EXPECT().
		VerifyChallenge(gomock.Any(), cardID.String(), "111222").
		Return(models.VerifyAccepted, nil)
	deps.cardRepo.EXPECT().
		ActivateCard(gomock.Any(), cardID.String()).
		Return(&models.Card{
			ID:             cardID,
			OwnerProfileID: "profile-1",
			CardToken:      "tok-1",
			Status:         models.CardStatusActive,
			ActivatedAt:    &activatedAt,
		}, nil)
	deps.gw.EXPECT().
		PublishCardActivated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *models.CardActivatedEvent) error {
			assert.Equal(t, cardID.String(), event.CardID)
			return nil
		})

	result, err := deps.uc.VerifyOTP(context.Background(), "tok-1", "111222")
	require.NoError(t, err)
	assert.Equal(t, models.CardStatusActive, result.Status)
}

func TestVerifyOTP_AlreadyActiveIsNoop(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	activatedAt := time.Now().Add(-time.Hour)
	card := &models.Card{
		ID:          cardID,
		CardToken:   "tok-1",
		Status:      models.CardStatusActive,
		ActivatedAt: &activatedAt,
	}

	// no ledger interaction and no second activation
	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)

	result, err := deps.uc.VerifyOTP(context.Background(), "tok-1", "111222")
	require.NoError(t, err)
	assert.Equal(t, models.CardStatusActive, result.Status)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)

	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)
	deps.otpRepo.EXPECT().
		VerifyChallenge(gomock.Any(), cardID.String(), "000000").
		Return(models.VerifyWrongCode, nil)

	result, err := deps.uc.VerifyOTP(context.Background(), "tok-1", "000000")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, cards.ErrWrongCode)
}

func TestVerifyOTP_NoChallenge(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)

	testCases := []struct {
		name   string
		result models.VerifyResult
	}{
		{name: "never issued", result: models.VerifyNoChallenge},
		{name: "expired", result: models.VerifyExpired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)
			deps.otpRepo.EXPECT().
				VerifyChallenge(gomock.Any(), cardID.String(), "111222").
				Return(tc.result, nil)

			result, err := deps.uc.VerifyOTP(context.Background(), "tok-1", "111222")
			assert.Nil(t, result)
			assert.ErrorIs(t, err, cards.ErrNoChallenge)
		})
	}
}

func TestVerifyOTP_AttemptsExhausted(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)

	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)
	deps.otpRepo.EXPECT().
		VerifyChallenge(gomock.Any(), cardID.String(), "111222").
		Return(models.VerifyAttemptsExhausted, nil)

	result, err := deps.uc.VerifyOTP(context.Background(), "tok-1", "111222")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, cards.ErrAttemptsExhausted)
}

func TestVerifyOTP_RevokedCard(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	cardID := uuid.New()
	card := pendingCard(cardID)
	card.Status = models.CardStatusRevoked

	deps.cardRepo.EXPECT().GetCardByToken(gomock.Any(), "tok-1").Return(card, nil)

	result, err := deps.uc.VerifyOTP(context.Background(), "tok-1", "111222")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, cards.ErrCardRevoked)
}

func TestVerifyOTP_UnknownToken(t *testing.T) {
	deps, finish := setupOTPTest(t)
	defer finish()

	deps.cardRepo.EXPECT().
		GetCardByToken(gomock.Any(), "missing").
		Return(nil, cards.ErrCardNotFound)

	result, err := deps.uc.VerifyOTP(context.Background(), "missing", "111222")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, cards.ErrCardNotFound)
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tapcard/tapcard/internal/pkg/logger"
	"github.com/tapcard/tapcard/internal/pkg/models"
	"github.com/tapcard/tapcard/internal/utils"
	"github.com/tapcard/tapcard/services/cards"
)

// CardHandler handles HTTP requests for card operations
type CardHandler struct {
	cardUC cards.CardUC
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardUC cards.CardUC) *CardHandler {
	return &CardHandler{
		cardUC: cardUC,
	}
}

// CreateCard handles card creation requests. The owner comes from the
// authenticated session; the response is the only place the plaintext token
// and PIN ever appear.
func (h *CardHandler) CreateCard(c echo.Context) error {
	profileID, ok := c.Get("profile_id").(string)
	if !ok || profileID == "" {
		return utils.UnauthorizedResponse(c, "Missing profile in session")
	}

	var req models.CreateCardRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for card creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateCard"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.cardUC.CreateCard(c.Request().Context(), profileID, req.Pin)
	if err != nil {
		if errors.Is(err, cards.ErrInvalidPIN) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create card",
			logger.ErrorField(err),
			logger.String("owner_profile_id", profileID))
		return utils.InternalServerErrorResponse(c, "Failed to create card")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Card created successfully", resp)
}

// RequestOTP handles one-time-code issuance requests
func (h *CardHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.CardToken == "" || req.Pin == "" || req.Channel == "" {
		return utils.BadRequestResponse(c, "card_token, pin and channel are required")
	}

	if err := h.cardUC.RequestOTP(c.Request().Context(), &req); err != nil {
		return h.mapCardError(c, err, "Failed to request code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Code sent", nil)
}

// VerifyOTP handles code verification and card activation requests
func (h *CardHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.CardToken == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "card_token and otp are required")
	}

	card, err := h.cardUC.VerifyOTP(c.Request().Context(), req.CardToken, req.OTP)
	if err != nil {
		return h.mapCardError(c, err, "Failed to verify code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Card activated", card)
}

// RevokeCard handles administrative card revocation over the internal API
func (h *CardHandler) RevokeCard(c echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return utils.BadRequestResponse(c, "Invalid card ID")
	}

	card, err := h.cardUC.RevokeCard(c.Request().Context(), cardID)
	if err != nil {
		return h.mapCardError(c, err, "Failed to revoke card")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Card revoked", card)
}

// mapCardError translates usecase error kinds into HTTP statuses. Anything
// unrecognized is logged and reported as a 500 without internal detail.
func (h *CardHandler) mapCardError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, cards.ErrCardNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, cards.ErrInvalidCredentials), errors.Is(err, cards.ErrWrongCode):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, cards.ErrPINLocked), errors.Is(err, cards.ErrAttemptsExhausted):
		return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, cards.ErrNoDestination), errors.Is(err, cards.ErrNoChallenge),
		errors.Is(err, cards.ErrInvalidChannel), errors.Is(err, cards.ErrInvalidPIN):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, cards.ErrDeliveryFailed):
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, cards.ErrCardRevoked):
		return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
	default:
		logger.Error("Unhandled card operation error",
			logger.ErrorField(err),
			logger.String("path", c.Path()))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}

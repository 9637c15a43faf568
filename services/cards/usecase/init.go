package usecase

import (
	"github.com/tapcard/tapcard/internal/pkg/models"
	"github.com/tapcard/tapcard/services/cards"
)

type CardUC struct {
	cardRepo cards.CardRepo
	otpRepo  cards.OTPRepo
	cardGW   cards.CardGW
	cfg      *models.Config
}

// NewCardUC creates a new card usecase instance
func NewCardUC(
	cardRepo cards.CardRepo,
	otpRepo cards.OTPRepo,
	cardGW cards.CardGW,
	cfg *models.Config,
) *CardUC {
	return &CardUC{
		cardRepo: cardRepo,
		otpRepo:  otpRepo,
		cardGW:   cardGW,
		cfg:      cfg,
	}
}

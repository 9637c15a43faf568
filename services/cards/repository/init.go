package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/tapcard/tapcard/internal/pkg/database"
	"github.com/tapcard/tapcard/internal/pkg/models"
)

// CardRepo implements the card store on Postgres and the OTP ledger on Redis
type CardRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewCardRepo creates a new card repository instance
func NewCardRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *CardRepo {
	return &CardRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// MessageRepo implements the chat repository interface
type MessageRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMessageRepo creates a new chat repository instance
func NewMessageRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *MessageRepo {
	return &MessageRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

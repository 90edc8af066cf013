package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// AdminRepo implements the back-office repository interface
type AdminRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAdminRepo creates a new back-office repository instance
func NewAdminRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AdminRepo {
	return &AdminRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

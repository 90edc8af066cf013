package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// AnnonceRepo implements the listing repository interface
type AnnonceRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAnnonceRepo creates a new listing repository instance
func NewAnnonceRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AnnonceRepo {
	return &AnnonceRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

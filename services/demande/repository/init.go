package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// DemandeRepo implements the transport request repository interface
type DemandeRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDemandeRepo creates a new transport request repository instance
func NewDemandeRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *DemandeRepo {
	return &DemandeRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

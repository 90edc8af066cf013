package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// UtilisateurRepo implements the account repository interface
type UtilisateurRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewUtilisateurRepo creates a new account repository instance
func NewUtilisateurRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *UtilisateurRepo {
	return &UtilisateurRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

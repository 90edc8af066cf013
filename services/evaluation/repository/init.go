package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// EvaluationRepo implements the rating repository interface
type EvaluationRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewEvaluationRepo creates a new rating repository instance
func NewEvaluationRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *EvaluationRepo {
	return &EvaluationRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

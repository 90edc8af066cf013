package usecase

import (
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/annonce"
)

// AnnonceUC implements the listing business logic
type AnnonceUC struct {
	cfg         *models.Config
	annonceRepo annonce.AnnonceRepo
}

// NewAnnonceUC creates a new listing usecase instance
func NewAnnonceUC(cfg *models.Config, annonceRepo annonce.AnnonceRepo) *AnnonceUC {
	return &AnnonceUC{
		cfg:         cfg,
		annonceRepo: annonceRepo,
	}
}

package usecase

import (
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/annonce"
	"github.com/transportconnect/transportconnect/services/demande"
)

// DemandeUC implements the transport request business logic
type DemandeUC struct {
	cfg         *models.Config
	demandeRepo demande.DemandeRepo
	annonceRepo annonce.AnnonceRepo
	demandeGW   demande.DemandeGW
}

// NewDemandeUC creates a new transport request usecase instance
func NewDemandeUC(cfg *models.Config, demandeRepo demande.DemandeRepo, annonceRepo annonce.AnnonceRepo, demandeGW demande.DemandeGW) *DemandeUC {
	return &DemandeUC{
		cfg:         cfg,
		demandeRepo: demandeRepo,
		annonceRepo: annonceRepo,
		demandeGW:   demandeGW,
	}
}

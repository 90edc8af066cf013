package usecase

import (
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/utilisateur"
)

// UtilisateurUC implements the account business logic
type UtilisateurUC struct {
	cfg             *models.Config
	utilisateurRepo utilisateur.UtilisateurRepo
	utilisateurGW   utilisateur.UtilisateurGW
}

// NewUtilisateurUC creates a new account usecase instance
func NewUtilisateurUC(cfg *models.Config, utilisateurRepo utilisateur.UtilisateurRepo, utilisateurGW utilisateur.UtilisateurGW) *UtilisateurUC {
	return &UtilisateurUC{
		cfg:             cfg,
		utilisateurRepo: utilisateurRepo,
		utilisateurGW:   utilisateurGW,
	}
}

package usecase

import (
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/admin"
)

// AdminUC implements the back-office business logic
type AdminUC struct {
	cfg       *models.Config
	adminRepo admin.AdminRepo
	mailer    admin.Mailer
}

// NewAdminUC creates a new back-office usecase instance
func NewAdminUC(cfg *models.Config, adminRepo admin.AdminRepo, mailer admin.Mailer) *AdminUC {
	return &AdminUC{
		cfg:       cfg,
		adminRepo: adminRepo,
		mailer:    mailer,
	}
}

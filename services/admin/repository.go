package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// AdminRepo defines the back-office repository interface. It reads across
// every domain table for rollups and exports and owns the moderation writes.
type AdminRepo interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
	ListUsers(ctx context.Context, filter models.UserFilter, p models.Pagination) ([]*models.User, int, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// SetUserStatut writes the status only when it differs from the current
	// one and reports whether a row changed.
	SetUserStatut(ctx context.Context, userID uuid.UUID, statut string) (bool, error)
	UpdateBadges(ctx context.Context, userID uuid.UUID, badges models.StringArray) error
	AddModerationEntry(ctx context.Context, e *models.ModerationEntry) error
	ListModerationHistory(ctx context.Context, userID uuid.UUID) ([]*models.ModerationEntry, error)
	// SetAnnonceStatut moderates a listing and reports whether a row changed.
	// Soft-deleted listings are never touched.
	SetAnnonceStatut(ctx context.Context, annonceID uuid.UUID, statut string) (bool, error)
	ListLitiges(ctx context.Context, p models.Pagination) ([]*models.LitigeResume, int, error)
	ExportUtilisateurs(ctx context.Context) ([]*models.ExportUtilisateur, error)
	ExportAnnonces(ctx context.Context) ([]*models.ExportAnnonce, error)
	ExportDemandes(ctx context.Context) ([]*models.ExportDemande, error)
	ExportEvaluations(ctx context.Context) ([]*models.ExportEvaluation, error)
}

package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// AdminUC defines the interface for back-office business logic
type AdminUC interface {
	GetDashboard(ctx context.Context) (*models.DashboardStats, error)
	ListUsers(ctx context.Context, filter models.UserFilter, p models.Pagination) (*models.Page, error)
	SetUserStatus(ctx context.Context, userID, adminID uuid.UUID, statut, motif string) error
	GrantBadge(ctx context.Context, userID, adminID uuid.UUID, badge string) error
	RevokeBadge(ctx context.Context, userID, adminID uuid.UUID, badge string) error
	GetModerationHistory(ctx context.Context, userID uuid.UUID) ([]*models.ModerationEntry, error)
	SetAnnonceStatus(ctx context.Context, annonceID uuid.UUID, statut string) error
	ListLitiges(ctx context.Context, p models.Pagination) (*models.Page, error)
	// Export renders one dataset and returns the payload with its MIME type.
	Export(ctx context.Context, dataset, format string) ([]byte, string, error)
}

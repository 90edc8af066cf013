package annonce

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// AnnonceUC defines the interface for listing business logic
type AnnonceUC interface {
	CreateAnnonce(ctx context.Context, a *models.Annonce, conducteurID uuid.UUID) error
	ListAnnonces(ctx context.Context, filter models.AnnonceFilter, p models.Pagination) (*models.Page, error)
	GetAnnonce(ctx context.Context, id uuid.UUID, viewerID uuid.UUID) (*models.Annonce, error)
	UpdateAnnonce(ctx context.Context, id uuid.UUID, patch models.UpdateAnnonceRequest, callerID uuid.UUID, callerRole string) (*models.Annonce, error)
	DeleteAnnonce(ctx context.Context, id uuid.UUID, callerID uuid.UUID, callerRole string) error
	AddCommentaire(ctx context.Context, annonceID uuid.UUID, auteurID uuid.UUID, texte string) (*models.Commentaire, error)
	ReplyCommentaire(ctx context.Context, annonceID, commentaireID, auteurID uuid.UUID, texte string) error
}

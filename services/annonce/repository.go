package annonce

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// AnnonceRepo defines the listing repository interface
type AnnonceRepo interface {
	CreateAnnonce(ctx context.Context, a *models.Annonce) error
	GetAnnonceByID(ctx context.Context, id uuid.UUID) (*models.Annonce, error)
	ListAnnonces(ctx context.Context, filter models.AnnonceFilter, p models.Pagination) ([]*models.Annonce, int, error)
	UpdateAnnonce(ctx context.Context, a *models.Annonce) error
	UpdateAnnonceStatut(ctx context.Context, id uuid.UUID, statut string) error
	DeleteAnnonce(ctx context.Context, id uuid.UUID) error
	SoftDeleteAnnonce(ctx context.Context, id uuid.UUID) error
	CountDemandes(ctx context.Context, annonceID uuid.UUID) (int, error)
	CountDemandesEnVol(ctx context.Context, annonceID uuid.UUID) (int, error)
	IncrementVues(ctx context.Context, id uuid.UUID) error
	MarquerVue(ctx context.Context, annonceID, viewerID uuid.UUID) (bool, error)
	AddCommentaire(ctx context.Context, c *models.Commentaire) error
	ReplyCommentaire(ctx context.Context, commentaireID, auteurID uuid.UUID, texte string) (bool, error)
}

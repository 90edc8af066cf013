package demande

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// DemandeUC defines the interface for transport request business logic
type DemandeUC interface {
	CreateDemande(ctx context.Context, req models.CreateDemandeRequest, expediteurID uuid.UUID) (*models.Demande, error)
	ListDemandes(ctx context.Context, userID uuid.UUID, role, statut string, p models.Pagination) (*models.Page, error)
	GetDemande(ctx context.Context, id, callerID uuid.UUID, callerRole string) (*models.Demande, error)
	RespondDemande(ctx context.Context, id, conducteurID uuid.UUID, decision string, prixAccepte *float64) (*models.Demande, error)
	UpdateStatut(ctx context.Context, id, conducteurID uuid.UUID, statut string, note *string) (*models.Demande, error)
	CancelDemande(ctx context.Context, id, expediteurID uuid.UUID) error
	ReportLitige(ctx context.Context, id, callerID uuid.UUID, motif string) error
	ResolveLitige(ctx context.Context, id, adminID uuid.UUID, decision, resolution string) (*models.Demande, error)
	UpdatePosition(ctx context.Context, id, conducteurID uuid.UUID, pos models.Position) error
	AddEtape(ctx context.Context, id, conducteurID uuid.UUID, localisation, statut string, note *string) error
	TrackByNumero(ctx context.Context, numeroSuivi string) (*models.SuiviPublic, error)
}

package demande

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// TransitionParams carries one optimistic status write. De/Version form the
// compare-and-swap precondition; the optional stamps are written with the new
// status and one history entry is appended in the same transaction.
type TransitionParams struct {
	ID                 uuid.UUID
	De                 string
	Vers               string
	Version            int
	Note               *string
	AuteurID           *uuid.UUID
	PrixAccepte        *float64
	NumeroSuivi        *string
	DateReponse        *time.Time
	DateEnlevement     *time.Time
	DateLivraison      *time.Time
	IncrementAcceptees bool
}

// DemandeRepo defines the transport request repository interface
type DemandeRepo interface {
	CreateDemande(ctx context.Context, d *models.Demande) error
	GetDemandeByID(ctx context.Context, id uuid.UUID) (*models.Demande, error)
	GetDemandeByNumeroSuivi(ctx context.Context, numeroSuivi string) (*models.Demande, error)
	ListByExpediteur(ctx context.Context, expediteurID uuid.UUID, statut string, p models.Pagination) ([]*models.Demande, int, error)
	ListByConducteur(ctx context.Context, conducteurID uuid.UUID, statut string, p models.Pagination) ([]*models.Demande, int, error)
	TransitionStatut(ctx context.Context, params TransitionParams) (bool, error)
	OuvrirLitige(ctx context.Context, id uuid.UUID, motif string, par uuid.UUID) (bool, error)
	ResoudreLitige(ctx context.Context, id uuid.UUID, resolution string, par uuid.UUID, nouveauStatut *string) (bool, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, pos models.Position) error
	AddEtape(ctx context.Context, e *models.EtapeSuivi) error
}

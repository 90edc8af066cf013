package demande

import (
	"context"

	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// DemandeGW defines the transport request event gateway interface
type DemandeGW interface {
	PublishDemandeCreated(ctx context.Context, event *models.DemandeCreatedEvent) error
	PublishStatusChanged(ctx context.Context, event *models.DemandeStatusChangedEvent) error
}

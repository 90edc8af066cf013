package notification

import (
	"context"

	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// NotificationUC defines the interface for notification dispatch logic
type NotificationUC interface {
	HandleUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error
	HandleDemandeCreated(ctx context.Context, event *models.DemandeCreatedEvent) error
	HandleDemandeStatusChanged(ctx context.Context, event *models.DemandeStatusChangedEvent) error
	HandleEvaluationCreated(ctx context.Context, event *models.EvaluationCreatedEvent) error
	HandleMessageSent(ctx context.Context, event *models.MessageSentEvent) error
}

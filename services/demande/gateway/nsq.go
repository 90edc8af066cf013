package gateway

import (
	"context"

	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// PublishDemandeCreated announces a new request to the notifier
func (g *DemandeGW) PublishDemandeCreated(_ context.Context, event *models.DemandeCreatedEvent) error {
	return g.producer.Publish(models.TopicDemandeCreated, event)
}

// PublishStatusChanged announces a status transition to the notifier
func (g *DemandeGW) PublishStatusChanged(_ context.Context, event *models.DemandeStatusChangedEvent) error {
	return g.producer.Publish(models.TopicDemandeStatusChanged, event)
}

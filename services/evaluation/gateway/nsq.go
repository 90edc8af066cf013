package gateway

import (
	"context"

	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// PublishEvaluationCreated announces a new rating to the notifier
func (g *EvaluationGW) PublishEvaluationCreated(_ context.Context, event *models.EvaluationCreatedEvent) error {
	return g.producer.Publish(models.TopicEvaluationCreated, event)
}

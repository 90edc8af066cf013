package evaluation

import (
	"context"

	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// EvaluationGW defines the rating event gateway interface
type EvaluationGW interface {
	PublishEvaluationCreated(ctx context.Context, event *models.EvaluationCreatedEvent) error
}

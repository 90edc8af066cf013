package evaluation

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// EvaluationUC defines the interface for rating business logic
type EvaluationUC interface {
	CreateEvaluation(ctx context.Context, req models.CreateEvaluationRequest, evaluateurID uuid.UUID) (*models.Evaluation, error)
	ListForUser(ctx context.Context, userID, callerID uuid.UUID, callerRole string, p models.Pagination) (*models.Page, error)
	ReplyEvaluation(ctx context.Context, id, callerID uuid.UUID, texte string) error
	MarkHelpful(ctx context.Context, id, userID uuid.UUID) error
	ReportEvaluation(ctx context.Context, id, callerID uuid.UUID, motif string) error
	ModerateEvaluation(ctx context.Context, id, adminID uuid.UUID, action string) error
}

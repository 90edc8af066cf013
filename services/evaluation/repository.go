package evaluation

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// EvaluationRepo defines the rating repository interface
type EvaluationRepo interface {
	// CreateEvaluation inserts the rating, links it onto the request's
	// direction slot and recomputes the rated user's aggregates in one
	// transaction. A duplicate triple surfaces as models.ErrConflict.
	CreateEvaluation(ctx context.Context, e *models.Evaluation) error
	GetEvaluationByID(ctx context.Context, id uuid.UUID) (*models.Evaluation, error)
	ListForUser(ctx context.Context, userID uuid.UUID, visiblePour *uuid.UUID, p models.Pagination) ([]*models.Evaluation, int, error)
	ReplyEvaluation(ctx context.Context, id uuid.UUID, texte string) (bool, error)
	AddHelpfulVote(ctx context.Context, id, userID uuid.UUID) (bool, error)
	ReportEvaluation(ctx context.Context, id uuid.UUID, motif string, par uuid.UUID) (bool, error)
	SetApprouvee(ctx context.Context, id uuid.UUID, approuvee bool) error
	MarkSignalementTraite(ctx context.Context, id uuid.UUID) error
	RecomputeAggregates(ctx context.Context, userID uuid.UUID) error
}

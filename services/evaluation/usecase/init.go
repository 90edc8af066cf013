package usecase

import (
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/demande"
	"github.com/transportconnect/transportconnect/services/evaluation"
)

// EvaluationUC implements the rating business logic
type EvaluationUC struct {
	cfg            *models.Config
	evaluationRepo evaluation.EvaluationRepo
	demandeRepo    demande.DemandeRepo
	evaluationGW   evaluation.EvaluationGW
}

// NewEvaluationUC creates a new rating usecase instance
func NewEvaluationUC(cfg *models.Config, evaluationRepo evaluation.EvaluationRepo, demandeRepo demande.DemandeRepo, evaluationGW evaluation.EvaluationGW) *EvaluationUC {
	return &EvaluationUC{
		cfg:            cfg,
		evaluationRepo: evaluationRepo,
		demandeRepo:    demandeRepo,
		evaluationGW:   evaluationGW,
	}
}

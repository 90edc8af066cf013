package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// Moderation actions accepted by ModerateEvaluation
const (
	ModerationApprouver     = "approuver"
	ModerationRejeter       = "rejeter"
	ModerationTraiterRapport = "traiter_signalement"
)

// CreateEvaluation rates the counterpart of a delivered transport. The
// rating direction follows from which party the rater is.
func (uc *EvaluationUC) CreateEvaluation(ctx context.Context, req models.CreateEvaluationRequest, evaluateurID uuid.UUID) (*models.Evaluation, error) {
	if err := validerCriteres(req.Criteres); err != nil {
		return nil, err
	}

	d, err := uc.demandeRepo.GetDemandeByID(ctx, req.DemandeID)
	if err != nil {
		return nil, err
	}
	if d.Statut != models.DemandeStatutLivree {
		return nil, fmt.Errorf("%w: transport is not delivered", models.ErrValidation)
	}
	if !d.EstPartie(evaluateurID) {
		return nil, models.ErrForbidden
	}

	e := &models.Evaluation{
		DemandeID:    req.DemandeID,
		EvaluateurID: evaluateurID,
		Criteres:     req.Criteres,
		Commentaire:  req.Commentaire,
		Recommande:   req.Recommande,
		Note:         req.Criteres.Moyenne(),
	}

	if evaluateurID == d.ExpediteurID {
		e.EvalueID = d.ConducteurID
		e.TypeEvaluation = models.EvalExpediteurVersConducteur
		if req.Criteres.QualiteColis != nil {
			return nil, fmt.Errorf("%w: qualiteColis does not apply to this direction", models.ErrValidation)
		}
	} else {
		e.EvalueID = d.ExpediteurID
		e.TypeEvaluation = models.EvalConducteurVersExpediteur
		if req.Criteres.SoinMarchandise != nil {
			return nil, fmt.Errorf("%w: soinMarchandise does not apply to this direction", models.ErrValidation)
		}
	}

	if err := uc.evaluationRepo.CreateEvaluation(ctx, e); err != nil {
		return nil, err
	}

	if err := uc.evaluationGW.PublishEvaluationCreated(ctx, &models.EvaluationCreatedEvent{
		EvaluationID: e.ID,
		DemandeID:    e.DemandeID,
		EvaluateurID: e.EvaluateurID,
		EvalueID:     e.EvalueID,
		Note:         e.Note,
	}); err != nil {
		logger.Warn("Failed to publish evaluation.created", logger.Err(err))
	}

	logger.Info("Evaluation created",
		logger.String("evaluation_id", e.ID.String()),
		logger.String("demande_id", e.DemandeID.String()),
		logger.Float64("note", e.Note))
	return e, nil
}

// ListForUser lists ratings received by a user. Unapproved ratings are only
// visible to the rated user, the rater and admins.
func (uc *EvaluationUC) ListForUser(ctx context.Context, userID, callerID uuid.UUID, callerRole string, p models.Pagination) (*models.Page, error) {
	// admins and the rated user get the full view; everyone else sees
	// approved rows plus the unapproved ones they authored
	var visiblePour *uuid.UUID
	if callerRole != models.RoleAdmin && callerID != userID {
		visiblePour = &callerID
	}
	evaluations, total, err := uc.evaluationRepo.ListForUser(ctx, userID, visiblePour, p)
	if err != nil {
		return nil, err
	}
	return models.NewPage(evaluations, total, p), nil
}

// ReplyEvaluation sets the rated party's single reply
func (uc *EvaluationUC) ReplyEvaluation(ctx context.Context, id, callerID uuid.UUID, texte string) error {
	if texte == "" {
		return fmt.Errorf("%w: reply text is required", models.ErrValidation)
	}

	e, err := uc.evaluationRepo.GetEvaluationByID(ctx, id)
	if err != nil {
		return err
	}
	if e.EvalueID != callerID {
		return models.ErrForbidden
	}

	replied, err := uc.evaluationRepo.ReplyEvaluation(ctx, id, texte)
	if err != nil {
		return err
	}
	if !replied {
		return fmt.Errorf("%w: evaluation already has a reply", models.ErrConflict)
	}
	return nil
}

// MarkHelpful records one helpful vote per user
func (uc *EvaluationUC) MarkHelpful(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := uc.evaluationRepo.GetEvaluationByID(ctx, id); err != nil {
		return err
	}

	voted, err := uc.evaluationRepo.AddHelpfulVote(ctx, id, userID)
	if err != nil {
		return err
	}
	if !voted {
		return fmt.Errorf("%w: already voted", models.ErrConflict)
	}
	return nil
}

// ReportEvaluation flags a rating for moderation
func (uc *EvaluationUC) ReportEvaluation(ctx context.Context, id, callerID uuid.UUID, motif string) error {
	if motif == "" {
		return fmt.Errorf("%w: report reason is required", models.ErrValidation)
	}

	e, err := uc.evaluationRepo.GetEvaluationByID(ctx, id)
	if err != nil {
		return err
	}
	if e.EvaluateurID == callerID {
		return fmt.Errorf("%w: cannot report your own evaluation", models.ErrValidation)
	}

	reported, err := uc.evaluationRepo.ReportEvaluation(ctx, id, motif, callerID)
	if err != nil {
		return err
	}
	if !reported {
		return fmt.Errorf("%w: evaluation already reported", models.ErrConflict)
	}
	return nil
}

// ModerateEvaluation applies an admin action. Rejection is a soft removal
// that drops the rating from the rated user's aggregates.
func (uc *EvaluationUC) ModerateEvaluation(ctx context.Context, id, adminID uuid.UUID, action string) error {
	e, err := uc.evaluationRepo.GetEvaluationByID(ctx, id)
	if err != nil {
		return err
	}

	switch action {
	case ModerationApprouver:
		if err := uc.evaluationRepo.SetApprouvee(ctx, id, true); err != nil {
			return err
		}
	case ModerationRejeter:
		if err := uc.evaluationRepo.SetApprouvee(ctx, id, false); err != nil {
			return err
		}
	case ModerationTraiterRapport:
		return uc.evaluationRepo.MarkSignalementTraite(ctx, id)
	default:
		return fmt.Errorf("%w: unknown moderation action", models.ErrValidation)
	}

	if err := uc.evaluationRepo.RecomputeAggregates(ctx, e.EvalueID); err != nil {
		return err
	}

	logger.Info("Evaluation moderated",
		logger.String("evaluation_id", id.String()),
		logger.String("action", action),
		logger.String("admin_id", adminID.String()))
	return nil
}

func validerCriteres(c models.Criteres) error {
	notes := []int{c.Ponctualite, c.Communication, c.Professionnalisme}
	if c.SoinMarchandise != nil {
		notes = append(notes, *c.SoinMarchandise)
	}
	if c.QualiteColis != nil {
		notes = append(notes, *c.QualiteColis)
	}
	for _, n := range notes {
		if n < 1 || n > 5 {
			return fmt.Errorf("%w: criteria scores must be between 1 and 5", models.ErrValidation)
		}
	}
	return nil
}

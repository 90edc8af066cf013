package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

const evaluationColumns = `
	id, demande_id, evaluateur_id, evalue_id, type_evaluation, note,
	crit_ponctualite, crit_communication, crit_professionnalisme,
	crit_soin_marchandise, crit_qualite_colis,
	commentaire, recommande, reponse_texte, reponse_date, approuvee, nombre_utile,
	signale, signalement_motif, signale_par, signalement_date, signalement_traite,
	created_at`

// uniqueViolation is the Postgres error code raised by the one-rating-per
// direction constraint
const uniqueViolation = "23505"

type evaluationRow struct {
	ID             uuid.UUID `db:"id"`
	DemandeID      uuid.UUID `db:"demande_id"`
	EvaluateurID   uuid.UUID `db:"evaluateur_id"`
	EvalueID       uuid.UUID `db:"evalue_id"`
	TypeEvaluation string    `db:"type_evaluation"`
	Note           float64   `db:"note"`

	CritPonctualite       int  `db:"crit_ponctualite"`
	CritCommunication     int  `db:"crit_communication"`
	CritProfessionnalisme int  `db:"crit_professionnalisme"`
	CritSoinMarchandise   *int `db:"crit_soin_marchandise"`
	CritQualiteColis      *int `db:"crit_qualite_colis"`

	Commentaire  *string    `db:"commentaire"`
	Recommande   bool       `db:"recommande"`
	ReponseTexte *string    `db:"reponse_texte"`
	ReponseDate  *time.Time `db:"reponse_date"`
	Approuvee    bool       `db:"approuvee"`
	NombreUtile  int        `db:"nombre_utile"`

	Signale           bool       `db:"signale"`
	SignalementMotif  *string    `db:"signalement_motif"`
	SignalePar        *uuid.UUID `db:"signale_par"`
	SignalementDate   *time.Time `db:"signalement_date"`
	SignalementTraite bool       `db:"signalement_traite"`

	CreatedAt time.Time `db:"created_at"`
}

func (r *evaluationRow) toEvaluation() *models.Evaluation {
	e := &models.Evaluation{
		ID:             r.ID,
		DemandeID:      r.DemandeID,
		EvaluateurID:   r.EvaluateurID,
		EvalueID:       r.EvalueID,
		TypeEvaluation: r.TypeEvaluation,
		Note:           r.Note,
		Criteres: models.Criteres{
			Ponctualite:       r.CritPonctualite,
			Communication:     r.CritCommunication,
			Professionnalisme: r.CritProfessionnalisme,
			SoinMarchandise:   r.CritSoinMarchandise,
			QualiteColis:      r.CritQualiteColis,
		},
		Recommande:  r.Recommande,
		Approuvee:   r.Approuvee,
		NombreUtile: r.NombreUtile,
		Signalement: models.Signalement{
			Signale:    r.Signale,
			Motif:      r.SignalementMotif,
			SignalePar: r.SignalePar,
			Date:       r.SignalementDate,
			Traite:     r.SignalementTraite,
		},
		CreatedAt: r.CreatedAt,
	}
	if r.Commentaire != nil {
		e.Commentaire = *r.Commentaire
	}
	if r.ReponseTexte != nil && r.ReponseDate != nil {
		e.Reponse = &models.Reponse{Texte: *r.ReponseTexte, Date: *r.ReponseDate}
	}
	return e
}

// CreateEvaluation inserts the rating, writes the back-reference onto the
// request's direction slot and recomputes the rated user's aggregates,
// all in one transaction
func (r *EvaluationRepo) CreateEvaluation(ctx context.Context, e *models.Evaluation) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	e.Approuvee = true

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO evaluations (
			id, demande_id, evaluateur_id, evalue_id, type_evaluation, note,
			crit_ponctualite, crit_communication, crit_professionnalisme,
			crit_soin_marchandise, crit_qualite_colis,
			commentaire, recommande, approuvee, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, e.ID, e.DemandeID, e.EvaluateurID, e.EvalueID, e.TypeEvaluation, e.Note,
		e.Criteres.Ponctualite, e.Criteres.Communication, e.Criteres.Professionnalisme,
		e.Criteres.SoinMarchandise, e.Criteres.QualiteColis,
		e.Commentaire, e.Recommande, e.Approuvee, e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: this transaction is already rated", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert evaluation: %w", err)
	}

	slot := "evaluation_expediteur_id"
	if e.TypeEvaluation == models.EvalConducteurVersExpediteur {
		slot = "evaluation_conducteur_id"
	}
	if _, err = tx.ExecContext(ctx,
		fmt.Sprintf(`UPDATE demandes SET %s = $1, updated_at = now() WHERE id = $2`, slot),
		e.ID, e.DemandeID); err != nil {
		return fmt.Errorf("failed to link evaluation onto demande: %w", err)
	}

	if err = recomputeAggregatesTx(ctx, tx, e.EvalueID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func recomputeAggregatesTx(ctx context.Context, ex execer, userID uuid.UUID) error {
	// aggregates only consider approved ratings
	_, err := ex.ExecContext(ctx, `
		UPDATE users SET
			note_moyenne = COALESCE((SELECT AVG(note) FROM evaluations WHERE evalue_id = $1 AND approuvee), 0),
			nombre_evaluations = (SELECT COUNT(*) FROM evaluations WHERE evalue_id = $1 AND approuvee),
			updated_at = now()
		WHERE id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to recompute rating aggregates: %w", err)
	}
	return nil
}

// RecomputeAggregates refreshes the rated user's average and count
func (r *EvaluationRepo) RecomputeAggregates(ctx context.Context, userID uuid.UUID) error {
	return recomputeAggregatesTx(ctx, r.db, userID)
}

// GetEvaluationByID retrieves one rating
func (r *EvaluationRepo) GetEvaluationByID(ctx context.Context, id uuid.UUID) (*models.Evaluation, error) {
	var row evaluationRow
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return row.toEvaluation(), nil
}

// ListForUser lists ratings received by a user. A nil visiblePour returns the
// full view; otherwise unapproved rows are included only when visiblePour is
// their author.
func (r *EvaluationRepo) ListForUser(ctx context.Context, userID uuid.UUID, visiblePour *uuid.UUID, p models.Pagination) ([]*models.Evaluation, int, error) {
	where := "WHERE evalue_id = $1"
	args := []interface{}{userID}
	if visiblePour != nil {
		where += " AND (approuvee OR evaluateur_id = $2)"
		args = append(args, *visiblePour)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM evaluations "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count evaluations: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	query := fmt.Sprintf("SELECT %s FROM evaluations %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		evaluationColumns, where, len(args)-1, len(args))

	rows := []*evaluationRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list evaluations: %w", err)
	}

	evaluations := make([]*models.Evaluation, 0, len(rows))
	for _, row := range rows {
		evaluations = append(evaluations, row.toEvaluation())
	}
	return evaluations, total, nil
}

// ReplyEvaluation sets the one-time reply from the rated party. Returns false
// when a reply already exists.
func (r *EvaluationRepo) ReplyEvaluation(ctx context.Context, id uuid.UUID, texte string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE evaluations SET reponse_texte = $1, reponse_date = now()
		WHERE id = $2 AND reponse_texte IS NULL
	`, texte, id)
	if err != nil {
		return false, fmt.Errorf("failed to reply to evaluation: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// AddHelpfulVote records one helpful vote per user. Returns false on a
// duplicate vote.
func (r *EvaluationRepo) AddHelpfulVote(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO evaluation_votes (evaluation_id, user_id) VALUES ($1, $2)
	`, id, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert helpful vote: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE evaluations SET nombre_utile = nombre_utile + 1 WHERE id = $1
	`, id); err != nil {
		return false, fmt.Errorf("failed to bump helpful counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// ReportEvaluation flags a rating. Returns false when already flagged.
func (r *EvaluationRepo) ReportEvaluation(ctx context.Context, id uuid.UUID, motif string, par uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE evaluations SET
			signale = TRUE, signalement_motif = $1, signale_par = $2, signalement_date = now()
		WHERE id = $3 AND signale = FALSE
	`, motif, par, id)
	if err != nil {
		return false, fmt.Errorf("failed to report evaluation: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// SetApprouvee approves or soft-removes a rating
func (r *EvaluationRepo) SetApprouvee(ctx context.Context, id uuid.UUID, approuvee bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE evaluations SET approuvee = $1 WHERE id = $2`, approuvee, id)
	if err != nil {
		return fmt.Errorf("failed to set approval: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// MarkSignalementTraite closes an open report without touching approval
func (r *EvaluationRepo) MarkSignalementTraite(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE evaluations SET signalement_traite = TRUE WHERE id = $1 AND signale = TRUE`, id)
	if err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

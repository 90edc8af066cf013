package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

const annonceColumns = `
	id, conducteur_id, ville_depart, ville_destination, etapes,
	date_depart, date_arrivee_prevue, longueur, largeur, hauteur, poids_max, volume,
	types_marchandise, tarification_type, tarification_montant, devise, statut,
	description, nombre_vues, nombre_demandes, demandes_acceptees, taux_acceptation,
	created_at, updated_at`

// statuts considered in-flight: a listing with such requests cannot be deleted
var statutsEnVol = []string{
	models.DemandeStatutAcceptee,
	models.DemandeStatutEnCours,
	models.DemandeStatutEnlevee,
	models.DemandeStatutTransit,
}

// CreateAnnonce inserts a listing and bumps the driver's listing counter
func (r *AnnonceRepo) CreateAnnonce(ctx context.Context, a *models.Annonce) error {
	a.ID = uuid.New()
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO annonces (
			id, conducteur_id, ville_depart, ville_destination, etapes,
			date_depart, date_arrivee_prevue, longueur, largeur, hauteur, poids_max, volume,
			types_marchandise, tarification_type, tarification_montant, devise, statut,
			description, created_at, updated_at
		) VALUES (
			:id, :conducteur_id, :ville_depart, :ville_destination, :etapes,
			:date_depart, :date_arrivee_prevue, :longueur, :largeur, :hauteur, :poids_max, :volume,
			:types_marchandise, :tarification_type, :tarification_montant, :devise, :statut,
			:description, :created_at, :updated_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("failed to insert annonce: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE users SET nombre_annonces = nombre_annonces + 1, updated_at = now() WHERE id = $1`,
		a.ConducteurID); err != nil {
		return fmt.Errorf("failed to increment listing counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetAnnonceByID retrieves a listing with its comments
func (r *AnnonceRepo) GetAnnonceByID(ctx context.Context, id uuid.UUID) (*models.Annonce, error) {
	var a models.Annonce
	query := `SELECT ` + annonceColumns + ` FROM annonces WHERE id = $1`
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get annonce: %w", err)
	}

	commentaires := []*models.Commentaire{}
	if err := r.db.SelectContext(ctx, &commentaires,
		`SELECT id, annonce_id, auteur_id, texte, reponse_texte, reponse_auteur_id, reponse_date, created_at
		 FROM annonce_commentaires WHERE annonce_id = $1 ORDER BY created_at`, id); err != nil {
		return nil, fmt.Errorf("failed to get commentaires: %w", err)
	}
	a.Commentaires = commentaires

	return &a, nil
}

// ListAnnonces runs the conjunctive search filter with pagination
func (r *AnnonceRepo) ListAnnonces(ctx context.Context, filter models.AnnonceFilter, p models.Pagination) ([]*models.Annonce, int, error) {
	conditions := []string{"statut = $1"}
	statut := filter.Statut
	if statut == "" {
		statut = models.AnnonceStatutActive
	}
	args := []interface{}{statut}

	addCondition := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.VilleDepart != "" {
		addCondition("ville_depart ILIKE $%d", filter.VilleDepart)
	}
	if filter.VilleDestination != "" {
		addCondition("ville_destination ILIKE $%d", filter.VilleDestination)
	}
	if filter.DateMin != nil {
		addCondition("date_depart >= $%d", *filter.DateMin)
	}
	if filter.DateMax != nil {
		addCondition("date_depart <= $%d", *filter.DateMax)
	}
	if filter.PrixMin != nil {
		addCondition("tarification_montant >= $%d", *filter.PrixMin)
	}
	if filter.PrixMax != nil {
		addCondition("tarification_montant <= $%d", *filter.PrixMax)
	}
	if len(filter.TypesMarchandise) > 0 {
		// JSONB containment on any of the requested cargo types
		parts := make([]string, 0, len(filter.TypesMarchandise))
		for _, t := range filter.TypesMarchandise {
			args = append(args, fmt.Sprintf(`["%s"]`, t))
			parts = append(parts, fmt.Sprintf("types_marchandise @> $%d", len(args)))
		}
		conditions = append(conditions, "("+strings.Join(parts, " OR ")+")")
	}
	if filter.ConducteurID != nil {
		addCondition("conducteur_id = $%d", *filter.ConducteurID)
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM annonces "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count annonces: %w", err)
	}

	orderBy := "date_depart ASC"
	switch p.Sort {
	case "recent":
		orderBy = "created_at DESC"
	case "prix_asc":
		orderBy = "tarification_montant ASC"
	case "prix_desc":
		orderBy = "tarification_montant DESC"
	}

	args = append(args, p.Limit, p.Offset())
	query := fmt.Sprintf("SELECT %s FROM annonces %s ORDER BY %s LIMIT $%d OFFSET $%d",
		annonceColumns, where, orderBy, len(args)-1, len(args))

	annonces := []*models.Annonce{}
	if err := r.db.SelectContext(ctx, &annonces, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list annonces: %w", err)
	}

	return annonces, total, nil
}

// UpdateAnnonce overwrites the mutable listing fields
func (r *AnnonceRepo) UpdateAnnonce(ctx context.Context, a *models.Annonce) error {
	a.UpdatedAt = time.Now()
	query := `
		UPDATE annonces SET
			ville_depart = :ville_depart,
			ville_destination = :ville_destination,
			etapes = :etapes,
			date_depart = :date_depart,
			date_arrivee_prevue = :date_arrivee_prevue,
			longueur = :longueur,
			largeur = :largeur,
			hauteur = :hauteur,
			poids_max = :poids_max,
			volume = :volume,
			types_marchandise = :types_marchandise,
			tarification_type = :tarification_type,
			tarification_montant = :tarification_montant,
			statut = :statut,
			description = :description,
			taux_acceptation = :taux_acceptation,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return fmt.Errorf("failed to update annonce: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdateAnnonceStatut applies a status-only patch
func (r *AnnonceRepo) UpdateAnnonceStatut(ctx context.Context, id uuid.UUID, statut string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE annonces SET statut = $1, updated_at = now() WHERE id = $2`, statut, id)
	if err != nil {
		return fmt.Errorf("failed to update annonce status: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteAnnonce removes the listing, its requests and decrements the driver's
// listing counter inside one transaction
func (r *AnnonceRepo) DeleteAnnonce(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM demandes WHERE annonce_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete demandes: %w", err)
	}

	var conducteurID uuid.UUID
	if err = tx.QueryRowContext(ctx,
		`DELETE FROM annonces WHERE id = $1 RETURNING conducteur_id`, id).Scan(&conducteurID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to delete annonce: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE users SET nombre_annonces = GREATEST(nombre_annonces - 1, 0), updated_at = now() WHERE id = $1`,
		conducteurID); err != nil {
		return fmt.Errorf("failed to decrement listing counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SoftDeleteAnnonce flips the listing to its terminal tombstone status,
// preserving referential history for requests that point at it
func (r *AnnonceRepo) SoftDeleteAnnonce(ctx context.Context, id uuid.UUID) error {
	return r.UpdateAnnonceStatut(ctx, id, models.AnnonceStatutSupprimee)
}

// CountDemandes counts all requests referencing the listing
func (r *AnnonceRepo) CountDemandes(ctx context.Context, annonceID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM demandes WHERE annonce_id = $1`, annonceID)
	if err != nil {
		return 0, fmt.Errorf("failed to count demandes: %w", err)
	}
	return count, nil
}

// CountDemandesEnVol counts requests in an active in-flight status
func (r *AnnonceRepo) CountDemandesEnVol(ctx context.Context, annonceID uuid.UUID) (int, error) {
	query, args, err := sqlx.In(
		`SELECT COUNT(*) FROM demandes WHERE annonce_id = ? AND statut IN (?)`,
		annonceID, statutsEnVol)
	if err != nil {
		return 0, fmt.Errorf("failed to build in-flight query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count in-flight demandes: %w", err)
	}
	return count, nil
}

// IncrementVues bumps the view counter
func (r *AnnonceRepo) IncrementVues(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE annonces SET nombre_vues = nombre_vues + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// MarquerVue records that a viewer saw the listing, returning true the first
// time within the dedup window
func (r *AnnonceRepo) MarquerVue(ctx context.Context, annonceID, viewerID uuid.UUID) (bool, error) {
	key := fmt.Sprintf("annonce:vue:%s:%s", annonceID, viewerID)
	return r.redisClient.SetNX(ctx, key, 1, 24*time.Hour)
}

// AddCommentaire appends a comment to the listing
func (r *AnnonceRepo) AddCommentaire(ctx context.Context, c *models.Commentaire) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO annonce_commentaires (id, annonce_id, auteur_id, texte, created_at)
		VALUES (:id, :annonce_id, :auteur_id, :texte, :created_at)
	`, c)
	if err != nil {
		return fmt.Errorf("failed to insert commentaire: %w", err)
	}
	return nil
}

// ReplyCommentaire sets the one-time threaded reply. Returns false when the
// comment already carries a reply (the precondition lives in the WHERE clause
// so concurrent replies cannot both win).
func (r *AnnonceRepo) ReplyCommentaire(ctx context.Context, commentaireID, auteurID uuid.UUID, texte string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE annonce_commentaires
		SET reponse_texte = $1, reponse_auteur_id = $2, reponse_date = now()
		WHERE id = $3 AND reponse_texte IS NULL
	`, texte, auteurID, commentaireID)
	if err != nil {
		return false, fmt.Errorf("failed to reply to commentaire: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

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
	"github.com/transportconnect/transportconnect/services/demande"
)

// uniqueViolation is the Postgres error code raised by the unique tracking
// number constraint
const uniqueViolation = "23505"

const demandeColumns = `
	id, annonce_id, expediteur_id, conducteur_id,
	colis_longueur, colis_largeur, colis_hauteur, colis_volume, colis_poids,
	colis_valeur_declaree, colis_fragile, colis_description, colis_photos,
	enlevement_rue, enlevement_ville, enlevement_code_postal, enlevement_pays,
	livraison_rue, livraison_ville, livraison_code_postal, livraison_pays,
	prix_propose, prix_accepte, statut, numero_suivi,
	position_lat, position_lon, position_adresse, position_date,
	litige_signale, litige_motif, litige_signale_par, litige_date_signalement,
	litige_resolu, litige_resolution, litige_resolu_par, litige_date_resolution,
	evaluation_expediteur_id, evaluation_conducteur_id,
	date_reponse, date_enlevement, date_livraison_reelle,
	version, created_at, updated_at`

// geoPositionsKey is the Redis geo set mirroring last known package positions
const geoPositionsKey = "demande:positions"

// CreateDemande inserts a request with its opening history entry and bumps
// the listing's request counter, all in one transaction
func (r *DemandeRepo) CreateDemande(ctx context.Context, d *models.Demande) error {
	d.ID = uuid.New()
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	d.Statut = models.DemandeStatutAttente
	d.Version = 1

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO demandes (
			id, annonce_id, expediteur_id, conducteur_id,
			colis_longueur, colis_largeur, colis_hauteur, colis_volume, colis_poids,
			colis_valeur_declaree, colis_fragile, colis_description, colis_photos,
			enlevement_rue, enlevement_ville, enlevement_code_postal, enlevement_pays,
			livraison_rue, livraison_ville, livraison_code_postal, livraison_pays,
			prix_propose, statut, version, created_at, updated_at
		) VALUES (
			:id, :annonce_id, :expediteur_id, :conducteur_id,
			:colis_longueur, :colis_largeur, :colis_hauteur, :colis_volume, :colis_poids,
			:colis_valeur_declaree, :colis_fragile, :colis_description, :colis_photos,
			:enlevement_rue, :enlevement_ville, :enlevement_code_postal, :enlevement_pays,
			:livraison_rue, :livraison_ville, :livraison_code_postal, :livraison_pays,
			:prix_propose, :statut, :version, :created_at, :updated_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, query, rowFromDemande(d)); err != nil {
		return fmt.Errorf("failed to insert demande: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO demande_historique (demande_id, statut, auteur_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, d.ID, d.Statut, d.ExpediteurID, now); err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE annonces SET
			nombre_demandes = nombre_demandes + 1,
			taux_acceptation = demandes_acceptees * 100.0 / (nombre_demandes + 1),
			updated_at = now()
		WHERE id = $1
	`, d.AnnonceID); err != nil {
		return fmt.Errorf("failed to increment request counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetDemandeByID retrieves a request with its history and tracking checkpoints
func (r *DemandeRepo) GetDemandeByID(ctx context.Context, id uuid.UUID) (*models.Demande, error) {
	var row demandeRow
	query := `SELECT ` + demandeColumns + ` FROM demandes WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get demande: %w", err)
	}

	d := row.toDemande()
	if err := r.chargerSousListes(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// GetDemandeByNumeroSuivi resolves a request from its public tracking number
func (r *DemandeRepo) GetDemandeByNumeroSuivi(ctx context.Context, numeroSuivi string) (*models.Demande, error) {
	var row demandeRow
	query := `SELECT ` + demandeColumns + ` FROM demandes WHERE numero_suivi = $1`
	if err := r.db.GetContext(ctx, &row, query, numeroSuivi); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get demande by tracking number: %w", err)
	}

	d := row.toDemande()
	if err := r.chargerSousListes(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DemandeRepo) chargerSousListes(ctx context.Context, d *models.Demande) error {
	historique := []*models.HistoriqueEntry{}
	if err := r.db.SelectContext(ctx, &historique, `
		SELECT id, demande_id, statut, note, auteur_id, created_at
		FROM demande_historique WHERE demande_id = $1 ORDER BY created_at, id
	`, d.ID); err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	d.Historique = historique

	etapes := []*models.EtapeSuivi{}
	if err := r.db.SelectContext(ctx, &etapes, `
		SELECT id, demande_id, localisation, statut, note, created_at
		FROM demande_etapes WHERE demande_id = $1 ORDER BY created_at, id
	`, d.ID); err != nil {
		return fmt.Errorf("failed to load checkpoints: %w", err)
	}
	d.Etapes = etapes
	return nil
}

// ListByExpediteur lists requests created by a sender
func (r *DemandeRepo) ListByExpediteur(ctx context.Context, expediteurID uuid.UUID, statut string, p models.Pagination) ([]*models.Demande, int, error) {
	return r.lister(ctx, "expediteur_id", expediteurID, statut, p)
}

// ListByConducteur lists requests received on a driver's listings
func (r *DemandeRepo) ListByConducteur(ctx context.Context, conducteurID uuid.UUID, statut string, p models.Pagination) ([]*models.Demande, int, error) {
	return r.lister(ctx, "conducteur_id", conducteurID, statut, p)
}

func (r *DemandeRepo) lister(ctx context.Context, ownerColumn string, ownerID uuid.UUID, statut string, p models.Pagination) ([]*models.Demande, int, error) {
	where := fmt.Sprintf("WHERE %s = $1", ownerColumn)
	args := []interface{}{ownerID}
	if statut != "" {
		args = append(args, statut)
		where += fmt.Sprintf(" AND statut = $%d", len(args))
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM demandes "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count demandes: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	query := fmt.Sprintf("SELECT %s FROM demandes %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		demandeColumns, where, len(args)-1, len(args))

	rows := []*demandeRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list demandes: %w", err)
	}

	demandes := make([]*models.Demande, 0, len(rows))
	for _, row := range rows {
		demandes = append(demandes, row.toDemande())
	}
	return demandes, total, nil
}

// TransitionStatut performs one optimistic status write. The old status and
// version are the compare-and-swap precondition; a miss returns false without
// error so the caller can surface a conflict.
func (r *DemandeRepo) TransitionStatut(ctx context.Context, params demande.TransitionParams) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE demandes SET
			statut = $1,
			version = version + 1,
			prix_accepte = COALESCE($2, prix_accepte),
			numero_suivi = COALESCE($3, numero_suivi),
			date_reponse = COALESCE($4, date_reponse),
			date_enlevement = COALESCE($5, date_enlevement),
			date_livraison_reelle = COALESCE($6, date_livraison_reelle),
			updated_at = now()
		WHERE id = $7 AND statut = $8 AND version = $9
	`, params.Vers, params.PrixAccepte, params.NumeroSuivi,
		params.DateReponse, params.DateEnlevement, params.DateLivraison,
		params.ID, params.De, params.Version)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return false, fmt.Errorf("%w: tracking number already in use", models.ErrConflict)
		}
		return false, fmt.Errorf("failed to update status: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return false, nil
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO demande_historique (demande_id, statut, note, auteur_id, created_at)
		VALUES ($1, $2, $3, $4, now())
	`, params.ID, params.Vers, params.Note, params.AuteurID); err != nil {
		return false, fmt.Errorf("failed to append history entry: %w", err)
	}

	if params.IncrementAcceptees {
		if _, err = tx.ExecContext(ctx, `
			UPDATE annonces SET
				demandes_acceptees = demandes_acceptees + 1,
				taux_acceptation = (demandes_acceptees + 1) * 100.0 / GREATEST(nombre_demandes, 1),
				updated_at = now()
			WHERE id = (SELECT annonce_id FROM demandes WHERE id = $1)
		`, params.ID); err != nil {
			return false, fmt.Errorf("failed to update acceptance counters: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// OuvrirLitige opens a dispute. The not-yet-open precondition lives in the
// WHERE clause so concurrent reports cannot both succeed.
func (r *DemandeRepo) OuvrirLitige(ctx context.Context, id uuid.UUID, motif string, par uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE demandes SET
			litige_signale = TRUE,
			litige_motif = $1,
			litige_signale_par = $2,
			litige_date_signalement = now(),
			statut = $3,
			version = version + 1,
			updated_at = now()
		WHERE id = $4
		  AND litige_signale = FALSE
		  AND statut NOT IN ($5, $6, $7)
	`, motif, par, models.DemandeStatutLitige, id,
		models.DemandeStatutLivree, models.DemandeStatutRefusee, models.DemandeStatutAnnulee)
	if err != nil {
		return false, fmt.Errorf("failed to open dispute: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return false, nil
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO demande_historique (demande_id, statut, note, auteur_id, created_at)
		VALUES ($1, $2, $3, $4, now())
	`, id, models.DemandeStatutLitige, motif, par); err != nil {
		return false, fmt.Errorf("failed to append history entry: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// ResoudreLitige closes an open dispute. nouveauStatut is nil when the
// decision leaves the status untouched.
func (r *DemandeRepo) ResoudreLitige(ctx context.Context, id uuid.UUID, resolution string, par uuid.UUID, nouveauStatut *string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE demandes SET
			litige_resolu = TRUE,
			litige_resolution = $1,
			litige_resolu_par = $2,
			litige_date_resolution = now(),
			statut = COALESCE($3, statut),
			date_livraison_reelle = CASE WHEN $3 = $4 THEN now() ELSE date_livraison_reelle END,
			version = version + 1,
			updated_at = now()
		WHERE id = $5
		  AND litige_signale = TRUE
		  AND litige_resolu = FALSE
	`, resolution, par, nouveauStatut, models.DemandeStatutLivree, id)
	if err != nil {
		return false, fmt.Errorf("failed to resolve dispute: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return false, nil
	}

	statutHistorique := models.DemandeStatutLitige
	if nouveauStatut != nil {
		statutHistorique = *nouveauStatut
	}
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO demande_historique (demande_id, statut, note, auteur_id, created_at)
		VALUES ($1, $2, $3, $4, now())
	`, id, statutHistorique, resolution, par); err != nil {
		return false, fmt.Errorf("failed to append history entry: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// UpdatePosition overwrites the last known package position and mirrors it
// into the Redis geo set
func (r *DemandeRepo) UpdatePosition(ctx context.Context, id uuid.UUID, pos models.Position) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE demandes SET
			position_lat = $1, position_lon = $2, position_adresse = $3, position_date = $4,
			updated_at = now()
		WHERE id = $5
	`, pos.Latitude, pos.Longitude, pos.Adresse, pos.Date, id)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}

	if err := r.redisClient.GeoAdd(ctx, geoPositionsKey, pos.Longitude, pos.Latitude, id.String()); err != nil {
		return fmt.Errorf("failed to mirror position to redis: %w", err)
	}
	return nil
}

// AddEtape appends a tracking checkpoint
func (r *DemandeRepo) AddEtape(ctx context.Context, e *models.EtapeSuivi) error {
	e.CreatedAt = time.Now()
	row := r.db.QueryRowxContext(ctx, `
		INSERT INTO demande_etapes (demande_id, localisation, statut, note, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, e.DemandeID, e.Localisation, e.Statut, e.Note, e.CreatedAt)
	if err := row.Scan(&e.ID); err != nil {
		return fmt.Errorf("failed to insert checkpoint: %w", err)
	}
	return nil
}

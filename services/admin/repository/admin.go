package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

const userColumns = `
	id, nom, prenom, email, telephone, mot_de_passe, role, statut, badges,
	note_moyenne, nombre_evaluations, nombre_annonces, photo_url, adresse,
	created_at, updated_at`

// croissanceDepuis bounds the monthly growth series
const croissanceDepuis = "date_trunc('month', now()) - interval '11 months'"

type compteRow struct {
	Valeur string `db:"valeur"`
	Total  int    `db:"total"`
}

type moisRow struct {
	Mois  string `db:"mois"`
	Total int    `db:"total"`
}

// GetDashboardStats assembles the admin dashboard rollup. Soft-deleted
// listings are excluded from every listing figure.
func (r *AdminRepo) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{
		UtilisateursParRole:   models.StatutCounts{},
		UtilisateursParStatut: models.StatutCounts{},
		AnnoncesParStatut:     models.StatutCounts{},
		DemandesParStatut:     models.StatutCounts{},
	}

	if err := r.compter(ctx, "SELECT role AS valeur, COUNT(*) AS total FROM users GROUP BY role",
		stats.UtilisateursParRole, &stats.TotalUtilisateurs); err != nil {
		return nil, err
	}
	if err := r.compter(ctx, "SELECT statut AS valeur, COUNT(*) AS total FROM users GROUP BY statut",
		stats.UtilisateursParStatut, nil); err != nil {
		return nil, err
	}
	if err := r.compter(ctx,
		"SELECT statut AS valeur, COUNT(*) AS total FROM annonces WHERE statut <> 'supprimee' GROUP BY statut",
		stats.AnnoncesParStatut, &stats.TotalAnnonces); err != nil {
		return nil, err
	}
	if err := r.compter(ctx, "SELECT statut AS valeur, COUNT(*) AS total FROM demandes GROUP BY statut",
		stats.DemandesParStatut, &stats.TotalDemandes); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.TotalEvaluations,
		"SELECT COUNT(*) FROM evaluations"); err != nil {
		return nil, fmt.Errorf("failed to count evaluations: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.NoteMoyenneGlobale, `
		SELECT COALESCE(ROUND(AVG(note)::numeric, 2), 0)
		FROM evaluations WHERE approuvee = TRUE
	`); err != nil {
		return nil, fmt.Errorf("failed to compute global average: %w", err)
	}

	croissance, err := r.chargerCroissance(ctx)
	if err != nil {
		return nil, err
	}
	stats.Croissance = croissance
	return stats, nil
}

func (r *AdminRepo) compter(ctx context.Context, query string, dest models.StatutCounts, total *int) error {
	rows := []compteRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return fmt.Errorf("failed to aggregate counts: %w", err)
	}
	for _, row := range rows {
		dest[row.Valeur] = row.Total
		if total != nil {
			*total += row.Total
		}
	}
	return nil
}

func (r *AdminRepo) chargerCroissance(ctx context.Context) ([]models.CroissanceMois, error) {
	parMois := map[string]*models.CroissanceMois{}

	charger := func(table string, affecter func(*models.CroissanceMois, int)) error {
		query := fmt.Sprintf(`
			SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS mois, COUNT(*) AS total
			FROM %s WHERE created_at >= %s
			GROUP BY 1
		`, table, croissanceDepuis)

		rows := []moisRow{}
		if err := r.db.SelectContext(ctx, &rows, query); err != nil {
			return fmt.Errorf("failed to load growth series for %s: %w", table, err)
		}
		for _, row := range rows {
			point, ok := parMois[row.Mois]
			if !ok {
				point = &models.CroissanceMois{Mois: row.Mois}
				parMois[row.Mois] = point
			}
			affecter(point, row.Total)
		}
		return nil
	}

	if err := charger("users", func(p *models.CroissanceMois, n int) { p.Utilisateurs = n }); err != nil {
		return nil, err
	}
	if err := charger("annonces", func(p *models.CroissanceMois, n int) { p.Annonces = n }); err != nil {
		return nil, err
	}
	if err := charger("demandes", func(p *models.CroissanceMois, n int) { p.Demandes = n }); err != nil {
		return nil, err
	}

	croissance := make([]models.CroissanceMois, 0, len(parMois))
	for _, point := range parMois {
		croissance = append(croissance, *point)
	}
	sort.Slice(croissance, func(i, j int) bool { return croissance[i].Mois < croissance[j].Mois })
	return croissance, nil
}

// ListUsers pages through accounts with optional role, status and free-text
// filters. The search term matches name, first name and email.
func (r *AdminRepo) ListUsers(ctx context.Context, filter models.UserFilter, p models.Pagination) ([]*models.User, int, error) {
	where := "WHERE TRUE"
	args := []interface{}{}
	if filter.Role != "" {
		args = append(args, filter.Role)
		where += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if filter.Statut != "" {
		args = append(args, filter.Statut)
		where += fmt.Sprintf(" AND statut = $%d", len(args))
	}
	if filter.Recherche != "" {
		args = append(args, "%"+filter.Recherche+"%")
		where += fmt.Sprintf(" AND (nom ILIKE $%d OR prenom ILIKE $%d OR email ILIKE $%d)",
			len(args), len(args), len(args))
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM users "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	query := fmt.Sprintf("SELECT %s FROM users %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		userColumns, where, len(args)-1, len(args))

	users := []*models.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// GetUserByID retrieves one account
func (r *AdminRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// SetUserStatut writes the account status. The not-already-set precondition
// lives in the WHERE clause so a repeated moderation is reported, not applied.
func (r *AdminRepo) SetUserStatut(ctx context.Context, userID uuid.UUID, statut string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET statut = $1, updated_at = now()
		WHERE id = $2 AND statut <> $1
	`, statut, userID)
	if err != nil {
		return false, fmt.Errorf("failed to set user status: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// UpdateBadges overwrites the badge list
func (r *AdminRepo) UpdateBadges(ctx context.Context, userID uuid.UUID, badges models.StringArray) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET badges = $1, updated_at = now() WHERE id = $2
	`, badges, userID)
	if err != nil {
		return fmt.Errorf("failed to update badges: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// AddModerationEntry appends one action to the account's moderation history
func (r *AdminRepo) AddModerationEntry(ctx context.Context, e *models.ModerationEntry) error {
	e.CreatedAt = time.Now()
	row := r.db.QueryRowxContext(ctx, `
		INSERT INTO moderation_historique (user_id, action, motif, admin_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, e.UserID, e.Action, e.Motif, e.AdminID, e.CreatedAt)
	if err := row.Scan(&e.ID); err != nil {
		return fmt.Errorf("failed to insert moderation entry: %w", err)
	}
	return nil
}

// ListModerationHistory returns the account's moderation log, newest first
func (r *AdminRepo) ListModerationHistory(ctx context.Context, userID uuid.UUID) ([]*models.ModerationEntry, error) {
	entries := []*models.ModerationEntry{}
	if err := r.db.SelectContext(ctx, &entries, `
		SELECT id, user_id, action, motif, admin_id, created_at
		FROM moderation_historique WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID); err != nil {
		return nil, fmt.Errorf("failed to list moderation history: %w", err)
	}
	return entries, nil
}

// SetAnnonceStatut moderates a listing. Soft-deleted listings stay untouched.
func (r *AdminRepo) SetAnnonceStatut(ctx context.Context, annonceID uuid.UUID, statut string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE annonces SET statut = $1, updated_at = now()
		WHERE id = $2 AND statut <> $1 AND statut <> $3
	`, statut, annonceID, models.AnnonceStatutSupprimee)
	if err != nil {
		return false, fmt.Errorf("failed to set listing status: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// ListLitiges pages through open, unresolved disputes, oldest first so the
// queue is worked in arrival order
func (r *AdminRepo) ListLitiges(ctx context.Context, p models.Pagination) ([]*models.LitigeResume, int, error) {
	const where = `WHERE litige_signale = TRUE AND litige_resolu = FALSE`

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM demandes "+where); err != nil {
		return nil, 0, fmt.Errorf("failed to count disputes: %w", err)
	}

	litiges := []*models.LitigeResume{}
	query := fmt.Sprintf(`
		SELECT id, annonce_id, expediteur_id, conducteur_id,
		       litige_motif, litige_signale_par, litige_date_signalement, prix_propose
		FROM demandes %s
		ORDER BY litige_date_signalement, id
		LIMIT $1 OFFSET $2
	`, where)
	if err := r.db.SelectContext(ctx, &litiges, query, p.Limit, p.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list disputes: %w", err)
	}
	return litiges, total, nil
}

// ExportUtilisateurs returns the full users dataset, oldest first
func (r *AdminRepo) ExportUtilisateurs(ctx context.Context) ([]*models.ExportUtilisateur, error) {
	rows := []*models.ExportUtilisateur{}
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, nom, prenom, email, role, statut, note_moyenne, nombre_evaluations, created_at
		FROM users ORDER BY created_at, id
	`); err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}
	return rows, nil
}

// ExportAnnonces returns the listings dataset without soft-deleted rows
func (r *AdminRepo) ExportAnnonces(ctx context.Context) ([]*models.ExportAnnonce, error) {
	rows := []*models.ExportAnnonce{}
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, conducteur_id, ville_depart, ville_destination, date_depart,
		       statut, tarification_type, tarification_montant, nombre_demandes, created_at
		FROM annonces WHERE statut <> $1 ORDER BY created_at, id
	`, models.AnnonceStatutSupprimee); err != nil {
		return nil, fmt.Errorf("failed to export listings: %w", err)
	}
	return rows, nil
}

// ExportDemandes returns the transport requests dataset
func (r *AdminRepo) ExportDemandes(ctx context.Context) ([]*models.ExportDemande, error) {
	rows := []*models.ExportDemande{}
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, annonce_id, expediteur_id, conducteur_id, statut,
		       prix_propose, prix_accepte, numero_suivi, created_at, date_livraison_reelle
		FROM demandes ORDER BY created_at, id
	`); err != nil {
		return nil, fmt.Errorf("failed to export requests: %w", err)
	}
	return rows, nil
}

// ExportEvaluations returns the ratings dataset
func (r *AdminRepo) ExportEvaluations(ctx context.Context) ([]*models.ExportEvaluation, error) {
	rows := []*models.ExportEvaluation{}
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, demande_id, evaluateur_id, evalue_id, note, recommande, approuvee, created_at
		FROM evaluations ORDER BY created_at, id
	`); err != nil {
		return nil, fmt.Errorf("failed to export ratings: %w", err)
	}
	return rows, nil
}

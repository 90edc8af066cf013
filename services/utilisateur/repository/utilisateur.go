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

const userColumns = `
	id, nom, prenom, email, telephone, mot_de_passe, role, statut, badges,
	note_moyenne, nombre_evaluations, nombre_annonces, photo_url, adresse,
	created_at, updated_at`

// uniqueViolation is the Postgres error code raised by the unique email
// constraint
const uniqueViolation = "23505"

// CreateUser inserts a new account
func (r *UtilisateurRepo) CreateUser(ctx context.Context, u *models.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	if u.Badges == nil {
		u.Badges = models.StringArray{}
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (
			id, nom, prenom, email, telephone, mot_de_passe, role, statut, badges,
			note_moyenne, nombre_evaluations, nombre_annonces, photo_url, adresse,
			created_at, updated_at
		) VALUES (
			:id, :nom, :prenom, :email, :telephone, :mot_de_passe, :role, :statut, :badges,
			:note_moyenne, :nombre_evaluations, :nombre_annonces, :photo_url, :adresse,
			:created_at, :updated_at
		)
	`, u)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: email already registered", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID retrieves an account by id
func (r *UtilisateurRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// GetUserByEmail retrieves an account by email
func (r *UtilisateurRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	if err := r.db.GetContext(ctx, &u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

// UpdateUser persists the mutable profile fields
func (r *UtilisateurRepo) UpdateUser(ctx context.Context, u *models.User) error {
	u.UpdatedAt = time.Now()
	result, err := r.db.NamedExecContext(ctx, `
		UPDATE users SET
			nom = :nom, prenom = :prenom, telephone = :telephone,
			photo_url = :photo_url, adresse = :adresse, updated_at = :updated_at
		WHERE id = :id
	`, u)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *UtilisateurRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET mot_de_passe = $1, updated_at = now() WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// AnonymizeUser scrubs the identity fields and suspends the account. The
// email is replaced with a unique placeholder so the constraint stays
// satisfiable for re-registration.
func (r *UtilisateurRepo) AnonymizeUser(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET
			nom = 'Compte',
			prenom = 'Supprimé',
			email = 'supprime+' || id::text || '@transportconnect.invalid',
			telephone = '',
			mot_de_passe = '',
			photo_url = NULL,
			adresse = NULL,
			statut = $1,
			updated_at = now()
		WHERE id = $2
	`, models.UserStatutSuspendu, id)
	if err != nil {
		return fmt.Errorf("failed to anonymize user: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

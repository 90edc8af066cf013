package utilisateur

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// UtilisateurRepo defines the account repository interface
type UtilisateurRepo interface {
	// CreateUser inserts a new account. A duplicate email surfaces as
	// models.ErrConflict.
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	// AnonymizeUser scrubs the identity fields in place and suspends the
	// account. The row survives so references from past transports hold.
	AnonymizeUser(ctx context.Context, id uuid.UUID) error
}

package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// NotificationRepo resolves the accounts a notification addresses
type NotificationRepo interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

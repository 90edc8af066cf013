package utilisateur

import (
	"context"

	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// UtilisateurGW defines the account event gateway interface
type UtilisateurGW interface {
	PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error
}

package gateway

import (
	"context"

	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// PublishUserRegistered announces a new account to the notifier
func (g *UtilisateurGW) PublishUserRegistered(_ context.Context, event *models.UserRegisteredEvent) error {
	return g.producer.Publish(models.TopicUserRegistered, event)
}

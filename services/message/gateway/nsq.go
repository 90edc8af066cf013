package gateway

import (
	"context"

	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// PublishMessageSent lets the notifier reach a recipient who is not in the room
func (g *MessageGW) PublishMessageSent(_ context.Context, event *models.MessageSentEvent) error {
	return g.producer.Publish(models.TopicMessageSent, event)
}

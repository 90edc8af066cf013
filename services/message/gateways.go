package message

import (
	"context"

	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// MessageGW defines the chat event gateway interface
type MessageGW interface {
	PublishMessageSent(ctx context.Context, event *models.MessageSentEvent) error
}

// Diffuseur is the realtime fan-out surface the chat usecase talks to. The
// WebSocket manager satisfies it.
type Diffuseur interface {
	BroadcastToRoom(roomID, senderID, event string, data interface{})
	IsInRoom(roomID, userID string) bool
	NotifyClient(userID, event string, data interface{})
}

package message

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// MessageUC defines the interface for chat business logic
type MessageUC interface {
	SendMessage(ctx context.Context, req models.SendMessageRequest, expediteurID uuid.UUID) (*models.Message, error)
	ListConversation(ctx context.Context, callerID, autreID, annonceID uuid.UUID, p models.Pagination) (*models.Page, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*models.ConversationSummary, error)
	MarkConversationRead(ctx context.Context, callerID, autreID, annonceID uuid.UUID) (int64, error)
	React(ctx context.Context, messageID, userID uuid.UUID, emoji string) error
	DeleteMessage(ctx context.Context, messageID, callerID uuid.UUID) error
}

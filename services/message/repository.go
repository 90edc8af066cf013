package message

import (
	"context"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// MessageRepo defines the chat repository interface
type MessageRepo interface {
	CreateMessage(ctx context.Context, m *models.Message) error
	GetMessageByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	// ListConversation returns the newest messages first. Deleted messages
	// are kept in the flow with their content blanked by the usecase.
	ListConversation(ctx context.Context, conversationID string, p models.Pagination) ([]*models.Message, int, error)
	// ListConversations returns the latest message and unread count per
	// conversation the user takes part in.
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*models.ConversationSummary, error)
	// MarkConversationRead flags every unread message addressed to the user
	// in one statement and reports how many rows changed.
	MarkConversationRead(ctx context.Context, conversationID string, userID uuid.UUID) (int64, error)
	// UpsertReaction keeps one reaction slot per user and message.
	UpsertReaction(ctx context.Context, messageID, userID uuid.UUID, emoji string) error
	// MarkDeleted flips the logical deletion flag. Returns false when the
	// message was already deleted.
	MarkDeleted(ctx context.Context, messageID uuid.UUID) (bool, error)
}

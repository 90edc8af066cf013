package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/internal/utils"
)

// SendMessage persists a message, then fans it out. The broadcast is
// best-effort; when the recipient is not in the room an NSQ event lets the
// notifier push a live notification instead.
func (uc *MessageUC) SendMessage(ctx context.Context, req models.SendMessageRequest, expediteurID uuid.UUID) (*models.Message, error) {
	if req.DestinataireID == expediteurID {
		return nil, fmt.Errorf("%w: cannot message yourself", models.ErrValidation)
	}
	if req.DestinataireID == uuid.Nil || req.AnnonceID == uuid.Nil {
		return nil, fmt.Errorf("%w: destinataireId and annonceId are required", models.ErrValidation)
	}
	if err := validerContenu(req.Contenu); err != nil {
		return nil, err
	}

	m := &models.Message{
		ConversationID: models.BuildConversationID(expediteurID, req.DestinataireID, req.AnnonceID),
		ExpediteurID:   expediteurID,
		DestinataireID: req.DestinataireID,
		AnnonceID:      req.AnnonceID,
		DemandeID:      req.DemandeID,
		Contenu:        req.Contenu,
	}

	if err := uc.messageRepo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	uc.diffuseur.BroadcastToRoom(m.ConversationID, expediteurID.String(), models.EventReceiveMessage, m)

	if !uc.diffuseur.IsInRoom(m.ConversationID, req.DestinataireID.String()) {
		if err := uc.messageGW.PublishMessageSent(ctx, &models.MessageSentEvent{
			MessageID:      m.ID,
			ConversationID: m.ConversationID,
			ExpediteurID:   m.ExpediteurID,
			DestinataireID: m.DestinataireID,
		}); err != nil {
			logger.Warn("Failed to publish message.sent", logger.Err(err))
		}
	}

	apercu := ""
	if m.Contenu.Texte != nil {
		apercu = utils.Truncate(*m.Contenu.Texte, 40)
	}
	logger.Debug("Message sent",
		logger.String("message_id", m.ID.String()),
		logger.String("conversation_id", m.ConversationID),
		logger.String("apercu", apercu))
	return m, nil
}

// ListConversation pages through the thread between the caller and another
// member about one listing. Deleted messages keep their place with the
// content blanked.
func (uc *MessageUC) ListConversation(ctx context.Context, callerID, autreID, annonceID uuid.UUID, p models.Pagination) (*models.Page, error) {
	conversationID := models.BuildConversationID(callerID, autreID, annonceID)
	messages, total, err := uc.messageRepo.ListConversation(ctx, conversationID, p)
	if err != nil {
		return nil, err
	}

	for _, m := range messages {
		if m.Supprime {
			m.Contenu = models.Contenu{Type: m.Contenu.Type}
			m.Reactions = nil
		}
	}
	return models.NewPage(messages, total, p), nil
}

// ListConversations returns the caller's conversation overview
func (uc *MessageUC) ListConversations(ctx context.Context, userID uuid.UUID) ([]*models.ConversationSummary, error) {
	summaries, err := uc.messageRepo.ListConversations(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, s := range summaries {
		if s.Dernier != nil && s.Dernier.Supprime {
			s.Dernier.Contenu = models.Contenu{Type: s.Dernier.Contenu.Type}
		}
	}
	return summaries, nil
}

// MarkConversationRead bulk-flags the caller's unread messages in the thread
func (uc *MessageUC) MarkConversationRead(ctx context.Context, callerID, autreID, annonceID uuid.UUID) (int64, error) {
	conversationID := models.BuildConversationID(callerID, autreID, annonceID)
	return uc.messageRepo.MarkConversationRead(ctx, conversationID, callerID)
}

// React upserts the caller's single reaction slot on a message
func (uc *MessageUC) React(ctx context.Context, messageID, userID uuid.UUID, emoji string) error {
	if emoji == "" {
		return fmt.Errorf("%w: emoji is required", models.ErrValidation)
	}

	m, err := uc.messageRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return err
	}
	if m.ExpediteurID != userID && m.DestinataireID != userID {
		return models.ErrForbidden
	}
	if m.Supprime {
		return fmt.Errorf("%w: message deleted", models.ErrConflict)
	}

	return uc.messageRepo.UpsertReaction(ctx, messageID, userID, emoji)
}

// DeleteMessage logically removes the caller's own message
func (uc *MessageUC) DeleteMessage(ctx context.Context, messageID, callerID uuid.UUID) error {
	m, err := uc.messageRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return err
	}
	if m.ExpediteurID != callerID {
		return models.ErrForbidden
	}

	deleted, err := uc.messageRepo.MarkDeleted(ctx, messageID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: message already deleted", models.ErrConflict)
	}
	return nil
}

// validerContenu checks the tagged union: exactly the payload selected by the
// type must be present. System messages are produced internally, never by the
// API.
func validerContenu(c models.Contenu) error {
	switch c.Type {
	case models.MessageTypeTexte:
		if c.Texte == nil || *c.Texte == "" {
			return fmt.Errorf("%w: texte payload is required", models.ErrValidation)
		}
	case models.MessageTypeLocalisation:
		if c.Localisation == nil {
			return fmt.Errorf("%w: localisation payload is required", models.ErrValidation)
		}
		if c.Localisation.Latitude < -90 || c.Localisation.Latitude > 90 ||
			c.Localisation.Longitude < -180 || c.Localisation.Longitude > 180 {
			return fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
		}
	case models.MessageTypePieceJointe:
		if c.PieceJointe == nil || c.PieceJointe.URL == "" {
			return fmt.Errorf("%w: pieceJointe payload is required", models.ErrValidation)
		}
	case models.MessageTypeSysteme:
		return fmt.Errorf("%w: system messages cannot be sent through the API", models.ErrValidation)
	default:
		return fmt.Errorf("%w: unknown content type", models.ErrValidation)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

const messageColumns = `
	id, conversation_id, expediteur_id, destinataire_id, annonce_id, demande_id,
	contenu, lu, date_lecture, supprime, date_suppression, created_at`

type messageRow struct {
	ID              uuid.UUID      `db:"id"`
	ConversationID  string         `db:"conversation_id"`
	ExpediteurID    uuid.UUID      `db:"expediteur_id"`
	DestinataireID  uuid.UUID      `db:"destinataire_id"`
	AnnonceID       uuid.UUID      `db:"annonce_id"`
	DemandeID       *uuid.UUID     `db:"demande_id"`
	Contenu         models.Contenu `db:"contenu"`
	Lu              bool           `db:"lu"`
	DateLecture     *time.Time     `db:"date_lecture"`
	Supprime        bool           `db:"supprime"`
	DateSuppression *time.Time     `db:"date_suppression"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r *messageRow) toMessage() *models.Message {
	return &models.Message{
		ID:              r.ID,
		ConversationID:  r.ConversationID,
		ExpediteurID:    r.ExpediteurID,
		DestinataireID:  r.DestinataireID,
		AnnonceID:       r.AnnonceID,
		DemandeID:       r.DemandeID,
		Contenu:         r.Contenu,
		Lu:              r.Lu,
		DateLecture:     r.DateLecture,
		Supprime:        r.Supprime,
		DateSuppression: r.DateSuppression,
		CreatedAt:       r.CreatedAt,
	}
}

// CreateMessage inserts a chat message
func (r *MessageRepo) CreateMessage(ctx context.Context, m *models.Message) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (
			id, conversation_id, expediteur_id, destinataire_id, annonce_id,
			demande_id, contenu, lu, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8)
	`, m.ID, m.ConversationID, m.ExpediteurID, m.DestinataireID, m.AnnonceID,
		m.DemandeID, m.Contenu, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// GetMessageByID retrieves one message with its reactions
func (r *MessageRepo) GetMessageByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	var row messageRow
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	m := row.toMessage()
	reactions, err := r.chargerReactions(ctx, []uuid.UUID{m.ID})
	if err != nil {
		return nil, err
	}
	m.Reactions = reactions[m.ID]
	return m, nil
}

// ListConversation returns a page of a conversation, newest first
func (r *MessageRepo) ListConversation(ctx context.Context, conversationID string, p models.Pagination) ([]*models.Message, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM messages WHERE conversation_id = $1`, conversationID); err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	rows := []*messageRow{}
	query := `SELECT ` + messageColumns + ` FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	if err := r.db.SelectContext(ctx, &rows, query, conversationID, p.Limit, p.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list conversation: %w", err)
	}

	messages := make([]*models.Message, 0, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toMessage())
		ids = append(ids, row.ID)
	}

	if len(ids) > 0 {
		reactions, err := r.chargerReactions(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for _, m := range messages {
			m.Reactions = reactions[m.ID]
		}
	}
	return messages, total, nil
}

// ListConversations returns the latest message and unread count for every
// conversation the user takes part in, most recent activity first
func (r *MessageRepo) ListConversations(ctx context.Context, userID uuid.UUID) ([]*models.ConversationSummary, error) {
	rows := []*messageRow{}
	query := `SELECT * FROM (
			SELECT DISTINCT ON (conversation_id) ` + messageColumns + `
			FROM messages
			WHERE expediteur_id = $1 OR destinataire_id = $1
			ORDER BY conversation_id, created_at DESC, id DESC
		) derniers
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	type unreadRow struct {
		ConversationID string `db:"conversation_id"`
		NonLus         int    `db:"non_lus"`
	}
	unreadRows := []*unreadRow{}
	if err := r.db.SelectContext(ctx, &unreadRows, `
		SELECT conversation_id, COUNT(*) AS non_lus
		FROM messages
		WHERE destinataire_id = $1 AND lu = FALSE AND supprime = FALSE
		GROUP BY conversation_id
	`, userID); err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}
	unread := make(map[string]int, len(unreadRows))
	for _, u := range unreadRows {
		unread[u.ConversationID] = u.NonLus
	}

	summaries := make([]*models.ConversationSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &models.ConversationSummary{
			ConversationID: row.ConversationID,
			Dernier:        row.toMessage(),
			NonLus:         unread[row.ConversationID],
		})
	}
	return summaries, nil
}

// MarkConversationRead flags every unread inbound message in one statement
func (r *MessageRepo) MarkConversationRead(ctx context.Context, conversationID string, userID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE messages SET lu = TRUE, date_lecture = now()
		WHERE conversation_id = $1 AND destinataire_id = $2 AND lu = FALSE
	`, conversationID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark conversation read: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

// UpsertReaction keeps one reaction slot per user and message
func (r *MessageRepo) UpsertReaction(ctx context.Context, messageID, userID uuid.UUID, emoji string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO message_reactions (message_id, user_id, emoji)
		VALUES ($1, $2, $3)
		ON CONFLICT (message_id, user_id) DO UPDATE SET emoji = EXCLUDED.emoji
	`, messageID, userID, emoji)
	if err != nil {
		return fmt.Errorf("failed to upsert reaction: %w", err)
	}
	return nil
}

// MarkDeleted flips the logical deletion flag once
func (r *MessageRepo) MarkDeleted(ctx context.Context, messageID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE messages SET supprime = TRUE, date_suppression = now()
		WHERE id = $1 AND supprime = FALSE
	`, messageID)
	if err != nil {
		return false, fmt.Errorf("failed to delete message: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *MessageRepo) chargerReactions(ctx context.Context, messageIDs []uuid.UUID) (map[uuid.UUID][]*models.Reaction, error) {
	type reactionRow struct {
		MessageID uuid.UUID `db:"message_id"`
		UserID    uuid.UUID `db:"user_id"`
		Emoji     string    `db:"emoji"`
	}

	query, args, err := sqlx.In(
		`SELECT message_id, user_id, emoji FROM message_reactions WHERE message_id IN (?)`, messageIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build reactions query: %w", err)
	}
	query = r.db.Rebind(query)

	rows := []*reactionRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load reactions: %w", err)
	}

	out := make(map[uuid.UUID][]*models.Reaction, len(rows))
	for _, row := range rows {
		out[row.MessageID] = append(out[row.MessageID], &models.Reaction{
			UserID: row.UserID,
			Emoji:  row.Emoji,
		})
	}
	return out, nil
}

package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

func setupMessageRepoTest(t *testing.T) (*MessageRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &MessageRepo{
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
		cfg:         &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateMessage_StoresContentAsJSON(t *testing.T) {
	repo, mock, cleanup := setupMessageRepoTest(t)
	defer cleanup()

	texte := "Bonjour"
	m := &models.Message{
		ConversationID: "abc123",
		ExpediteurID:   uuid.New(),
		DestinataireID: uuid.New(),
		AnnonceID:      uuid.New(),
		Contenu:        models.Contenu{Type: models.MessageTypeTexte, Texte: &texte},
	}

	mock.ExpectExec("^\\s*INSERT INTO messages").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateMessage(context.Background(), m)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkConversationRead_ReturnsAffectedCount(t *testing.T) {
	repo, mock, cleanup := setupMessageRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("^\\s*UPDATE messages SET lu = TRUE").
		WithArgs("abc123", userID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.MarkConversationRead(context.Background(), "abc123", userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDeleted_SecondCallReturnsFalse(t *testing.T) {
	repo, mock, cleanup := setupMessageRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^\\s*UPDATE messages SET supprime = TRUE").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.MarkDeleted(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec("^\\s*UPDATE messages SET supprime = TRUE").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.MarkDeleted(context.Background(), id)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertReaction_SingleSlot(t *testing.T) {
	repo, mock, cleanup := setupMessageRepoTest(t)
	defer cleanup()

	messageID := uuid.New()
	userID := uuid.New()
	mock.ExpectExec("^\\s*INSERT INTO message_reactions").
		WithArgs(messageID, userID, "👍").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertReaction(context.Background(), messageID, userID, "👍")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

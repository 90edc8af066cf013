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

func setupAnnonceRepoTest(t *testing.T) (*AnnonceRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AnnonceRepo{
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
		cfg:         &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestReplyCommentaire_FirstReplyWins(t *testing.T) {
	repo, mock, cleanup := setupAnnonceRepoTest(t)
	defer cleanup()

	commentaireID := uuid.New()
	auteurID := uuid.New()

	mock.ExpectExec("^UPDATE annonce_commentaires").
		WithArgs("merci", auteurID, commentaireID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	replied, err := repo.ReplyCommentaire(context.Background(), commentaireID, auteurID, "merci")
	assert.NoError(t, err)
	assert.True(t, replied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyCommentaire_AlreadyReplied(t *testing.T) {
	repo, mock, cleanup := setupAnnonceRepoTest(t)
	defer cleanup()

	commentaireID := uuid.New()
	auteurID := uuid.New()

	mock.ExpectExec("^UPDATE annonce_commentaires").
		WithArgs("merci", auteurID, commentaireID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	replied, err := repo.ReplyCommentaire(context.Background(), commentaireID, auteurID, "merci")
	assert.NoError(t, err)
	assert.False(t, replied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountDemandesEnVol(t *testing.T) {
	repo, mock, cleanup := setupAnnonceRepoTest(t)
	defer cleanup()

	annonceID := uuid.New()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(3)
	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM demandes WHERE annonce_id").
		WillReturnRows(rows)

	count, err := repo.CountDemandesEnVol(context.Background(), annonceID)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAnnonceStatut_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAnnonceRepoTest(t)
	defer cleanup()

	annonceID := uuid.New()

	mock.ExpectExec("^UPDATE annonces SET statut").
		WithArgs(models.AnnonceStatutInactive, annonceID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAnnonceStatut(context.Background(), annonceID, models.AnnonceStatutInactive)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAnnonce_TransactionOrder(t *testing.T) {
	repo, mock, cleanup := setupAnnonceRepoTest(t)
	defer cleanup()

	annonceID := uuid.New()
	conducteurID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("^DELETE FROM demandes WHERE annonce_id").
		WithArgs(annonceID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("^DELETE FROM annonces WHERE id").
		WithArgs(annonceID).
		WillReturnRows(sqlmock.NewRows([]string{"conducteur_id"}).AddRow(conducteurID))
	mock.ExpectExec("^UPDATE users SET nombre_annonces").
		WithArgs(conducteurID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteAnnonce(context.Background(), annonceID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

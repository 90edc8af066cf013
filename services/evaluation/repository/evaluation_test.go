package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

func setupEvaluationRepoTest(t *testing.T) (*EvaluationRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &EvaluationRepo{
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
		cfg:         &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func testEvaluation(typeEvaluation string) *models.Evaluation {
	return &models.Evaluation{
		DemandeID:      uuid.New(),
		EvaluateurID:   uuid.New(),
		EvalueID:       uuid.New(),
		TypeEvaluation: typeEvaluation,
		Note:           4.5,
		Criteres: models.Criteres{
			Ponctualite:       5,
			Communication:     4,
			Professionnalisme: 4,
		},
		Recommande: true,
	}
}

func TestCreateEvaluation_LinksSlotAndRecomputes(t *testing.T) {
	repo, mock, cleanup := setupEvaluationRepoTest(t)
	defer cleanup()

	e := testEvaluation(models.EvalExpediteurVersConducteur)

	mock.ExpectBegin()
	mock.ExpectExec("^\\s*INSERT INTO evaluations").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("^UPDATE demandes SET evaluation_expediteur_id").
		WithArgs(sqlmock.AnyArg(), e.DemandeID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("^\\s*UPDATE users SET").
		WithArgs(e.EvalueID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateEvaluation(context.Background(), e)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.True(t, e.Approuvee, "ratings are published immediately and moderated after the fact")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvaluation_DriverDirectionUsesOtherSlot(t *testing.T) {
	repo, mock, cleanup := setupEvaluationRepoTest(t)
	defer cleanup()

	e := testEvaluation(models.EvalConducteurVersExpediteur)

	mock.ExpectBegin()
	mock.ExpectExec("^\\s*INSERT INTO evaluations").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("^UPDATE demandes SET evaluation_conducteur_id").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("^\\s*UPDATE users SET").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateEvaluation(context.Background(), e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvaluation_DuplicateTripleConflicts(t *testing.T) {
	repo, mock, cleanup := setupEvaluationRepoTest(t)
	defer cleanup()

	e := testEvaluation(models.EvalExpediteurVersConducteur)

	mock.ExpectBegin()
	mock.ExpectExec("^\\s*INSERT INTO evaluations").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_evaluation_triple"})
	mock.ExpectRollback()

	err := repo.CreateEvaluation(context.Background(), e)
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyEvaluation_FirstReplyWins(t *testing.T) {
	repo, mock, cleanup := setupEvaluationRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^\\s*UPDATE evaluations SET reponse_texte").
		WithArgs("Merci", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.ReplyEvaluation(context.Background(), id, "Merci")
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec("^\\s*UPDATE evaluations SET reponse_texte").
		WithArgs("Encore", id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.ReplyEvaluation(context.Background(), id, "Encore")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddHelpfulVote_DuplicateIsNotAnError(t *testing.T) {
	repo, mock, cleanup := setupEvaluationRepoTest(t)
	defer cleanup()

	id := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("^\\s*INSERT INTO evaluation_votes").
		WithArgs(id, userID).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	ok, err := repo.AddHelpfulVote(context.Background(), id, userID)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddHelpfulVote_BumpsCounter(t *testing.T) {
	repo, mock, cleanup := setupEvaluationRepoTest(t)
	defer cleanup()

	id := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("^\\s*INSERT INTO evaluation_votes").
		WithArgs(id, userID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("^\\s*UPDATE evaluations SET nombre_utile").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.AddHelpfulVote(context.Background(), id, userID)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportEvaluation_SecondReportReturnsFalse(t *testing.T) {
	repo, mock, cleanup := setupEvaluationRepoTest(t)
	defer cleanup()

	id := uuid.New()
	par := uuid.New()

	mock.ExpectExec("^\\s*UPDATE evaluations SET").
		WithArgs("spam", par, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.ReportEvaluation(context.Background(), id, "spam", par)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSignalementTraite_NoOpenReport(t *testing.T) {
	repo, mock, cleanup := setupEvaluationRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^\\s*UPDATE evaluations SET signalement_traite").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSignalementTraite(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListForUser_ViewerFilterInQuery(t *testing.T) {
	repo, mock, cleanup := setupEvaluationRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	callerID := uuid.New()
	filtre := `\(approuvee OR evaluateur_id = \$2\)`

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM evaluations WHERE evalue_id = \$1 AND ` + filtre).
		WithArgs(userID, callerID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`^SELECT .* FROM evaluations WHERE evalue_id = \$1 AND ` + filtre).
		WithArgs(userID, callerID, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	evaluations, total, err := repo.ListForUser(context.Background(), userID, &callerID, models.Pagination{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, evaluations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListForUser_FullViewHasNoApprovalFilter(t *testing.T) {
	repo, mock, cleanup := setupEvaluationRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM evaluations WHERE evalue_id = \$1$`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`^SELECT .* FROM evaluations WHERE evalue_id = \$1 ORDER BY created_at DESC`).
		WithArgs(userID, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	evaluations, total, err := repo.ListForUser(context.Background(), userID, nil, models.Pagination{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Empty(t, evaluations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

func setupAdminRepoTest(t *testing.T) (*AdminRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AdminRepo{
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
		cfg:         &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestSetUserStatut_RepeatedModerationChangesNothing(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("^\\s*UPDATE users SET statut").
		WithArgs(models.UserStatutSuspendu, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := repo.SetUserStatut(context.Background(), userID, models.UserStatutSuspendu)
	assert.NoError(t, err)
	assert.True(t, changed)

	mock.ExpectExec("^\\s*UPDATE users SET statut").
		WithArgs(models.UserStatutSuspendu, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err = repo.SetUserStatut(context.Background(), userID, models.UserStatutSuspendu)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_SearchMatchesNameAndEmail(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^\\s*SELECT COUNT\\(\\*\\) FROM users").
		WithArgs(models.RoleConducteur, "%dupont%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	userID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "nom", "prenom", "email", "telephone", "mot_de_passe", "role", "statut", "badges",
		"note_moyenne", "nombre_evaluations", "nombre_annonces", "photo_url", "adresse",
		"created_at", "updated_at",
	}).AddRow(userID, "Dupont", "Jean", "jean@example.com", "+33600000000", "hash",
		models.RoleConducteur, models.UserStatutActif, []byte(`[]`),
		4.2, 5, 3, nil, nil, now, now)

	mock.ExpectQuery("FROM users").
		WithArgs(models.RoleConducteur, "%dupont%", 10, 0).
		WillReturnRows(rows)

	users, total, err := repo.ListUsers(context.Background(),
		models.UserFilter{Role: models.RoleConducteur, Recherche: "dupont"},
		models.Pagination{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "Dupont", users[0].Nom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBadges_UnknownUserIsNotFound(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("^\\s*UPDATE users SET badges").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBadges(context.Background(), userID, models.StringArray{"verifie"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAnnonceStatut_SoftDeletedStaysUntouched(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	annonceID := uuid.New()
	mock.ExpectExec("^\\s*UPDATE annonces SET statut").
		WithArgs(models.AnnonceStatutSuspendue, annonceID, models.AnnonceStatutSupprimee).
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := repo.SetAnnonceStatut(context.Background(), annonceID, models.AnnonceStatutSuspendue)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLitiges_OldestFirstQueue(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^\\s*SELECT COUNT\\(\\*\\) FROM demandes").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	motif := "colis endommagé"
	rows := sqlmock.NewRows([]string{
		"id", "annonce_id", "expediteur_id", "conducteur_id",
		"litige_motif", "litige_signale_par", "litige_date_signalement", "prix_propose",
	}).
		AddRow(uuid.New(), uuid.New(), uuid.New(), uuid.New(), motif, uuid.New(),
			time.Now().Add(-48*time.Hour), 30.0).
		AddRow(uuid.New(), uuid.New(), uuid.New(), uuid.New(), nil, uuid.New(),
			time.Now(), 55.0)

	mock.ExpectQuery("FROM demandes").
		WithArgs(10, 0).
		WillReturnRows(rows)

	litiges, total, err := repo.ListLitiges(context.Background(), models.Pagination{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, litiges, 2)
	assert.Equal(t, motif, *litiges[0].Motif)
	assert.Nil(t, litiges[1].Motif)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboardStats_SumsRoleCounts(t *testing.T) {
	repo, mock, cleanup := setupAdminRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("FROM users GROUP BY role").
		WillReturnRows(sqlmock.NewRows([]string{"valeur", "total"}).
			AddRow(models.RoleConducteur, 12).
			AddRow(models.RoleExpediteur, 30).
			AddRow(models.RoleAdmin, 1))
	mock.ExpectQuery("FROM users GROUP BY statut").
		WillReturnRows(sqlmock.NewRows([]string{"valeur", "total"}).
			AddRow(models.UserStatutActif, 41).
			AddRow(models.UserStatutSuspendu, 2))
	mock.ExpectQuery("FROM annonces").
		WillReturnRows(sqlmock.NewRows([]string{"valeur", "total"}).
			AddRow(models.AnnonceStatutActive, 8))
	mock.ExpectQuery("FROM demandes").
		WillReturnRows(sqlmock.NewRows([]string{"valeur", "total"}).
			AddRow(models.DemandeStatutLivree, 20))
	mock.ExpectQuery("^\\s*SELECT COUNT\\(\\*\\) FROM evaluations").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))
	mock.ExpectQuery("FROM evaluations WHERE approuvee").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4.31))
	mock.ExpectQuery("FROM users WHERE created_at").
		WillReturnRows(sqlmock.NewRows([]string{"mois", "total"}).
			AddRow("2025-07", 5).AddRow("2025-08", 7))
	mock.ExpectQuery("FROM annonces WHERE created_at").
		WillReturnRows(sqlmock.NewRows([]string{"mois", "total"}).
			AddRow("2025-08", 3))
	mock.ExpectQuery("FROM demandes WHERE created_at").
		WillReturnRows(sqlmock.NewRows([]string{"mois", "total"}).
			AddRow("2025-08", 9))

	stats, err := repo.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 43, stats.TotalUtilisateurs)
	assert.Equal(t, 12, stats.UtilisateursParRole[models.RoleConducteur])
	assert.Equal(t, 8, stats.TotalAnnonces)
	assert.Equal(t, 4.31, stats.NoteMoyenneGlobale)
	require.Len(t, stats.Croissance, 2)
	assert.Equal(t, "2025-07", stats.Croissance[0].Mois)
	assert.Equal(t, 7, stats.Croissance[1].Utilisateurs)
	assert.Equal(t, 3, stats.Croissance[1].Annonces)
	assert.Equal(t, 9, stats.Croissance[1].Demandes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

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
	"github.com/transportconnect/transportconnect/services/demande"
)

func setupDemandeRepoTest(t *testing.T) (*DemandeRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &DemandeRepo{
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
		cfg:         &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestTransitionStatut_CASMissReturnsFalse(t *testing.T) {
	repo, mock, cleanup := setupDemandeRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE demandes SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	ok, err := repo.TransitionStatut(context.Background(), demande.TransitionParams{
		ID:      uuid.New(),
		De:      models.DemandeStatutAttente,
		Vers:    models.DemandeStatutAcceptee,
		Version: 1,
	})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatut_AppendsHistory(t *testing.T) {
	repo, mock, cleanup := setupDemandeRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE demandes SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^INSERT INTO demande_historique").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ok, err := repo.TransitionStatut(context.Background(), demande.TransitionParams{
		ID:      uuid.New(),
		De:      models.DemandeStatutAcceptee,
		Vers:    models.DemandeStatutEnCours,
		Version: 2,
	})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatut_AcceptUpdatesCounters(t *testing.T) {
	repo, mock, cleanup := setupDemandeRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE demandes SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^INSERT INTO demande_historique").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("^UPDATE annonces SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.TransitionStatut(context.Background(), demande.TransitionParams{
		ID:                 uuid.New(),
		De:                 models.DemandeStatutAttente,
		Vers:               models.DemandeStatutAcceptee,
		Version:            1,
		IncrementAcceptees: true,
	})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatut_TrackingCollisionIsConflict(t *testing.T) {
	repo, mock, cleanup := setupDemandeRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE demandes SET").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "demandes_numero_suivi_key"})
	mock.ExpectRollback()

	numero := "TC-LX2K9J-AB3D"
	ok, err := repo.TransitionStatut(context.Background(), demande.TransitionParams{
		ID:          uuid.New(),
		De:          models.DemandeStatutAttente,
		Vers:        models.DemandeStatutAcceptee,
		Version:     1,
		NumeroSuivi: &numero,
	})
	assert.False(t, ok)
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDemande_RecomputesAcceptanceRate(t *testing.T) {
	repo, mock, cleanup := setupDemandeRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("^INSERT INTO demandes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^INSERT INTO demande_historique").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("^UPDATE annonces SET nombre_demandes = nombre_demandes \\+ 1, taux_acceptation = demandes_acceptees \\* 100.0 / \\(nombre_demandes \\+ 1\\)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	d := &models.Demande{
		AnnonceID:    uuid.New(),
		ExpediteurID: uuid.New(),
		ConducteurID: uuid.New(),
		Colis: models.Colis{
			Longueur: 1, Largeur: 1, Hauteur: 1, Volume: 1, Poids: 10,
			Photos: models.StringArray{},
		},
		AdresseEnlevement: models.Adresse{Ville: "Casablanca"},
		AdresseLivraison:  models.Adresse{Ville: "Rabat"},
		PrixPropose:       50,
	}
	err := repo.CreateDemande(context.Background(), d)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOuvrirLitige_AlreadyOpenReturnsFalse(t *testing.T) {
	repo, mock, cleanup := setupDemandeRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE demandes SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	ok, err := repo.OuvrirLitige(context.Background(), uuid.New(), "motif", uuid.New())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/annonce/mocks"
)

func validAnnonce(conducteurID uuid.UUID) *models.Annonce {
	return &models.Annonce{
		ConducteurID:        conducteurID,
		VilleDepart:         "Paris",
		VilleDestination:    "Lyon",
		DateDepart:          time.Now().Add(48 * time.Hour),
		Longueur:            2,
		Largeur:             1.5,
		Hauteur:             1,
		PoidsMax:            500,
		TarificationType:    models.TarificationParKg,
		TarificationMontant: 2.5,
	}
}

func TestCreateAnnonce_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	conducteurID := uuid.New()
	a := validAnnonce(conducteurID)

	mockRepo.EXPECT().
		CreateAnnonce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, stored *models.Annonce) error {
			assert.Equal(t, conducteurID, stored.ConducteurID)
			assert.Equal(t, models.AnnonceStatutActive, stored.Statut)
			assert.Equal(t, 3.0, stored.Volume, "volume must be derived from dimensions")
			assert.Equal(t, "EUR", stored.Devise)
			return nil
		})

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	err := uc.CreateAnnonce(context.Background(), a, conducteurID)
	assert.NoError(t, err)
}

func TestCreateAnnonce_PastDepartureDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	conducteurID := uuid.New()
	a := validAnnonce(conducteurID)
	a.DateDepart = time.Now().Add(-time.Hour)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	err := uc.CreateAnnonce(context.Background(), a, conducteurID)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateAnnonce_InvalidDimensions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	conducteurID := uuid.New()
	a := validAnnonce(conducteurID)
	a.Hauteur = 0

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	err := uc.CreateAnnonce(context.Background(), a, conducteurID)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateAnnonce_UnknownPricingMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	conducteurID := uuid.New()
	a := validAnnonce(conducteurID)
	a.TarificationType = "au_volume"

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	err := uc.CreateAnnonce(context.Background(), a, conducteurID)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestGetAnnonce_CountsFirstViewOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	viewerID := uuid.New()
	stored := validAnnonce(uuid.New())
	stored.ID = annonceID
	stored.NombreVues = 4

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)
	mockRepo.EXPECT().MarquerVue(gomock.Any(), annonceID, viewerID).Return(true, nil)
	mockRepo.EXPECT().IncrementVues(gomock.Any(), annonceID).Return(nil)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	a, err := uc.GetAnnonce(context.Background(), annonceID, viewerID)
	assert.NoError(t, err)
	assert.Equal(t, 5, a.NombreVues)
}

func TestGetAnnonce_RepeatViewNotCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	viewerID := uuid.New()
	stored := validAnnonce(uuid.New())
	stored.ID = annonceID
	stored.NombreVues = 4

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)
	mockRepo.EXPECT().MarquerVue(gomock.Any(), annonceID, viewerID).Return(false, nil)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	a, err := uc.GetAnnonce(context.Background(), annonceID, viewerID)
	assert.NoError(t, err)
	assert.Equal(t, 4, a.NombreVues)
}

func TestGetAnnonce_OwnerViewNotCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	conducteurID := uuid.New()
	stored := validAnnonce(conducteurID)
	stored.ID = annonceID

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	_, err := uc.GetAnnonce(context.Background(), annonceID, conducteurID)
	assert.NoError(t, err)
}

func TestGetAnnonce_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(nil, models.ErrNotFound)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	_, err := uc.GetAnnonce(context.Background(), annonceID, uuid.Nil)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateAnnonce_ForbiddenForStranger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	stored := validAnnonce(uuid.New())
	stored.ID = annonceID

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	statut := models.AnnonceStatutInactive
	_, err := uc.UpdateAnnonce(context.Background(), annonceID,
		models.UpdateAnnonceRequest{Statut: &statut}, uuid.New(), models.RoleConducteur)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestUpdateAnnonce_AdminMayPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	stored := validAnnonce(uuid.New())
	stored.ID = annonceID

	statut := models.AnnonceStatutInactive
	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)
	mockRepo.EXPECT().UpdateAnnonceStatut(gomock.Any(), annonceID, statut).Return(nil)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	a, err := uc.UpdateAnnonce(context.Background(), annonceID,
		models.UpdateAnnonceRequest{Statut: &statut}, uuid.New(), models.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, statut, a.Statut)
}

func TestUpdateAnnonce_RecomputesVolume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	conducteurID := uuid.New()
	stored := validAnnonce(conducteurID)
	stored.ID = annonceID
	stored.Volume = 3

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)
	mockRepo.EXPECT().
		UpdateAnnonce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a *models.Annonce) error {
			assert.Equal(t, 6.0, a.Volume, "volume must follow the new dimensions")
			return nil
		})

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	longueur := 4.0
	a, err := uc.UpdateAnnonce(context.Background(), annonceID,
		models.UpdateAnnonceRequest{Longueur: &longueur}, conducteurID, models.RoleConducteur)
	assert.NoError(t, err)
	assert.Equal(t, 6.0, a.Volume)
}

func TestDeleteAnnonce_BlockedWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	conducteurID := uuid.New()
	stored := validAnnonce(conducteurID)
	stored.ID = annonceID

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)
	mockRepo.EXPECT().CountDemandesEnVol(gomock.Any(), annonceID).Return(2, nil)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	err := uc.DeleteAnnonce(context.Background(), annonceID, conducteurID, models.RoleConducteur)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestDeleteAnnonce_HardDeleteWithoutHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	conducteurID := uuid.New()
	stored := validAnnonce(conducteurID)
	stored.ID = annonceID

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)
	mockRepo.EXPECT().CountDemandesEnVol(gomock.Any(), annonceID).Return(0, nil)
	mockRepo.EXPECT().CountDemandes(gomock.Any(), annonceID).Return(0, nil)
	mockRepo.EXPECT().DeleteAnnonce(gomock.Any(), annonceID).Return(nil)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	err := uc.DeleteAnnonce(context.Background(), annonceID, conducteurID, models.RoleConducteur)
	assert.NoError(t, err)
}

func TestDeleteAnnonce_SoftDeleteWithHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	conducteurID := uuid.New()
	stored := validAnnonce(conducteurID)
	stored.ID = annonceID

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)
	mockRepo.EXPECT().CountDemandesEnVol(gomock.Any(), annonceID).Return(0, nil)
	mockRepo.EXPECT().CountDemandes(gomock.Any(), annonceID).Return(3, nil)
	mockRepo.EXPECT().SoftDeleteAnnonce(gomock.Any(), annonceID).Return(nil)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	err := uc.DeleteAnnonce(context.Background(), annonceID, conducteurID, models.RoleConducteur)
	assert.NoError(t, err)
}

func TestReplyCommentaire_OnlyOwnerMayReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	stored := validAnnonce(uuid.New())
	stored.ID = annonceID

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	err := uc.ReplyCommentaire(context.Background(), annonceID, uuid.New(), uuid.New(), "merci")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestReplyCommentaire_SecondReplyConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	annonceID := uuid.New()
	conducteurID := uuid.New()
	commentaireID := uuid.New()
	stored := validAnnonce(conducteurID)
	stored.ID = annonceID

	mockRepo.EXPECT().GetAnnonceByID(gomock.Any(), annonceID).Return(stored, nil)
	mockRepo.EXPECT().
		ReplyCommentaire(gomock.Any(), commentaireID, conducteurID, "merci").
		Return(false, nil)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	err := uc.ReplyCommentaire(context.Background(), annonceID, commentaireID, conducteurID, "merci")
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestAddCommentaire_EmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	_, err := uc.AddCommentaire(context.Background(), uuid.New(), uuid.New(), "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListAnnonces_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnnonceRepo(ctrl)
	mockRepo.EXPECT().
		ListAnnonces(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, 0, errors.New("db down"))

	uc := NewAnnonceUC(&models.Config{}, mockRepo)

	_, err := uc.ListAnnonces(context.Background(), models.AnnonceFilter{}, models.Pagination{Page: 1, Limit: 10})
	assert.Error(t, err)
}

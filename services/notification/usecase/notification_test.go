package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/notification/mocks"
)

type testDeps struct {
	notificationRepo *mocks.MockNotificationRepo
	mailer           *mocks.MockMailer
	notificateur     *mocks.MockNotificateur
	uc               *NotificationUC
}

func newTestUC(t *testing.T) (*testDeps, func()) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		notificationRepo: mocks.NewMockNotificationRepo(ctrl),
		mailer:           mocks.NewMockMailer(ctrl),
		notificateur:     mocks.NewMockNotificateur(ctrl),
	}
	deps.uc = NewNotificationUC(&models.Config{}, deps.notificationRepo, deps.mailer, deps.notificateur)
	return deps, ctrl.Finish
}

func TestHandleUserRegistered_MailsAddressFromEvent(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	deps.mailer.EXPECT().
		Send("karim@example.com", gomock.Any(), gomock.Any()).
		Do(func(_, _, body string) {
			assert.Contains(t, body, "Karim")
		})

	err := deps.uc.HandleUserRegistered(context.Background(), &models.UserRegisteredEvent{
		UserID: uuid.New(),
		Email:  "karim@example.com",
		Prenom: "Karim",
		Role:   models.RoleConducteur,
	})
	assert.NoError(t, err)
}

func TestHandleDemandeCreated_NotifiesDriver(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	conducteurID := uuid.New()
	event := &models.DemandeCreatedEvent{
		DemandeID:    uuid.New(),
		ConducteurID: conducteurID,
		PrixPropose:  120,
	}

	deps.notificateur.EXPECT().
		NotifyClient(conducteurID.String(), models.EventNotification, gomock.Any()).
		Do(func(_, _ string, data interface{}) {
			n := data.(*models.WSNotification)
			assert.Equal(t, TypeNouvelleDemande, n.Type)
		})
	deps.notificationRepo.EXPECT().
		GetUserByID(gomock.Any(), conducteurID).
		Return(&models.User{ID: conducteurID, Email: "driver@example.com", Prenom: "Nadia"}, nil)
	deps.mailer.EXPECT().
		Send("driver@example.com", "Nouvelle demande de transport", gomock.Any())

	err := deps.uc.HandleDemandeCreated(context.Background(), event)
	assert.NoError(t, err)
}

func TestHandleDemandeStatusChanged_NotifiesCounterpart(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	expediteurID := uuid.New()
	conducteurID := uuid.New()
	event := &models.DemandeStatusChangedEvent{
		DemandeID:     uuid.New(),
		NouveauStatut: models.DemandeStatutAcceptee,
		ExpediteurID:  expediteurID,
		ConducteurID:  conducteurID,
		AuteurID:      conducteurID,
	}

	deps.notificateur.EXPECT().
		NotifyClient(expediteurID.String(), models.EventNotification, gomock.Any())
	deps.notificationRepo.EXPECT().
		GetUserByID(gomock.Any(), expediteurID).
		Return(&models.User{ID: expediteurID, Email: "sender@example.com", Prenom: "Omar"}, nil)
	deps.mailer.EXPECT().
		Send("sender@example.com", gomock.Any(), gomock.Any()).
		Do(func(_, _, body string) {
			assert.Contains(t, body, "acceptée")
		})

	err := deps.uc.HandleDemandeStatusChanged(context.Background(), event)
	assert.NoError(t, err)
}

func TestHandleDemandeStatusChanged_TrackingNumberIncluded(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	expediteurID := uuid.New()
	conducteurID := uuid.New()
	event := &models.DemandeStatusChangedEvent{
		NouveauStatut: models.DemandeStatutAcceptee,
		ExpediteurID:  expediteurID,
		ConducteurID:  conducteurID,
		AuteurID:      conducteurID,
		NumeroSuivi:   "TC-2025-0042",
	}

	deps.notificateur.EXPECT().
		NotifyClient(expediteurID.String(), models.EventNotification, gomock.Any()).
		Do(func(_, _ string, data interface{}) {
			n := data.(*models.WSNotification)
			assert.Contains(t, n.Message, "TC-2025-0042")
		})
	deps.notificationRepo.EXPECT().
		GetUserByID(gomock.Any(), expediteurID).
		Return(&models.User{ID: expediteurID, Email: "sender@example.com"}, nil)
	deps.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any())

	err := deps.uc.HandleDemandeStatusChanged(context.Background(), event)
	assert.NoError(t, err)
}

func TestHandleEvaluationCreated_VanishedRecipientDropped(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	evalueID := uuid.New()
	deps.notificateur.EXPECT().
		NotifyClient(evalueID.String(), models.EventNotification, gomock.Any())
	deps.notificationRepo.EXPECT().
		GetUserByID(gomock.Any(), evalueID).
		Return(nil, models.ErrNotFound)

	err := deps.uc.HandleEvaluationCreated(context.Background(), &models.EvaluationCreatedEvent{
		EvalueID: evalueID,
		Note:     4.5,
	})
	assert.NoError(t, err, "a vanished account must not trigger a requeue")
}

func TestHandleMessageSent_LookupFailurePropagates(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	destinataireID := uuid.New()
	deps.notificateur.EXPECT().
		NotifyClient(destinataireID.String(), models.EventNotification, gomock.Any())
	deps.notificationRepo.EXPECT().
		GetUserByID(gomock.Any(), destinataireID).
		Return(nil, errors.New("connection refused"))

	err := deps.uc.HandleMessageSent(context.Background(), &models.MessageSentEvent{
		MessageID:      uuid.New(),
		DestinataireID: destinataireID,
	})
	assert.Error(t, err, "a transient failure must surface so the event is retried")
}

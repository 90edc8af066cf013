package nsq

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/notification/mocks"
)

func newTestHandler(t *testing.T) (*NotificationHandler, *mocks.MockNotificationUC, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockNotificationUC(ctrl)
	handler := NewNotificationHandler(&models.Config{}, mockUC)
	return handler, mockUC, ctrl.Finish
}

func TestHandleUserRegistered_DispatchesEvent(t *testing.T) {
	handler, mockUC, finish := newTestHandler(t)
	defer finish()

	event := models.UserRegisteredEvent{
		UserID: uuid.New(),
		Email:  "karim@example.com",
		Prenom: "Karim",
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	mockUC.EXPECT().
		HandleUserRegistered(gomock.Any(), &event).
		Return(nil)

	assert.NoError(t, handler.handleUserRegistered(payload))
}

func TestHandleUserRegistered_MalformedPayloadDropped(t *testing.T) {
	handler, _, finish := newTestHandler(t)
	defer finish()

	err := handler.handleUserRegistered([]byte("{not json"))
	assert.NoError(t, err, "a poison payload must be finished, not requeued")
}

func TestHandleDemandeStatusChanged_DispatchFailureRequeues(t *testing.T) {
	handler, mockUC, finish := newTestHandler(t)
	defer finish()

	event := models.DemandeStatusChangedEvent{
		DemandeID:     uuid.New(),
		NouveauStatut: models.DemandeStatutLivree,
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	mockUC.EXPECT().
		HandleDemandeStatusChanged(gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	assert.Error(t, handler.handleDemandeStatusChanged(payload))
}

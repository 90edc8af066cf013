package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/message/mocks"
)

type testDeps struct {
	messageRepo *mocks.MockMessageRepo
	gw          *mocks.MockMessageGW
	diffuseur   *mocks.MockDiffuseur
	uc          *MessageUC
}

func newTestUC(t *testing.T) (*testDeps, func()) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		messageRepo: mocks.NewMockMessageRepo(ctrl),
		gw:          mocks.NewMockMessageGW(ctrl),
		diffuseur:   mocks.NewMockDiffuseur(ctrl),
	}
	deps.uc = NewMessageUC(&models.Config{}, deps.messageRepo, deps.gw, deps.diffuseur)
	return deps, ctrl.Finish
}

func strPtr(s string) *string { return &s }

func texteReq(destinataireID, annonceID uuid.UUID) models.SendMessageRequest {
	return models.SendMessageRequest{
		DestinataireID: destinataireID,
		AnnonceID:      annonceID,
		Contenu: models.Contenu{
			Type:  models.MessageTypeTexte,
			Texte: strPtr("Bonjour, le colis est-il toujours disponible ?"),
		},
	}
}

func TestBuildConversationID_OrderIndependent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	annonceID := uuid.New()

	assert.Equal(t,
		models.BuildConversationID(a, b, annonceID),
		models.BuildConversationID(b, a, annonceID))
	assert.NotEqual(t,
		models.BuildConversationID(a, b, annonceID),
		models.BuildConversationID(a, b, uuid.New()),
		"different listings yield different conversations")
}

func TestSendMessage_RecipientInRoom(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	expediteurID := uuid.New()
	destinataireID := uuid.New()
	annonceID := uuid.New()
	conversationID := models.BuildConversationID(expediteurID, destinataireID, annonceID)

	deps.messageRepo.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, m *models.Message) error {
			assert.Equal(t, conversationID, m.ConversationID)
			m.ID = uuid.New()
			return nil
		})
	deps.diffuseur.EXPECT().
		BroadcastToRoom(conversationID, expediteurID.String(), models.EventReceiveMessage, gomock.Any())
	deps.diffuseur.EXPECT().
		IsInRoom(conversationID, destinataireID.String()).
		Return(true)

	m, err := deps.uc.SendMessage(context.Background(), texteReq(destinataireID, annonceID), expediteurID)
	assert.NoError(t, err)
	assert.Equal(t, conversationID, m.ConversationID)
}

func TestSendMessage_AbsentRecipientGetsEvent(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	expediteurID := uuid.New()
	destinataireID := uuid.New()
	annonceID := uuid.New()
	conversationID := models.BuildConversationID(expediteurID, destinataireID, annonceID)

	deps.messageRepo.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, m *models.Message) error {
			m.ID = uuid.New()
			return nil
		})
	deps.diffuseur.EXPECT().
		BroadcastToRoom(conversationID, expediteurID.String(), models.EventReceiveMessage, gomock.Any())
	deps.diffuseur.EXPECT().
		IsInRoom(conversationID, destinataireID.String()).
		Return(false)
	deps.gw.EXPECT().
		PublishMessageSent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *models.MessageSentEvent) error {
			assert.Equal(t, destinataireID, event.DestinataireID)
			return nil
		})

	_, err := deps.uc.SendMessage(context.Background(), texteReq(destinataireID, annonceID), expediteurID)
	assert.NoError(t, err)
}

func TestSendMessage_SelfMessageRejected(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	userID := uuid.New()
	_, err := deps.uc.SendMessage(context.Background(), texteReq(userID, uuid.New()), userID)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSendMessage_EmptyTexteRejected(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	req := texteReq(uuid.New(), uuid.New())
	req.Contenu.Texte = strPtr("")

	_, err := deps.uc.SendMessage(context.Background(), req, uuid.New())
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSendMessage_SystemTypeRejected(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	req := texteReq(uuid.New(), uuid.New())
	req.Contenu = models.Contenu{
		Type:    models.MessageTypeSysteme,
		Systeme: &models.Systeme{Genre: models.SystemeLitige, DemandeID: uuid.New()},
	}

	_, err := deps.uc.SendMessage(context.Background(), req, uuid.New())
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSendMessage_BadCoordinatesRejected(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	req := texteReq(uuid.New(), uuid.New())
	req.Contenu = models.Contenu{
		Type:         models.MessageTypeLocalisation,
		Localisation: &models.Localisation{Latitude: 91, Longitude: 0},
	}

	_, err := deps.uc.SendMessage(context.Background(), req, uuid.New())
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListConversation_BlanksDeletedMessages(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	callerID := uuid.New()
	autreID := uuid.New()
	annonceID := uuid.New()
	conversationID := models.BuildConversationID(callerID, autreID, annonceID)
	p := models.Pagination{Page: 1, Limit: 20}

	supprime := &models.Message{
		ID:       uuid.New(),
		Supprime: true,
		Contenu:  models.Contenu{Type: models.MessageTypeTexte, Texte: strPtr("contenu retiré")},
	}
	deps.messageRepo.EXPECT().
		ListConversation(gomock.Any(), conversationID, p).
		Return([]*models.Message{supprime}, 1, nil)

	page, err := deps.uc.ListConversation(context.Background(), callerID, autreID, annonceID, p)
	assert.NoError(t, err)
	messages := page.Items.([]*models.Message)
	assert.Nil(t, messages[0].Contenu.Texte, "deleted content must not leak")
	assert.Equal(t, models.MessageTypeTexte, messages[0].Contenu.Type)
}

func TestMarkConversationRead_Bulk(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	callerID := uuid.New()
	autreID := uuid.New()
	annonceID := uuid.New()
	conversationID := models.BuildConversationID(callerID, autreID, annonceID)

	deps.messageRepo.EXPECT().
		MarkConversationRead(gomock.Any(), conversationID, callerID).
		Return(int64(4), nil)

	n, err := deps.uc.MarkConversationRead(context.Background(), callerID, autreID, annonceID)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestReact_StrangerForbidden(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	m := &models.Message{ID: uuid.New(), ExpediteurID: uuid.New(), DestinataireID: uuid.New()}
	deps.messageRepo.EXPECT().GetMessageByID(gomock.Any(), m.ID).Return(m, nil)

	err := deps.uc.React(context.Background(), m.ID, uuid.New(), "👍")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestReact_UpsertsSlot(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	userID := uuid.New()
	m := &models.Message{ID: uuid.New(), ExpediteurID: uuid.New(), DestinataireID: userID}
	deps.messageRepo.EXPECT().GetMessageByID(gomock.Any(), m.ID).Return(m, nil)
	deps.messageRepo.EXPECT().UpsertReaction(gomock.Any(), m.ID, userID, "👍").Return(nil)

	err := deps.uc.React(context.Background(), m.ID, userID, "👍")
	assert.NoError(t, err)
}

func TestDeleteMessage_OnlySender(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	m := &models.Message{ID: uuid.New(), ExpediteurID: uuid.New()}
	deps.messageRepo.EXPECT().GetMessageByID(gomock.Any(), m.ID).Return(m, nil)

	err := deps.uc.DeleteMessage(context.Background(), m.ID, uuid.New())
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestDeleteMessage_SecondDeleteConflicts(t *testing.T) {
	deps, finish := newTestUC(t)
	defer finish()

	callerID := uuid.New()
	m := &models.Message{ID: uuid.New(), ExpediteurID: callerID}
	deps.messageRepo.EXPECT().GetMessageByID(gomock.Any(), m.ID).Return(m, nil)
	deps.messageRepo.EXPECT().MarkDeleted(gomock.Any(), m.ID).Return(false, nil)

	err := deps.uc.DeleteMessage(context.Background(), m.ID, callerID)
	assert.ErrorIs(t, err, models.ErrConflict)
}

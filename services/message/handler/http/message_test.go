package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/message/mocks"
)

func TestSendMessage_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMessageUC(ctrl)
	handler := NewMessageHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	destinataireID := uuid.New()
	annonceID := uuid.New()
	body := `{"destinataireId":"` + destinataireID.String() + `","annonceId":"` + annonceID.String() +
		`","contenu":{"type":"texte","texte":"Bonjour"}}`
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleExpediteur)

	mockUC.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), userID).
		DoAndReturn(func(_ interface{}, r models.SendMessageRequest, _ uuid.UUID) (*models.Message, error) {
			assert.Equal(t, destinataireID, r.DestinataireID)
			assert.Equal(t, models.MessageTypeTexte, r.Contenu.Type)
			return &models.Message{ID: uuid.New(), ConversationID: "abc123"}, nil
		})

	err := handler.SendMessage(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestListConversation_MissingAnnonceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMessageUC(ctrl)
	handler := NewMessageHandler(mockUC)

	e := echo.New()
	autreID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/messages/conversation/"+autreID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(autreID.String())
	c.Set("user_id", uuid.New())
	c.Set("user_role", models.RoleExpediteur)

	err := handler.ListConversation(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkConversationRead_ReportsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMessageUC(ctrl)
	handler := NewMessageHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	autreID := uuid.New()
	annonceID := uuid.New()
	req := httptest.NewRequest(http.MethodPut,
		"/messages/conversation/"+autreID.String()+"/lu?annonceId="+annonceID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(autreID.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleConducteur)

	mockUC.EXPECT().
		MarkConversationRead(gomock.Any(), userID, autreID, annonceID).
		Return(int64(2), nil)

	err := handler.MarkConversationRead(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["messagesLus"])
}

func TestDeleteMessage_ConflictIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMessageUC(ctrl)
	handler := NewMessageHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/messages/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleExpediteur)

	mockUC.EXPECT().
		DeleteMessage(gomock.Any(), id, userID).
		Return(models.ErrConflict)

	err := handler.DeleteMessage(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

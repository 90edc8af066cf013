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
	"github.com/transportconnect/transportconnect/services/evaluation/mocks"
)

func TestCreateEvaluation_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEvaluationUC(ctrl)
	handler := NewEvaluationHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	demandeID := uuid.New()
	body := `{"demandeId":"` + demandeID.String() + `","criteres":{"ponctualite":5,"communication":4,"professionnalisme":4},"recommande":true}`
	req := httptest.NewRequest(http.MethodPost, "/evaluations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleExpediteur)

	mockUC.EXPECT().
		CreateEvaluation(gomock.Any(), gomock.Any(), userID).
		DoAndReturn(func(_ interface{}, r models.CreateEvaluationRequest, _ uuid.UUID) (*models.Evaluation, error) {
			assert.Equal(t, demandeID, r.DemandeID)
			assert.True(t, r.Recommande)
			return &models.Evaluation{ID: uuid.New(), DemandeID: demandeID, Note: 4.5}, nil
		})

	err := handler.CreateEvaluation(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 4.5, data["note"])
}

func TestCreateEvaluation_DuplicateIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEvaluationUC(ctrl)
	handler := NewEvaluationHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	body := `{"demandeId":"` + uuid.New().String() + `","criteres":{"ponctualite":5,"communication":5,"professionnalisme":5}}`
	req := httptest.NewRequest(http.MethodPost, "/evaluations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleConducteur)

	mockUC.EXPECT().
		CreateEvaluation(gomock.Any(), gomock.Any(), userID).
		Return(nil, models.ErrConflict)

	err := handler.CreateEvaluation(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
}

func TestReplyEvaluation_ForbiddenForStranger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEvaluationUC(ctrl)
	handler := NewEvaluationHandler(mockUC)

	e := echo.New()
	id := uuid.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodPost,
		"/evaluations/"+id.String()+"/reponse",
		strings.NewReader(`{"texte":"Merci"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleConducteur)

	mockUC.EXPECT().
		ReplyEvaluation(gomock.Any(), id, userID, "Merci").
		Return(models.ErrForbidden)

	err := handler.ReplyEvaluation(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListForUser_BadUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEvaluationUC(ctrl)
	handler := NewEvaluationHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/evaluations/utilisateur/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("not-a-uuid")
	c.Set("user_id", uuid.New())
	c.Set("user_role", models.RoleExpediteur)

	err := handler.ListForUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModerateEvaluation_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEvaluationUC(ctrl)
	handler := NewEvaluationHandler(mockUC)

	e := echo.New()
	id := uuid.New()
	adminID := uuid.New()
	req := httptest.NewRequest(http.MethodPut,
		"/evaluations/"+id.String()+"/moderation",
		strings.NewReader(`{"action":"rejeter"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set("user_id", adminID)
	c.Set("user_role", models.RoleAdmin)

	mockUC.EXPECT().
		ModerateEvaluation(gomock.Any(), id, adminID, "rejeter").
		Return(nil)

	err := handler.ModerateEvaluation(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

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
	"github.com/transportconnect/transportconnect/services/demande/mocks"
)

func TestRespondDemande_AcceptPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDemandeUC(ctrl)
	handler := NewDemandeHandler(mockUC)

	e := echo.New()
	demandeID := uuid.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodPut,
		"/demandes/"+demandeID.String()+"/reponse",
		strings.NewReader(`{"decision":"accepter","prixAccepte":35.5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(demandeID.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleConducteur)

	mockUC.EXPECT().
		RespondDemande(gomock.Any(), demandeID, userID, "accepter", gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, _ string, prix *float64) (*models.Demande, error) {
			assert.NotNil(t, prix)
			assert.Equal(t, 35.5, *prix)
			return &models.Demande{ID: demandeID, Statut: models.DemandeStatutAcceptee}, nil
		})

	err := handler.RespondDemande(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestRespondDemande_ConflictIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDemandeUC(ctrl)
	handler := NewDemandeHandler(mockUC)

	e := echo.New()
	demandeID := uuid.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodPut,
		"/demandes/"+demandeID.String()+"/reponse",
		strings.NewReader(`{"decision":"refuser"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(demandeID.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleConducteur)

	mockUC.EXPECT().
		RespondDemande(gomock.Any(), demandeID, userID, "refuser", gomock.Nil()).
		Return(nil, models.ErrConflict)

	err := handler.RespondDemande(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackByNumero_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDemandeUC(ctrl)
	handler := NewDemandeHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/demandes/suivi/TC-ABC-DEFG", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("numeroSuivi")
	c.SetParamValues("TC-ABC-DEFG")

	mockUC.EXPECT().
		TrackByNumero(gomock.Any(), "TC-ABC-DEFG").
		Return(&models.SuiviPublic{NumeroSuivi: "TC-ABC-DEFG", Statut: models.DemandeStatutTransit}, nil)

	err := handler.TrackByNumero(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "TC-ABC-DEFG", data["numeroSuivi"])
}

func TestGetDemande_ForbiddenForStranger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDemandeUC(ctrl)
	handler := NewDemandeHandler(mockUC)

	e := echo.New()
	demandeID := uuid.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/demandes/"+demandeID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(demandeID.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleExpediteur)

	mockUC.EXPECT().
		GetDemande(gomock.Any(), demandeID, userID, models.RoleExpediteur).
		Return(nil, models.ErrForbidden)

	err := handler.GetDemande(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

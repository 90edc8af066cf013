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
	"github.com/transportconnect/transportconnect/services/annonce/mocks"
)

func TestCreateAnnonce_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAnnonceUC(ctrl)
	handler := NewAnnonceHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	requestBody := `{
		"villeDepart": "Paris",
		"villeDestination": "Lyon",
		"dateDepart": "2030-06-01T08:00:00Z",
		"longueur": 2,
		"largeur": 1.5,
		"hauteur": 1,
		"poidsMax": 500,
		"tarificationType": "per_kg",
		"tarificationMontant": 2.5
	}`
	req := httptest.NewRequest(http.MethodPost, "/annonces", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleConducteur)

	mockUC.EXPECT().
		CreateAnnonce(gomock.Any(), gomock.Any(), userID).
		DoAndReturn(func(_ interface{}, a *models.Annonce, _ uuid.UUID) error {
			assert.Equal(t, "Paris", a.VilleDepart)
			assert.Equal(t, "Lyon", a.VilleDestination)
			a.ID = uuid.New()
			return nil
		})

	err := handler.CreateAnnonce(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Paris", data["villeDepart"])
}

func TestCreateAnnonce_ValidationErrorIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAnnonceUC(ctrl)
	handler := NewAnnonceHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/annonces", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleConducteur)

	mockUC.EXPECT().
		CreateAnnonce(gomock.Any(), gomock.Any(), userID).
		Return(models.ErrValidation)

	err := handler.CreateAnnonce(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.NotEmpty(t, response["error"])
}

func TestGetAnnonce_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAnnonceUC(ctrl)
	handler := NewAnnonceHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/annonces/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.GetAnnonce(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAnnonce_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAnnonceUC(ctrl)
	handler := NewAnnonceHandler(mockUC)

	e := echo.New()
	annonceID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/annonces/"+annonceID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(annonceID.String())

	mockUC.EXPECT().
		GetAnnonce(gomock.Any(), annonceID, uuid.Nil).
		Return(nil, models.ErrNotFound)

	err := handler.GetAnnonce(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAnnonces_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAnnonceUC(ctrl)
	handler := NewAnnonceHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/annonces?villeDepart=Paris&prixMax=10&typesMarchandise=fragile,alimentaire&page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		ListAnnonces(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filter models.AnnonceFilter, p models.Pagination) (*models.Page, error) {
			assert.Equal(t, "Paris", filter.VilleDepart)
			assert.NotNil(t, filter.PrixMax)
			assert.Equal(t, 10.0, *filter.PrixMax)
			assert.Equal(t, []string{"fragile", "alimentaire"}, filter.TypesMarchandise)
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, 5, p.Limit)
			return models.NewPage([]*models.Annonce{}, 0, p), nil
		})

	err := handler.ListAnnonces(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListAnnonces_BadPriceFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAnnonceUC(ctrl)
	handler := NewAnnonceHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/annonces?prixMax=cher", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListAnnonces(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAnnonce_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAnnonceUC(ctrl)
	handler := NewAnnonceHandler(mockUC)

	e := echo.New()
	annonceID := uuid.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/annonces/"+annonceID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(annonceID.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleConducteur)

	mockUC.EXPECT().
		DeleteAnnonce(gomock.Any(), annonceID, userID, models.RoleConducteur).
		Return(models.ErrForbidden)

	err := handler.DeleteAnnonce(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReplyCommentaire_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAnnonceUC(ctrl)
	handler := NewAnnonceHandler(mockUC)

	e := echo.New()
	annonceID := uuid.New()
	commentaireID := uuid.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodPost,
		"/annonces/"+annonceID.String()+"/commentaires/"+commentaireID.String()+"/reponse",
		strings.NewReader(`{"texte":"merci"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "commentaireId")
	c.SetParamValues(annonceID.String(), commentaireID.String())
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleConducteur)

	mockUC.EXPECT().
		ReplyCommentaire(gomock.Any(), annonceID, commentaireID, userID, "merci").
		Return(models.ErrConflict)

	err := handler.ReplyCommentaire(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

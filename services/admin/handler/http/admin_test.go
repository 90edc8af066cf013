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
	"github.com/transportconnect/transportconnect/services/admin/mocks"
)

func TestGetDashboard_WrapsStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	handler := NewAdminHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New())
	c.Set("user_role", models.RoleAdmin)

	mockUC.EXPECT().
		GetDashboard(gomock.Any()).
		Return(&models.DashboardStats{TotalUtilisateurs: 43}, nil)

	err := handler.GetDashboard(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(43), data["totalUtilisateurs"])
}

func TestSetUserStatus_ConflictIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	handler := NewAdminHandler(mockUC)

	e := echo.New()
	adminID := uuid.New()
	userID := uuid.New()
	body := `{"statut":"suspendu","motif":"spam"}`
	req := httptest.NewRequest(http.MethodPut, "/admin/utilisateurs/"+userID.String()+"/statut",
		strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())
	c.Set("user_id", adminID)
	c.Set("user_role", models.RoleAdmin)

	mockUC.EXPECT().
		SetUserStatus(gomock.Any(), userID, adminID, models.UserStatutSuspendu, "spam").
		Return(models.ErrConflict)

	err := handler.SetUserStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
}

func TestGrantBadge_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	handler := NewAdminHandler(mockUC)

	e := echo.New()
	adminID := uuid.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/utilisateurs/"+userID.String()+"/badges",
		strings.NewReader(`{"badge":"verifie"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())
	c.Set("user_id", adminID)
	c.Set("user_role", models.RoleAdmin)

	mockUC.EXPECT().
		GrantBadge(gomock.Any(), userID, adminID, "verifie").
		Return(nil)

	err := handler.GrantBadge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestExport_CSVAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	handler := NewAdminHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/export/demandes?format=csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("dataset")
	c.SetParamValues("demandes")
	c.Set("user_id", uuid.New())
	c.Set("user_role", models.RoleAdmin)

	mockUC.EXPECT().
		Export(gomock.Any(), "demandes", "csv").
		Return([]byte("id,statut\n"), "text/csv", nil)

	err := handler.Export(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Equal(t, `attachment; filename="demandes.csv"`,
		rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "id,statut\n", rec.Body.String())
}

func TestExport_BadDatasetIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAdminUC(ctrl)
	handler := NewAdminHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/export/paiements", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("dataset")
	c.SetParamValues("paiements")
	c.Set("user_id", uuid.New())
	c.Set("user_role", models.RoleAdmin)

	mockUC.EXPECT().
		Export(gomock.Any(), "paiements", "").
		Return(nil, "", models.ErrValidation)

	err := handler.Export(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

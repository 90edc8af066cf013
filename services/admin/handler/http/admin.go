package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/internal/utils"
)

// GetDashboard handles GET /admin/dashboard
func (h *AdminHandler) GetDashboard(c echo.Context) error {
	stats, err := h.adminUC.GetDashboard(c.Request().Context())
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// ListUsers handles GET /admin/utilisateurs
func (h *AdminHandler) ListUsers(c echo.Context) error {
	filter := models.UserFilter{
		Role:      c.QueryParam("role"),
		Statut:    c.QueryParam("statut"),
		Recherche: c.QueryParam("recherche"),
	}

	page, err := h.adminUC.ListUsers(c.Request().Context(), filter, utils.ParsePagination(c))
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", page)
}

// GetModerationHistory handles GET /admin/utilisateurs/:id/moderation
func (h *AdminHandler) GetModerationHistory(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	entries, err := h.adminUC.GetModerationHistory(c.Request().Context(), userID)
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// SetUserStatus handles PUT /admin/utilisateurs/:id/statut
func (h *AdminHandler) SetUserStatus(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	var req models.SetUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.adminUC.SetUserStatus(c.Request().Context(), userID, adminID, req.Statut, req.Motif); err != nil {
		return utils.FromError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Statut du compte mis à jour", nil)
}

// GrantBadge handles POST /admin/utilisateurs/:id/badges
func (h *AdminHandler) GrantBadge(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	var req models.BadgeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.adminUC.GrantBadge(c.Request().Context(), userID, adminID, req.Badge); err != nil {
		return utils.FromError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Badge attribué", nil)
}

// RevokeBadge handles DELETE /admin/utilisateurs/:id/badges/:badge
func (h *AdminHandler) RevokeBadge(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	if err := h.adminUC.RevokeBadge(c.Request().Context(), userID, adminID, c.Param("badge")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Badge retiré", nil)
}

// SetAnnonceStatus handles PUT /admin/annonces/:id/statut
func (h *AdminHandler) SetAnnonceStatus(c echo.Context) error {
	annonceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid listing id")
	}

	var req models.SetAnnonceStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.adminUC.SetAnnonceStatus(c.Request().Context(), annonceID, req.Statut); err != nil {
		return utils.FromError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Statut de l'annonce mis à jour", nil)
}

// ListLitiges handles GET /admin/litiges
func (h *AdminHandler) ListLitiges(c echo.Context) error {
	page, err := h.adminUC.ListLitiges(c.Request().Context(), utils.ParsePagination(c))
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", page)
}

// Export handles GET /admin/export/:dataset
func (h *AdminHandler) Export(c echo.Context) error {
	dataset := c.Param("dataset")
	format := c.QueryParam("format")

	data, contentType, err := h.adminUC.Export(c.Request().Context(), dataset, format)
	if err != nil {
		return utils.FromError(c, err)
	}

	extension := "json"
	if contentType == "text/csv" {
		extension = "csv"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.%s"`, dataset, extension))
	return c.Blob(http.StatusOK, contentType, data)
}

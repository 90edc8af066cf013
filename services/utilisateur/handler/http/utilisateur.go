package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/internal/utils"
)

// Register handles POST /auth/register
func (h *UtilisateurHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	auth, err := h.utilisateurUC.Register(c.Request().Context(), req)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Compte créé", auth)
}

// Login handles POST /auth/login
func (h *UtilisateurHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	auth, err := h.utilisateurUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Connexion réussie", auth)
}

// GetProfile handles GET /utilisateurs/me
func (h *UtilisateurHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	u, err := h.utilisateurUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", u)
}

// GetPublicProfile handles GET /utilisateurs/:id/profil
func (h *UtilisateurHandler) GetPublicProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	p, err := h.utilisateurUC.GetPublicProfile(c.Request().Context(), id)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", p)
}

// UpdateProfile handles PUT /utilisateurs/me
func (h *UtilisateurHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	u, err := h.utilisateurUC.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profil mis à jour", u)
}

// ChangePassword handles PUT /utilisateurs/me/mot-de-passe
func (h *UtilisateurHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.utilisateurUC.ChangePassword(c.Request().Context(), userID, req); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Mot de passe modifié", nil)
}

// DeleteAccount handles DELETE /utilisateurs/me
func (h *UtilisateurHandler) DeleteAccount(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.utilisateurUC.DeleteAccount(c.Request().Context(), userID); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Compte supprimé", nil)
}

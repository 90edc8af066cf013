package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/internal/utils"
)

// CreateDemande handles POST /demandes
func (h *DemandeHandler) CreateDemande(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateDemandeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	d, err := h.demandeUC.CreateDemande(c.Request().Context(), req, userID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Demande créée", d)
}

// ListDemandes handles GET /demandes
func (h *DemandeHandler) ListDemandes(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	page, err := h.demandeUC.ListDemandes(c.Request().Context(), userID,
		middleware.UserRole(c), c.QueryParam("statut"), utils.ParsePagination(c))
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", page)
}

// GetDemande handles GET /demandes/:id
func (h *DemandeHandler) GetDemande(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	d, err := h.demandeUC.GetDemande(c.Request().Context(), id, userID, middleware.UserRole(c))
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", d)
}

type respondRequest struct {
	Decision    string   `json:"decision"`
	PrixAccepte *float64 `json:"prixAccepte,omitempty"`
}

// RespondDemande handles PUT /demandes/:id/reponse
func (h *DemandeHandler) RespondDemande(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	d, err := h.demandeUC.RespondDemande(c.Request().Context(), id, userID, req.Decision, req.PrixAccepte)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Réponse enregistrée", d)
}

type statutRequest struct {
	Statut string  `json:"statut"`
	Note   *string `json:"note,omitempty"`
}

// UpdateStatut handles PUT /demandes/:id/statut
func (h *DemandeHandler) UpdateStatut(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	var req statutRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	d, err := h.demandeUC.UpdateStatut(c.Request().Context(), id, userID, req.Statut, req.Note)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Statut mis à jour", d)
}

// CancelDemande handles PUT /demandes/:id/annuler
func (h *DemandeHandler) CancelDemande(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	if err := h.demandeUC.CancelDemande(c.Request().Context(), id, userID); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Demande annulée", nil)
}

type litigeRequest struct {
	Motif string `json:"motif"`
}

// ReportLitige handles POST /demandes/:id/litige
func (h *DemandeHandler) ReportLitige(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	var req litigeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.demandeUC.ReportLitige(c.Request().Context(), id, userID, req.Motif); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Litige signalé", nil)
}

type resolutionRequest struct {
	Decision   string `json:"decision"`
	Resolution string `json:"resolution"`
}

// ResolveLitige handles PUT /admin/demandes/:id/resoudre-litige
func (h *DemandeHandler) ResolveLitige(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	var req resolutionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	d, err := h.demandeUC.ResolveLitige(c.Request().Context(), id, userID, req.Decision, req.Resolution)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Litige résolu", d)
}

// UpdatePosition handles PUT /demandes/:id/position
func (h *DemandeHandler) UpdatePosition(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	var pos models.Position
	if err := c.Bind(&pos); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.demandeUC.UpdatePosition(c.Request().Context(), id, userID, pos); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position mise à jour", nil)
}

type etapeRequest struct {
	Localisation string  `json:"localisation"`
	Statut       string  `json:"statut"`
	Note         *string `json:"note,omitempty"`
}

// AddEtape handles POST /demandes/:id/etapes
func (h *DemandeHandler) AddEtape(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	var req etapeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.demandeUC.AddEtape(c.Request().Context(), id, userID, req.Localisation, req.Statut, req.Note); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Étape ajoutée", nil)
}

// TrackByNumero handles GET /demandes/suivi/:numeroSuivi (public)
func (h *DemandeHandler) TrackByNumero(c echo.Context) error {
	suivi, err := h.demandeUC.TrackByNumero(c.Request().Context(), c.Param("numeroSuivi"))
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", suivi)
}

package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/internal/utils"
)

// CreateAnnonce handles POST /annonces
func (h *AnnonceHandler) CreateAnnonce(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var a models.Annonce
	if err := c.Bind(&a); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.annonceUC.CreateAnnonce(c.Request().Context(), &a, userID); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Annonce créée", a)
}

// ListAnnonces handles GET /annonces
func (h *AnnonceHandler) ListAnnonces(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	page, err := h.annonceUC.ListAnnonces(c.Request().Context(), filter, utils.ParsePagination(c))
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", page)
}

// GetAnnonce handles GET /annonces/:id
func (h *AnnonceHandler) GetAnnonce(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid annonce id")
	}

	viewerID, _ := middleware.UserID(c)

	a, err := h.annonceUC.GetAnnonce(c.Request().Context(), id, viewerID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", a)
}

// UpdateAnnonce handles PUT /annonces/:id
func (h *AnnonceHandler) UpdateAnnonce(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid annonce id")
	}

	var patch models.UpdateAnnonceRequest
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	a, err := h.annonceUC.UpdateAnnonce(c.Request().Context(), id, patch, userID, middleware.UserRole(c))
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Annonce mise à jour", a)
}

// DeleteAnnonce handles DELETE /annonces/:id
func (h *AnnonceHandler) DeleteAnnonce(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid annonce id")
	}

	if err := h.annonceUC.DeleteAnnonce(c.Request().Context(), id, userID, middleware.UserRole(c)); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Annonce supprimée", nil)
}

type commentaireRequest struct {
	Texte string `json:"texte"`
}

// AddCommentaire handles POST /annonces/:id/commentaires
func (h *AnnonceHandler) AddCommentaire(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid annonce id")
	}

	var req commentaireRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	commentaire, err := h.annonceUC.AddCommentaire(c.Request().Context(), id, userID, req.Texte)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Commentaire ajouté", commentaire)
}

// ReplyCommentaire handles POST /annonces/:id/commentaires/:commentaireId/reponse
func (h *AnnonceHandler) ReplyCommentaire(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	annonceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid annonce id")
	}
	commentaireID, err := uuid.Parse(c.Param("commentaireId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid commentaire id")
	}

	var req commentaireRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.annonceUC.ReplyCommentaire(c.Request().Context(), annonceID, commentaireID, userID, req.Texte); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Réponse ajoutée", nil)
}

func parseFilter(c echo.Context) (models.AnnonceFilter, error) {
	filter := models.AnnonceFilter{
		VilleDepart:      c.QueryParam("villeDepart"),
		VilleDestination: c.QueryParam("villeDestination"),
		Statut:           c.QueryParam("statut"),
	}

	if v := c.QueryParam("dateMin"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid dateMin")
		}
		filter.DateMin = &t
	}
	if v := c.QueryParam("dateMax"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid dateMax")
		}
		filter.DateMax = &t
	}
	if v := c.QueryParam("prixMin"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, errors.New("invalid prixMin")
		}
		filter.PrixMin = &f
	}
	if v := c.QueryParam("prixMax"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, errors.New("invalid prixMax")
		}
		filter.PrixMax = &f
	}
	if v := c.QueryParam("typesMarchandise"); v != "" {
		filter.TypesMarchandise = strings.Split(v, ",")
	}
	if v := c.QueryParam("conducteurId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid conducteurId")
		}
		filter.ConducteurID = &id
	}

	return filter, nil
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/internal/utils"
)

// CreateEvaluation handles POST /evaluations
func (h *EvaluationHandler) CreateEvaluation(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateEvaluationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	e, err := h.evaluationUC.CreateEvaluation(c.Request().Context(), req, userID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Évaluation créée", e)
}

// ListForUser handles GET /evaluations/utilisateur/:userId
func (h *EvaluationHandler) ListForUser(c echo.Context) error {
	callerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	page, err := h.evaluationUC.ListForUser(c.Request().Context(), userID, callerID,
		middleware.UserRole(c), utils.ParsePagination(c))
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", page)
}

type reponseRequest struct {
	Texte string `json:"texte"`
}

// ReplyEvaluation handles POST /evaluations/:id/reponse
func (h *EvaluationHandler) ReplyEvaluation(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid evaluation id")
	}

	var req reponseRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.evaluationUC.ReplyEvaluation(c.Request().Context(), id, userID, req.Texte); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Réponse ajoutée", nil)
}

// MarkHelpful handles POST /evaluations/:id/utile
func (h *EvaluationHandler) MarkHelpful(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid evaluation id")
	}

	if err := h.evaluationUC.MarkHelpful(c.Request().Context(), id, userID); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vote enregistré", nil)
}

type signalementRequest struct {
	Motif string `json:"motif"`
}

// ReportEvaluation handles POST /evaluations/:id/signaler
func (h *EvaluationHandler) ReportEvaluation(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid evaluation id")
	}

	var req signalementRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.evaluationUC.ReportEvaluation(c.Request().Context(), id, userID, req.Motif); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Signalement enregistré", nil)
}

type moderationRequest struct {
	Action string `json:"action"`
}

// ModerateEvaluation handles PUT /evaluations/:id/moderation
func (h *EvaluationHandler) ModerateEvaluation(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid evaluation id")
	}

	var req moderationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.evaluationUC.ModerateEvaluation(c.Request().Context(), id, userID, req.Action); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Modération appliquée", nil)
}

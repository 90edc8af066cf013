package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/internal/utils"
)

// SendMessage handles POST /messages
func (h *MessageHandler) SendMessage(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	m, err := h.messageUC.SendMessage(c.Request().Context(), req, userID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message envoyé", m)
}

// ListConversations handles GET /messages/conversations
func (h *MessageHandler) ListConversations(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	summaries, err := h.messageUC.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", summaries)
}

// ListConversation handles GET /messages/conversation/:userId?annonceId=...
func (h *MessageHandler) ListConversation(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	autreID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}
	annonceID, err := uuid.Parse(c.QueryParam("annonceId"))
	if err != nil {
		return utils.BadRequestResponse(c, "annonceId query parameter is required")
	}

	page, err := h.messageUC.ListConversation(c.Request().Context(), userID, autreID, annonceID, utils.ParsePagination(c))
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", page)
}

// MarkConversationRead handles PUT /messages/conversation/:userId/lu
func (h *MessageHandler) MarkConversationRead(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	autreID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}
	annonceID, err := uuid.Parse(c.QueryParam("annonceId"))
	if err != nil {
		return utils.BadRequestResponse(c, "annonceId query parameter is required")
	}

	marques, err := h.messageUC.MarkConversationRead(c.Request().Context(), userID, autreID, annonceID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Conversation lue", map[string]int64{"messagesLus": marques})
}

type reactionRequest struct {
	Emoji string `json:"emoji"`
}

// React handles POST /messages/:id/reaction
func (h *MessageHandler) React(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid message id")
	}

	var req reactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.messageUC.React(c.Request().Context(), id, userID, req.Emoji); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Réaction enregistrée", nil)
}

// DeleteMessage handles DELETE /messages/:id
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid message id")
	}

	if err := h.messageUC.DeleteMessage(c.Request().Context(), id, userID); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Message supprimé", nil)
}

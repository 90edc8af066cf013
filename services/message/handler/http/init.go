package http

import (
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/message"
)

// MessageHandler handles the chat HTTP routes
type MessageHandler struct {
	messageUC message.MessageUC
}

// NewMessageHandler creates a new chat HTTP handler
func NewMessageHandler(messageUC message.MessageUC) *MessageHandler {
	return &MessageHandler{messageUC: messageUC}
}

// RegisterRoutes wires the chat routes onto the API group
func (h *MessageHandler) RegisterRoutes(g *echo.Group, jwtConfig models.JWTConfig) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)

	g.POST("/messages", h.SendMessage, auth)
	g.GET("/messages/conversations", h.ListConversations, auth)
	g.GET("/messages/conversation/:userId", h.ListConversation, auth)
	g.PUT("/messages/conversation/:userId/lu", h.MarkConversationRead, auth)
	g.POST("/messages/:id/reaction", h.React, auth)
	g.DELETE("/messages/:id", h.DeleteMessage, auth)
}

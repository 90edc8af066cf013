package websocket

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	wspkg "github.com/transportconnect/transportconnect/internal/pkg/websocket"
	"github.com/transportconnect/transportconnect/services/message"
)

// Error codes sent in error frames
const (
	errorInvalidFormat = "INVALID_FORMAT"
	errorSendFailed    = "SEND_FAILED"
)

// MessageWSHandler drives the chat WebSocket endpoint
type MessageWSHandler struct {
	manager   *wspkg.Manager
	messageUC message.MessageUC
}

// NewMessageWSHandler creates the chat WebSocket handler
func NewMessageWSHandler(manager *wspkg.Manager, messageUC message.MessageUC) *MessageWSHandler {
	return &MessageWSHandler{manager: manager, messageUC: messageUC}
}

// HandleConnection upgrades the request and runs the client message loop
func (h *MessageWSHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.messageLoop)
}

func (h *MessageWSHandler) messageLoop(client *wspkg.Client) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return err
		}

		if err := h.handleFrame(client, msg); err != nil {
			logger.Warn("Error handling WebSocket frame",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

func (h *MessageWSHandler) handleFrame(client *wspkg.Client, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return h.manager.SendErrorMessage(client, errorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case models.EventJoinRoom:
		return h.handleJoinRoom(client, wsMsg.Data)
	case models.EventLeaveRoom:
		return h.handleLeaveRoom(client, wsMsg.Data)
	case models.EventSendMessage:
		return h.handleSendMessage(client, wsMsg.Data)
	default:
		return h.manager.SendErrorMessage(client, errorInvalidFormat, "Unknown event type")
	}
}

type roomRequest struct {
	ConversationID string `json:"conversationId"`
}

func (h *MessageWSHandler) handleJoinRoom(client *wspkg.Client, data json.RawMessage) error {
	var req roomRequest
	if err := json.Unmarshal(data, &req); err != nil || req.ConversationID == "" {
		return h.manager.SendErrorMessage(client, errorInvalidFormat, "Invalid join-room payload")
	}

	h.manager.JoinRoom(req.ConversationID, client.UserID)
	return nil
}

func (h *MessageWSHandler) handleLeaveRoom(client *wspkg.Client, data json.RawMessage) error {
	var req roomRequest
	if err := json.Unmarshal(data, &req); err != nil || req.ConversationID == "" {
		return h.manager.SendErrorMessage(client, errorInvalidFormat, "Invalid leave-room payload")
	}

	h.manager.LeaveRoom(req.ConversationID, client.UserID)
	return nil
}

func (h *MessageWSHandler) handleSendMessage(client *wspkg.Client, data json.RawMessage) error {
	var req models.SendMessageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.manager.SendErrorMessage(client, errorInvalidFormat, "Invalid send-message payload")
	}

	userID, err := uuid.Parse(client.UserID)
	if err != nil {
		return h.manager.SendErrorMessage(client, errorInvalidFormat, "Invalid user id")
	}

	m, err := h.messageUC.SendMessage(context.Background(), req, userID)
	if err != nil {
		return h.manager.SendErrorMessage(client, errorSendFailed, err.Error())
	}

	// echo the persisted message back so the sender gets the id and timestamp
	return client.Send(models.EventReceiveMessage, m)
}

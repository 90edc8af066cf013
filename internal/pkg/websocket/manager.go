package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/transportconnect/transportconnect/internal/pkg/jwt"
	"github.com/transportconnect/transportconnect/internal/pkg/database"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

const presenceTTL = 24 * time.Hour

// Client is one authenticated WebSocket connection
type Client struct {
	UserID string
	Role   string
	Conn   *websocket.Conn

	mu sync.Mutex
}

// Send writes an event frame to the client. Safe for concurrent use.
func (c *Client) Send(event string, data interface{}) error {
	if c.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// Manager manages WebSocket connections, conversation rooms and presence.
// Presence is mirrored to Redis so a horizontally scaled deployment can see
// who is online regardless of which node holds the socket.
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	rooms    map[string]map[string]*Client
	cfg      models.JWTConfig
	redis    *database.RedisClient
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig, redisClient *database.RedisClient) *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
		cfg:     jwtConfig,
		redis:   redisClient,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	m.addClient(c.Request().Context(), client)
	defer m.removeClient(c.Request().Context(), client.UserID)

	return handleClient(client)
}

// authenticateClient authenticates the WebSocket client using JWT, accepting
// the token either as a Bearer header or a query parameter (browser clients
// cannot set headers on the upgrade request).
func (m *Manager) authenticateClient(c echo.Context) (*Client, error) {
	token := c.QueryParam("token")
	if token == "" {
		authHeader := c.Request().Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication token is required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("WebSocket token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	userID, _ := (*claims)["user_id"].(string)
	role, _ := (*claims)["role"].(string)
	if userID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token: missing user_id claim")
	}

	return &Client{UserID: userID, Role: role}, nil
}

// addClient registers a client and records presence
func (m *Manager) addClient(ctx context.Context, client *Client) {
	m.Lock()
	m.clients[client.UserID] = client
	m.Unlock()

	if m.redis != nil {
		if err := m.redis.Set(ctx, "presence:"+client.UserID, time.Now().Unix(), presenceTTL); err != nil {
			logger.Warn("Failed to record presence", logger.String("user_id", client.UserID), logger.Err(err))
		}
	}
}

// removeClient purges a client from all rooms and clears presence
func (m *Manager) removeClient(ctx context.Context, userID string) {
	m.Lock()
	delete(m.clients, userID)
	for roomID, members := range m.rooms {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, roomID)
		}
	}
	m.Unlock()

	if m.redis != nil {
		if err := m.redis.Delete(ctx, "presence:"+userID); err != nil {
			logger.Warn("Failed to clear presence", logger.String("user_id", userID), logger.Err(err))
		}
	}
}

// GetClient returns a connected client by user id
func (m *Manager) GetClient(userID string) (*Client, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// JoinRoom adds a client to a conversation room
func (m *Manager) JoinRoom(roomID, userID string) {
	m.Lock()
	defer m.Unlock()

	client, exists := m.clients[userID]
	if !exists {
		return
	}
	if m.rooms[roomID] == nil {
		m.rooms[roomID] = make(map[string]*Client)
	}
	m.rooms[roomID][userID] = client
}

// LeaveRoom removes a client from a conversation room
func (m *Manager) LeaveRoom(roomID, userID string) {
	m.Lock()
	defer m.Unlock()

	members, exists := m.rooms[roomID]
	if !exists {
		return
	}
	delete(members, userID)
	if len(members) == 0 {
		delete(m.rooms, roomID)
	}
}

// IsInRoom reports whether a user is currently joined to a room
func (m *Manager) IsInRoom(roomID, userID string) bool {
	m.RLock()
	defer m.RUnlock()

	members, exists := m.rooms[roomID]
	if !exists {
		return false
	}
	_, joined := members[userID]
	return joined
}

// BroadcastToRoom sends an event to every member of a room except the sender.
// Delivery is best-effort: members without a live connection are skipped.
func (m *Manager) BroadcastToRoom(roomID, senderID, event string, data interface{}) {
	m.RLock()
	members := make([]*Client, 0, len(m.rooms[roomID]))
	for userID, client := range m.rooms[roomID] {
		if userID != senderID {
			members = append(members, client)
		}
	}
	m.RUnlock()

	for _, client := range members {
		if err := client.Send(event, data); err != nil {
			logger.Warn("Error broadcasting to room member",
				logger.String("room_id", roomID),
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// NotifyClient sends a notification event to a specific connected user.
// A miss (user offline) is not an error; the client will catch up on fetch.
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := client.Send(event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}

// SendErrorMessage sends an error frame to a client
func (m *Manager) SendErrorMessage(client *Client, code string, message string) error {
	return client.Send(models.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

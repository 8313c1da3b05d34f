package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"wordchain/internal/app"
)

// Handler upgrades HTTP requests to WebSocket connections
type Handler struct {
	hub      *app.RoomHub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *app.RoomHub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins; tighten per deployment if needed
				return true
			},
		},
		logger: logger,
	}
}

// Handle upgrades the connection, assigns it a fresh connection id and runs
// the client pumps until the peer goes away
func (h *Handler) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Str("ip", c.ClientIP()).Msg("websocket upgrade failed")
		return
	}

	connID := uuid.New().String()
	client := NewClient(conn, h.hub, connID, h.logger)
	h.hub.RegisterClient(connID, client)

	h.logger.Info().Str("connId", connID).Str("ip", c.ClientIP()).Msg("websocket connected")

	client.Run()
}

package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"wordchain/internal/app"
	"wordchain/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client represents a WebSocket client connection
type Client struct {
	conn    *websocket.Conn
	hub     *app.RoomHub
	connID  string
	send    chan []byte
	done    chan struct{}
	limiter *rate.Limiter
	logger  zerolog.Logger
	mu      sync.Mutex
	closed  bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, hub *app.RoomHub, connID string, logger zerolog.Logger) *Client {
	return &Client{
		conn:    conn,
		hub:     hub,
		connID:  connID,
		send:    make(chan []byte, sendBufferSize),
		done:    make(chan struct{}),
		limiter: rate.NewLimiter(5, 10),
		logger:  logger,
	}
}

// ConnID returns the connection id for this client
func (c *Client) ConnID() string {
	return c.connID
}

// Send implements app.ClientConnection
func (c *Client) Send(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		// Buffer full, message dropped
		c.logger.Warn().Str("connId", c.connID).Msg("send buffer full, message dropped")
		return nil
	}
}

// Close implements app.ClientConnection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection into the hub
func (c *Client) readPump() {
	defer func() {
		c.hub.Disconnect(c.connID)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug().Err(err).Str("connId", c.connID).Msg("websocket read error")
			}
			break
		}

		if !c.limiter.Allow() {
			c.sendError("Slow down")
			continue
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage dispatches an inbound frame to the hub
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError("Invalid message format")
		return
	}

	switch msg.Type {
	case MsgSetUsername:
		c.hub.SetUsername(c.connID, stringPayload(msg.Payload, "username"))
	case MsgCreateRoom:
		c.hub.CreateRoom(c.connID, stringPayload(msg.Payload, "name"))
	case MsgJoinRoom:
		c.hub.JoinRoom(c.connID, stringPayload(msg.Payload, "roomId"))
	case MsgToggleReady:
		c.hub.ToggleReady(c.connID, stringPayload(msg.Payload, "roomId"))
	case MsgStartGame:
		c.hub.StartGame(c.connID, stringPayload(msg.Payload, "roomId"))
	case MsgSubmitWord:
		var payload SubmitWordPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError("Invalid payload")
			return
		}
		c.hub.SubmitWord(context.Background(), c.connID, payload.RoomID, payload.Word)
	case MsgSendMessage:
		var payload SendMessagePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError("Invalid payload")
			return
		}
		c.hub.SendMessage(c.connID, payload.RoomID, payload.Message)
	case MsgLeaveRoom:
		c.hub.LeaveRoom(c.connID, stringPayload(msg.Payload, "roomId"))
	default:
		c.sendError("Unknown message type")
	}
}

// sendError sends an error_msg event to this client only
func (c *Client) sendError(message string) {
	c.Send(domain.NewEvent(domain.EventErrorMsg, message))
}

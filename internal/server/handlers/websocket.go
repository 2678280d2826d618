// internal/server/handlers/websocket.go

package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// FeedSource delivers raw generated post events
type FeedSource interface {
	SubscribeGenerated(deliver func([]byte)) (func(), error)
}

// WebSocketClient represents a connected WebSocket client
type WebSocketClient struct {
	conn        *websocket.Conn
	send        chan []byte
	done        chan struct{}
	unsubscribe func()
	closed      bool
	mu          sync.Mutex
	closeOnce   sync.Once
	config      WebSocketConfig
	logger      logrus.FieldLogger
}

// WebSocketConfig contains configuration for WebSocket connections
type WebSocketConfig struct {
	// Time allowed to write a message to the peer
	WriteWait time.Duration

	// Time allowed to read the next pong message from the peer
	PongWait time.Duration

	// Send pings to peer with this period
	PingPeriod time.Duration

	// Maximum message size allowed from peer
	MaxMessageSize int64

	// Buffered events per client before new ones are dropped
	SendBuffer int
}

// DefaultWebSocketConfig returns the default WebSocket configuration
func DefaultWebSocketConfig() WebSocketConfig {
	return WebSocketConfig{
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		PingPeriod:     (60 * time.Second * 9) / 10,
		MaxMessageSize: 4 * 1024,
		SendBuffer:     256,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origins are enforced by the CORS middleware
		return true
	},
}

// PostFeedHandler streams generated post events to WebSocket clients
func PostFeedHandler(source FeedSource, logger logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Warn("Failed to upgrade to WebSocket")
			return
		}

		config := DefaultWebSocketConfig()
		client := &WebSocketClient{
			conn:   conn,
			send:   make(chan []byte, config.SendBuffer),
			done:   make(chan struct{}),
			config: config,
			logger: logger.WithField("remote_addr", r.RemoteAddr),
		}

		welcomeJSON, _ := json.Marshal(map[string]interface{}{
			"type": "welcome",
			"time": time.Now(),
		})
		client.send <- welcomeJSON

		go client.writePump()
		go client.readPump()

		unsubscribe, err := source.SubscribeGenerated(client.deliver)
		if err != nil {
			client.logger.WithError(err).Error("Failed to subscribe to post feed")
			client.closeConnection()
			return
		}
		client.setUnsubscribe(unsubscribe)

		client.logger.Info("New post feed connection")
	}
}

// deliver queues an event without blocking the bus. Events are dropped for
// clients that are gone or too slow.
func (c *WebSocketClient) deliver(data []byte) {
	select {
	case <-c.done:
	case c.send <- data:
	default:
		c.logger.Warn("Dropping post event for slow client")
	}
}

// readPump drains the connection so pongs and close frames are processed
func (c *WebSocketClient) readPump() {
	defer c.closeConnection()

	c.conn.SetReadLimit(c.config.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.config.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.config.PongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.WithError(err).Warn("WebSocket error")
			}
			return
		}
	}
}

// writePump pumps queued events to the WebSocket connection
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(c.config.PingPeriod)
	defer func() {
		ticker.Stop()
		c.closeConnection()
	}()

	for {
		select {
		case <-c.done:
			return

		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *WebSocketClient) setUnsubscribe(unsubscribe func()) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		unsubscribe()
		return
	}
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
}

// closeConnection closes the WebSocket connection and cleans up resources
func (c *WebSocketClient) closeConnection() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		unsubscribe := c.unsubscribe
		c.mu.Unlock()

		close(c.done)
		if unsubscribe != nil {
			unsubscribe()
		}
		c.conn.Close()
		c.logger.Info("Post feed connection closed")
	})
}

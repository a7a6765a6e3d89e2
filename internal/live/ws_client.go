// Package live serves the category-suggestion socket: the browser streams
// description drafts while the student types and receives a suggested
// category once the text has settled.
package live

import (
	"complaintbox/backend/internal/analysis"
	"complaintbox/backend/internal/models"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
	sendBuffer     = 8
)

// SuggestionClient is one open suggestion socket.
type SuggestionClient struct {
	Conn *websocket.Conn
	Send chan models.SuggestionEvent

	debouncer *analysis.Debouncer
	done      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// NewSuggestionClient wires conn to a debouncer over suggester.
func NewSuggestionClient(conn *websocket.Conn, suggester *analysis.Suggester, delay time.Duration, logger *zap.Logger) *SuggestionClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &SuggestionClient{
		Conn:   conn,
		Send:   make(chan models.SuggestionEvent, sendBuffer),
		done:   make(chan struct{}),
		logger: logger,
	}
	c.debouncer = analysis.NewDebouncer(delay, suggester, c.deliver)
	return c
}

// Run starts the write pump and reads until the connection closes. It blocks.
func (c *SuggestionClient) Run() {
	go c.writePump()
	c.readPump()
}

// Close stops pending suggestions and the write pump.
func (c *SuggestionClient) Close() {
	c.closeOnce.Do(func() {
		c.debouncer.Stop()
		close(c.done)
	})
}

// deliver hands a suggestion to the write pump. Suggestions that arrive after
// Close, or while the buffer is full, are dropped.
func (c *SuggestionClient) deliver(category models.Category) {
	event := models.SuggestionEvent{Type: "suggestion", Category: category}
	select {
	case <-c.done:
	case c.Send <- event:
	default:
		c.logger.Warn("Suggestion dropped, client is slow")
	}
}

func (c *SuggestionClient) readPump() {
	defer func() {
		c.Close()
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("Suggestion socket read failed", zap.Error(err))
			}
			break
		}

		var draft models.SuggestionDraft
		if err := json.Unmarshal(message, &draft); err != nil {
			c.logger.Debug("Ignoring malformed draft", zap.Error(err))
			continue
		}

		c.debouncer.Update(draft.Description)
	}
}

func (c *SuggestionClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case event := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteJSON(event); err != nil {
				c.logger.Debug("Suggestion socket write failed", zap.Error(err))
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

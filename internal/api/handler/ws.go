package handler

import (
	"complaintbox/backend/internal/live"
	"complaintbox/backend/internal/session"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The demo UI is served from a dev server on another origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SuggestRequest is the body of POST /suggest-category.
type SuggestRequest struct {
	Description string `json:"description"`
}

// SuggestCategory handles POST /suggest-category, a single undebounced
// suggestion. "category" is empty when there is no usable suggestion.
func (h *Handler) SuggestCategory(c *gin.Context) {
	if !h.requireRole(c, session.RoleStudent) {
		return
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	category, ok := h.Suggester.Suggest(c.Request.Context(), req.Description)
	c.JSON(http.StatusOK, gin.H{
		"enabled":  h.Suggester.Enabled(),
		"accepted": ok,
		"category": category,
	})
}

// ServeSuggestionSocket upgrades to the live suggestion socket.
func (h *Handler) ServeSuggestionSocket(c *gin.Context) {
	if !h.requireRole(c, session.RoleStudent) {
		return
	}
	if !h.Suggester.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": h.Localizer.GetString(lang(c), "suggestion.disabled")})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	client := live.NewSuggestionClient(conn, h.Suggester, h.SuggestionDebounce, h.logger)
	client.Run()
}

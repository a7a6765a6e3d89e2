package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTheme handles GET /theme.
func (h *Handler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.Themes.Get(c.Request.Context())})
}

// ToggleTheme handles POST /theme/toggle.
func (h *Handler) ToggleTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.Themes.Toggle(c.Request.Context())})
}

// Package handler exposes the complaint box over HTTP. Each visitor holds a
// session token; the server keeps that visitor's screen and mocked login
// flags in memory.
package handler

import (
	"complaintbox/backend/internal/analysis"
	"complaintbox/backend/internal/complaint"
	"complaintbox/backend/internal/localization"
	"complaintbox/backend/internal/preferences"
	"complaintbox/backend/internal/session"
	"complaintbox/backend/internal/view"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds the services behind the HTTP routes.
type Handler struct {
	Complaints *complaint.Service
	Sessions   *view.Sessions
	Auth       session.Authenticator
	Suggester  *analysis.Suggester
	Themes     *preferences.ThemeStore
	Localizer  *localization.Localizer
	Tokens     *TokenIssuer

	SuggestionDebounce time.Duration

	logger *zap.Logger
}

// NewHandler creates a Handler. Auth defaults to session.StubAuthenticator.
func NewHandler(h Handler, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if h.Auth == nil {
		h.Auth = session.StubAuthenticator{}
	}
	if h.Sessions == nil {
		h.Sessions = view.NewSessions()
	}
	h.logger = logger
	return &h
}

// Register attaches all routes to r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/session", h.StartSession)

	authed := r.Group("/", h.RequireSession)
	authed.GET("/view", h.GetView)
	authed.POST("/navigate", h.Navigate)
	authed.POST("/login/:role", h.Login)

	authed.GET("/complaints", h.ListComplaints)
	authed.POST("/complaints", h.CreateComplaint)
	authed.POST("/complaints/anonymous", h.CreateAnonymousComplaint)
	authed.PATCH("/complaints/:id/status", h.UpdateComplaintStatus)

	authed.POST("/suggest-category", h.SuggestCategory)
	authed.GET("/ws/suggest", h.ServeSuggestionSocket)

	authed.GET("/theme", h.GetTheme)
	authed.POST("/theme/toggle", h.ToggleTheme)
}

// lang picks the catalog language for a request.
func lang(c *gin.Context) string {
	return c.DefaultQuery("lang", localization.DefaultLanguage)
}

package handler

import (
	"complaintbox/backend/internal/complaint"
	"complaintbox/backend/internal/models"
	"complaintbox/backend/internal/session"
	"complaintbox/backend/internal/view"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var pageTitleKeys = map[view.Page]string{
	view.PageHome:             "page.home.title",
	view.PageStudentLogin:     "page.student_login.title",
	view.PageFacultyLogin:     "page.faculty_login.title",
	view.PageStudentDashboard: "page.student_dashboard.title",
	view.PageFacultyDashboard: "page.faculty_dashboard.title",
}

// ViewResponse describes the screen a visitor should see.
type ViewResponse struct {
	// Page is the screen to render after the login guard.
	Page view.Page `json:"page"`
	// Requested is the page the visitor navigated to.
	Requested view.Page       `json:"requested"`
	Title     string          `json:"title"`
	Session   session.State   `json:"session"`
	Theme     string          `json:"theme"`
	Dashboard *DashboardState `json:"dashboard,omitempty"`
}

// DashboardState is the data both dashboards render.
type DashboardState struct {
	Complaints         []models.Complaint `json:"complaints"`
	Filter             string             `json:"filter"`
	EmptyMessage       string             `json:"empty_message,omitempty"`
	Categories         []models.Category  `json:"categories"`
	Statuses           []models.Status    `json:"statuses"`
	SuggestionsEnabled bool               `json:"suggestions_enabled"`
}

// GetView handles GET /view.
func (h *Handler) GetView(c *gin.Context) {
	var requested, page view.Page
	var state session.State
	h.Sessions.With(sessionID(c), func(r *view.Router) {
		requested, page, state = r.Current(), r.Resolve(), r.State()
	})

	resp := ViewResponse{
		Page:      page,
		Requested: requested,
		Title:     h.Localizer.GetString(lang(c), pageTitleKeys[page]),
		Session:   state,
		Theme:     string(h.Themes.Get(c.Request.Context())),
	}

	if page == view.PageStudentDashboard || page == view.PageFacultyDashboard {
		filter := complaint.StatusFilterAll
		if page == view.PageFacultyDashboard {
			filter = c.DefaultQuery("status", complaint.StatusFilterAll)
		}
		dashboard, err := h.dashboardState(c, filter)
		if err != nil {
			h.respondError(c, err)
			return
		}
		resp.Dashboard = dashboard
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) dashboardState(c *gin.Context, filter string) (*DashboardState, error) {
	complaints, err := h.Complaints.ListByStatus(c.Request.Context(), filter)
	if err != nil {
		return nil, err
	}
	if filter == "" {
		filter = complaint.StatusFilterAll
	}

	state := &DashboardState{
		Complaints:         complaints,
		Filter:             filter,
		Categories:         models.Categories,
		Statuses:           models.Statuses,
		SuggestionsEnabled: h.Suggester.Enabled(),
	}
	if len(complaints) == 0 {
		if filter == complaint.StatusFilterAll {
			state.EmptyMessage = h.Localizer.GetString(lang(c), "list.empty_all")
		} else {
			state.EmptyMessage = h.Localizer.Format(lang(c), "list.empty_filtered", strings.ToLower(filter))
		}
	}
	return state, nil
}

// NavigateRequest is the body of POST /navigate.
type NavigateRequest struct {
	Page string `json:"page" binding:"required"`
}

// Navigate handles POST /navigate. Navigating Home ends both logins.
func (h *Handler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	page, err := view.ParsePage(req.Page)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Sessions.With(sessionID(c), func(r *view.Router) { r.Navigate(page) })
	h.GetView(c)
}

// Login handles POST /login/:role. The credentials are passed to the
// configured Authenticator; with the stub every submission succeeds.
func (h *Handler) Login(c *gin.Context) {
	role := session.Role(c.Param("role"))
	if role != session.RoleStudent && role != session.RoleFaculty {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown role"})
		return
	}

	var creds session.Credentials
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	ok, err := h.Auth.Authenticate(c.Request.Context(), role, creds)
	if err != nil {
		h.logger.Error("Authenticator failed", zap.String("role", string(role)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": h.Localizer.GetString(lang(c), "auth.login_required")})
		return
	}

	h.Sessions.With(sessionID(c), func(r *view.Router) { r.LoginSucceeded(role) })
	h.GetView(c)
}

// allowed reports whether the visitor is logged in as any of roles.
func (h *Handler) allowed(c *gin.Context, roles ...session.Role) bool {
	ok := false
	h.Sessions.With(sessionID(c), func(r *view.Router) {
		for _, role := range roles {
			if r.Allowed(role) {
				ok = true
			}
		}
	})
	return ok
}

// requireRole aborts with 401 and the login page to show unless the visitor
// is logged in as one of roles.
func (h *Handler) requireRole(c *gin.Context, roles ...session.Role) bool {
	if h.allowed(c, roles...) {
		return true
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": h.Localizer.GetString(lang(c), "auth.login_required"),
		"page":  view.LoginPageFor(roles[0]),
	})
	return false
}

// respondError maps service errors to HTTP responses.
func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, complaint.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

package handler

import (
	"complaintbox/backend/internal/complaint"
	"complaintbox/backend/internal/models"
	"complaintbox/backend/internal/session"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateComplaintRequest is the body of POST /complaints. Missing fields are
// reported with the form's "fill out all fields" message rather than a bind
// error, so no binding tags are used.
type CreateComplaintRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Anonymous   bool   `json:"anonymous"`
}

// UpdateStatusRequest is the body of PATCH /complaints/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListComplaints handles GET /complaints?status=. Both dashboards list
// complaints, so either login is enough.
func (h *Handler) ListComplaints(c *gin.Context) {
	if !h.requireRole(c, session.RoleFaculty, session.RoleStudent) {
		return
	}

	complaints, err := h.Complaints.ListByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// CreateComplaint handles POST /complaints from the student dashboard.
func (h *Handler) CreateComplaint(c *gin.Context) {
	if !h.requireRole(c, session.RoleStudent) {
		return
	}

	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	h.create(c, req, "form.submit_success")
}

// CreateAnonymousComplaint handles POST /complaints/anonymous, the form on the
// home screen. No login is needed and the complaint is always anonymous.
func (h *Handler) CreateAnonymousComplaint(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.Anonymous = true
	h.create(c, req, "form.anonymous_success")
}

func (h *Handler) create(c *gin.Context, req CreateComplaintRequest, successKey string) {
	created, err := h.Complaints.Create(c.Request.Context(), models.Category(req.Category), req.Description, req.Anonymous)
	if errors.Is(err, complaint.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  h.Localizer.GetString(lang(c), "form.required"),
			"detail": err.Error(),
		})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"complaint": created,
		"message":   h.Localizer.GetString(lang(c), successKey),
	})
}

// UpdateComplaintStatus handles PATCH /complaints/:id/status. An unknown id
// is not an error; the unchanged collection is returned.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	if !h.requireRole(c, session.RoleFaculty) {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	complaints, err := h.Complaints.UpdateStatus(c.Request.Context(), c.Param("id"), models.Status(req.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unnati04102007/ResQNet/domain"
)

// VolunteerHandlers handles volunteer registry HTTP requests
type VolunteerHandlers struct {
	volunteerSvc domain.VolunteerService
}

// NewVolunteerHandlers creates new volunteer handlers
func NewVolunteerHandlers(volunteerSvc domain.VolunteerService) *VolunteerHandlers {
	return &VolunteerHandlers{volunteerSvc: volunteerSvc}
}

// RegisterVolunteerRequest represents a volunteer signup
type RegisterVolunteerRequest struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Skills   string `json:"skills"`
	Location string `json:"location"`
}

// Register handles POST /api/volunteers
func (h *VolunteerHandlers) Register(c *gin.Context) {
	var req RegisterVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	volunteer, err := h.volunteerSvc.Register(c.Request.Context(), req.Name, req.Contact, req.Skills, req.Location)
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register volunteer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "volunteer_id": volunteer.ID})
}

// List handles GET /api/volunteers
func (h *VolunteerHandlers) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	onlyAvailable := c.Query("available") == "true"

	volunteers, err := h.volunteerSvc.List(c.Request.Context(), onlyAvailable, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list volunteers"})
		return
	}

	out := make([]gin.H, 0, len(volunteers))
	for _, v := range volunteers {
		out = append(out, gin.H{
			"id":         v.ID,
			"name":       v.Name,
			"contact":    v.Contact,
			"skills":     v.Skills,
			"location":   v.Location,
			"available":  v.Available,
			"created_at": v.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"volunteers": out, "count": len(out)})
}

package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unnati04102007/ResQNet/domain"
	"github.com/unnati04102007/ResQNet/internal/http/middleware"
)

// ReportHandlers handles incident report HTTP requests
type ReportHandlers struct {
	reportSvc domain.ReportService
	sessions  *middleware.SessionMW
}

// NewReportHandlers creates new report handlers
func NewReportHandlers(reportSvc domain.ReportService, sessions *middleware.SessionMW) *ReportHandlers {
	return &ReportHandlers{
		reportSvc: reportSvc,
		sessions:  sessions,
	}
}

// Submit handles POST /report (multipart form, optional image).
// RequireUser middleware guarantees a logged-in session.
func (h *ReportHandlers) Submit(c *gin.Context) {
	sess := middleware.Session(c)

	in := domain.ReportInput{
		Name:         c.PostForm("name"),
		Email:        c.PostForm("email"),
		Location:     c.PostForm("location"),
		DisasterType: c.PostForm("disaster_type"),
		Description:  c.PostForm("description"),
	}

	var image *domain.ImageUpload
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded image"})
			return
		}
		defer file.Close()
		image = &domain.ImageUpload{Filename: fileHeader.Filename, Reader: file}
	}

	_, err := h.reportSvc.Submit(c.Request.Context(), sess.UserID, in, image)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err == domain.ErrUnsupportedImage:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be png, jpg, jpeg or gif"})
		case err == domain.ErrUnauthenticated:
			c.Redirect(http.StatusSeeOther, "/login")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit report"})
		}
		return
	}

	sess.Flash = "Report submitted. Our team will review it shortly."
	if err := h.sessions.Save(c); err != nil {
		log.Printf("report submit: failed to save session: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// List handles GET /api/reports with optional disaster_type and location
// filters. At most 20 most-recent reports are returned.
func (h *ReportHandlers) List(c *gin.Context) {
	reports, err := h.reportSvc.List(c.Request.Context(), c.Query("disaster_type"), c.Query("location"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	out := make([]gin.H, 0, len(reports))
	for _, r := range reports {
		name := r.Name
		if name == "" {
			name = "Anonymous"
		}
		out = append(out, gin.H{
			"id":            r.ID,
			"name":          name,
			"email":         r.Email,
			"location":      r.Location,
			"disaster_type": r.DisasterType,
			"description":   r.Description,
			"image":         r.ImagePath,
			"status":        string(r.Status),
			"created_at":    r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// UpdateStatusRequest carries the report review decision.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /admin/reports/:id/status (admin only).
func (h *ReportHandlers) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportSvc.UpdateStatus(c.Request.Context(), uint(id), domain.ReportStatus(req.Status))
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err == domain.ErrReportNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		case err == domain.ErrReportFinalized:
			c.JSON(http.StatusConflict, gin.H{"error": "Report status already finalized"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":     report.ID,
			"status": string(report.Status),
		},
	})
}

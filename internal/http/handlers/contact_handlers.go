package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unnati04102007/ResQNet/domain"
	"github.com/unnati04102007/ResQNet/internal/http/middleware"
)

// ContactHandlers handles the contact form and its captcha challenge
type ContactHandlers struct {
	contactSvc domain.ContactService
	sessions   *middleware.SessionMW
}

// NewContactHandlers creates new contact handlers
func NewContactHandlers(contactSvc domain.ContactService, sessions *middleware.SessionMW) *ContactHandlers {
	return &ContactHandlers{
		contactSvc: contactSvc,
		sessions:   sessions,
	}
}

// Begin handles GET /contact: issues a fresh captcha code for the form.
func (h *ContactHandlers) Begin(c *gin.Context) {
	sess := middleware.Session(c)

	code, err := h.contactSvc.NewCaptcha(sess)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue captcha"})
		return
	}
	if err := h.sessions.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	flash := sess.Flash
	if flash != "" {
		sess.Flash = ""
		if err := h.sessions.Save(c); err != nil {
			log.Printf("contact begin: failed to clear flash: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"captcha": code, "flash": flash})
}

// Submit handles POST /contact. Both outcomes redirect back to the form
// with a flash message, per the form flow.
func (h *ContactHandlers) Submit(c *gin.Context) {
	sess := middleware.Session(c)

	in := domain.ContactInput{
		EnquiryType:  c.PostForm("enquiry_type"),
		Segment:      c.PostForm("segment"),
		Name:         c.PostForm("name"),
		Email:        c.PostForm("email"),
		Phone:        c.PostForm("phone"),
		Description:  c.PostForm("description"),
		TimeSlot:     c.PostForm("time_slot"),
		CaptchaInput: c.PostForm("captcha_input"),
	}

	_, err := h.contactSvc.Submit(c.Request.Context(), sess, in)
	if err != nil {
		switch {
		case err == domain.ErrCaptchaMismatch:
			sess.Flash = "Captcha did not match. Please try again."
		case domain.IsValidation(err):
			sess.Flash = err.Error()
		default:
			sess.Flash = "Something went wrong. Please try again later."
		}
		if saveErr := h.sessions.Save(c); saveErr != nil {
			log.Printf("contact submit: failed to save session: %v", saveErr)
		}
		c.Redirect(http.StatusSeeOther, "/contact")
		return
	}

	sess.Flash = "Thanks for reaching out. We will get back to you soon."
	if err := h.sessions.Save(c); err != nil {
		log.Printf("contact submit: failed to save session: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/contact")
}

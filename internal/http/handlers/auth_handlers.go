package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unnati04102007/ResQNet/domain"
	"github.com/unnati04102007/ResQNet/internal/http/middleware"
)

// AuthHandlers handles registration, login, logout and language selection
type AuthHandlers struct {
	authSvc  domain.AuthService
	sessions *middleware.SessionMW
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, sessions *middleware.SessionMW) *AuthHandlers {
	return &AuthHandlers{
		authSvc:  authSvc,
		sessions: sessions,
	}
}

// RegisterRequest represents registration form fields
type RegisterRequest struct {
	Name            string `form:"name" json:"name"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

// LoginRequest represents login form fields
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Register handles user registration and establishes a logged-in session.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err == domain.ErrEmailTaken {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	h.bindUser(c, user)
	if err := h.sessions.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Login handles user login. Browser form posts get a redirect; JSON clients
// additionally receive the access token used by the admin API.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	h.bindUser(c, result.User)
	if err := h.sessions.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	if c.ContentType() == "application/json" {
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"access_token": result.AccessToken,
				"token_type":   "Bearer",
				"expires_in":   result.ExpiresIn,
				"user": gin.H{
					"id":       result.User.ID,
					"name":     result.User.Name,
					"email":    result.User.Email,
					"role":     result.User.Role,
					"language": result.User.Language,
				},
			},
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears all session state unconditionally.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c); err != nil {
		log.Printf("logout: failed to destroy session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// SetLanguage switches the UI language for the session and, when logged in,
// persists it on the user row.
func (h *AuthHandlers) SetLanguage(c *gin.Context) {
	lang := c.Query("lang")
	if lang == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lang is required"})
		return
	}

	sess := middleware.Session(c)
	sess.Language = lang
	if sess.LoggedIn() {
		if err := h.authSvc.SetLanguage(c.Request.Context(), sess.UserID, lang); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update language"})
			return
		}
	}
	if err := h.sessions.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}

func (h *AuthHandlers) bindUser(c *gin.Context, user *domain.User) {
	sess := middleware.Session(c)
	sess.UserID = user.ID
	sess.UserName = user.Name
	if user.Language != "" {
		sess.Language = user.Language
	}
}

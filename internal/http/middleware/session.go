package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/unnati04102007/ResQNet/domain"
)

const sessionContextKey = "session"

// SessionMW loads the per-request session from the opaque token in the
// session cookie, creating a fresh anonymous session when none exists.
type SessionMW struct {
	repo       domain.SessionRepository
	cookieName string
	ttl        time.Duration
}

// NewSessionMW creates new session middleware
func NewSessionMW(repo domain.SessionRepository, cookieName string, ttl time.Duration) *SessionMW {
	return &SessionMW{
		repo:       repo,
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// WithSession returns the session-loading middleware.
func (m *SessionMW) WithSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *domain.Session

		if id, err := c.Cookie(m.cookieName); err == nil && id != "" {
			if found, err := m.repo.FindByID(c.Request.Context(), id); err == nil {
				sess = found
			}
		}

		if sess == nil {
			now := time.Now()
			sess = &domain.Session{
				ID:        uuid.NewString(),
				Language:  "en",
				CreatedAt: now,
				ExpiresAt: now.Add(m.ttl),
			}
			if err := m.repo.Save(c.Request.Context(), sess); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
				c.Abort()
				return
			}
			m.setCookie(c, sess.ID, int(m.ttl.Seconds()))
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireUser redirects unauthenticated requests to the login page.
func (m *SessionMW) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Session(c)
		if !sess.LoggedIn() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Save persists the (possibly mutated) session for this request.
func (m *SessionMW) Save(c *gin.Context) error {
	sess := Session(c)
	if sess == nil {
		return domain.ErrSessionNotFound
	}
	return m.repo.Save(c.Request.Context(), sess)
}

// Destroy clears all session state and expires the cookie.
func (m *SessionMW) Destroy(c *gin.Context) error {
	sess := Session(c)
	if sess != nil {
		if err := m.repo.Delete(c.Request.Context(), sess.ID); err != nil {
			return err
		}
	}
	m.setCookie(c, "", -1)
	return nil
}

func (m *SessionMW) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, value, maxAge, "/", "", false, true)
}

// Session returns the session bound to the current request, or nil when the
// session middleware did not run.
func Session(c *gin.Context) *domain.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(*domain.Session); ok {
			return sess
		}
	}
	return nil
}

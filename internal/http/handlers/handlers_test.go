package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unnati04102007/ResQNet/domain"
	"github.com/unnati04102007/ResQNet/internal/http/middleware"
	"github.com/unnati04102007/ResQNet/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testCookieName = "resqnet_session"

// newMemorySessionRepo backs the session middleware with an in-memory map so
// handler tests can inspect session state after the request.
func newMemorySessionRepo() (*mocks.MockSessionRepository, map[string]*domain.Session) {
	store := make(map[string]*domain.Session)
	repo := mocks.NewMockSessionRepository()
	repo.SaveFunc = func(ctx context.Context, session *domain.Session) error {
		store[session.ID] = session
		return nil
	}
	repo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		if sess, ok := store[sessionID]; ok {
			return sess, nil
		}
		return nil, domain.ErrSessionNotFound
	}
	repo.DeleteFunc = func(ctx context.Context, sessionID string) error {
		delete(store, sessionID)
		return nil
	}
	return repo, store
}

func newTestSessionMW(repo *mocks.MockSessionRepository) *middleware.SessionMW {
	return middleware.NewSessionMW(repo, testCookieName, time.Hour)
}

// seedSession plants a session in the store and returns the cookie to send.
func seedSession(store map[string]*domain.Session, sess *domain.Session) *http.Cookie {
	if sess.ExpiresAt.IsZero() {
		sess.ExpiresAt = time.Now().Add(time.Hour)
	}
	store[sess.ID] = sess
	return &http.Cookie{Name: testCookieName, Value: sess.ID}
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

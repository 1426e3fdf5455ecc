package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/app/services"
	"github.com/emre/unifolio/internal/pkg/auth"
	"github.com/emre/unifolio/internal/pkg/logger"
)

// currentUserKey is the gin context key the resolved user is stored under.
const currentUserKey = "currentUser"

// unauthorizedAPIBody is the plain-text body API routes return without a
// session. Deliberately not JSON: nothing about any user may leak.
const unauthorizedAPIBody = "Unauthorized API Usage."

// SessionMiddleware attaches the authenticated identity to requests and
// gates protected routes. Page routes and API routes fail differently:
// pages redirect to the login form, APIs answer 403.
type SessionMiddleware struct {
	sessions   services.SessionService
	signer     *auth.CookieSigner
	cookieName string
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(sessions services.SessionService, signer *auth.CookieSigner, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		signer:     signer,
		cookieName: cookieName,
	}
}

// CookieName returns the configured session cookie name.
func (m *SessionMiddleware) CookieName() string {
	return m.cookieName
}

// Token extracts and verifies the session token from the request cookie.
// Missing or tampered cookies yield an empty token.
func (m *SessionMiddleware) Token(c *gin.Context) string {
	value, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	token, err := m.signer.Verify(value)
	if err != nil {
		logger.Debug().Err(err).Msg("Rejected session cookie")
		return ""
	}

	return token
}

// LoadUser resolves the session cookie to a live user record and stores it
// in the request context. It never aborts; the gates below decide.
func (m *SessionMiddleware) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.Token(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := m.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to resolve session")
			c.Next()
			return
		}

		if user != nil {
			c.Set(currentUserKey, user)
		}

		c.Next()
	}
}

// RequirePage redirects unauthenticated requests to the login form.
func (m *SessionMiddleware) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAPI rejects unauthenticated requests with a status-coded plain-text
// failure instead of a redirect.
func (m *SessionMiddleware) RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.String(http.StatusForbidden, unauthorizedAPIBody)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by LoadUser.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok || user == nil {
		return nil, false
	}

	return user, true
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/unifolio/internal/app/models"
	"github.com/emre/unifolio/internal/pkg/auth"
)

// fakeSessions resolves a fixed token map; everything else is nil.
type fakeSessions struct {
	users map[string]*models.User
}

func (f *fakeSessions) Start(_ context.Context, _ *models.User) (string, error) {
	return "", nil
}

func (f *fakeSessions) Resolve(_ context.Context, token string) (*models.User, error) {
	return f.users[token], nil
}

func (f *fakeSessions) End(_ context.Context, _ string) error {
	return nil
}

func (f *fakeSessions) SweepExpired(_ context.Context) (int64, error) {
	return 0, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.CookieSigner, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	signer := auth.NewCookieSigner("test-secret")
	token := auth.NewSessionToken()
	sessions := &fakeSessions{users: map[string]*models.User{
		token: {ID: 1, Username: "jdoe", FirstName: "John"},
	}}

	m := NewSessionMiddleware(sessions, signer, "unifolio_session")

	router := gin.New()
	router.Use(m.LoadUser())
	router.GET("/page", m.RequirePage(), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.String(http.StatusOK, user.Username)
	})
	router.GET("/api/thing", m.RequireAPI(), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.String(http.StatusOK, user.Username)
	})

	return router, signer, token
}

func request(router *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "unifolio_session", Value: cookie})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequirePage_RedirectsWithoutSession(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := request(router, "/page", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAPI_PlainTextForbiddenWithoutSession(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := request(router, "/api/thing", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Unauthorized API Usage.", w.Body.String())
	assert.NotContains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestLoadUser_ValidCookiePassesGates(t *testing.T) {
	router, signer, token := newTestRouter(t)
	cookie := signer.Sign(token)

	w := request(router, "/page", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jdoe", w.Body.String())

	w = request(router, "/api/thing", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jdoe", w.Body.String())
}

func TestLoadUser_RejectsTamperedCookie(t *testing.T) {
	router, signer, token := newTestRouter(t)

	// Flip the first token character; the signature no longer matches.
	cookie := signer.Sign(token)
	tampered := "f" + cookie[1:]
	if cookie[0] == 'f' {
		tampered = "0" + cookie[1:]
	}

	w := request(router, "/api/thing", tampered)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Unauthorized API Usage.", w.Body.String())
}

func TestLoadUser_RejectsUnsignedToken(t *testing.T) {
	router, _, token := newTestRouter(t)

	// A bare token without the HMAC suffix must not authenticate.
	w := request(router, "/page", token)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoadUser_UnknownTokenIsAnonymous(t *testing.T) {
	router, signer, _ := newTestRouter(t)
	cookie := signer.Sign(auth.NewSessionToken())

	w := request(router, "/api/thing", cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

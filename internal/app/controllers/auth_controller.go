package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/unifolio/internal/app/models/dto"
	"github.com/emre/unifolio/internal/app/services"
	"github.com/emre/unifolio/internal/middleware"
	"github.com/emre/unifolio/internal/pkg/auth"
)

// farFutureMaxAge approximates the "never expires" cookie the original
// deployment used when no session max age is configured.
const farFutureMaxAge = 10 * 365 * 24 * time.Hour

// AuthController handles registration, login and signout. Successes and
// failures both end in redirects; these are interactive form endpoints, not
// JSON APIs.
type AuthController struct {
	authService    services.AuthService
	sessionService services.SessionService
	signer         *auth.CookieSigner
	cookieName     string
	sessionMaxAge  time.Duration
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(
	authService services.AuthService,
	sessionService services.SessionService,
	signer *auth.CookieSigner,
	cookieName string,
	sessionMaxAge time.Duration,
	logger zerolog.Logger,
) *AuthController {
	return &AuthController{
		authService:    authService,
		sessionService: sessionService,
		signer:         signer,
		cookieName:     cookieName,
		sessionMaxAge:  sessionMaxAge,
		logger:         logger,
	}
}

// setSessionCookie issues the signed session cookie.
func (c *AuthController) setSessionCookie(ctx *gin.Context, token string) {
	maxAge := c.sessionMaxAge
	if maxAge <= 0 {
		maxAge = farFutureMaxAge
	}

	ctx.SetCookie(c.cookieName, c.signer.Sign(token), int(maxAge.Seconds()), "/", "", false, true)
}

// clearSessionCookie expires the session cookie on the client.
func (c *AuthController) clearSessionCookie(ctx *gin.Context) {
	ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)
}

// Register handles the registration form
// @Summary Register a new user
// @Description Creates a user from the registration form and redirects to the login page
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username (lowercased)"
// @Param password formData string true "Password"
// @Param email formData string true "Email address"
// @Param firstname formData string true "First name"
// @Param lastname formData string true "Last name"
// @Param faculty formData string true "Faculty"
// @Param department formData string true "Department"
// @Param programme formData string true "Programme"
// @Param year formData int true "Graduating year"
// @Success 302 "Redirect to /login"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Debug().Err(err).Msg("Registration form rejected")
		ctx.Redirect(http.StatusFound, "/register")
		return
	}

	if _, err := c.authService.Register(ctx.Request.Context(), &req); err != nil {
		// Duplicate usernames and validation failures land back on the
		// form; nothing beyond the navigation is surfaced.
		c.logger.Debug().Err(err).Str("username", req.Username).Msg("Registration failed")
		ctx.Redirect(http.StatusFound, "/register")
		return
	}

	ctx.Redirect(http.StatusFound, "/login")
}

// Login handles the login form
// @Summary Log in
// @Description Verifies credentials, establishes a session and redirects home; failures redirect back to the login page
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 "Redirect to / on success, /login on failure"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		// A bad login gets a generic redirect, whatever the cause.
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := c.sessionService.Start(ctx.Request.Context(), user)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to start session")
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	c.setSessionCookie(ctx, token)
	ctx.Redirect(http.StatusFound, "/")
}

// Signout destroys the session
// @Summary Sign out
// @Description Destroys the current session and redirects to the login page
// @Tags auth
// @Success 302 "Redirect to /login"
// @Router /signout [get]
func (c *AuthController) Signout(ctx *gin.Context) {
	if _, ok := middleware.CurrentUser(ctx); !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	token := c.signerToken(ctx)
	if token != "" {
		if err := c.sessionService.End(ctx.Request.Context(), token); err != nil {
			c.logger.Error().Err(err).Msg("Failed to end session")
		}
	}

	c.clearSessionCookie(ctx)
	ctx.Redirect(http.StatusFound, "/login")
}

// signerToken re-verifies the request cookie to recover the raw token.
func (c *AuthController) signerToken(ctx *gin.Context) string {
	value, err := ctx.Cookie(c.cookieName)
	if err != nil {
		return ""
	}

	token, err := c.signer.Verify(value)
	if err != nil {
		return ""
	}

	return token
}

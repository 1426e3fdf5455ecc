package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/unifolio/internal/app/models/dto"
	"github.com/emre/unifolio/internal/app/services"
	"github.com/emre/unifolio/internal/middleware"
)

// PageController renders the HTML pages. Every protected page sits behind
// SessionMiddleware.RequirePage, so handlers can assume an identity.
type PageController struct {
	profileService services.ProfileService
}

// NewPageController creates a new PageController
func NewPageController(profileService services.ProfileService) *PageController {
	return &PageController{profileService: profileService}
}

// LoginForm renders the login form.
func (c *PageController) LoginForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.tmpl", gin.H{})
}

// RegisterForm renders the registration form.
func (c *PageController) RegisterForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.tmpl", gin.H{})
}

// Home renders the home page.
func (c *PageController) Home(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	ctx.HTML(http.StatusOK, "home.tmpl", gin.H{
		"user": dto.NewUserResponse(user),
	})
}

// HomeAlias redirects /home to /.
func (c *PageController) HomeAlias(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, "/")
}

// About renders the static about page.
func (c *PageController) About(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "about.tmpl", gin.H{})
}

// OwnProfile renders the caller's editable profile page.
func (c *PageController) OwnProfile(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	ctx.HTML(http.StatusOK, "userprofile.tmpl", gin.H{
		"user": dto.NewUserResponse(user),
	})
}

// PublicProfile renders another user's profile, or redirects home when the
// username does not exist.
func (c *PageController) PublicProfile(ctx *gin.Context) {
	username := ctx.Param("username")

	profile, err := c.profileService.GetPublicProfile(ctx.Request.Context(), username)
	if err != nil {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	ctx.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"user": dto.NewUserResponse(profile),
	})
}

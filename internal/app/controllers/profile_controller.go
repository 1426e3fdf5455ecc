package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/unifolio/internal/app/models/dto"
	"github.com/emre/unifolio/internal/app/services"
	"github.com/emre/unifolio/internal/middleware"
)

// editAckBody is the plain-text acknowledgement for profile edits.
const editAckBody = "Successfully Edited!"

// ProfileController handles the authenticated profile API.
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetOwnProfile returns the caller's record
// @Summary Get own profile
// @Description Returns the authenticated caller's own user record as JSON
// @Tags profile
// @Produce json
// @Success 200 {object} dto.UserResponse "Caller's profile"
// @Failure 403 {string} string "Unauthorized API Usage."
// @Router /api/profile [get]
func (c *ProfileController) GetOwnProfile(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	// Re-fetch so the response reflects edits made earlier in this session.
	profile, err := c.profileService.GetOwnProfile(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(profile))
}

// UpdateBiography replaces the caller's biography
// @Summary Edit biography
// @Description Replaces the caller's biography; other fields are untouched
// @Tags profile
// @Accept x-www-form-urlencoded
// @Param biography formData string false "New biography text"
// @Success 200 {string} string "Successfully Edited!"
// @Failure 403 {string} string "Unauthorized API Usage."
// @Router /api/edit/bio [post]
func (c *ProfileController) UpdateBiography(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req dto.UpdateBiographyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.profileService.UpdateBiography(ctx.Request.Context(), user.ID, req.Biography); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, editAckBody)
}

// UpdateFeaturedWorks replaces the caller's featured works
// @Summary Edit featured works
// @Description Replaces the caller's featured works; other fields are untouched
// @Tags profile
// @Accept x-www-form-urlencoded
// @Param featuredworks formData string false "New featured works text"
// @Success 200 {string} string "Successfully Edited!"
// @Failure 403 {string} string "Unauthorized API Usage."
// @Router /api/edit/works [post]
func (c *ProfileController) UpdateFeaturedWorks(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req dto.UpdateFeaturedWorksRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.profileService.UpdateFeaturedWorks(ctx.Request.Context(), user.ID, req.FeaturedWorks); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, editAckBody)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/unifolio/internal/app/models/dto"
	"github.com/emre/unifolio/internal/app/repositories"
	"github.com/emre/unifolio/internal/app/services"
	"github.com/emre/unifolio/internal/middleware"
)

// DirectoryController serves the public directory listings: filtered users
// and the cascading faculty/department/programme lookups.
type DirectoryController struct {
	directoryService services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService services.DirectoryService) *DirectoryController {
	return &DirectoryController{directoryService: directoryService}
}

func (c *DirectoryController) listUsers(ctx *gin.Context, filter repositories.UserFilter) {
	users, err := c.directoryService.ListUsers(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponseList(users))
}

// ListUsers returns all users
// @Summary List all users
// @Description Returns every user record without credential fields
// @Tags directory
// @Produce json
// @Success 200 {array} dto.UserResponse "Users"
// @Router /api/userlist [get]
func (c *DirectoryController) ListUsers(ctx *gin.Context) {
	c.listUsers(ctx, repositories.UserFilter{})
}

// ListUsersByFaculty filters users by faculty
// @Summary List users by faculty
// @Description Returns users whose faculty equals the path value exactly
// @Tags directory
// @Produce json
// @Param faculty path string true "Faculty"
// @Success 200 {array} dto.UserResponse "Matching users"
// @Router /api/userlist/f/{faculty} [get]
func (c *DirectoryController) ListUsersByFaculty(ctx *gin.Context) {
	c.listUsers(ctx, repositories.UserFilter{Faculty: ctx.Param("faculty")})
}

// ListUsersByDepartment filters users by department
// @Summary List users by department
// @Description Returns users whose department equals the path value exactly
// @Tags directory
// @Produce json
// @Param department path string true "Department"
// @Success 200 {array} dto.UserResponse "Matching users"
// @Router /api/userlist/d/{department} [get]
func (c *DirectoryController) ListUsersByDepartment(ctx *gin.Context) {
	c.listUsers(ctx, repositories.UserFilter{Department: ctx.Param("department")})
}

// ListUsersByProgramme filters users by programme
// @Summary List users by programme
// @Description Returns users whose programme equals the path value exactly
// @Tags directory
// @Produce json
// @Param programme path string true "Programme"
// @Success 200 {array} dto.UserResponse "Matching users"
// @Router /api/userlist/p/{programme} [get]
func (c *DirectoryController) ListUsersByProgramme(ctx *gin.Context) {
	c.listUsers(ctx, repositories.UserFilter{Programme: ctx.Param("programme")})
}

// ListFaculties returns the distinct faculties
// @Summary List faculties
// @Description Returns the distinct faculty values of the programme catalogue
// @Tags directory
// @Produce json
// @Success 200 {array} string "Faculties"
// @Router /api/progdata [get]
func (c *DirectoryController) ListFaculties(ctx *gin.Context) {
	faculties, err := c.directoryService.ListFaculties(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, faculties)
}

// ListDepartments returns the distinct departments of a faculty
// @Summary List departments of a faculty
// @Description Returns the distinct departments among catalogue rows of the given faculty
// @Tags directory
// @Produce json
// @Param faculty path string true "Faculty"
// @Success 200 {array} string "Departments"
// @Router /api/progdata/{faculty} [get]
func (c *DirectoryController) ListDepartments(ctx *gin.Context) {
	departments, err := c.directoryService.ListDepartments(ctx.Request.Context(), ctx.Param("faculty"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}

// ListProgrammes returns the distinct programmes of a department
// @Summary List programmes of a department
// @Description Returns the distinct programmes among catalogue rows matching faculty and department
// @Tags directory
// @Produce json
// @Param faculty path string true "Faculty"
// @Param department path string true "Department"
// @Success 200 {array} string "Programmes"
// @Router /api/progdata/{faculty}/{department} [get]
func (c *DirectoryController) ListProgrammes(ctx *gin.Context) {
	programmes, err := c.directoryService.ListProgrammes(ctx.Request.Context(), ctx.Param("faculty"), ctx.Param("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, programmes)
}

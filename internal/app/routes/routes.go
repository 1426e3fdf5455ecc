package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/unifolio/internal/app/controllers"
	"github.com/emre/unifolio/internal/middleware"
)

// SetupRouter configures all application routes. The paths are the public
// contract of the app and are mounted at the root, unversioned.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	pageController *controllers.PageController,
	profileController *controllers.ProfileController,
	directoryController *controllers.DirectoryController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// Every request gets the identity attached when a valid session exists.
	router.Use(sessionMiddleware.LoadUser())

	// --- Public form and auth routes ---
	router.GET("/login", pageController.LoginForm)
	router.POST("/login", authController.Login)
	router.GET("/register", pageController.RegisterForm)
	router.POST("/register", authController.Register)

	// --- Session-protected pages: redirect to /login when unauthenticated ---
	pages := router.Group("")
	pages.Use(sessionMiddleware.RequirePage())
	{
		pages.GET("/", pageController.Home)
		pages.GET("/home", pageController.HomeAlias)
		pages.GET("/about", pageController.About)
		pages.GET("/profile", pageController.OwnProfile)
		pages.GET("/profile/:username", pageController.PublicProfile)
		pages.GET("/signout", authController.Signout)
	}

	// --- Session-protected API: 403 plain text when unauthenticated ---
	api := router.Group("/api")
	api.Use(sessionMiddleware.RequireAPI())
	{
		api.GET("/profile", profileController.GetOwnProfile)
		api.POST("/edit/bio", profileController.UpdateBiography)
		api.POST("/edit/works", profileController.UpdateFeaturedWorks)
	}

	// --- Public directory API ---
	router.GET("/api/userlist", directoryController.ListUsers)
	router.GET("/api/userlist/f/:faculty", directoryController.ListUsersByFaculty)
	router.GET("/api/userlist/d/:department", directoryController.ListUsersByDepartment)
	router.GET("/api/userlist/p/:programme", directoryController.ListUsersByProgramme)

	router.GET("/api/progdata", directoryController.ListFaculties)
	router.GET("/api/progdata/:faculty", directoryController.ListDepartments)
	router.GET("/api/progdata/:faculty/:department", directoryController.ListProgrammes)

	// Health check endpoint (public)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}

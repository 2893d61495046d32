package app

import (
	"relationship_mojo_backend/internal/config"
	"relationship_mojo_backend/internal/middleware"
	"relationship_mojo_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAssessmentRoutes(router, c, cfg)
	a.registerUserRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Catalog is static; no session needed to browse it.
		public.GET("/assessment/sections", c.assessment.ListSections)
		public.GET("/assessment/sections/:id/questions", c.assessment.GetSectionQuestions)
	}
}

func (a *App) registerAssessmentRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	// Guests may take the assessment when guest mode is on; members get
	// their results tied to their account.
	assessment := router.Group("/api/assessment")
	assessment.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		assessment.GET("/current", c.assessment.GetCurrentQuestion)
		assessment.GET("/progress", c.assessment.GetProgress)
		assessment.POST("/answers", c.assessment.SubmitAnswer)
		assessment.POST("/navigate", c.assessment.Navigate)
		assessment.POST("/reset", c.assessment.ResetSession)
		assessment.POST("/complete", c.assessment.CompleteAssessment)

		assessment.GET("/results", c.assessment.ListResults)
		assessment.GET("/results/latest", c.assessment.GetLatestResult)
		assessment.GET("/results/:id", c.assessment.GetResult)
		assessment.POST("/results/:id/retry", c.assessment.RetryAnalysis)
	}
}

func (a *App) registerUserRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.GET("/user/demographics", c.user.GetDemographics)
		authGroup.PUT("/user/demographics", c.user.UpdateDemographics)
	}
}

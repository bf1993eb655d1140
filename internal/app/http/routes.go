package routes

import (
	"net/http"
	"time"

	"onboarding-app/config"
	adminapi "onboarding-app/internal/api/admin"
	authapi "onboarding-app/internal/api/auth"
	onboardingapi "onboarding-app/internal/api/onboarding"
	statusapi "onboarding-app/internal/api/status"
	"onboarding-app/internal/app/http/middleware"
	"onboarding-app/internal/app/http/response"
	"onboarding-app/internal/domain/onboarding"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with the global middleware stack and every route.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)

	// CORS before any route
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	RegisterRoutes(r)
	return r
}

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", statusapi.Health)
	r.GET("/api/status", statusapi.Status)

	// Public onboarding wizard
	ob := r.Group("/api/onboarding")
	ob.Use(middleware.SanitizeAndCleanInputMiddleware())
	ob.POST("/artists", onboardingapi.CreateArtist)
	ob.GET("/artists/:id", onboardingapi.GetApplication)
	ob.PUT("/artists/:id", onboardingapi.UpdateArtist)
	for _, sec := range onboarding.Sections {
		if sec == onboarding.SectionProfile || sec == onboarding.SectionAbout {
			continue
		}
		ob.PUT("/artists/:id/"+string(sec), onboardingapi.SaveSection(sec))
	}
	ob.POST("/artists/:id/draft", onboardingapi.SaveDraft)
	ob.POST("/artists/:id/submit", onboardingapi.SubmitStored)
	ob.POST("/submit", onboardingapi.Submit)

	// Admin sign-in
	r.POST("/api/admin/login", authapi.Login)
	r.GET("/api/admin/auth/google", authapi.GoogleStart)
	r.GET("/api/admin/auth/google/callback", authapi.GoogleCallback)

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(authapi.RoleAdmin),
		middleware.SanitizeAndCleanInputMiddleware(),
	)
	admin.GET("/me", authapi.Me)
	admin.GET("/artists", adminapi.ListArtists)
	admin.GET("/artists/:id", adminapi.GetArtist)
	admin.PATCH("/artists/:id/status", adminapi.UpdateStatus)
	admin.POST("/artists/:id/stripe-sync", adminapi.SyncStripeCatalog)
	admin.GET("/stats", adminapi.GetStats)
}

package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "authapi/docs" // registers the OpenAPI document
	"authapi/internal/config"
	"authapi/internal/handler"
	"authapi/internal/middleware"
	"authapi/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	User      *handler.UserHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, log logrus.FieldLogger, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	if !cfg.Server.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public auth routes
	r.POST("/register/", h.Auth.Register)
	r.POST("/login/", h.Auth.Login)
	r.GET("/email-verify/", h.Auth.VerifyEmail)
	r.POST("/google-auth/", h.Auth.GoogleLogin)
	r.GET("/token/refresh/", h.Auth.RefreshToken)
	r.POST("/token/refresh/", h.Auth.RefreshToken)

	// Protected routes - require a valid access token
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.GET("/dashboard/", h.Dashboard.Get)
	protected.GET("/dashboard/export", h.Dashboard.Export)
	protected.GET("/profile", h.User.Profile)

	return r
}

package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/placement-portal/internal/handlers"
	"github.com/justsurfingit/placement-portal/internal/metrics"
	"github.com/justsurfingit/placement-portal/internal/middleware"
)

const RoleAdmin = "admin"

type Dependencies struct {
	CompanyHandler *handlers.CompanyHandler
	AdminHandler   *handlers.AdminHandler
	Verifier       middleware.TokenVerifier
	Metrics        *metrics.Collector
	Log            logrus.FieldLogger
}

func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(deps.Log), deps.Metrics.Middleware())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(config))

	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		// Company routes are public.
		api.GET("/companies", deps.CompanyHandler.ListCompanies)
		api.POST("/addCompany", deps.CompanyHandler.AddCompany)

		admins := api.Group("", middleware.Authenticate(deps.Verifier, deps.Log), middleware.RequireRole(RoleAdmin))
		admins.GET("/admins", deps.AdminHandler.ListAdmins)
		admins.POST("/addAdmin", deps.AdminHandler.AddAdmin)
	}
	return r
}

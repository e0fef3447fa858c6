package handlers

import (
	"github.com/SscSPs/hord_manager/cmd/docs"
	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/middleware"
	"github.com/SscSPs/hord_manager/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// loginRate is the per-IP limit on password attempts.
const loginRate = "5-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth)

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Reads are public; every mutation
// sits behind the GM token.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")
	gm := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	registerConversionRoutes(v1, service.Conversion)
	registerCurrencyRoutes(v1, gm, service.Currency, service.Conversion)
	registerPriceRoutes(v1, gm, service.Price)
	registerGemstoneRoutes(v1, gm, service.Gemstone)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// registerAuthRoutes sets up the GM login route behind its own strict limiter.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	r.POST("/auth/login", middleware.RateLimit(middleware.MustMemoryLimiter(loginRate)), h.login)
}

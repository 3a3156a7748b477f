package v1

import (
	"time"

	"github.com/azkaafiq/consultant-api/config"
	"github.com/azkaafiq/consultant-api/internal/delivery/http/middleware"
	"github.com/azkaafiq/consultant-api/internal/domain"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC domain.ProfileUsecase
	AdminUC   domain.AdminUsecase
	HealthUC  domain.HealthUsecase
	Redis     *goredis.Client // optional; rate limits fall back to memory
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Timeout(deps.Config.RequestTimeout))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limited := v1.Group("")
	limited.Use(middleware.RateLimitMiddleware(deps.Redis, middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	{
		NewProfileHandler(limited, deps.ProfileUC)
		NewAdminHandler(limited, deps.AdminUC, middleware.RateLimitMiddleware(deps.Redis, middleware.ExportRateLimitConfig()))
	}

	return r
}

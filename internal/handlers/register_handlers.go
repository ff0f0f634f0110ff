package handlers

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ppapp/personal_finance_app/cmd/docs"
	"github.com/ppapp/personal_finance_app/internal/core/domain"
	portssvc "github.com/ppapp/personal_finance_app/internal/core/ports/services"
	"github.com/ppapp/personal_finance_app/internal/middleware"
	"github.com/ppapp/personal_finance_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

func init() {
	// "period" validates accrual period strings ("YYYY-MM") at binding time.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseMonth(fl.Field().String())
			return err == nil
		})
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	if len(cfg.CORSAllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSAllowOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		}))
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific module route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	if rateLimiter := newRateLimiter(cfg); rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}

	v1.GET("/", getHome)
	registerSavingsRoutes(v1, services.Savings)
	registerCalendarRoutes(v1, services.Calendar)
}

// newRateLimiter builds an in-memory IP rate limiter from the configured
// rate ("<count>-<unit>", e.g. "120-M"). An invalid rate disables limiting.
func newRateLimiter(cfg *config.Config) *limiter.Limiter {
	if cfg.RateLimit == "" {
		return nil
	}
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT value, rate limiting disabled", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		return nil
	}
	return limiter.New(limitermem.NewStore(), rate)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

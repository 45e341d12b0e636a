package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"github.com/uptrace/bun"

	_ "github.com/alesthetic/booking-api/docs"
	"github.com/alesthetic/booking-api/internal/api/handler"
	"github.com/alesthetic/booking-api/internal/api/middleware"
	"github.com/alesthetic/booking-api/internal/core/service"
	"github.com/alesthetic/booking-api/internal/infrastructure/config"
	"github.com/alesthetic/booking-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/alesthetic/booking-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *bun.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("alesthetic"))

	// --- Dependencies ---
	appointmentRepo := postgres.NewAppointmentRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	userRepo := postgres.NewUserRepository(db)

	appointmentService := service.NewAppointmentService(appointmentRepo, customerRepo, employeeRepo, serviceRepo, log)
	customerService := service.NewCustomerService(customerRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	catalogService := service.NewCatalogService(serviceRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)

	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	customerHandler := handler.NewCustomerHandler(customerService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	authHandler := handler.NewAuthHandler(authService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	loginLimiter := redisinfra.NewFixedWindowLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window, "login")
	loginThrottle := middleware.RateLimit(loginLimiter, log)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/token", authHandler.Token, loginThrottle)
	auth.GET("/refresh", authHandler.Refresh, authRequired)

	// --- Appointment routes ---
	// Reads and updates require a bearer token; booking and cancelling do not,
	// so walk-in kiosks can create and drop appointments without a login.
	appointments := e.Group("/api/appointment")
	appointments.GET("", appointmentHandler.List, authRequired)
	appointments.GET("/:id", appointmentHandler.Get, authRequired)
	appointments.POST("", appointmentHandler.Create)
	appointments.PUT("", appointmentHandler.Update, authRequired)
	appointments.DELETE("/:id", appointmentHandler.Delete)

	// --- Customer routes ---
	customers := e.Group("/api/customer")
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.POST("", customerHandler.Create)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	// --- Employee routes ---
	employees := e.Group("/api/employee")
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.Get)
	employees.POST("", employeeHandler.Create)
	employees.PUT("", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete)

	// --- Service catalog routes ---
	services := e.Group("/api/service")
	services.GET("", serviceHandler.List)
	services.GET("/:id", serviceHandler.Get)
	services.POST("", serviceHandler.Create)
	services.PUT("", serviceHandler.Update)
	services.DELETE("/:id", serviceHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}

package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinehub/rental-service/internal/api/handler"
	"github.com/cinehub/rental-service/internal/api/middleware"
	"github.com/cinehub/rental-service/internal/core/ports"
	"github.com/cinehub/rental-service/internal/core/service"
	"github.com/cinehub/rental-service/internal/infrastructure/config"
	mongodb "github.com/cinehub/rental-service/internal/infrastructure/db/mongo"
	redisdb "github.com/cinehub/rental-service/internal/infrastructure/db/redis"
	httphandlers "github.com/cinehub/rental-service/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, reconciler ports.StockReconciler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rental"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	genreRepo := mongodb.NewGenreRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	rentalRepo := mongodb.NewRentalRepository(db)

	// --- Services ---
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, 24*time.Hour, log)
	customerService := service.NewCustomerService(customerRepo, log)
	genreService := service.NewGenreService(genreRepo, log)
	movieService := service.NewMovieService(movieRepo, genreRepo, log)
	rentalService := service.NewRentalService(rentalRepo, movieRepo, customerRepo, reconciler, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	genreHandler := handler.NewGenreHandler(genreService)
	movieHandler := handler.NewMovieHandler(movieService)
	rentalHandler := handler.NewRentalHandler(rentalService)
	returnHandler := handler.NewReturnHandler(rentalService)

	auth := middleware.Auth(cfg.JWTSecret)
	admin := middleware.Admin()
	objectID := middleware.ObjectID()

	// --- Auth / users ---
	e.POST("/auth", authHandler.Login)
	e.POST("/users", userHandler.Register)
	e.GET("/users/me", userHandler.Me, auth)

	// --- Customers ---
	e.GET("/customers", customerHandler.List)
	e.GET("/customers/:id", customerHandler.Get, objectID)
	e.POST("/customers", customerHandler.Create, auth)
	e.PUT("/customers/:id", customerHandler.Update, auth, objectID)
	e.DELETE("/customers/:id", customerHandler.Delete, auth, objectID)

	// --- Genres ---
	e.GET("/genres", genreHandler.List)
	e.GET("/genres/:id", genreHandler.Get, objectID)
	e.POST("/genres", genreHandler.Create, auth)
	e.PUT("/genres/:id", genreHandler.Update, auth, objectID)
	e.DELETE("/genres/:id", genreHandler.Delete, auth, admin, objectID)

	// --- Movies ---
	e.GET("/movies", movieHandler.List)
	e.GET("/movies/:id", movieHandler.Get, objectID)
	e.POST("/movies", movieHandler.Create, auth)
	e.PUT("/movies/:id", movieHandler.Update, auth, objectID)
	e.DELETE("/movies/:id", movieHandler.Delete, auth, objectID)

	// --- Rentals / returns ---
	e.GET("/rentals", rentalHandler.List)
	e.GET("/rentals/:id", rentalHandler.Get, objectID)
	e.POST("/rentals", rentalHandler.Create, auth)
	e.POST("/returns", returnHandler.Process, auth)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

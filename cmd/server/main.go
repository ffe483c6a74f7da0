package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/rental-project/rental-server/internal/api/handlers"
	"github.com/rental-project/rental-server/internal/api/middleware"
	"github.com/rental-project/rental-server/internal/config"
	"github.com/rental-project/rental-server/internal/database"
	"github.com/rental-project/rental-server/internal/database/queries"
	"github.com/rental-project/rental-server/internal/logger"
	"github.com/rental-project/rental-server/internal/services"
)

func main() {
	// Parse command line flags
	var createAdmin bool
	var migrateOnly bool
	var version bool
	flag.BoolVar(&createAdmin, "create-admin", false, "Create the initial admin user")
	flag.BoolVar(&migrateOnly, "migrate", false, "Run database migrations only")
	flag.BoolVar(&version, "version", false, "Show version information")
	flag.Parse()

	if version {
		fmt.Printf("Rental Server v1.0.0\n")
		fmt.Printf("Car rental backend\n")
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("rental-server")

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	// Handle migrate-only flag
	if migrateOnly {
		if err := db.Migrate(cfg.Migrations); err != nil {
			log.Error("migration failed", logger.Error(err))
			os.Exit(1)
		}
		fmt.Println("Database migrations completed")
		return
	}

	// Run migrations
	if err := db.Migrate(cfg.Migrations); err != nil {
		log.Error("migration failed", logger.Error(err))
		os.Exit(1)
	}

	// Initialize queries
	userQueries := queries.NewUserQueries(db.DB)
	carQueries := queries.NewCarQueries(db.DB)
	reservationQueries := queries.NewReservationQueries(db.DB)
	noteQueries := queries.NewNoteQueries(db.DB)

	// Handle create-admin flag
	if createAdmin {
		if err := runCreateAdmin(userQueries); err != nil {
			log.Error("create-admin failed", logger.Error(err))
			os.Exit(1)
		}
		return
	}

	// Initialize services
	checkout := services.NewStripeCheckout(cfg.StripeKey, cfg.ClientURL)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userQueries, noteQueries, log)
	carHandler := handlers.NewCarHandler(carQueries, userQueries, log)
	reservationHandler := handlers.NewReservationHandler(reservationQueries, log)
	paymentHandler := handlers.NewPaymentHandler(checkout, log)

	// Setup router
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	// Public routes: browsing the catalog, submitting a reservation and
	// paying for it work without a token.
	router.GET("/cars", carHandler.ListCars)
	router.POST("/reservations", reservationHandler.CreateReservation)
	router.POST("/payment/create-checkout-session", paymentHandler.CreateCheckoutSession)

	// Protected car routes
	cars := router.Group("/cars")
	cars.Use(auth)
	{
		cars.POST("", carHandler.CreateCar)
		cars.PATCH("", carHandler.UpdateCar)
		cars.DELETE("", carHandler.DeleteCar)
	}

	// Protected reservation routes
	reservations := router.Group("/reservations")
	reservations.Use(auth)
	{
		reservations.GET("", reservationHandler.ListReservations)
		reservations.PATCH("", reservationHandler.UpdateReservation)
		reservations.DELETE("", reservationHandler.DeleteReservation)
	}

	// User management routes
	users := router.Group("/users")
	users.Use(auth)
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.PATCH("", userHandler.UpdateUser)
		users.DELETE("", userHandler.DeleteUser)
	}

	// Start server with explicit timeouts rather than unbounded waits
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Info("rental server starting", logger.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

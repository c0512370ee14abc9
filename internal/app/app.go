package app

import (
	"fmt"

	"inklink_backend/internal/auth"
	"inklink_backend/internal/config"
	"inklink_backend/internal/database"
	"inklink_backend/internal/handlers"
	"inklink_backend/internal/logger"
	"inklink_backend/internal/middleware"
	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
	"inklink_backend/internal/routes"
	"inklink_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() error {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database.DSN, cfg.Server.Env != "production")
	if err != nil {
		return err
	}

	if err := seedAdmin(db, cfg); err != nil {
		return err
	}

	router := SetupRouter(db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter wires repositories, services, and handlers onto a gin engine.
// Split out from Run so tests can mount the full API over any database.
func SetupRouter(db *gorm.DB) *gin.Engine {
	userRepo := repositories.NewUserRepository(db)
	artistRepo := repositories.NewArtistRepository(db)
	parlorRepo := repositories.NewParlorRepository(db)
	guestspotRepo := repositories.NewGuestspotRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)

	authService := services.NewAuthService(userRepo)
	artistService := services.NewArtistService(artistRepo, parlorRepo)
	parlorService := services.NewParlorService(parlorRepo, userRepo)
	guestspotService := services.NewGuestspotService(guestspotRepo, parlorRepo, artistRepo)
	reviewService := services.NewReviewService(reviewRepo, artistRepo, parlorRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, artistRepo, parlorRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.Setup(router, routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Artist:      handlers.NewArtistHandler(artistService),
		Parlor:      handlers.NewParlorHandler(parlorService, artistService),
		Guestspot:   handlers.NewGuestspotHandler(guestspotService),
		Review:      handlers.NewReviewHandler(reviewService),
		Appointment: handlers.NewAppointmentHandler(appointmentService, artistService),
	})

	return router
}

// seedAdmin creates the admin account from config on first start.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository(db)
	if _, err := userRepo.FindByEmail(cfg.Admin.Email); err == nil {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}

	admin := &models.User{
		Email:        cfg.Admin.Email,
		Username:     username,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Name:         "Administrator",
	}
	if err := userRepo.Create(admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	logger.Info("seeded admin account", "email", cfg.Admin.Email)
	return nil
}

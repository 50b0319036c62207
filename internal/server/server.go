package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/rukundohamza104/radical-design-ltd/internal/database"
	"github.com/rukundohamza104/radical-design-ltd/internal/middlewares"
	"github.com/rukundohamza104/radical-design-ltd/internal/repositories"
	"github.com/rukundohamza104/radical-design-ltd/internal/services"
)

type Server struct {
	port             int
	httpServer       *http.Server
	db               database.Service
	sessionStore     services.SessionStore
	messageService   services.MessageService
	galleryService   services.GalleryService
	catalogService   services.CatalogService
	settingsService  services.SettingsService
	aboutService     services.AboutService
	dashboardService services.DashboardService
	authService      services.AuthService
	otpService       services.OTPService
}

func NewServer() *Server {
	portStr := os.Getenv("PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Warn().Str("port", portStr).Msg("Invalid PORT environment variable. Using default 8080.")
		port = 8080
	}

	db := database.New()

	messageRepo := repositories.NewMessageRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	aboutRepo := repositories.NewAboutRepository(db)
	credsRepo := repositories.NewCredentialsRepository(db)
	otpRepo := repositories.NewOTPRepository(db)

	sessionStore := services.NewSessionStoreFromEnv()
	emailService := services.NewEmailService()
	otpService := services.NewOTPService(otpRepo, emailService)

	s := &Server{
		port:             port,
		db:               db,
		sessionStore:     sessionStore,
		messageService:   services.NewMessageService(messageRepo),
		galleryService:   services.NewGalleryService(galleryRepo),
		catalogService:   services.NewCatalogService(serviceRepo),
		settingsService:  services.NewSettingsService(settingsRepo),
		aboutService:     services.NewAboutService(aboutRepo),
		dashboardService: services.NewDashboardService(messageRepo, galleryRepo, serviceRepo),
		authService:      services.NewAuthService(credsRepo, otpService, sessionStore),
		otpService:       otpService,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	go middlewares.CleanupVisitors()

	log.Info().Int("port", s.port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}

	if err := s.db.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
	}

	log.Info().Msg("Server exiting")
	done <- true
}

package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rukundohamza104/radical-design-ltd/internal/handlers"
	"github.com/rukundohamza104/radical-design-ltd/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(middlewares.CorsMiddleware)
	r.Use(middlewares.RateLimit)
	r.Use(middlewares.Instrument)

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/api/ping", ch.PingHandler).Methods("GET", "OPTIONS")
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET", "OPTIONS")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth := handlers.NewAuthHandler(s.authService, s.otpService)

	s.registerPublicRoutes(r)
	s.registerAuthRoutes(r, auth)
	s.registerAdminRoutes(r, auth)

	return r
}

func (s *Server) registerPublicRoutes(r *mux.Router) {
	cth := handlers.NewContactHandler(s.messageService)
	gh := handlers.NewGalleryHandler(s.galleryService)
	svh := handlers.NewServiceHandler(s.catalogService)
	ah := handlers.NewAboutHandler(s.aboutService)

	r.HandleFunc("/api/contact", cth.SubmitContactForm).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/gallery", gh.GetVisibleGallery).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/services", svh.GetVisibleServices).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/about", ah.GetAboutContent).Methods("GET", "OPTIONS")
}

func (s *Server) registerAuthRoutes(r *mux.Router, ah *handlers.AuthHandler) {
	r.HandleFunc("/api/admin/login", ah.Login).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/admin/logout", ah.Logout).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/admin/forgot-password", ah.ForgotPassword).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/admin/verify-otp", ah.VerifyOTP).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/admin/reset-password", ah.ResetPassword).Methods("POST", "OPTIONS")
}

func (s *Server) registerAdminRoutes(r *mux.Router, ah *handlers.AuthHandler) {
	guard := middlewares.RequireAdminSession(s.sessionStore)

	dh := handlers.NewDashboardHandler(s.dashboardService)
	mh := handlers.NewMessageHandler(s.messageService)
	gh := handlers.NewGalleryHandler(s.galleryService)
	svh := handlers.NewServiceHandler(s.catalogService)
	sth := handlers.NewSettingsHandler(s.settingsService)
	abh := handlers.NewAboutHandler(s.aboutService)

	r.Handle("/api/admin/dashboard", guard(http.HandlerFunc(dh.GetDashboardStats))).Methods("GET", "OPTIONS")

	r.Handle("/api/admin/messages", guard(http.HandlerFunc(mh.GetMessages))).Methods("GET", "OPTIONS")
	r.Handle("/api/admin/messages/{id}", guard(http.HandlerFunc(mh.DeleteMessage))).Methods("DELETE", "OPTIONS")
	r.Handle("/api/admin/messages/{id}/read", guard(http.HandlerFunc(mh.MarkMessageRead))).Methods("PATCH", "OPTIONS")

	r.HandleFunc("/api/admin/gallery", gh.GetGallery).Methods("GET", "OPTIONS")
	r.Handle("/api/admin/gallery", guard(http.HandlerFunc(gh.AddGalleryImage))).Methods("POST", "OPTIONS")
	r.Handle("/api/admin/gallery/{id}", guard(http.HandlerFunc(gh.UpdateGalleryImage))).Methods("PATCH", "OPTIONS")
	r.Handle("/api/admin/gallery/{id}", guard(http.HandlerFunc(gh.DeleteGalleryImage))).Methods("DELETE", "OPTIONS")

	r.Handle("/api/admin/services", guard(http.HandlerFunc(svh.GetServices))).Methods("GET", "OPTIONS")
	r.Handle("/api/admin/services", guard(http.HandlerFunc(svh.AddService))).Methods("POST", "OPTIONS")
	r.Handle("/api/admin/services/{id}", guard(http.HandlerFunc(svh.UpdateService))).Methods("PATCH", "OPTIONS")
	r.Handle("/api/admin/services/{id}", guard(http.HandlerFunc(svh.DeleteService))).Methods("DELETE", "OPTIONS")

	r.Handle("/api/admin/settings", guard(http.HandlerFunc(sth.GetSettings))).Methods("GET", "OPTIONS")
	r.Handle("/api/admin/settings", guard(http.HandlerFunc(sth.UpdateSettings))).Methods("PATCH", "OPTIONS")
	r.Handle("/api/admin/settings/password", guard(http.HandlerFunc(ah.ChangePassword))).Methods("POST", "OPTIONS")

	r.HandleFunc("/api/admin/about", abh.GetAboutContent).Methods("GET", "OPTIONS")
	r.Handle("/api/admin/about", guard(http.HandlerFunc(abh.UpdateAboutContent))).Methods("PATCH", "OPTIONS")
}

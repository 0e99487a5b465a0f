// Package httpapi is the HTTP transport: router, middleware and handlers.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"imagevault/internal/config"
	"imagevault/internal/logging"
	"imagevault/internal/services"
)

// Server bundles the handlers with their dependencies.
type Server struct {
	config   *config.Config
	logger   logging.Logger
	auth     *services.AuthService
	users    *services.UserService
	uploads  *services.UploadService
	tracking *services.TrackingService
	started  time.Time
}

func NewServer(
	cfg *config.Config,
	logger logging.Logger,
	auth *services.AuthService,
	users *services.UserService,
	uploads *services.UploadService,
	tracking *services.TrackingService,
) *Server {
	return &Server{
		config:   cfg,
		logger:   logger,
		auth:     auth,
		users:    users,
		uploads:  uploads,
		tracking: tracking,
		started:  time.Now(),
	}
}

// Routes builds the router with the full middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Use(corsMiddleware.Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(2 * time.Minute))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Post("/auth/login", s.handleLogin)

	r.Post("/users", s.handleCreateUser)
	r.Get("/users", s.handleListUsers)
	r.Get("/users/{id}", s.handleGetUser)
	r.Put("/users/{id}", s.handleUpdateUser)
	r.Delete("/users/{id}", s.handleDeleteUser)

	r.Post("/upload", s.handleCreateUpload)
	r.Get("/upload", s.handleListUploads)

	// Protected routes.
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/auth/verify", s.handleVerify)
		r.Get("/upload/{id}/url", s.handleUploadURL)
		r.Post("/tracking/track", s.handleTrack)
		r.Get("/tracking/stats", s.handleTrackingStats)
		r.Get("/tracking/log", s.handleTrackingLog)
		r.Delete("/tracking/log", s.handleTrackingClear)
		r.Get("/admin/dashboard", s.handleAdminDashboard)
	})

	return r
}

package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "realnest-backend/internal/core/port"
)

// Handlers - все обработчики, которые вешаются на роутер.
type Handlers struct {
	Auth     *AuthHandlers
	User     *UserHandlers
	Property *PropertyHandlers
	Contact  *ContactHandlers
	Admin    *AdminHandlers
	Expert   *ExpertHandlers
}

// Server - REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer собирает роутер и настраивает middleware.
// authMW проверяет токен, adminMW поверх него требует роль администратора.
func NewServer(
	port string,
	handlers Handlers,
	authMW func(http.Handler) http.Handler,
	baseLogger core_port.LoggerPort,
	uploadsDir string,
	allowedOrigin string,
) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"service": "realnest-backend",
		})
	})

	// Загруженные изображения отдаются статикой.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.Auth.Register)
			r.Post("/login", handlers.Auth.Login)
			r.With(authMW).Get("/profile", handlers.Auth.Profile)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(authMW)
			r.Get("/profile", handlers.Auth.Profile)
			r.Put("/profile", handlers.User.UpdateProfile)
			r.Put("/password", handlers.User.ChangePassword)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", handlers.Property.List)
			r.Get("/{id}", handlers.Property.Get)

			r.Group(func(r chi.Router) {
				r.Use(authMW)
				r.Post("/", handlers.Property.Create)
				r.Put("/{id}", handlers.Property.Update)
				r.Delete("/{id}", handlers.Property.Delete)
				r.Post("/{id}/images", handlers.Property.AddImages)
				r.Delete("/{id}/images/{imageID}", handlers.Property.DeleteImage)
				r.Get("/user/my-properties", handlers.Property.MyProperties)
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", handlers.Contact.Send)

			r.Group(func(r chi.Router) {
				r.Use(authMW, AdminMiddleware)
				r.Get("/", handlers.Contact.List)
				r.Get("/{id}", handlers.Contact.Get)
				r.Put("/{id}/mark-read", handlers.Contact.MarkRead)
				r.Post("/{id}/reply", handlers.Contact.Reply)
				r.Delete("/{id}", handlers.Contact.Delete)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMW, AdminMiddleware)
			r.Get("/users", handlers.Admin.ListUsers)
			r.Get("/users/{id}", handlers.Admin.GetUser)
			r.Put("/users/{id}/toggle-active", handlers.Admin.ToggleUserActive)
			r.Put("/users/{id}/toggle-admin", handlers.Admin.ToggleUserAdmin)
			r.Delete("/users/{id}", handlers.Admin.DeleteUser)
			r.Get("/contacts", handlers.Contact.List)
			r.Patch("/contacts/{id}/status", handlers.Contact.UpdateStatus)
			r.Get("/dashboard/stats", handlers.Admin.DashboardStats)
		})

		r.Route("/expert", func(r chi.Router) {
			r.Get("/districts", handlers.Expert.Districts)
			r.Post("/calculate-price", handlers.Expert.CalculatePrice)
		})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}

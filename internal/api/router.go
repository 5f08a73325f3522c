package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"swiftie_sanctuary/internal/api/handler"
	"swiftie_sanctuary/internal/api/middleware"
	"swiftie_sanctuary/internal/app/service"
	"swiftie_sanctuary/internal/platform/config"
)

func NewRouter(
	cfg *config.Config,
	sessions *middleware.SessionMiddleware,
	authService *service.AuthService,
	memberService *service.MemberService,
	userService *service.UserService,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Credentialed CORS for the browser frontend. Requests without an Origin
	// header (curl, server-to-server) are not touched by this middleware.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Resolve the session cookie for every request; guards are attached per
	// route group below.
	r.Use(sessions.Loader)

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	cookies := handler.CookiePolicy{
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(cfg.SessionTTL.Seconds()),
	}
	if cfg.IsProduction() {
		cookies.SameSite = http.SameSiteNoneMode
	}

	r.Route("/api", func(api chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService, cookies, logger)
		api.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		// Member story routes (public list, authenticated create, admin edit)
		memberHandler := handler.NewMemberHandler(memberService, sessions, logger)
		api.Route("/members", memberHandler.RegisterRoutes)

		// User management routes (admin)
		userHandler := handler.NewUserHandler(userService, sessions, logger)
		api.Route("/users", userHandler.RegisterRoutes)
	})

	return r
}

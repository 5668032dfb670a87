package wire

import (
	"net/http"

	"solar-marketplace/internal/adaptor"
	"solar-marketplace/internal/data/repository"
	"solar-marketplace/internal/usecase"
	"solar-marketplace/pkg/middleware"
	"solar-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, config *utils.Config, jwtUtil *utils.JWTUtil, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, jwtUtil, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, jwtUtil, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	jwtUtil *utils.JWTUtil,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Auth middleware stack shared by the protected feature routes
	authMW := middleware.Auth(jwtUtil, repo.Account, logger)
	adminMW := middleware.Admin(logger)
	verifiedMW := middleware.Verified(logger)

	// One shared limiter keyed by client IP covers the credential endpoints
	limiter := middleware.NewIPRateLimiter(config.RateLimit.PerMinute, config.RateLimit.Burst)
	rateLimitMW := middleware.RateLimit(limiter, logger)

	// Apply routes
	wireAuth(r, handler.Auth, rateLimitMW)
	wireListing(r, handler.Listing, handler.Marketplace, authMW, verifiedMW)
	wireAdmin(r, handler.Admin, authMW, adminMW)
	wireDirectory(r, handler.Directory, authMW, verifiedMW)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

package wire

import (
	"net/http"

	"hire-nest/internal/adaptor"
	"hire-nest/internal/data/repository"
	"hire-nest/internal/usecase"
	"hire-nest/pkg/middleware"
	"hire-nest/pkg/token"
	"hire-nest/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	issuer *token.Issuer,
	sender usecase.Sender,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, issuer, sender, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, issuer, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	issuer *token.Issuer,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler, repo, issuer, logger)
	wireVerify(r, handler.Verify, repo, issuer, logger)

	// Health check endpoint
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "pong", nil)
	})

	return r
}

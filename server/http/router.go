package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"migel-service/internal/config"
	"migel-service/internal/middleware"
	migelHnd "migel-service/internal/migel/handler"
	"migel-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, cat *migelHnd.Catalog) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Post("/match", migelHnd.Match(cat, logger))
	r.Post("/refresh", migelHnd.Refresh(cat, logger))

	return r
}

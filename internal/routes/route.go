package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"resource-directory/internal/config"
	"resource-directory/internal/handlers"
	"resource-directory/internal/logger"
	mdlwr "resource-directory/internal/middleware"
	"resource-directory/internal/repository"
	"resource-directory/internal/services"
)

func NewRouter(db *bun.DB, cfg *config.Config, logr *logger.Logger) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mdlwr.NewRequestLogger(logr.Logger).Handler)

	// CORS middleware with config; the directory is read-only
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	repo := repository.NewResourceRepository(db)
	resourceSvc := services.NewResourceService(repo, services.DistanceFuncFor(cfg.DistanceMetric), logr.Logger)
	resourceHandler := handlers.NewResourceHandler(resourceSvc, logr.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logr.Warn("health check failed", zap.Error(err))
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("ok"))
		if err != nil {
			return
		}
	})

	r.Route("/resources", func(r chi.Router) {
		r.Get("/", resourceHandler.SearchResources)
		r.Get("/{id}", resourceHandler.GetResourceByID)
	})

	r.Get("/categories", resourceHandler.ListCategories)

	return r
}

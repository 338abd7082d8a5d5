package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	// query engine
	router.Get("/api/images/random", h.randomImages)
	router.Get("/api/images/search", h.searchImages)
	router.Get("/api/images/stats", h.replicaReport)
	router.Get("/api/images/{id}", h.imageByID)
	router.Post("/api/images/{id}/refresh", h.refreshImage)

	// reconciliation engine
	router.Get("/api/sync/should", h.shouldSync)
	router.Post("/api/sync", h.syncImages)
	router.Post("/api/sync/force", h.forceSync)
	router.Get("/api/sync/status", h.syncStatus)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

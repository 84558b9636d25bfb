package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const assetsPrefix = "/assets/"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Get("/users", h.listUsers)
	})

	router.Get("/api/version", h.getServerVersion)

	if h.cfg.AssetsDir != "" {
		fileServer := http.StripPrefix(assetsPrefix, http.FileServer(http.Dir(h.cfg.AssetsDir)))
		router.Get(assetsPrefix+"*", fileServer.ServeHTTP)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"governance-explorer/internal/ui/assets"
)

func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/ui/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", h.BundlesList)
	r.Get("/history", h.BundleHistory)
	r.Get("/metrics", h.Metrics)
}

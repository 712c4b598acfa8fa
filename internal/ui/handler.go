// Package ui renders the server-side HTML dashboard.
package ui

import (
	"io"
	"log/slog"
	"net/http"

	"governance-explorer/internal/service/audit"
	"governance-explorer/internal/service/bundle"

	gomponents "maragu.dev/gomponents"
)

type Handler struct {
	Bundles *bundle.Service
	History *audit.Service
	Catalog audit.Catalog
	Logger  *slog.Logger
}

func NewHandler(bundleSvc *bundle.Service, historySvc *audit.Service, catalog audit.Catalog, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		Bundles: bundleSvc,
		History: historySvc,
		Catalog: catalog,
		Logger:  logger,
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

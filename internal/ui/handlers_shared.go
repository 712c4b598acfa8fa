package ui

import (
	"errors"
	"net/http"

	"governance-explorer/internal/domain"
)

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Unexpected Error"
	message := "An unexpected error occurred while loading this page."

	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		title = "Not Found"
		message = notFound.Error()
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
		title = "Invalid Request"
		message = validation.Error()
	}

	h.Logger.Error("page render failed", "path", r.URL.Path, "status", status, "error", err)
	renderHTML(w, status, errorPage(title, message))
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

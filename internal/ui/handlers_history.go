package ui

import (
	"net/http"

	"governance-explorer/internal/service/audit"
)

func (h *Handler) BundleHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	names, err := h.Bundles.Names(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	projects, err := h.Bundles.Projects(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	d := historyPageData{
		BundleNames:     names,
		SelectedBundle:  formString(query, "bundle"),
		Actions:         h.Catalog.Actions,
		SelectedActions: map[string]bool{},
		Projects:        projects,
		SelectedProject: formString(query, "project"),
		Since:           formString(query, "since"),
		Until:           formString(query, "until"),
	}
	selectedActions := formStrings(query, "action")
	for _, a := range selectedActions {
		d.SelectedActions[a] = true
	}

	if d.SelectedBundle != "" {
		b, err := h.Bundles.FindByName(r.Context(), d.SelectedBundle)
		if err != nil {
			h.renderServiceError(w, r, err)
			return
		}

		q := audit.HistoryQuery{
			ActionNames: selectedActions,
			Since:       d.Since,
			Until:       d.Until,
		}
		if d.SelectedProject != "" {
			q.ProjectNames = []string{d.SelectedProject}
		}
		rows, err := h.History.History(r.Context(), b.ID, q)
		if err != nil {
			h.renderServiceError(w, r, err)
			return
		}

		d.Rows = make([]historyRowData, 0, len(rows))
		for i := range rows {
			row := rows[i]
			d.Rows = append(d.Rows, historyRowData{
				Time:    row.Time,
				Action:  row.Action,
				Stage:   row.Stage,
				User:    row.User,
				Project: row.Project,
				Bundle:  row.Bundle,
				Before:  row.Before,
				After:   row.After,
				Change:  row.Change,
				Raw:     row.RawFieldChanges,
			})
		}
	}

	renderHTML(w, http.StatusOK, historyPage(d))
}

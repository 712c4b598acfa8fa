package ui

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"governance-explorer/internal/domain"
	"governance-explorer/internal/service/bundle"
)

func (h *Handler) BundlesList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Bundles.ListRows(r.Context(), time.Now().UTC())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	display := make([]bundlesListRowData, 0, len(rows))
	for i := range rows {
		row := rows[i]
		display = append(display, bundlesListRowData{
			Filter:       strings.Join([]string{row.BundleName, row.ProjectName, row.PolicyName, row.CurrentStageAssignee, row.State}, " "),
			Name:         row.BundleName,
			HistoryURL:   "/ui/history?bundle=" + url.QueryEscape(row.BundleName),
			State:        dash(row.State),
			StateTone:    stateTone(row.State),
			CurrentStage: dash(row.CurrentStage),
			Assignee:     dash(row.CurrentStageAssignee),
			Days:         formatDays(row.DaysInStage),
			LastUpdated:  dash(row.LastUpdated),
			Project:      dash(row.ProjectName),
			Policy:       dash(row.PolicyName),
			Created:      dash(row.Created),
			Owner:        dash(row.Owner),
			Stages:       stageSlots(row),
			Branch:       dash(row.RepoBranch),
		})
	}
	renderHTML(w, http.StatusOK, bundlesListPage(display))
}

// stageSlots renders the fixed stage slots as "stage (assignee)" lines,
// skipping empty slots.
func stageSlots(row bundle.Row) []string {
	out := make([]string, 0, len(row.StageNames))
	for i, name := range row.StageNames {
		if name == "" {
			continue
		}
		out = append(out, name+" ("+row.StageAssignees[i]+")")
	}
	return out
}

func formatDays(days int) string {
	if days == domain.DaysUnknown {
		return "-"
	}
	return strconv.Itoa(days)
}

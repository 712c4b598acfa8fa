package ui

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"governance-explorer/internal/service/bundle"
)

const metricsTopN = 15

func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Bundles.MetricsRows(r.Context(), time.Now().UTC())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	top := bundle.TopByDays(rows, metricsTopN)
	maxDays := 0
	for _, t := range top {
		if t.DaysInStage > maxDays {
			maxDays = t.DaysInStage
		}
	}

	bars := make([]metricsBarData, 0, len(top))
	for _, t := range top {
		percent := 0
		if maxDays > 0 {
			percent = t.DaysInStage * 100 / maxDays
		}
		bars = append(bars, metricsBarData{
			Label:   t.BundleName + " (" + dash(t.CurrentStage) + ")",
			Days:    strconv.Itoa(t.DaysInStage),
			Percent: percent,
		})
	}

	display := make([]metricsRowData, 0, len(rows))
	for i := range rows {
		row := rows[i]
		display = append(display, metricsRowData{
			Filter:   strings.Join([]string{row.BundleName, row.ProjectName, row.CurrentStage}, " "),
			Name:     row.BundleName,
			Project:  dash(row.ProjectName),
			Policy:   dash(row.PolicyName),
			Stage:    dash(row.CurrentStage),
			Assignee: row.CurrentStageAssignee,
			Days:     formatDays(row.DaysInStage),
		})
	}

	renderHTML(w, http.StatusOK, metricsPage(bars, display))
}

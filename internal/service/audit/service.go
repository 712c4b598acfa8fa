package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"governance-explorer/internal/domain"
	"governance-explorer/internal/temporal"
)

// Row is one derived history-view row.
type Row struct {
	Time    string `json:"time"`
	Action  string `json:"action"`
	Stage   string `json:"stage"`
	User    string `json:"user"`
	Project string `json:"project"`
	Bundle  string `json:"bundle"`
	Before  string `json:"before"`
	After   string `json:"after"`
	Change  string `json:"change"`
	// RawFieldChanges is the per-target field-change payload as indented
	// JSON, for an optional detail expansion.
	RawFieldChanges string `json:"rawFieldChanges"`
}

// HistoryQuery narrows a bundle's audit trail. Empty fields mean no
// restriction. Since and Until accept full timestamps or bare dates.
type HistoryQuery struct {
	ActionNames  []string
	ProjectNames []string
	Since        string
	Until        string
}

// Service derives history rows from an audit event source.
type Service struct {
	src   domain.AuditEventSource
	limit int
}

// NewService creates a Service fetching up to limit events per trail.
func NewService(src domain.AuditEventSource, limit int) *Service {
	if limit <= 0 {
		limit = 500
	}
	return &Service{src: src, limit: limit}
}

// History returns derived rows for one bundle's audit trail, newest first as
// delivered by the source.
func (s *Service) History(ctx context.Context, bundleID string, q HistoryQuery) ([]Row, error) {
	filter := domain.EventFilter{
		TargetType: domain.EntityBundle,
		TargetID:   bundleID,
		Limit:      s.limit,
		Sort:       "-timestamp",
		Since:      windowBound(q.Since, "T00:00:00Z"),
		Until:      windowBound(q.Until, "T23:59:59Z"),
	}
	page, err := s.src.ListAuditEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}

	events := FilterEvents(page.Events, q.ActionNames, q.ProjectNames)
	rows := make([]Row, 0, len(events))
	for _, e := range events {
		d := DominantFieldChange(e)
		rows = append(rows, Row{
			Time:            temporal.Normalize(e.Timestamp).FormatZ(),
			Action:          e.ActionName,
			Stage:           AffectedStageName(e),
			User:            e.ActorName,
			Project:         e.ProjectName,
			Bundle:          BundleName(e),
			Before:          d.Before,
			After:           d.After,
			Change:          d.Field,
			RawFieldChanges: rawFieldChanges(e),
		})
	}
	return rows, nil
}

// windowBound validates a time-window bound and expands bare dates to a
// full UTC timestamp. Unparseable bounds are dropped, mirroring the
// sentinel degradation used everywhere else.
func windowBound(raw, suffix string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !temporal.Normalize(raw).Known() {
		return ""
	}
	if strings.Contains(raw, "T") {
		return raw
	}
	return strings.ReplaceAll(raw, "/", "-") + suffix
}

// rawFieldChanges renders the event's field changes grouped per target, one
// JSON array per target to keep the grouping visible.
func rawFieldChanges(e domain.AuditEvent) string {
	grouped := make([][]domain.FieldChange, 0, len(e.Targets))
	for _, t := range e.Targets {
		changes := t.FieldChanges
		if changes == nil {
			changes = []domain.FieldChange{}
		}
		grouped = append(grouped, changes)
	}
	data, err := json.MarshalIndent(grouped, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

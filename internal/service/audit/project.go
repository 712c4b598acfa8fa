// Package audit projects audit trail events into display-ready history
// rows. Projections are pure functions over single event documents and
// degrade to empty strings instead of failing.
package audit

import (
	"governance-explorer/internal/domain"
)

// Recognized field kinds for the dominant-change projection.
const (
	FieldStage    = "stage"
	FieldState    = "state"
	FieldAssignee = "assignee"
)

// Delta is the single field change selected to summarize an event.
type Delta struct {
	Before string
	After  string
	Field  string
}

// AffectedStageName resolves the stage an event touched. Some events carry
// the stage as a first-class affected entity, others only as a field delta;
// the delta form renders as "<before> → <after>". Empty string when the
// event touched no stage.
func AffectedStageName(e domain.AuditEvent) string {
	for _, a := range e.Affecting {
		if a.EntityType == domain.EntityStage && a.Name != "" {
			return a.Name
		}
	}
	for _, t := range e.Targets {
		for _, fc := range t.FieldChanges {
			if fc.FieldName == FieldStage {
				return fc.Before + " → " + fc.After
			}
		}
	}
	return ""
}

// DominantFieldChange returns the first recognized field change in document
// order. Stage and state changes report their scalar before/after; assignee
// changes read the removed/added name sets, defaulting each empty side to
// Unassigned. A zero Delta when no recognized kind is present.
func DominantFieldChange(e domain.AuditEvent) Delta {
	for _, t := range e.Targets {
		for _, fc := range t.FieldChanges {
			switch fc.FieldName {
			case FieldStage, FieldState:
				return Delta{Before: fc.Before, After: fc.After, Field: fc.FieldName}
			case FieldAssignee:
				return Delta{
					Before: firstName(fc.Removed),
					After:  firstName(fc.Added),
					Field:  FieldAssignee,
				}
			}
		}
	}
	return Delta{}
}

func firstName(names []string) string {
	if len(names) == 0 || names[0] == "" {
		return domain.Unassigned
	}
	return names[0]
}

// BundleName returns the name of the bundle an event targeted, scanning
// targets for the bundle entity kind. The last non-empty name wins.
func BundleName(e domain.AuditEvent) string {
	name := ""
	for _, t := range e.Targets {
		if t.EntityType == domain.EntityBundle && t.EntityName != "" {
			name = t.EntityName
		}
	}
	return name
}

// FilterEvents keeps events whose action name and project name are members
// of the respective sets. An empty set means no restriction, not "match
// nothing"; both filters apply independently. Relative order is preserved.
func FilterEvents(events []domain.AuditEvent, actionNames, projectNames []string) []domain.AuditEvent {
	if len(actionNames) == 0 && len(projectNames) == 0 {
		return events
	}
	actions := toSet(actionNames)
	projects := toSet(projectNames)
	out := make([]domain.AuditEvent, 0, len(events))
	for _, e := range events {
		if len(actions) > 0 {
			if _, ok := actions[e.ActionName]; !ok {
				continue
			}
		}
		if len(projects) > 0 {
			if _, ok := projects[e.ProjectName]; !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

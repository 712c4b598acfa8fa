package source

import (
	"fmt"
	"strings"

	"governance-explorer/internal/domain"
)

// Wire shapes of the governance API. Documents are decoded and defaulted
// once here so the rest of the app operates on fully-typed domain values.

type bundleEnvelope struct {
	Data    []wireBundle `json:"data"`
	Bundles []wireBundle `json:"bundles"`
}

func (e bundleEnvelope) items() []wireBundle {
	if len(e.Data) > 0 {
		return e.Data
	}
	return e.Bundles
}

type wireBundle struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	State        string           `json:"state"`
	Stage        string           `json:"stage"`
	ProjectName  string           `json:"projectName"`
	PolicyName   string           `json:"policyName"`
	ProjectOwner string           `json:"projectOwner"`
	CreatedBy    *wireActor       `json:"createdBy"`
	CreatedAt    string           `json:"createdAt"`
	Stages       []wireStageEntry `json:"stages"`
	Attachments  []wireAttachment `json:"attachments"`
}

type wireActor struct {
	UserName string `json:"userName"`
	Name     string `json:"name"`
}

type wireNamed struct {
	Name string `json:"name"`
}

type wireStageEntry struct {
	Stage    *wireNamed `json:"stage"`
	Assignee *wireNamed `json:"assignee"`
}

type wireAttachment struct {
	CreatedAt  string          `json:"createdAt"`
	Identifier *wireIdentifier `json:"identifier"`
}

type wireIdentifier struct {
	Branch string `json:"branch"`
}

func (w wireBundle) toDomain() domain.Bundle {
	stages := make([]domain.StageAssignment, 0, len(w.Stages))
	for _, s := range w.Stages {
		entry := domain.StageAssignment{}
		if s.Stage != nil {
			entry.StageName = s.Stage.Name
		}
		if s.Assignee != nil {
			entry.AssigneeName = s.Assignee.Name
		}
		stages = append(stages, entry)
	}

	atts := make([]domain.Attachment, 0, len(w.Attachments))
	for _, a := range w.Attachments {
		att := domain.Attachment{CreatedAt: a.CreatedAt}
		if a.Identifier != nil {
			att.Branch = a.Identifier.Branch
		}
		atts = append(atts, att)
	}

	owner := w.ProjectOwner
	if owner == "" && w.CreatedBy != nil {
		owner = w.CreatedBy.UserName
	}

	return domain.Bundle{
		ID:           w.ID,
		Name:         w.Name,
		State:        w.State,
		CurrentStage: w.Stage,
		ProjectName:  w.ProjectName,
		PolicyName:   w.PolicyName,
		Owner:        owner,
		CreatedAt:    w.CreatedAt,
		Stages:       stages,
		Attachments:  atts,
	}
}

type eventEnvelope struct {
	Events           []wireEvent `json:"events"`
	EstimatedMatches int         `json:"estimatedMatches"`
}

type wireEvent struct {
	Timestamp string           `json:"timestamp"`
	Action    *wireAction      `json:"action"`
	Actor     *wireNamed       `json:"actor"`
	In        *wireNamed       `json:"in"`
	Targets   []wireTarget     `json:"targets"`
	Affecting []wireEntity     `json:"affecting"`
}

type wireAction struct {
	EventName string `json:"eventName"`
}

type wireEntity struct {
	EntityType string `json:"entityType"`
	Name       string `json:"name"`
}

type wireTarget struct {
	Entity       *wireEntity       `json:"entity"`
	FieldChanges []wireFieldChange `json:"fieldChanges"`
}

type wireFieldChange struct {
	FieldName string      `json:"fieldName"`
	Before    any         `json:"before"`
	After     any         `json:"after"`
	Added     []wireNamed `json:"added"`
	Removed   []wireNamed `json:"removed"`
}

func (w wireEvent) toDomain() domain.AuditEvent {
	e := domain.AuditEvent{Timestamp: w.Timestamp}
	if w.Action != nil {
		e.ActionName = w.Action.EventName
	}
	if w.Actor != nil {
		e.ActorName = w.Actor.Name
	}
	if w.In != nil {
		e.ProjectName = w.In.Name
	}

	e.Targets = make([]domain.Target, 0, len(w.Targets))
	for _, t := range w.Targets {
		target := domain.Target{}
		if t.Entity != nil {
			target.EntityType = t.Entity.EntityType
			target.EntityName = t.Entity.Name
		}
		target.FieldChanges = make([]domain.FieldChange, 0, len(t.FieldChanges))
		for _, fc := range t.FieldChanges {
			target.FieldChanges = append(target.FieldChanges, domain.FieldChange{
				FieldName: fc.FieldName,
				Before:    asString(fc.Before),
				After:     asString(fc.After),
				Added:     names(fc.Added),
				Removed:   names(fc.Removed),
			})
		}
		e.Targets = append(e.Targets, target)
	}

	e.Affecting = make([]domain.AffectedEntity, 0, len(w.Affecting))
	for _, a := range w.Affecting {
		e.Affecting = append(e.Affecting, domain.AffectedEntity{EntityType: a.EntityType, Name: a.Name})
	}
	return e
}

// asString renders a loosely-typed wire value as a display string. JSON null
// and empty values map to "".
func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		s := fmt.Sprintf("%v", val)
		return strings.TrimSuffix(s, ".0")
	default:
		return fmt.Sprintf("%v", val)
	}
}

func names(entries []wireNamed) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

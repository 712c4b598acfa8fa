package domain

// AuditEvent is an immutable record of one state-changing action on a
// bundle.
type AuditEvent struct {
	Timestamp   string           `json:"timestamp"`
	ActionName  string           `json:"actionName"`
	ActorName   string           `json:"actorName"`
	ProjectName string           `json:"projectName"`
	Targets     []Target         `json:"targets"`
	Affecting   []AffectedEntity `json:"affecting"`
}

// Target is one entity an event acted on, with its field deltas.
type Target struct {
	EntityType   string        `json:"entityType"`
	EntityName   string        `json:"entityName"`
	FieldChanges []FieldChange `json:"fieldChanges"`
}

// AffectedEntity is an entity related to an event without being its target,
// e.g. the policy stage a bundle moved into.
type AffectedEntity struct {
	EntityType string `json:"entityType"`
	Name       string `json:"name"`
}

// FieldChange records one field delta. Added and Removed carry names for
// multi-valued fields (assignee sets) and take precedence over Before/After
// for those field kinds.
type FieldChange struct {
	FieldName string   `json:"fieldName"`
	Before    string   `json:"before,omitempty"`
	After     string   `json:"after,omitempty"`
	Added     []string `json:"added,omitempty"`
	Removed   []string `json:"removed,omitempty"`
}

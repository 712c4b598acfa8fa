package domain

import "context"

// EventFilter scopes an audit event listing to one target and time window.
// Empty fields are omitted from the request.
type EventFilter struct {
	TargetType string
	TargetID   string
	Limit      int
	Sort       string
	Since      string
	Until      string
}

// EventPage is one materialized audit event listing.
type EventPage struct {
	Events           []AuditEvent
	EstimatedMatches int
}

// BundleSource supplies bundle snapshots. An unreachable source and an empty
// one are indistinguishable to callers beyond the returned error.
type BundleSource interface {
	ListBundles(ctx context.Context, limit int) ([]Bundle, error)
}

// AuditEventSource supplies audit events scoped by an EventFilter. Events
// arrive sorted by the requested sort order; consumers do not re-sort.
type AuditEventSource interface {
	ListAuditEvents(ctx context.Context, filter EventFilter) (EventPage, error)
}

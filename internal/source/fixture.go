package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"governance-explorer/internal/domain"
)

// Fixture file names, matching the payloads the API would return.
const (
	bundlesFixture = "sample_bundles.json"
	eventsFixture  = "sample_events.json"
)

// Fixture serves bundles and audit events from JSON files on disk, mirroring
// the API payload shapes. Used for offline development and demos.
type Fixture struct {
	dir string
}

// NewFixture creates a Fixture reading from dir.
func NewFixture(dir string) *Fixture {
	return &Fixture{dir: dir}
}

// ListBundles reads the bundle fixture, honoring limit by truncation.
func (f *Fixture) ListBundles(_ context.Context, limit int) ([]domain.Bundle, error) {
	var envelope bundleEnvelope
	if err := f.read(bundlesFixture, &envelope); err != nil {
		return nil, err
	}
	wire := envelope.items()
	if limit > 0 && len(wire) > limit {
		wire = wire[:limit]
	}
	out := make([]domain.Bundle, 0, len(wire))
	for _, b := range wire {
		out = append(out, b.toDomain())
	}
	return out, nil
}

// ListAuditEvents reads the event fixture. Only the limit is honored; the
// fixture is assumed to already be scoped and sorted like an API response.
func (f *Fixture) ListAuditEvents(_ context.Context, filter domain.EventFilter) (domain.EventPage, error) {
	var envelope eventEnvelope
	if err := f.read(eventsFixture, &envelope); err != nil {
		return domain.EventPage{}, err
	}
	wire := envelope.Events
	if filter.Limit > 0 && len(wire) > filter.Limit {
		wire = wire[:filter.Limit]
	}
	events := make([]domain.AuditEvent, 0, len(wire))
	for _, e := range wire {
		events = append(events, e.toDomain())
	}
	estimated := envelope.EstimatedMatches
	if estimated == 0 {
		estimated = len(events)
	}
	return domain.EventPage{Events: events, EstimatedMatches: estimated}, nil
}

func (f *Fixture) read(name string, dst any) error {
	path := filepath.Join(f.dir, name)
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return nil
}

package audit

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"governance-explorer/internal/domain"
)

func TestService_History(t *testing.T) {
	t.Run("derives_rows_and_scopes_filter", func(t *testing.T) {
		var captured domain.EventFilter
		src := &mockEventSource{
			ListAuditEventsFn: func(_ context.Context, filter domain.EventFilter) (domain.EventPage, error) {
				captured = filter
				return domain.EventPage{
					Events: []domain.AuditEvent{{
						Timestamp:   "2024-04-01T09:00:00Z",
						ActionName:  "Change Governance Bundle Stage",
						ActorName:   "alice",
						ProjectName: "proj",
						Affecting:   []domain.AffectedEntity{{EntityType: domain.EntityStage, Name: "Review"}},
						Targets: []domain.Target{{
							EntityType: domain.EntityBundle,
							EntityName: "my-bundle",
							FieldChanges: []domain.FieldChange{
								{FieldName: "stage", Before: "Draft", After: "Review"},
							},
						}},
					}},
					EstimatedMatches: 1,
				}, nil
			},
		}
		svc := NewService(src, 500)

		rows, err := svc.History(context.Background(), "b-1", HistoryQuery{})
		require.NoError(t, err)

		assert.Equal(t, domain.EntityBundle, captured.TargetType)
		assert.Equal(t, "b-1", captured.TargetID)
		assert.Equal(t, 500, captured.Limit)
		assert.Equal(t, "-timestamp", captured.Sort)

		require.Len(t, rows, 1)
		row := rows[0]
		assert.Equal(t, "2024-04-01T09:00:00Z", row.Time)
		assert.Equal(t, "Change Governance Bundle Stage", row.Action)
		assert.Equal(t, "Review", row.Stage)
		assert.Equal(t, "alice", row.User)
		assert.Equal(t, "proj", row.Project)
		assert.Equal(t, "my-bundle", row.Bundle)
		assert.Equal(t, "Draft", row.Before)
		assert.Equal(t, "Review", row.After)
		assert.Equal(t, "stage", row.Change)
		assert.Contains(t, row.RawFieldChanges, `"fieldName": "stage"`)
	})

	t.Run("applies_action_and_project_filters", func(t *testing.T) {
		src := &mockEventSource{
			ListAuditEventsFn: func(_ context.Context, _ domain.EventFilter) (domain.EventPage, error) {
				return domain.EventPage{Events: []domain.AuditEvent{
					{ActionName: "X", ProjectName: "p1"},
					{ActionName: "Y", ProjectName: "p1"},
				}}, nil
			},
		}
		svc := NewService(src, 500)

		rows, err := svc.History(context.Background(), "b-1", HistoryQuery{ActionNames: []string{"X"}})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "X", rows[0].Action)
	})

	t.Run("expands_date_only_window_bounds", func(t *testing.T) {
		var captured domain.EventFilter
		src := &mockEventSource{
			ListAuditEventsFn: func(_ context.Context, filter domain.EventFilter) (domain.EventPage, error) {
				captured = filter
				return domain.EventPage{}, nil
			},
		}
		svc := NewService(src, 500)

		_, err := svc.History(context.Background(), "b-1", HistoryQuery{
			Since: "2024/01/02",
			Until: "2024-02-03",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-02T00:00:00Z", captured.Since)
		assert.Equal(t, "2024-02-03T23:59:59Z", captured.Until)
	})

	t.Run("drops_unparseable_window_bounds", func(t *testing.T) {
		var captured domain.EventFilter
		src := &mockEventSource{
			ListAuditEventsFn: func(_ context.Context, filter domain.EventFilter) (domain.EventPage, error) {
				captured = filter
				return domain.EventPage{}, nil
			},
		}
		svc := NewService(src, 500)

		_, err := svc.History(context.Background(), "b-1", HistoryQuery{Since: "whenever"})
		require.NoError(t, err)
		assert.Equal(t, "", captured.Since)
	})

	t.Run("passes_through_full_timestamps", func(t *testing.T) {
		var captured domain.EventFilter
		src := &mockEventSource{
			ListAuditEventsFn: func(_ context.Context, filter domain.EventFilter) (domain.EventPage, error) {
				captured = filter
				return domain.EventPage{}, nil
			},
		}
		svc := NewService(src, 500)

		_, err := svc.History(context.Background(), "b-1", HistoryQuery{Since: "2024-01-02T10:00:00Z"})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-02T10:00:00Z", captured.Since)
	})

	t.Run("source_error_propagates", func(t *testing.T) {
		src := &mockEventSource{
			ListAuditEventsFn: func(_ context.Context, _ domain.EventFilter) (domain.EventPage, error) {
				return domain.EventPage{}, errTest
			},
		}
		svc := NewService(src, 500)

		_, err := svc.History(context.Background(), "b-1", HistoryQuery{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errTest)
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("builtin_default", func(t *testing.T) {
		c, err := LoadCatalog("")
		require.NoError(t, err)
		assert.Contains(t, c.Actions, "Create Governance Bundle")
		assert.Contains(t, c.Actions, "Change Governance Bundle Stage")
		assert.Len(t, c.Actions, 12)
	})

	t.Run("override_file", func(t *testing.T) {
		path := t.TempDir() + "/events.yaml"
		require.NoError(t, os.WriteFile(path, []byte("actions:\n  - Custom Action\n"), 0o600))

		c, err := LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Custom Action"}, c.Actions)
	})

	t.Run("missing_override_is_an_error", func(t *testing.T) {
		_, err := LoadCatalog("/nonexistent/events.yaml")
		require.Error(t, err)
	})
}

package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"governance-explorer/internal/domain"
)

func TestAffectedStageName(t *testing.T) {
	t.Run("prefers_affecting_entity", func(t *testing.T) {
		e := domain.AuditEvent{
			Affecting: []domain.AffectedEntity{
				{EntityType: "governancePolicy", Name: "clinical"},
				{EntityType: domain.EntityStage, Name: "Review"},
			},
			Targets: []domain.Target{{
				FieldChanges: []domain.FieldChange{{FieldName: "stage", Before: "Draft", After: "Review"}},
			}},
		}
		assert.Equal(t, "Review", AffectedStageName(e))
	})

	t.Run("falls_back_to_stage_field_delta", func(t *testing.T) {
		e := domain.AuditEvent{
			Targets: []domain.Target{{
				FieldChanges: []domain.FieldChange{{FieldName: "stage", Before: "Draft", After: "Review"}},
			}},
		}
		assert.Equal(t, "Draft → Review", AffectedStageName(e))
	})

	t.Run("missing_delta_sides_render_empty", func(t *testing.T) {
		e := domain.AuditEvent{
			Targets: []domain.Target{{
				FieldChanges: []domain.FieldChange{{FieldName: "stage", After: "Review"}},
			}},
		}
		assert.Equal(t, " → Review", AffectedStageName(e))
	})

	t.Run("no_stage_anywhere", func(t *testing.T) {
		assert.Equal(t, "", AffectedStageName(domain.AuditEvent{}))
	})
}

func TestDominantFieldChange(t *testing.T) {
	t.Run("first_recognized_change_wins", func(t *testing.T) {
		e := domain.AuditEvent{Targets: []domain.Target{{
			FieldChanges: []domain.FieldChange{
				{FieldName: "comment", Before: "x", After: "y"},
				{FieldName: "state", Before: "Draft", After: "Active"},
				{FieldName: "stage", Before: "a", After: "b"},
			},
		}}}
		d := DominantFieldChange(e)
		assert.Equal(t, Delta{Before: "Draft", After: "Active", Field: "state"}, d)
	})

	t.Run("assignee_uses_added_and_removed", func(t *testing.T) {
		e := domain.AuditEvent{Targets: []domain.Target{{
			FieldChanges: []domain.FieldChange{
				{FieldName: "assignee", Added: []string{"bob"}, Removed: []string{"alice"}},
			},
		}}}
		d := DominantFieldChange(e)
		assert.Equal(t, Delta{Before: "alice", After: "bob", Field: "assignee"}, d)
	})

	t.Run("empty_removed_defaults_to_unassigned", func(t *testing.T) {
		e := domain.AuditEvent{Targets: []domain.Target{{
			FieldChanges: []domain.FieldChange{
				{FieldName: "assignee", Added: []string{"bob"}},
			},
		}}}
		d := DominantFieldChange(e)
		assert.Equal(t, Delta{Before: domain.Unassigned, After: "bob", Field: "assignee"}, d)
	})

	t.Run("no_field_changes_yields_zero_delta", func(t *testing.T) {
		assert.Equal(t, Delta{}, DominantFieldChange(domain.AuditEvent{}))
		assert.Equal(t, Delta{}, DominantFieldChange(domain.AuditEvent{
			Targets: []domain.Target{{FieldChanges: []domain.FieldChange{{FieldName: "comment"}}}},
		}))
	})

	t.Run("scans_across_targets", func(t *testing.T) {
		e := domain.AuditEvent{Targets: []domain.Target{
			{FieldChanges: []domain.FieldChange{{FieldName: "comment"}}},
			{FieldChanges: []domain.FieldChange{{FieldName: "stage", Before: "a", After: "b"}}},
		}}
		assert.Equal(t, "stage", DominantFieldChange(e).Field)
	})
}

func TestBundleName(t *testing.T) {
	e := domain.AuditEvent{Targets: []domain.Target{
		{EntityType: domain.EntityBundle, EntityName: "first"},
		{EntityType: "governancePolicy", EntityName: "ignored"},
		{EntityType: domain.EntityBundle, EntityName: "last"},
	}}
	assert.Equal(t, "last", BundleName(e))
	assert.Equal(t, "", BundleName(domain.AuditEvent{}))
}

func TestFilterEvents(t *testing.T) {
	events := []domain.AuditEvent{
		{ActionName: "X", ProjectName: "p1"},
		{ActionName: "Y", ProjectName: "p1"},
		{ActionName: "X", ProjectName: "p2"},
	}

	t.Run("action_filter_only", func(t *testing.T) {
		got := FilterEvents(events, []string{"X"}, nil)
		assert.Equal(t, []domain.AuditEvent{events[0], events[2]}, got)
	})

	t.Run("filters_combine_with_and", func(t *testing.T) {
		got := FilterEvents(events, []string{"X"}, []string{"p2"})
		assert.Equal(t, []domain.AuditEvent{events[2]}, got)
	})

	t.Run("empty_filters_mean_no_restriction", func(t *testing.T) {
		assert.Equal(t, events, FilterEvents(events, nil, nil))
		assert.Equal(t, events, FilterEvents(events, []string{}, []string{}))
	})

	t.Run("no_matches", func(t *testing.T) {
		assert.Empty(t, FilterEvents(events, []string{"Z"}, nil))
	})
}

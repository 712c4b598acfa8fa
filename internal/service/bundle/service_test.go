package bundle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"governance-explorer/internal/domain"
)

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func fixedSource(bundles []domain.Bundle) *mockBundleSource {
	return &mockBundleSource{
		ListBundlesFn: func(_ context.Context, _ int) ([]domain.Bundle, error) {
			return bundles, nil
		},
	}
}

func TestService_ListRows(t *testing.T) {
	t.Run("derives_and_sorts_by_name", func(t *testing.T) {
		src := fixedSource([]domain.Bundle{
			{
				ID:           "b-2",
				Name:         "zeta",
				State:        "Active",
				CurrentStage: "Review",
				ProjectName:  "proj",
				PolicyName:   "clinical",
				Owner:        "bob",
				CreatedAt:    "2024-05-01T00:00:00Z",
				Stages: []domain.StageAssignment{
					{StageName: "Draft", AssigneeName: "carol"},
					{StageName: "Review", AssigneeName: "Alice"},
				},
				Attachments: []domain.Attachment{
					{CreatedAt: "2024-05-20T00:00:00Z", Branch: "main"},
				},
			},
			{ID: "b-1", Name: "Alpha", CreatedAt: "2024-05-10T00:00:00Z"},
		})
		svc := NewService(src, 100)

		rows, err := svc.ListRows(context.Background(), testNow)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		// Case-insensitive name ordering.
		assert.Equal(t, "Alpha", rows[0].BundleName)
		assert.Equal(t, "zeta", rows[1].BundleName)

		z := rows[1]
		assert.Equal(t, "Alice", z.CurrentStageAssignee)
		assert.Equal(t, "2024-05-20T00:00:00Z", z.LastUpdated)
		assert.Equal(t, "2024-05-01T00:00:00Z", z.Created)
		assert.Equal(t, [StageSlots]string{"Draft", "Review", "", ""}, z.StageNames)
		assert.Equal(t, [StageSlots]string{"carol", "Alice", domain.Unassigned, domain.Unassigned}, z.StageAssignees)
		assert.Equal(t, "main", z.RepoBranch)
		assert.Equal(t, "b-2", z.BundleID)
		assert.Equal(t, 12, z.DaysInStage)
	})

	t.Run("empty_source_yields_empty_rows", func(t *testing.T) {
		svc := NewService(fixedSource(nil), 100)
		rows, err := svc.ListRows(context.Background(), testNow)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("source_error_propagates", func(t *testing.T) {
		src := &mockBundleSource{
			ListBundlesFn: func(_ context.Context, _ int) ([]domain.Bundle, error) {
				return nil, errTest
			},
		}
		svc := NewService(src, 100)
		_, err := svc.ListRows(context.Background(), testNow)
		require.Error(t, err)
		assert.ErrorIs(t, err, errTest)
	})
}

func TestService_MetricsRows(t *testing.T) {
	src := fixedSource([]domain.Bundle{
		{Name: "stale", CreatedAt: "2024-01-01T00:00:00Z"},
		{Name: "mystery"}, // no dates at all
		{Name: "fresh", CreatedAt: "2024-05-30T00:00:00Z"},
	})
	svc := NewService(src, 100)

	rows, err := svc.MetricsRows(context.Background(), testNow)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Descending by days, indeterminate last.
	assert.Equal(t, "stale", rows[0].BundleName)
	assert.Equal(t, "fresh", rows[1].BundleName)
	assert.Equal(t, "mystery", rows[2].BundleName)
	assert.Equal(t, domain.DaysUnknown, rows[2].DaysInStage)
}

func TestTopByDays(t *testing.T) {
	rows := []MetricsRow{
		{BundleName: "a", DaysInStage: 40},
		{BundleName: "b", DaysInStage: 10},
		{BundleName: "c", DaysInStage: domain.DaysUnknown},
		{BundleName: "d", DaysInStage: 0},
	}
	top := TopByDays(rows, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].BundleName)
	assert.Equal(t, "b", top[1].BundleName)

	assert.Len(t, TopByDays(rows, 10), 3, "indeterminate rows are excluded")
}

func TestService_NamesAndProjects(t *testing.T) {
	src := fixedSource([]domain.Bundle{
		{Name: "beta", ProjectName: "p2"},
		{Name: "Alpha", ProjectName: "p1"},
		{Name: "beta", ProjectName: "p1"},
		{Name: ""},
	})
	svc := NewService(src, 100)

	names, err := svc.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "beta"}, names)

	projects, err := svc.Projects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, projects)
}

func TestService_FindByName(t *testing.T) {
	t.Run("newest_wins", func(t *testing.T) {
		src := fixedSource([]domain.Bundle{
			{ID: "old", Name: "dup", CreatedAt: "2024-01-01T00:00:00Z"},
			{ID: "new", Name: "dup", CreatedAt: "2024-02-01T00:00:00Z"},
			{ID: "undated", Name: "dup"},
		})
		svc := NewService(src, 100)

		b, err := svc.FindByName(context.Background(), "dup")
		require.NoError(t, err)
		assert.Equal(t, "new", b.ID)
	})

	t.Run("missing_is_not_found", func(t *testing.T) {
		svc := NewService(fixedSource(nil), 100)
		_, err := svc.FindByName(context.Background(), "ghost")
		require.Error(t, err)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

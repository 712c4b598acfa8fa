package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"governance-explorer/internal/domain"
)

type mockBundleSource struct {
	ListBundlesFn func(ctx context.Context, limit int) ([]domain.Bundle, error)
	calls         int
}

func (m *mockBundleSource) ListBundles(ctx context.Context, limit int) ([]domain.Bundle, error) {
	m.calls++
	return m.ListBundlesFn(ctx, limit)
}

func TestStore_ListBundles(t *testing.T) {
	sample := []domain.Bundle{{ID: "b-1"}, {ID: "b-2"}}

	t.Run("caches_within_ttl", func(t *testing.T) {
		src := &mockBundleSource{
			ListBundlesFn: func(_ context.Context, _ int) ([]domain.Bundle, error) {
				return sample, nil
			},
		}
		store := NewStore(src, time.Minute, 1000, nil)

		first, err := store.ListBundles(context.Background(), 0)
		require.NoError(t, err)
		second, err := store.ListBundles(context.Background(), 0)
		require.NoError(t, err)

		assert.Equal(t, sample, first)
		assert.Equal(t, sample, second)
		assert.Equal(t, 1, src.calls)
	})

	t.Run("truncates_cached_snapshot_to_limit", func(t *testing.T) {
		src := &mockBundleSource{
			ListBundlesFn: func(_ context.Context, _ int) ([]domain.Bundle, error) {
				return sample, nil
			},
		}
		store := NewStore(src, time.Minute, 1000, nil)

		bundles, err := store.ListBundles(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, bundles, 1)
		assert.Equal(t, "b-1", bundles[0].ID)
	})

	t.Run("zero_ttl_bypasses_cache", func(t *testing.T) {
		src := &mockBundleSource{
			ListBundlesFn: func(_ context.Context, _ int) ([]domain.Bundle, error) {
				return sample, nil
			},
		}
		store := NewStore(src, 0, 1000, nil)

		_, err := store.ListBundles(context.Background(), 0)
		require.NoError(t, err)
		_, err = store.ListBundles(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, 2, src.calls)
	})

	t.Run("serves_stale_snapshot_on_refresh_failure", func(t *testing.T) {
		fail := false
		src := &mockBundleSource{
			ListBundlesFn: func(_ context.Context, _ int) ([]domain.Bundle, error) {
				if fail {
					return nil, errors.New("upstream down")
				}
				return sample, nil
			},
		}
		store := NewStore(src, time.Nanosecond, 1000, nil)

		_, err := store.ListBundles(context.Background(), 0)
		require.NoError(t, err)

		fail = true
		time.Sleep(time.Millisecond)
		bundles, err := store.ListBundles(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, sample, bundles)
	})

	t.Run("error_with_empty_cache_propagates", func(t *testing.T) {
		src := &mockBundleSource{
			ListBundlesFn: func(_ context.Context, _ int) ([]domain.Bundle, error) {
				return nil, errors.New("upstream down")
			},
		}
		store := NewStore(src, time.Minute, 1000, nil)

		_, err := store.ListBundles(context.Background(), 0)
		require.Error(t, err)
	})
}

func TestStore_Refresh(t *testing.T) {
	src := &mockBundleSource{
		ListBundlesFn: func(_ context.Context, limit int) ([]domain.Bundle, error) {
			assert.Equal(t, 42, limit)
			return []domain.Bundle{{ID: "b-9"}}, nil
		},
	}
	store := NewStore(src, time.Minute, 42, nil)

	require.NoError(t, store.Refresh(context.Background()))
	bundles, err := store.ListBundles(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, "b-9", bundles[0].ID)
	assert.Equal(t, 1, src.calls)
}

func TestStore_StartRefresh(t *testing.T) {
	src := &mockBundleSource{
		ListBundlesFn: func(_ context.Context, _ int) ([]domain.Bundle, error) {
			return nil, nil
		},
	}
	store := NewStore(src, time.Minute, 1000, nil)

	t.Run("rejects_bad_schedule", func(t *testing.T) {
		require.Error(t, store.StartRefresh("not a schedule"))
	})

	t.Run("starts_and_stops", func(t *testing.T) {
		require.NoError(t, store.StartRefresh("@every 1h"))
		store.Stop()
	})
}

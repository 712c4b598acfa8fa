package bundle

import (
	"context"
	"errors"

	"governance-explorer/internal/domain"
)

var errTest = errors.New("source unavailable")

type mockBundleSource struct {
	ListBundlesFn func(ctx context.Context, limit int) ([]domain.Bundle, error)
	calls         int
}

func (m *mockBundleSource) ListBundles(ctx context.Context, limit int) ([]domain.Bundle, error) {
	m.calls++
	return m.ListBundlesFn(ctx, limit)
}

package audit

import (
	"context"
	"errors"

	"governance-explorer/internal/domain"
)

var errTest = errors.New("source unavailable")

type mockEventSource struct {
	ListAuditEventsFn func(ctx context.Context, filter domain.EventFilter) (domain.EventPage, error)
}

func (m *mockEventSource) ListAuditEvents(ctx context.Context, filter domain.EventFilter) (domain.EventPage, error) {
	return m.ListAuditEventsFn(ctx, filter)
}

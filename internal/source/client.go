// Package source supplies bundle and audit event documents to the engine,
// either from the governance API or from local fixtures.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"governance-explorer/internal/domain"
)

const (
	apiKeyHeader = "X-Domino-Api-Key"

	bundlesPath = "/api/governance/v1/bundles"
	eventsPath  = "/api/audittrail/v1/auditevents"
)

// Client fetches governance bundles and audit events from the platform API.
type Client struct {
	host   string
	apiKey string
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a Client for the given API host. The API key is sent on
// every request when non-empty.
func NewClient(host, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		host:   strings.TrimRight(host, "/"),
		apiKey: apiKey,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// ListBundles fetches a snapshot of governance bundles.
func (c *Client) ListBundles(ctx context.Context, limit int) ([]domain.Bundle, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var envelope bundleEnvelope
	if err := c.get(ctx, bundlesPath, params, &envelope); err != nil {
		return nil, err
	}
	wire := envelope.items()
	out := make([]domain.Bundle, 0, len(wire))
	for _, b := range wire {
		out = append(out, b.toDomain())
	}
	c.logger.Debug("fetched bundles", "count", len(out))
	return out, nil
}

// ListAuditEvents fetches the audit trail scoped by filter.
func (c *Client) ListAuditEvents(ctx context.Context, filter domain.EventFilter) (domain.EventPage, error) {
	params := url.Values{}
	setNonEmpty(params, "targetType", filter.TargetType)
	setNonEmpty(params, "targetId", filter.TargetID)
	setNonEmpty(params, "sort", filter.Sort)
	setNonEmpty(params, "since", filter.Since)
	setNonEmpty(params, "until", filter.Until)
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}

	var envelope eventEnvelope
	if err := c.get(ctx, eventsPath, params, &envelope); err != nil {
		return domain.EventPage{}, err
	}
	events := make([]domain.AuditEvent, 0, len(envelope.Events))
	for _, e := range envelope.Events {
		events = append(events, e.toDomain())
	}
	c.logger.Debug("fetched audit events", "count", len(events), "estimated", envelope.EstimatedMatches)
	return domain.EventPage{Events: events, EstimatedMatches: envelope.EstimatedMatches}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	u := c.host + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func setNonEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

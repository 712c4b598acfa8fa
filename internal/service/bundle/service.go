package bundle

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"governance-explorer/internal/domain"
	"governance-explorer/internal/temporal"
)

// Row is one derived All-Bundles table row. Every value is already
// display-ready; missing facts carry their sentinel, never an error.
type Row struct {
	BundleName           string            `json:"bundleName"`
	State                string            `json:"state"`
	CurrentStage         string            `json:"currentStage"`
	CurrentStageAssignee string            `json:"currentStageAssignee"`
	LastUpdated          string            `json:"lastUpdated"`
	ProjectName          string            `json:"projectName"`
	PolicyName           string            `json:"policyName"`
	Created              string            `json:"created"`
	Owner                string            `json:"owner"`
	StageNames           [StageSlots]string `json:"stageNames"`
	StageAssignees       [StageSlots]string `json:"stageAssignees"`
	RepoBranch           string            `json:"repoBranch"`
	BundleID             string            `json:"bundleId"`
	DaysInStage          int               `json:"daysInStage"`
}

// MetricsRow is one row of the days-in-stage ranking.
type MetricsRow struct {
	BundleName           string `json:"bundleName"`
	ProjectName          string `json:"projectName"`
	PolicyName           string `json:"policyName"`
	CurrentStage         string `json:"currentStage"`
	CurrentStageAssignee string `json:"currentStageAssignee"`
	DaysInStage          int    `json:"daysInStage"`
}

// Service derives display rows from a bundle source.
type Service struct {
	src   domain.BundleSource
	limit int
}

// NewService creates a Service fetching up to limit bundles per listing.
func NewService(src domain.BundleSource, limit int) *Service {
	if limit <= 0 {
		limit = 1000
	}
	return &Service{src: src, limit: limit}
}

// ListRows derives the All-Bundles view, sorted by bundle name
// (case-insensitive). An empty source yields an empty slice.
func (s *Service) ListRows(ctx context.Context, now time.Time) ([]Row, error) {
	bundles, err := s.src.ListBundles(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}
	sort.SliceStable(bundles, func(i, j int) bool {
		return strings.ToLower(bundles[i].Name) < strings.ToLower(bundles[j].Name)
	})

	rows := make([]Row, 0, len(bundles))
	for _, b := range bundles {
		rows = append(rows, deriveRow(b, now))
	}
	return rows, nil
}

func deriveRow(b domain.Bundle, now time.Time) Row {
	names := OrderedStageNames(b)
	var assignees [StageSlots]string
	for i, name := range names {
		if name == "" {
			assignees[i] = domain.Unassigned
			continue
		}
		assignees[i] = StageAssignee(b.Stages, name)
	}
	return Row{
		BundleName:           b.Name,
		State:                b.State,
		CurrentStage:         b.CurrentStage,
		CurrentStageAssignee: CurrentStageAssignee(b),
		LastUpdated:          LastUpdated(b).FormatZ(),
		ProjectName:          b.ProjectName,
		PolicyName:           b.PolicyName,
		Created:              temporal.Normalize(b.CreatedAt).FormatZ(),
		Owner:                b.Owner,
		StageNames:           names,
		StageAssignees:       assignees,
		RepoBranch:           MostRecentBranch(b.Attachments),
		BundleID:             b.ID,
		DaysInStage:          DaysInCurrentStage(b, now),
	}
}

// MetricsRows derives the days-in-stage ranking, sorted descending with
// indeterminate bundles last.
func (s *Service) MetricsRows(ctx context.Context, now time.Time) ([]MetricsRow, error) {
	bundles, err := s.src.ListBundles(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}
	rows := make([]MetricsRow, 0, len(bundles))
	for _, b := range bundles {
		rows = append(rows, MetricsRow{
			BundleName:           b.Name,
			ProjectName:          b.ProjectName,
			PolicyName:           b.PolicyName,
			CurrentStage:         b.CurrentStage,
			CurrentStageAssignee: CurrentStageAssignee(b),
			DaysInStage:          DaysInCurrentStage(b, now),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		di, dj := rows[i].DaysInStage, rows[j].DaysInStage
		if (di == domain.DaysUnknown) != (dj == domain.DaysUnknown) {
			return dj == domain.DaysUnknown
		}
		return di > dj
	})
	return rows, nil
}

// TopByDays returns the first n rows with a determinate day count. Rows are
// expected in MetricsRows order.
func TopByDays(rows []MetricsRow, n int) []MetricsRow {
	out := make([]MetricsRow, 0, n)
	for _, r := range rows {
		if len(out) == n {
			break
		}
		if r.DaysInStage == domain.DaysUnknown {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Names returns the distinct bundle names, sorted case-insensitively.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	bundles, err := s.src.ListBundles(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}
	seen := make(map[string]struct{}, len(bundles))
	names := make([]string, 0, len(bundles))
	for _, b := range bundles {
		if b.Name == "" {
			continue
		}
		if _, ok := seen[b.Name]; ok {
			continue
		}
		seen[b.Name] = struct{}{}
		names = append(names, b.Name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names, nil
}

// Projects returns the distinct project names, sorted.
func (s *Service) Projects(ctx context.Context) ([]string, error) {
	bundles, err := s.src.ListBundles(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}
	seen := make(map[string]struct{}, len(bundles))
	projects := make([]string, 0, len(bundles))
	for _, b := range bundles {
		if b.ProjectName == "" {
			continue
		}
		if _, ok := seen[b.ProjectName]; ok {
			continue
		}
		seen[b.ProjectName] = struct{}{}
		projects = append(projects, b.ProjectName)
	}
	sort.Strings(projects)
	return projects, nil
}

// FindByName returns the newest bundle carrying the given name. Bundles with
// an unparseable creation time lose ties to parseable ones.
func (s *Service) FindByName(ctx context.Context, name string) (domain.Bundle, error) {
	bundles, err := s.src.ListBundles(ctx, s.limit)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("list bundles: %w", err)
	}
	var best domain.Bundle
	found := false
	for _, b := range bundles {
		if b.Name != name {
			continue
		}
		if !found || temporal.Normalize(b.CreatedAt).After(temporal.Normalize(best.CreatedAt)) {
			best = b
			found = true
		}
	}
	if !found {
		return domain.Bundle{}, domain.ErrNotFound("bundle %q not found", name)
	}
	return best, nil
}

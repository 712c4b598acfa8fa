// Package bundle derives display-ready facts from governance bundle
// documents. All derivations are pure functions that degrade to documented
// sentinels on malformed input; nothing here returns an error.
package bundle

import (
	"sort"
	"time"

	"governance-explorer/internal/domain"
	"governance-explorer/internal/temporal"
)

// StageSlots is the fixed number of stage columns in the tabular view.
const StageSlots = 4

// CurrentStageAssignee resolves the assignee of the bundle's current stage.
// domain.Unassigned when the current stage is empty, matches no stage entry,
// or the matching entry has no assignee.
func CurrentStageAssignee(b domain.Bundle) string {
	return StageAssignee(b.Stages, b.CurrentStage)
}

// StageAssignee looks up the assignee for a named stage, with the same
// Unassigned fallback as CurrentStageAssignee.
func StageAssignee(stages []domain.StageAssignment, stageName string) string {
	if stageName == "" {
		return domain.Unassigned
	}
	for _, s := range stages {
		if s.StageName == stageName {
			if s.AssigneeName == "" {
				return domain.Unassigned
			}
			return s.AssigneeName
		}
	}
	return domain.Unassigned
}

// OrderedStageNames returns the bundle's distinct stage names in first-seen
// order, truncated or padded with empty strings to exactly StageSlots
// entries for fixed-width display.
func OrderedStageNames(b domain.Bundle) [StageSlots]string {
	var out [StageSlots]string
	seen := make(map[string]struct{}, len(b.Stages))
	n := 0
	for _, s := range b.Stages {
		if n == StageSlots {
			break
		}
		name := s.StageName
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out[n] = name
		n++
	}
	return out
}

// LastUpdated is the latest parseable timestamp among the bundle's creation
// time and its attachments. Unknown when no candidate parses at all.
func LastUpdated(b domain.Bundle) temporal.Instant {
	latest := temporal.Normalize(b.CreatedAt)
	for _, att := range b.Attachments {
		latest = temporal.Max(latest, temporal.Normalize(att.CreatedAt))
	}
	return latest
}

// DaysInCurrentStage returns the number of whole days between the bundle's
// last update and now. domain.DaysUnknown when no timestamp is derivable;
// clamped to zero when the last update lies in the future.
func DaysInCurrentStage(b domain.Bundle, now time.Time) int {
	last := LastUpdated(b)
	if !last.Known() {
		return domain.DaysUnknown
	}
	days := int(now.UTC().Sub(last.Time()).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// MostRecentBranch scans attachments newest-first and returns the first
// non-empty branch identifier, or the empty string if none carries one.
// Attachments without a parseable timestamp sort last.
func MostRecentBranch(atts []domain.Attachment) string {
	if len(atts) == 0 {
		return ""
	}
	sorted := make([]domain.Attachment, len(atts))
	copy(sorted, atts)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := temporal.Normalize(sorted[i].CreatedAt)
		b := temporal.Normalize(sorted[j].CreatedAt)
		if a.Known() != b.Known() {
			return a.Known()
		}
		return a.After(b)
	})
	for _, att := range sorted {
		if att.Branch != "" {
			return att.Branch
		}
	}
	return ""
}

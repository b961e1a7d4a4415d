package service

import (
	"sort"

	"rift-tracker/internal/constants"
	"rift-tracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// mergeHistory prepends incoming summaries to the existing history,
// re-sorts the combination newest-first, and truncates to the history
// cap. Sorting is stable so equal timestamps keep their relative
// order across merges.
func mergeHistory(existing, incoming []domain.MatchSummary) []domain.MatchSummary {
	combined := make([]domain.MatchSummary, 0, len(existing)+len(incoming))
	combined = append(combined, incoming...)
	combined = append(combined, existing...)

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].StartTimestamp > combined[j].StartTimestamp
	})

	if len(combined) > constants.MatchHistoryCap {
		combined = combined[:constants.MatchHistoryCap]
	}
	return combined
}

// unionIDs appends the ids not already present, preserving existing
// order. The id set only ever grows; ids evicted from the capped
// history stay here so a later refresh cannot re-add their matches.
func unionIDs(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	union := make([]string, 0, len(existing)+len(incoming))
	for _, id := range existing {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		union = append(union, id)
	}
	for _, id := range incoming {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		union = append(union, id)
	}
	return union
}

func matchIDs(summaries []domain.MatchSummary) []string {
	ids := make([]string, 0, len(summaries))
	for _, m := range summaries {
		ids = append(ids, m.MatchID)
	}
	return ids
}

// newRevision tags a document write. Plain writes ignore it today; it
// is the token a compare-and-swap Put would check.
func newRevision() string {
	return gonanoid.Must(12)
}

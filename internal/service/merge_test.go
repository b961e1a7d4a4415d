package service

import (
	"testing"

	"rift-tracker/internal/domain"
)

func ts(id string, startTs int64) domain.MatchSummary {
	return domain.MatchSummary{MatchID: id, StartTimestamp: startTs}
}

func TestMergeHistorySortsNewestFirst(t *testing.T) {
	existing := []domain.MatchSummary{ts("b", 200), ts("d", 50)}
	incoming := []domain.MatchSummary{ts("c", 100), ts("a", 300)}

	merged := mergeHistory(existing, incoming)

	want := []string{"a", "b", "c", "d"}
	if len(merged) != len(want) {
		t.Fatalf("len = %d, want %d", len(merged), len(want))
	}
	for i, id := range want {
		if merged[i].MatchID != id {
			t.Fatalf("order = %v", merged)
		}
	}
}

func TestMergeHistoryTruncates(t *testing.T) {
	var existing []domain.MatchSummary
	for i := 0; i < 25; i++ {
		existing = append(existing, ts("old", int64(1000-i)))
	}
	merged := mergeHistory(existing, []domain.MatchSummary{ts("new", 2000)})
	if len(merged) != 20 {
		t.Fatalf("len = %d, want 20", len(merged))
	}
	if merged[0].MatchID != "new" {
		t.Fatalf("newest = %s, want new", merged[0].MatchID)
	}
}

func TestMergeHistoryStableOnEqualTimestamps(t *testing.T) {
	merged := mergeHistory(
		[]domain.MatchSummary{ts("x", 100)},
		[]domain.MatchSummary{ts("y", 100)},
	)
	// incoming precede existing when timestamps tie
	if merged[0].MatchID != "y" || merged[1].MatchID != "x" {
		t.Fatalf("tie order = %v", merged)
	}
}

func TestUnionIDs(t *testing.T) {
	union := unionIDs([]string{"m1", "m2"}, []string{"m2", "m3"})
	want := []string{"m1", "m2", "m3"}
	if len(union) != len(want) {
		t.Fatalf("union = %v", union)
	}
	for i, id := range want {
		if union[i] != id {
			t.Fatalf("union = %v, want %v", union, want)
		}
	}
}

func TestUnionIDsNilInputs(t *testing.T) {
	if got := unionIDs(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty union, got %v", got)
	}
	if got := unionIDs(nil, []string{"m1"}); len(got) != 1 || got[0] != "m1" {
		t.Fatalf("got %v", got)
	}
}

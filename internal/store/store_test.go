package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"rift-tracker/internal/domain"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
)

func testDocument() *domain.UserDocument {
	return &domain.UserDocument{
		Account: &domain.PlayerAccount{Puuid: "P1", GameName: "Faker", TagLine: "KR1"},
		MatchHistory: []domain.MatchSummary{
			{
				MatchID:        "m1",
				GameMode:       "CLASSIC",
				StartTimestamp: 1730000000000,
				Player:         &domain.PlayerStats{ChampionName: "Ahri", Win: true},
			},
		},
		StoredMatchIDs: []string{"m1"},
		LastUpdated:    "2025-06-15T12:00:00Z",
		Revision:       "rev-1",
	}
}

func checkRoundTrip(t *testing.T, s DocumentStore) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "Faker_KR1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before write, got %v", err)
	}

	doc := testDocument()
	if err := s.Put(ctx, "Faker_KR1", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, "Faker_KR1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Account == nil || got.Account.Puuid != "P1" {
		t.Fatalf("account did not round-trip: %+v", got.Account)
	}
	if len(got.MatchHistory) != 1 || got.MatchHistory[0].MatchID != "m1" {
		t.Fatalf("history did not round-trip: %+v", got.MatchHistory)
	}
	if got.MatchHistory[0].Player == nil || got.MatchHistory[0].Player.ChampionName != "Ahri" {
		t.Fatalf("player stats did not round-trip: %+v", got.MatchHistory[0].Player)
	}

	// Put is a full overwrite
	doc.Revision = "rev-2"
	doc.StoredMatchIDs = []string{"m1", "m2"}
	if err := s.Put(ctx, "Faker_KR1", doc); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	got, err = s.Get(ctx, "Faker_KR1")
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if got.Revision != "rev-2" || len(got.StoredMatchIDs) != 2 {
		t.Fatalf("overwrite not applied: %+v", got)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	checkRoundTrip(t, s)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	s, err := NewRedisStore(fmt.Sprintf("redis://%s/0", mr.Addr()), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	checkRoundTrip(t, s)
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rift-tracker/internal/domain"
	"rift-tracker/internal/riot"
	"rift-tracker/internal/service"
	"rift-tracker/internal/store"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
)

type stubRiot struct{}

func (stubRiot) AccountByRiotID(ctx context.Context, gameName, tagLine, platform string) (*domain.PlayerAccount, error) {
	return nil, riot.ErrNotFound
}

func (stubRiot) SummonerByPUUID(ctx context.Context, puuid, platform string) (*domain.SummonerInfo, error) {
	return nil, riot.ErrNotFound
}

func (stubRiot) RankedEntries(ctx context.Context, summonerID, platform string) ([]domain.RankedEntry, error) {
	return nil, nil
}

func (stubRiot) MatchIDsByPUUID(ctx context.Context, puuid, platform string, start, count int) ([]string, error) {
	return nil, nil
}

func (stubRiot) MatchByID(ctx context.Context, matchID, platform string) (*riot.Match, error) {
	return nil, riot.ErrNotFound
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	documents, err := store.NewRedisStore(fmt.Sprintf("redis://%s/0", mr.Addr()), zerolog.Nop())
	if err != nil {
		t.Fatalf("store.NewRedisStore: %v", err)
	}
	t.Cleanup(func() { documents.Close() })

	sync := service.NewSyncService(stubRiot{}, documents, zerolog.Nop())
	srv := httptest.NewServer(NewTrackerServer(sync, zerolog.Nop()).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp, payload
}

func TestSearchMissingFieldsReturns400(t *testing.T) {
	srv := newTestServer(t)
	resp, payload := postJSON(t, srv.URL+"/api/search", `{"tagLine":"KR1"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if payload["error"] == nil {
		t.Fatal("expected an error message")
	}
}

func TestSearchUnknownAccountReturns404(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := postJSON(t, srv.URL+"/api/search", `{"gameName":"Nobody","tagLine":"NA1","region":"na1"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRefreshUnknownUserReturns404(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := postJSON(t, srv.URL+"/api/refresh", `{"userId":"Nobody#NA1","region":"na1"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestLoadMoreUnknownUserReturnsMessage(t *testing.T) {
	srv := newTestServer(t)
	resp, payload := postJSON(t, srv.URL+"/api/load-more", `{"userId":"Nobody#NA1","start":0}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if payload["message"] != "No more matches to load!" {
		t.Fatalf("message = %v", payload["message"])
	}
}

func TestInvalidBodyReturns400(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := postJSON(t, srv.URL+"/api/search", `not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"rift-tracker/internal/config"
	"rift-tracker/internal/constants"
	"rift-tracker/internal/domain"

	"github.com/valyala/fasthttp"
)

// ErrNotFound marks a 404 from the upstream API: unknown Riot ID,
// summoner, or match.
var ErrNotFound = errors.New("riot: not found")

// StatusError is any other non-2xx upstream response. Callers treat
// it as "upstream unavailable"; there is deliberately no retry or
// backoff in this client.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("riot: status %d from %s", e.Code, e.URL)
}

type Client struct {
	apiKey string
	client *fasthttp.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey: cfg.RiotAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// AccountByRiotID resolves a Riot ID on the routing cluster for the
// given platform.
func (c *Client) AccountByRiotID(ctx context.Context, gameName, tagLine, platform string) (*domain.PlayerAccount, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		domain.RoutingRegion(platform), url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[domain.PlayerAccount](ctx, c, reqURL)
}

// SummonerByPUUID fetches the platform-scoped summoner record.
func (c *Client) SummonerByPUUID(ctx context.Context, puuid, platform string) (*domain.SummonerInfo, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s",
		platform, puuid)
	return doRequest[domain.SummonerInfo](ctx, c, reqURL)
}

// RankedEntries fetches all ranked queue entries for a summoner on
// its platform. An unranked summoner yields an empty slice.
func (c *Client) RankedEntries(ctx context.Context, summonerID, platform string) ([]domain.RankedEntry, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-summoner/%s",
		platform, summonerID)
	entries, err := doRequest[[]domain.RankedEntry](ctx, c, reqURL)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

// MatchIDsByPUUID lists match ids newest-first, paged by start/count,
// on the routing cluster for the platform.
func (c *Client) MatchIDsByPUUID(ctx context.Context, puuid, platform string, start, count int) ([]string, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d",
		domain.RoutingRegion(platform), puuid, start, count)
	ids, err := doRequest[[]string](ctx, c, reqURL)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

// MatchByID fetches the full match payload on the routing cluster.
func (c *Client) MatchByID(ctx context.Context, matchID, platform string) (*Match, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s",
		domain.RoutingRegion(platform), matchID)
	return doRequest[Match](ctx, c, reqURL)
}

func doRequest[T any](ctx context.Context, client *Client, reqURL string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(reqURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	if deadline, ok := ctx.Deadline(); ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("riot: request failed: %w", err)
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("riot: request failed: %w", err)
		}
	}

	switch {
	case resp.StatusCode() == fasthttp.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode() != fasthttp.StatusOK:
		return nil, &StatusError{Code: resp.StatusCode(), URL: reqURL}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("riot: decoding response: %w", err)
	}
	return &result, nil
}

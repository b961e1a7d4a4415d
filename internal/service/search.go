package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rift-tracker/internal/aggregate"
	"rift-tracker/internal/constants"
	"rift-tracker/internal/domain"
	"rift-tracker/internal/rank"
	"rift-tracker/internal/riot"
	"rift-tracker/internal/store"

	"golang.org/x/sync/errgroup"
)

const soloQueue = "RANKED_SOLO_5x5"

// Search serves a stored document when one exists for the identity,
// otherwise resolves the account upstream, collects the first capped
// page of qualifying matches, computes aggregates, and persists the
// fresh document.
func (s *SyncService) Search(ctx context.Context, identity domain.PlayerIdentity) (*SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if identity.GameName == "" || identity.TagLine == "" {
		return nil, fmt.Errorf("%w: game name and tag line are required", ErrValidation)
	}
	if identity.Region == "" {
		identity.Region = "na1"
	}

	userKey := identity.UserKey()
	log := s.logger.With().Str("user_key", userKey).Str("region", identity.Region).Logger()

	doc, err := s.store.Get(ctx, userKey)
	switch {
	case err == nil:
		log.Info().Msg("returning stored document")
		return s.resultFromDocument(userKey, identity, doc, true), nil
	case !errors.Is(err, store.ErrNotFound):
		log.Error().Err(err).Msg("store read failed")
		return nil, fmt.Errorf("failed to read user document: %w", err)
	}

	log.Info().Msg("no stored document, fetching from upstream")

	account, err := s.riot.AccountByRiotID(ctx, identity.GameName, identity.TagLine, identity.Region)
	if err != nil {
		if errors.Is(err, riot.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s#%s", ErrNotFound, identity.GameName, identity.TagLine)
		}
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	var (
		summoner *domain.SummonerInfo
		ranked   *domain.RankedEntry
		history  []domain.MatchSummary
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summoner, ranked, err = s.fetchRankedProfile(gCtx, account.Puuid, identity.Region)
		return err
	})

	g.Go(func() error {
		// Upstream failures inside the pager degrade to exhaustion;
		// this branch never fails the group.
		pager := newMatchPager(s.riot, log, account.Puuid, identity.Region)
		history = collect(gCtx, pager, func(collected int) bool {
			return collected >= constants.MatchHistoryCap
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	mostPlayed := aggregate.MostPlayedChampions(history, constants.SeasonStart, constants.TopChampionCount)
	metrics := aggregate.Performance(history)

	var mmr *domain.MMRData
	if ranked != nil {
		estimated := rank.Estimate(ranked.Tier, ranked.Rank, ranked.LeaguePoints)
		mmr = &domain.MMRData{
			EstimatedMMR: estimated,
			RankLabel:    rank.LabelFor(estimated),
			WinRate:      metrics.WinRate,
			KDA:          metrics.KDA,
			AverageCS:    metrics.AverageCS,
		}
	}

	doc = &domain.UserDocument{
		SummonerInfo:   summoner,
		Account:        account,
		RankedStats:    ranked,
		MostPlayed:     mostPlayed,
		MMRData:        mmr,
		MatchHistory:   mergeHistory(nil, history),
		StoredMatchIDs: unionIDs(nil, matchIDs(history)),
		LastUpdated:    s.now().UTC().Format(time.RFC3339),
		Revision:       newRevision(),
	}

	if err := s.store.Put(ctx, userKey, doc); err != nil {
		log.Error().Err(err).Msg("store write failed")
		return nil, fmt.Errorf("failed to save user document: %w", err)
	}

	log.Info().
		Int("matches", len(doc.MatchHistory)).
		Int("stored_ids", len(doc.StoredMatchIDs)).
		Msg("document created")

	return s.resultFromDocument(userKey, identity, doc, false), nil
}

// fetchRankedProfile resolves the platform summoner and its solo
// queue entry. An unranked summoner yields a nil entry.
func (s *SyncService) fetchRankedProfile(ctx context.Context, puuid, platform string) (*domain.SummonerInfo, *domain.RankedEntry, error) {
	summoner, err := s.riot.SummonerByPUUID(ctx, puuid, platform)
	if err != nil {
		if errors.Is(err, riot.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: summoner for puuid %s", ErrNotFound, puuid)
		}
		return nil, nil, fmt.Errorf("failed to fetch summoner: %w", err)
	}

	entries, err := s.riot.RankedEntries(ctx, summoner.ID, platform)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch ranked entries: %w", err)
	}

	for i := range entries {
		if entries[i].QueueType == soloQueue {
			return summoner, &entries[i], nil
		}
	}
	return summoner, nil, nil
}

func (s *SyncService) resultFromDocument(userKey string, identity domain.PlayerIdentity, doc *domain.UserDocument, fromCache bool) *SearchResult {
	history := doc.MatchHistory
	if len(history) > constants.MatchHistoryCap {
		history = history[:constants.MatchHistoryCap]
	}

	return &SearchResult{
		UserKey:      userKey,
		Identity:     identity,
		SummonerInfo: doc.SummonerInfo,
		RankedStats:  doc.RankedStats,
		MostPlayed:   doc.MostPlayed,
		MMRData:      doc.MMRData,
		Matches:      s.matchViews(history),
		LastUpdated:  s.lastUpdatedText(doc.LastUpdated),
		FromCache:    fromCache,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rift-tracker/internal/constants"
	"rift-tracker/internal/domain"
	"rift-tracker/internal/normalize"
	"rift-tracker/internal/store"
)

// Refresh pulls the newest page of match ids, walks it newest-first,
// and stops at the first id already merged into the document. The
// short-circuit assumes upstream pages are strictly newest-first;
// a match returned out of order behind a known id is missed. That is
// the intended trade, not exhaustive reconciliation.
func (s *SyncService) Refresh(ctx context.Context, userKey, region string) (*RefreshResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if userKey == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if region == "" {
		region = "na1"
	}

	key := domain.SanitizeUserKey(userKey)
	log := s.logger.With().Str("user_key", key).Logger()

	doc, err := s.store.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: user not found, search first", ErrNotFound)
	}
	if err != nil {
		log.Error().Err(err).Msg("store read failed")
		return nil, fmt.Errorf("failed to read user document: %w", err)
	}

	puuid := s.puuidFrom(doc)
	if puuid == "" {
		return nil, fmt.Errorf("%w: stored document has no puuid", ErrNotFound)
	}

	// Upstream failure here degrades to "no new matches".
	ids, err := s.riot.MatchIDsByPUUID(ctx, puuid, region, 0, constants.MatchPageSize)
	if err != nil {
		log.Warn().Err(err).Msg("match id fetch failed, treating as no new matches")
		ids = nil
	}

	var fresh []domain.MatchSummary
	for _, id := range ids {
		if doc.HasMatch(id) {
			// pages are newest-first: everything past a known id is
			// already merged
			break
		}
		raw, err := s.riot.MatchByID(ctx, id, region)
		if err != nil {
			log.Warn().Err(err).Str("match_id", id).Msg("match fetch failed, skipping")
			continue
		}
		summary, err := normalize.Match(raw, puuid)
		if err != nil {
			log.Debug().Err(err).Str("match_id", id).Msg("match rejected")
			continue
		}
		fresh = append(fresh, *summary)
	}

	doc.LastUpdated = s.now().UTC().Format(time.RFC3339)
	doc.Revision = newRevision()

	message := "No new matches"
	var freshIDs []string
	if len(fresh) > 0 {
		freshIDs = matchIDs(fresh)
		doc.MatchHistory = mergeHistory(doc.MatchHistory, fresh)
		doc.StoredMatchIDs = unionIDs(doc.StoredMatchIDs, freshIDs)
		message = fmt.Sprintf("%d new matches added!", len(fresh))
	}

	if err := s.store.Put(ctx, key, doc); err != nil {
		log.Error().Err(err).Msg("store write failed")
		return nil, fmt.Errorf("failed to save user document: %w", err)
	}

	log.Info().Int("new_matches", len(fresh)).Msg("refresh completed")

	return &RefreshResult{
		NewMatchCount: len(fresh),
		NewMatchIDs:   freshIDs,
		Matches:       s.matchViews(doc.MatchHistory),
		LastUpdated:   "just now",
		Message:       message,
	}, nil
}

func (s *SyncService) puuidFrom(doc *domain.UserDocument) string {
	if doc.Account != nil && doc.Account.Puuid != "" {
		return doc.Account.Puuid
	}
	if doc.SummonerInfo != nil {
		return doc.SummonerInfo.Puuid
	}
	return ""
}

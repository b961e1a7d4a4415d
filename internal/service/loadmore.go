package service

import (
	"context"
	"errors"
	"fmt"

	"rift-tracker/internal/constants"
	"rift-tracker/internal/domain"
	"rift-tracker/internal/store"
)

const noMoreMatches = "No more matches to load!"

// LoadMore pages through the stored history only; it never calls
// upstream and never mutates the document.
func (s *SyncService) LoadMore(ctx context.Context, userKey string, start int) (*LoadMoreResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	if userKey == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: start must not be negative", ErrValidation)
	}

	key := domain.SanitizeUserKey(userKey)

	doc, err := s.store.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return &LoadMoreResult{Message: noMoreMatches}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("user_key", key).Msg("store read failed")
		return nil, fmt.Errorf("failed to read user document: %w", err)
	}

	history := doc.MatchHistory
	if start >= len(history) {
		return &LoadMoreResult{Message: noMoreMatches}, nil
	}

	end := start + constants.MatchPageSize
	if end > len(history) {
		end = len(history)
	}

	// a malformed stored entry is dropped, not surfaced
	page := make([]domain.MatchSummary, 0, end-start)
	for _, m := range history[start:end] {
		if m.Player == nil {
			s.logger.Warn().Str("match_id", m.MatchID).Str("user_key", key).Msg("skipping malformed stored match")
			continue
		}
		page = append(page, m)
	}

	if len(page) == 0 {
		return &LoadMoreResult{Message: noMoreMatches}, nil
	}

	return &LoadMoreResult{
		Matches: s.matchViews(page),
		HasMore: end < len(history),
	}, nil
}

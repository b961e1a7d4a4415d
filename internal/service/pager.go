package service

import (
	"context"
	"errors"

	"rift-tracker/internal/constants"
	"rift-tracker/internal/domain"
	"rift-tracker/internal/normalize"

	"github.com/rs/zerolog"
)

// errExhausted signals that the upstream has no further qualifying
// matches, either because a page came back empty or because a call
// failed. Upstream failures degrade to exhaustion, never escalate.
var errExhausted = errors.New("service: match source exhausted")

// matchPager lazily walks the upstream paged match-id list for one
// player and yields normalized CLASSIC summaries. Non-qualifying
// matches are skipped in place, so a single Next call may consume
// several upstream ids and more than one page.
type matchPager struct {
	api      RiotAPI
	logger   zerolog.Logger
	puuid    string
	platform string
	pageSize int

	next      int // upstream offset of the next page
	buf       []string
	exhausted bool
}

func newMatchPager(api RiotAPI, logger zerolog.Logger, puuid, platform string) *matchPager {
	return &matchPager{
		api:      api,
		logger:   logger,
		puuid:    puuid,
		platform: platform,
		pageSize: constants.MatchPageSize,
	}
}

// Next returns the next qualifying match summary, or errExhausted.
func (p *matchPager) Next(ctx context.Context) (*domain.MatchSummary, error) {
	for {
		if len(p.buf) == 0 {
			if p.exhausted {
				return nil, errExhausted
			}
			ids, err := p.api.MatchIDsByPUUID(ctx, p.puuid, p.platform, p.next, p.pageSize)
			if err != nil {
				p.logger.Warn().Err(err).Int("start", p.next).Msg("match id page fetch failed, treating as exhausted")
				p.exhausted = true
				return nil, errExhausted
			}
			if len(ids) == 0 {
				p.exhausted = true
				return nil, errExhausted
			}
			p.buf = ids
			p.next += p.pageSize
		}

		id := p.buf[0]
		p.buf = p.buf[1:]

		raw, err := p.api.MatchByID(ctx, id, p.platform)
		if err != nil {
			p.logger.Warn().Err(err).Str("match_id", id).Msg("match fetch failed, skipping")
			continue
		}

		summary, err := normalize.Match(raw, p.puuid)
		if err != nil {
			p.logger.Debug().Err(err).Str("match_id", id).Msg("match rejected")
			continue
		}
		return summary, nil
	}
}

// collect drains the pager until stop returns true for the number of
// summaries gathered so far, or the source runs out. The stopping
// policy belongs to the caller, not the pager.
func collect(ctx context.Context, pager *matchPager, stop func(collected int) bool) []domain.MatchSummary {
	var summaries []domain.MatchSummary
	for !stop(len(summaries)) {
		summary, err := pager.Next(ctx)
		if err != nil {
			break
		}
		summaries = append(summaries, *summary)
	}
	return summaries
}

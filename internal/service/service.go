package service

import (
	"context"
	"errors"
	"time"

	"rift-tracker/internal/domain"
	"rift-tracker/internal/format"
	"rift-tracker/internal/riot"
	"rift-tracker/internal/store"

	"github.com/rs/zerolog"
)

var (
	// ErrValidation marks missing or malformed request fields.
	ErrValidation = errors.New("service: validation failed")
	// ErrNotFound marks an absent account, summoner, or stored user.
	ErrNotFound = errors.New("service: not found")
)

// RiotAPI is the slice of the upstream client the sync service uses.
// *riot.Client satisfies it; tests substitute a fake.
type RiotAPI interface {
	AccountByRiotID(ctx context.Context, gameName, tagLine, platform string) (*domain.PlayerAccount, error)
	SummonerByPUUID(ctx context.Context, puuid, platform string) (*domain.SummonerInfo, error)
	RankedEntries(ctx context.Context, summonerID, platform string) ([]domain.RankedEntry, error)
	MatchIDsByPUUID(ctx context.Context, puuid, platform string, start, count int) ([]string, error)
	MatchByID(ctx context.Context, matchID, platform string) (*riot.Match, error)
}

// SyncService owns every read-modify-write transition of a user's
// stored document. There is no locking around the read-merge-write
// cycle: two concurrent operations on the same user key can both read
// the same base document and the second write wins, losing whatever
// the first merged in. The store interface is the seam where a
// compare-and-swap could close that window.
type SyncService struct {
	riot   RiotAPI
	store  store.DocumentStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewSyncService(api RiotAPI, documents store.DocumentStore, logger zerolog.Logger) *SyncService {
	return &SyncService{
		riot:   api,
		store:  documents,
		logger: logger,
		now:    time.Now,
	}
}

// MatchView is a history entry plus its relative-age string, which is
// derived from the absolute timestamp at read time and never stored.
type MatchView struct {
	domain.MatchSummary
	TimeAgo string `json:"timeAgo"`
}

type SearchResult struct {
	UserKey      string                `json:"userId"`
	Identity     domain.PlayerIdentity `json:"riotId"`
	SummonerInfo *domain.SummonerInfo  `json:"summonerInfo,omitempty"`
	RankedStats  *domain.RankedEntry   `json:"rankedStats,omitempty"`
	MostPlayed   []domain.ChampionStat `json:"mostPlayedChampions"`
	MMRData      *domain.MMRData       `json:"mmrData,omitempty"`
	Matches      []MatchView           `json:"matches"`
	LastUpdated  string                `json:"lastUpdated"`
	FromCache    bool                  `json:"fromCache"`
}

type LoadMoreResult struct {
	Matches []MatchView `json:"matches"`
	HasMore bool        `json:"hasMore"`
	Message string      `json:"message,omitempty"`
}

type RefreshResult struct {
	NewMatchCount int         `json:"newMatchCount"`
	NewMatchIDs   []string    `json:"newMatches,omitempty"`
	Matches       []MatchView `json:"matches"`
	LastUpdated   string      `json:"lastUpdated"`
	Message       string      `json:"message"`
}

func (s *SyncService) matchViews(history []domain.MatchSummary) []MatchView {
	now := s.now()
	views := make([]MatchView, 0, len(history))
	for _, m := range history {
		views = append(views, MatchView{
			MatchSummary: m,
			TimeAgo:      format.TimeAgo(m.StartTimestamp, now),
		})
	}
	return views
}

// lastUpdatedText renders a stored RFC3339 LastUpdated as a relative
// string, "Never" when absent or unparseable.
func (s *SyncService) lastUpdatedText(stored string) string {
	if stored == "" {
		return "Never"
	}
	t, err := time.Parse(time.RFC3339, stored)
	if err != nil {
		s.logger.Debug().Str("last_updated", stored).Msg("invalid lastUpdated format")
		return "Never"
	}
	return format.TimeAgo(t.UnixMilli(), s.now())
}

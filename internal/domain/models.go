package domain

import (
	"fmt"
	"strings"
)

// PlayerIdentity is the user-supplied search input. Riot IDs are
// case-sensitive, so no normalization happens here.
type PlayerIdentity struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Region   string `json:"region"`
}

// PlayerAccount is the resolved account; Puuid is the stable
// cross-region player key.
type PlayerAccount struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// SummonerInfo is the platform-scoped summoner record. ID is the
// encrypted summoner id used by the ranked endpoints.
type SummonerInfo struct {
	ID            string `json:"id"`
	Puuid         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

type RankedEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// PlayerStats holds the target player's line from a single match.
type PlayerStats struct {
	ChampionName string `json:"championName"`
	ChampionIcon string `json:"championIcon"`
	Puuid        string `json:"puuid"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	TotalCS      int    `json:"totalCS"`
	Win          bool   `json:"win"`
}

// MatchSummary is the canonical per-match record kept in a user's
// history. StartTimestamp (epoch ms) orders matches newest-first.
// Defaulted lists raw payload fields that were absent and filled
// with their zero value during normalization.
type MatchSummary struct {
	MatchID         string       `json:"matchId"`
	GameMode        string       `json:"gameMode"`
	DurationMinutes int          `json:"durationMinutes"`
	StartTimestamp  int64        `json:"startTimestamp"`
	Player          *PlayerStats `json:"player"`
	Defaulted       []string     `json:"defaulted,omitempty"`
}

type ChampionStat struct {
	Champion    string `json:"champion"`
	GamesPlayed int    `json:"gamesPlayed"`
	Winrate     string `json:"winrate"`
}

type PerformanceMetrics struct {
	WinRate   float64 `json:"winRate"`
	KDA       float64 `json:"kda"`
	AverageCS float64 `json:"averageCS"`
}

// MMRData is the estimated skill rating derived from the solo-queue
// ranked entry plus recent performance.
type MMRData struct {
	EstimatedMMR int     `json:"estimatedMmr"`
	RankLabel    string  `json:"rankLabel"`
	WinRate      float64 `json:"winRate"`
	KDA          float64 `json:"kda"`
	AverageCS    float64 `json:"averageCs"`
}

// UserDocument is the persisted per-user record. MatchHistory is
// sorted descending by StartTimestamp and capped at the history
// limit; StoredMatchIDs accumulates every id ever merged, including
// ones evicted from the capped list.
type UserDocument struct {
	SummonerInfo   *SummonerInfo  `json:"summonerInfo,omitempty"`
	Account        *PlayerAccount `json:"account,omitempty"`
	RankedStats    *RankedEntry   `json:"rankedStats,omitempty"`
	MostPlayed     []ChampionStat `json:"mostPlayedChampions"`
	MMRData        *MMRData       `json:"mmrData,omitempty"`
	MatchHistory   []MatchSummary `json:"matchHistory"`
	StoredMatchIDs []string       `json:"storedMatchIds"`
	LastUpdated    string         `json:"lastUpdated,omitempty"`
	Revision       string         `json:"revision,omitempty"`
}

// HasMatch reports whether id has already been merged into the
// document, whether or not it is still in the capped history.
func (d *UserDocument) HasMatch(id string) bool {
	for _, stored := range d.StoredMatchIDs {
		if stored == id {
			return true
		}
	}
	return false
}

// UserKey builds the sanitized store key for an identity.
func (p PlayerIdentity) UserKey() string {
	return SanitizeUserKey(fmt.Sprintf("%s#%s", p.GameName, p.TagLine))
}

// SanitizeUserKey replaces characters the document store cannot use
// in a key path with underscores.
func SanitizeUserKey(id string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '#', '$', '[', ']':
			return '_'
		}
		return r
	}, id)
}

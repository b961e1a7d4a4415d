package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	StoreTimeout       = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	// MatchPageSize is the page size requested from the match-id
	// endpoint; MatchHistoryCap is the most entries a stored history
	// keeps after any write.
	MatchPageSize   = 20
	MatchHistoryCap = 20

	TopChampionCount = 6
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

// SeasonStart is the ranked-season cutoff applied by champion
// aggregation (2024-09-25 00:00 UTC, epoch ms).
const SeasonStart int64 = 1727222400000

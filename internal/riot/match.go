package riot

// Match is the raw match-v5 payload, reduced to the fields this
// service reads. Numeric participant fields are pointers so the
// normalizer can tell an absent field from a real zero.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID string `json:"matchId"`
}

type MatchInfo struct {
	GameMode           string        `json:"gameMode"`
	GameDuration       *int64        `json:"gameDuration"`
	GameStartTimestamp *int64        `json:"gameStartTimestamp"`
	GameEndTimestamp   *int64        `json:"gameEndTimestamp"`
	Participants       []Participant `json:"participants"`
}

type Participant struct {
	Puuid                string  `json:"puuid"`
	ChampionName         *string `json:"championName"`
	Kills                *int    `json:"kills"`
	Deaths               *int    `json:"deaths"`
	Assists              *int    `json:"assists"`
	TotalMinionsKilled   *int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled *int    `json:"neutralMinionsKilled"`
	Win                  *bool   `json:"win"`
}

package normalize

import (
	"errors"
	"fmt"

	"rift-tracker/internal/domain"
	"rift-tracker/internal/format"
	"rift-tracker/internal/riot"
)

// Rejection reasons. Rejected matches are skipped, never surfaced as
// operation failures.
var (
	ErrWrongGameMode = errors.New("normalize: game mode is not CLASSIC")
	ErrNoParticipant = errors.New("normalize: target player not in participants")
)

// GameModeClassic is the ranked/normal 5v5 mode, the only one kept.
const GameModeClassic = "CLASSIC"

// Match converts a raw upstream payload into the canonical summary
// for one player. Absent payload fields fill with their zero value
// and are recorded by name in the summary's Defaulted list.
func Match(raw *riot.Match, puuid string) (*domain.MatchSummary, error) {
	if raw.Info.GameMode != GameModeClassic {
		return nil, fmt.Errorf("%w: %q", ErrWrongGameMode, raw.Info.GameMode)
	}

	var target *riot.Participant
	for i := range raw.Info.Participants {
		if raw.Info.Participants[i].Puuid == puuid {
			target = &raw.Info.Participants[i]
			break
		}
	}
	if target == nil {
		return nil, ErrNoParticipant
	}

	var defaulted []string
	intField := func(v *int, name string) int {
		if v == nil {
			defaulted = append(defaulted, name)
			return 0
		}
		return *v
	}

	summary := &domain.MatchSummary{
		MatchID:  raw.Metadata.MatchID,
		GameMode: raw.Info.GameMode,
	}

	if raw.Info.GameDuration == nil {
		defaulted = append(defaulted, "gameDuration")
	} else {
		summary.DurationMinutes = int(*raw.Info.GameDuration / 60)
	}
	if raw.Info.GameStartTimestamp == nil {
		defaulted = append(defaulted, "gameStartTimestamp")
	} else {
		summary.StartTimestamp = *raw.Info.GameStartTimestamp
	}

	championName := "Unknown"
	if target.ChampionName != nil {
		championName = *target.ChampionName
	} else {
		defaulted = append(defaulted, "championName")
	}

	win := false
	if target.Win != nil {
		win = *target.Win
	} else {
		defaulted = append(defaulted, "win")
	}

	lane := intField(target.TotalMinionsKilled, "totalMinionsKilled")
	neutral := intField(target.NeutralMinionsKilled, "neutralMinionsKilled")

	summary.Player = &domain.PlayerStats{
		ChampionName: championName,
		ChampionIcon: format.ChampionIconURL(championName),
		Puuid:        puuid,
		Kills:        intField(target.Kills, "kills"),
		Deaths:       intField(target.Deaths, "deaths"),
		Assists:      intField(target.Assists, "assists"),
		TotalCS:      lane + neutral,
		Win:          win,
	}
	summary.Defaulted = defaulted

	return summary, nil
}

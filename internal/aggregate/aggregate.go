package aggregate

import (
	"fmt"
	"math"
	"sort"

	"rift-tracker/internal/domain"
)

// MostPlayedChampions tallies play and win counts per champion over
// matches starting at or after seasonStart (epoch ms) and returns the
// top N by games played. Ties keep first-seen order. Winrate is a
// percentage string with two decimals, "0%" when there are no wins
// recorded for a champion with zero plays.
func MostPlayedChampions(matches []domain.MatchSummary, seasonStart int64, topN int) []domain.ChampionStat {
	plays := make(map[string]int)
	wins := make(map[string]int)
	var order []string

	for _, m := range matches {
		if m.StartTimestamp == 0 || m.StartTimestamp < seasonStart {
			continue
		}
		if m.Player == nil {
			continue
		}
		name := m.Player.ChampionName
		if plays[name] == 0 {
			order = append(order, name)
		}
		plays[name]++
		if m.Player.Win {
			wins[name]++
		}
	}

	// stable sort keeps encounter order among equal play counts
	sort.SliceStable(order, func(i, j int) bool {
		return plays[order[i]] > plays[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}

	stats := make([]domain.ChampionStat, 0, len(order))
	for _, name := range order {
		winrate := "0%"
		if plays[name] > 0 {
			pct := math.Round(float64(wins[name])/float64(plays[name])*100*100) / 100
			winrate = fmt.Sprintf("%v%%", pct)
		}
		stats = append(stats, domain.ChampionStat{
			Champion:    name,
			GamesPlayed: plays[name],
			Winrate:     winrate,
		})
	}
	return stats
}

// Performance computes win rate, KDA, and average CS over the full
// input. Unlike MostPlayedChampions there is no season filter; both
// take whatever slice the caller passes.
func Performance(matches []domain.MatchSummary) domain.PerformanceMetrics {
	var wins, kills, deaths, assists, cs, total int

	for _, m := range matches {
		if m.Player == nil {
			continue
		}
		total++
		if m.Player.Win {
			wins++
		}
		kills += m.Player.Kills
		deaths += m.Player.Deaths
		assists += m.Player.Assists
		cs += m.Player.TotalCS
	}

	if total == 0 {
		return domain.PerformanceMetrics{}
	}

	kda := float64(kills + assists)
	if deaths > 0 {
		kda = float64(kills+assists) / float64(deaths)
	}

	return domain.PerformanceMetrics{
		WinRate:   round2(float64(wins) / float64(total) * 100),
		KDA:       round2(kda),
		AverageCS: round2(float64(cs) / float64(total)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

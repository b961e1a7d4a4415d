package format

import (
	"fmt"
	"strings"
	"time"
)

// ddragonPatch pins the Data Dragon asset version used for champion
// icons. TODO: fetch the live patch list instead of pinning.
const ddragonPatch = "14.23.1"

// ChampionIconURL builds the Data Dragon icon URL for a champion.
// Names are stripped of spaces and apostrophes to match the asset
// naming scheme (e.g. "Kai'Sa" -> "KaiSa").
func ChampionIconURL(championName string) string {
	name := strings.ReplaceAll(championName, " ", "")
	name = strings.ReplaceAll(name, "'", "")
	return fmt.Sprintf("http://ddragon.leagueoflegends.com/cdn/%s/img/champion/%s.png", ddragonPatch, name)
}

// TimeAgo renders an epoch-ms timestamp as a coarse relative string.
// A zero or negative timestamp reads "Unknown".
func TimeAgo(epochMillis int64, now time.Time) string {
	if epochMillis <= 0 {
		return "Unknown"
	}

	elapsed := now.Sub(time.UnixMilli(epochMillis))
	days := int(elapsed.Hours() / 24)

	switch {
	case days >= 84:
		return "three months ago"
	case days >= 56:
		return "two months ago"
	case days >= 28:
		return "a month ago"
	case days > 0:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	}

	if hours := int(elapsed.Hours()); hours >= 1 {
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	}
	if minutes := int(elapsed.Minutes()); minutes >= 1 {
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	}
	return "Less than a minute ago"
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// WeeklyLabels returns MM.DD labels for the last 10 weeks, oldest
// first, for the activity chart axis.
func WeeklyLabels(now time.Time) []string {
	labels := make([]string, 0, 10)
	for i := 9; i >= 0; i-- {
		labels = append(labels, now.AddDate(0, 0, -7*i).Format("01.02"))
	}
	return labels
}

// DailyLabels returns MM.DD labels for the last 12 days, oldest first.
func DailyLabels(now time.Time) []string {
	labels := make([]string, 0, 12)
	for i := 11; i >= 0; i-- {
		labels = append(labels, now.AddDate(0, 0, -i).Format("01.02"))
	}
	return labels
}

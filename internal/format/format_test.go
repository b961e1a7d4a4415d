package format

import (
	"testing"
	"time"
)

func TestChampionIconURL(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Ahri", "http://ddragon.leagueoflegends.com/cdn/14.23.1/img/champion/Ahri.png"},
		{"Kai'Sa", "http://ddragon.leagueoflegends.com/cdn/14.23.1/img/champion/KaiSa.png"},
		{"Aurelion Sol", "http://ddragon.leagueoflegends.com/cdn/14.23.1/img/champion/AurelionSol.png"},
	}
	for _, c := range cases {
		if got := ChampionIconURL(c.name); got != c.want {
			t.Errorf("ChampionIconURL(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) int64 { return now.Add(-d).UnixMilli() }

	cases := []struct {
		ts   int64
		want string
	}{
		{0, "Unknown"},
		{at(30 * time.Second), "Less than a minute ago"},
		{at(1 * time.Minute), "1 minute ago"},
		{at(5 * time.Minute), "5 minutes ago"},
		{at(1 * time.Hour), "1 hour ago"},
		{at(23 * time.Hour), "23 hours ago"},
		{at(24 * time.Hour), "1 day ago"},
		{at(3 * 24 * time.Hour), "3 days ago"},
		{at(28 * 24 * time.Hour), "a month ago"},
		{at(56 * 24 * time.Hour), "two months ago"},
		{at(84 * 24 * time.Hour), "three months ago"},
		{at(365 * 24 * time.Hour), "three months ago"},
	}
	for _, c := range cases {
		if got := TimeAgo(c.ts, now); got != c.want {
			t.Errorf("TimeAgo(%d) = %q, want %q", c.ts, got, c.want)
		}
	}
}

func TestWeeklyLabels(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	labels := WeeklyLabels(now)
	if len(labels) != 10 {
		t.Fatalf("expected 10 labels, got %d", len(labels))
	}
	if labels[9] != "03.10" {
		t.Errorf("newest label = %q, want 03.10", labels[9])
	}
	if labels[0] != "01.06" {
		t.Errorf("oldest label = %q, want 01.06", labels[0])
	}
}

func TestDailyLabels(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	labels := DailyLabels(now)
	if len(labels) != 12 {
		t.Fatalf("expected 12 labels, got %d", len(labels))
	}
	if labels[11] != "03.10" {
		t.Errorf("newest label = %q, want 03.10", labels[11])
	}
	if labels[0] != "02.27" {
		t.Errorf("oldest label = %q, want 02.27", labels[0])
	}
}

package rank

import (
	"fmt"
	"strings"
)

type mmrRange struct {
	label string
	lower int
	upper int
}

// mmrTable maps each rank division to its MMR band. Order matters:
// LabelFor walks it low to high.
var mmrTable = []mmrRange{
	{"IRON IV", 1, 100},
	{"IRON III", 101, 200},
	{"IRON II", 201, 300},
	{"IRON I", 301, 400},
	{"BRONZE IV", 401, 500},
	{"BRONZE III", 501, 600},
	{"BRONZE II", 601, 700},
	{"BRONZE I", 701, 800},
	{"SILVER IV", 801, 900},
	{"SILVER III", 901, 1000},
	{"SILVER II", 1001, 1100},
	{"SILVER I", 1101, 1200},
	{"GOLD IV", 1201, 1300},
	{"GOLD III", 1301, 1400},
	{"GOLD II", 1401, 1500},
	{"GOLD I", 1501, 1600},
	{"PLATINUM IV", 1601, 1700},
	{"PLATINUM III", 1701, 1800},
	{"PLATINUM II", 1801, 1900},
	{"PLATINUM I", 1901, 2000},
	{"EMERALD IV", 2001, 2100},
	{"EMERALD III", 2101, 2200},
	{"EMERALD II", 2201, 2300},
	{"EMERALD I", 2301, 2400},
	{"DIAMOND IV", 2401, 2500},
	{"DIAMOND III", 2501, 2600},
	{"DIAMOND II", 2601, 2700},
	{"DIAMOND I", 2701, 2800},
	{"MASTER", 2801, 3200},
	{"GRANDMASTER", 3201, 3600},
	{"CHALLENGER", 3601, 4000},
}

// Estimate derives an MMR figure from a rank division and league
// points. Ranks outside the table estimate to 0; apex tiers only
// match when the division is empty, matching the original table.
func Estimate(tier, division string, lp int) int {
	label := strings.ToUpper(strings.TrimSpace(tier + " " + division))
	for _, r := range mmrTable {
		if r.label == label {
			return r.lower + lp/100
		}
	}
	return 0
}

// LabelFor finds the rank division whose MMR band contains mmr,
// formatted as "(GOLD II)", or "Unranked" when out of range.
func LabelFor(mmr int) string {
	for _, r := range mmrTable {
		if mmr >= r.lower && mmr <= r.upper {
			return fmt.Sprintf("(%s)", r.label)
		}
	}
	return "Unranked"
}

// DivisionValue converts a division numeral (I-IV) to its integer
// value. Unknown numerals return 0.
func DivisionValue(numeral string) int {
	values := map[rune]int{'I': 1, 'V': 5, 'X': 10}
	result, prev := 0, 0
	runes := []rune(numeral)
	for i := len(runes) - 1; i >= 0; i-- {
		v, ok := values[runes[i]]
		if !ok {
			return 0
		}
		if v < prev {
			result -= v
		} else {
			result += v
		}
		prev = v
	}
	return result
}

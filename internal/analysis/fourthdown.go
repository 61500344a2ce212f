package analysis

import (
	"strconv"
	"strings"

	"github.com/fortuna/gridiron/internal/pbp"
)

// FourthDownStats counts genuine fourth-down gambles and their outcomes.
type FourthDownStats struct {
	Attempts    int `json:"attempts"`
	Conversions int `json:"conversions"`
}

// ComputeFourthDownStats counts plays where the offense kept the ball on
// fourth down and ran a real rush or pass. Punts, field-goal tries, no-plays
// and penalty-only descriptions are not gambles. A counted attempt converts
// when the play scored, the text announces a first down, or the gain covered
// the parsed distance ("4-Goal" has no numeric distance and relies on the
// first two signals).
func ComputeFourthDownStats(plays []pbp.Play, team string) FourthDownStats {
	var stats FourthDownStats
	offenses := effectiveOffenses(plays)

	for i, play := range plays {
		if offenses[i] != team || play.IsNoPlay {
			continue
		}
		if !strings.HasPrefix(play.DownDistance, "4-") {
			continue
		}

		desc := strings.ToLower(play.Description)
		if strings.Contains(desc, "punt") || isFieldGoalAttempt(desc) {
			continue
		}
		if !strings.Contains(desc, "rush") && !strings.Contains(desc, "pass") && !strings.Contains(desc, "run") && !strings.Contains(desc, "sack") {
			continue
		}
		// A flag with no snap underneath it is not an attempt.
		if penaltyOnly(desc) {
			continue
		}

		stats.Attempts++

		if play.IsScoring || strings.Contains(desc, "1st down") || strings.Contains(desc, "first down") {
			stats.Conversions++
			continue
		}
		if distance, ok := fourthDownDistance(play.DownDistance); ok && play.HasYards() && play.Gain() >= distance {
			stats.Conversions++
		}
	}

	return stats
}

// penaltyOnly reports whether the description is nothing but a penalty
// announcement.
func penaltyOnly(desc string) bool {
	idx := strings.Index(desc, "penalty")
	if idx < 0 {
		return false
	}
	lead := strings.TrimSpace(desc[:idx])
	return len(lead) <= 3
}

func fourthDownDistance(downDistance string) (int, bool) {
	parts := strings.SplitN(downDistance, "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	distance, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return distance, true
}

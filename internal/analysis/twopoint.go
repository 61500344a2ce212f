package analysis

import (
	"regexp"
	"strings"

	"github.com/fortuna/gridiron/internal/pbp"
)

// TwoPointDetail is one two-point try by the analyzed team.
type TwoPointDetail struct {
	Description string `json:"description"`
	Type        string `json:"type"`
	Converted   bool   `json:"converted"`
	Quarter     int    `json:"quarter"`
	Clock       string `json:"clock,omitempty"`
}

// TwoPointStats tracks two-point conversion tries for both sidelines.
type TwoPointStats struct {
	Attempts        int              `json:"two_pt_attempts"`
	Conversions     int              `json:"two_pt_conversions"`
	RushAttempts    int              `json:"two_pt_rush_attempts"`
	RushConversions int              `json:"two_pt_rush_conversions"`
	PassAttempts    int              `json:"two_pt_pass_attempts"`
	PassConversions int              `json:"two_pt_pass_conversions"`
	Details         []TwoPointDetail `json:"two_pt_details"`
	OppAttempts     int              `json:"opp_two_pt_attempts"`
	OppConversions  int              `json:"opp_two_pt_conversions"`
}

var unsToken = regexp.MustCompile(`\bUNS\b`)

// ComputeTwoPointStats counts two-point tries ("pass attempt" / "rush
// attempt" trailers without a kick). A try waved off as NO PLAY is normally
// excluded, with one carve-out: when the try succeeded and the flag was
// unsportsmanlike conduct, enforcement moves to the ensuing kickoff and the
// score stands, so the conversion still counts.
func ComputeTwoPointStats(plays []pbp.Play, team, opponent string) TwoPointStats {
	var stats TwoPointStats
	offenses := effectiveOffenses(plays)

	for i, play := range plays {
		desc := strings.ToLower(play.Description)

		isPassTry := strings.Contains(desc, "pass attempt")
		isRushTry := strings.Contains(desc, "rush attempt") || strings.Contains(desc, "run attempt")
		if !isPassTry && !isRushTry {
			continue
		}
		if strings.Contains(desc, "kick attempt") {
			continue
		}

		converted := twoPointConverted(desc)
		if play.IsNoPlay && !standsOnKickoffEnforcement(play.Description) {
			continue
		}

		if offenses[i] == opponent {
			stats.OppAttempts++
			if converted {
				stats.OppConversions++
			}
			continue
		}
		if offenses[i] != team {
			continue
		}

		stats.Attempts++
		tryType := "rush"
		if isPassTry {
			tryType = "pass"
			stats.PassAttempts++
		} else {
			stats.RushAttempts++
		}
		if converted {
			stats.Conversions++
			if isPassTry {
				stats.PassConversions++
			} else {
				stats.RushConversions++
			}
		}

		stats.Details = append(stats.Details, TwoPointDetail{
			Description: play.Description,
			Type:        tryType,
			Converted:   converted,
			Quarter:     play.Quarter,
			Clock:       play.Clock,
		})
	}

	return stats
}

func twoPointConverted(desc string) bool {
	idx := strings.Index(desc, "penalty")
	head := desc
	if idx >= 0 {
		head = desc[:idx]
	}
	if strings.Contains(head, "failed") || strings.Contains(head, "no good") {
		return false
	}
	return strings.Contains(head, "success") || strings.Contains(head, "good")
}

// standsOnKickoffEnforcement recognizes the one NO PLAY shape where the try
// still counts: a successful conversion followed by an unsportsmanlike-
// conduct flag enforced on the ensuing kickoff.
func standsOnKickoffEnforcement(desc string) bool {
	lower := strings.ToLower(desc)
	penAt := strings.Index(lower, "penalty")
	if penAt < 0 {
		return false
	}
	if !strings.Contains(lower[:penAt], "success") {
		return false
	}
	tail := desc[penAt:]
	return unsToken.MatchString(tail) || strings.Contains(strings.ToLower(tail), "unsportsmanlike")
}

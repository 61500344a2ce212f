package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fortuna/gridiron/internal/pbp"
)

// Return highlight thresholds in yards.
const (
	kickReturnHighlightYards = 30
	puntReturnHighlightYards = 20
)

// touchbackYards is the field-position value a touchback surrenders when
// computing net punting.
const touchbackYards = 20

// PuntStats covers the analyzed team's own punts.
type PuntStats struct {
	Count      int     `json:"count"`
	GrossYards int     `json:"gross_yards"`
	NetYards   int     `json:"net_yards"`
	Inside20   int     `json:"inside_20"`
	Touchbacks int     `json:"touchbacks"`
	Long       int     `json:"long"`
	GrossAvg   float64 `json:"gross_avg"`
	NetAvg     float64 `json:"net_avg"`
}

// FieldGoalStats covers the analyzed team's own field-goal tries.
type FieldGoalStats struct {
	Attempts int `json:"attempts"`
	Made     int `json:"made"`
	Long     int `json:"long"`
}

// ReturnStats covers kicks by the opponent that the analyzed team returned.
type ReturnStats struct {
	Count      int      `json:"count"`
	Yards      int      `json:"yards"`
	Long       int      `json:"long"`
	Average    float64  `json:"average"`
	Highlights []string `json:"highlights,omitempty"`
}

// SpecialTeamsStats is the full kicking-game bundle for one team.
type SpecialTeamsStats struct {
	Punts           PuntStats      `json:"punts"`
	FieldGoals      FieldGoalStats `json:"field_goals"`
	PATAttempts     int            `json:"pat_attempts"`
	PATMade         int            `json:"pat_made"`
	OnsideAttempts  int            `json:"onside_attempts"`
	OnsideRecovered int            `json:"onside_recovered"`
	KickReturns     ReturnStats    `json:"kick_returns"`
	PuntReturns     ReturnStats    `json:"punt_returns"`
	KicksBlocked    int            `json:"kicks_blocked"`
	KicksBlockedBy  int            `json:"kicks_blocked_by"`
	Touchdowns      int            `json:"touchdowns"`
}

var (
	puntGross   = regexp.MustCompile(`punt[s]?\s+(?:for\s+)?(\d+)\s*yard`)
	returnYards = regexp.MustCompile(`return(?:ed|s)?\s+(?:for\s+)?(\d+)\s*yard`)
	spotToken   = regexp.MustCompile(`\b[A-Z]{2,5}\s?\d{1,2}\b`)

	// Field-goal yardage shows up in several phrasings across seasons.
	// Evaluated in order, first match wins.
	fieldGoalYardage = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:yd|yard)s?\s+field goal`),
		regexp.MustCompile(`field goal\s+(?:attempt\s+)?(?:from\s+)?(\d+)\s*(?:yd|yard)`),
		regexp.MustCompile(`from\s+(\d+)\s*(?:yd|yard)`),
	}
)

// ComputeSpecialTeams derives the kicking-game bundle: the analyzed team's
// own punts, field goals, PATs and onside kicks, plus its returns of the
// opponent's kicks, blocks on either side, and special-teams touchdowns.
// Averages divide safely and report 0.0 over an empty denominator.
func ComputeSpecialTeams(plays []pbp.Play, team, opponent string) SpecialTeamsStats {
	var stats SpecialTeamsStats
	offenses := effectiveOffenses(plays)

	for i, play := range plays {
		desc := strings.ToLower(play.Description)
		offense := offenses[i]

		isPunt := strings.Contains(desc, "punt")
		isKickoff := strings.Contains(desc, "kickoff")
		isFG := isFieldGoalAttempt(desc)
		isPAT := strings.Contains(desc, "kick attempt")
		isOnside := strings.Contains(desc, "onside")

		switch {
		case offense == team && isPunt && !play.IsNoPlay:
			tallyPunt(&stats.Punts, desc, team, opponent)
		case offense == team && isFG && !play.IsNoPlay:
			stats.FieldGoals.Attempts++
			distance := fieldGoalDistance(desc)
			if isMadeFieldGoal(desc) {
				stats.FieldGoals.Made++
				if distance > stats.FieldGoals.Long {
					stats.FieldGoals.Long = distance
				}
			}
		case offense == team && isPAT:
			stats.PATAttempts++
			if strings.Contains(desc, "good") && !strings.Contains(desc, "no good") {
				stats.PATMade++
			}
		case offense == opponent && isKickoff && strings.Contains(desc, "return") && !play.IsNoPlay:
			tallyReturn(&stats.KickReturns, play, kickReturnHighlightYards)
		case offense == opponent && isPunt && strings.Contains(desc, "return") && !play.IsNoPlay:
			tallyReturn(&stats.PuntReturns, play, puntReturnHighlightYards)
		}

		if offense == team && isOnside {
			stats.OnsideAttempts++
			if recoveredBy(desc, team) {
				stats.OnsideRecovered++
			}
		}

		// Blocked kicks credit the side that was not kicking.
		if strings.Contains(desc, "blocked") && (isPunt || isFG || isPAT) {
			if offense == team {
				stats.KicksBlocked++
			} else if offense == opponent {
				stats.KicksBlockedBy++
			}
		}

		if (isPunt || isKickoff || isFG) && strings.Contains(desc, "touchdown") {
			if specialTeamsTDScorer(play.Description, offense, team, opponent) == team {
				stats.Touchdowns++
			}
		}
	}

	stats.Punts.GrossAvg = safeDiv(float64(stats.Punts.GrossYards), float64(stats.Punts.Count))
	stats.Punts.NetAvg = safeDiv(float64(stats.Punts.NetYards), float64(stats.Punts.Count))
	stats.KickReturns.Average = safeDiv(float64(stats.KickReturns.Yards), float64(stats.KickReturns.Count))
	stats.PuntReturns.Average = safeDiv(float64(stats.PuntReturns.Yards), float64(stats.PuntReturns.Count))

	return stats
}

func tallyPunt(punts *PuntStats, desc, team, opponent string) {
	punts.Count++

	gross := 0
	if m := puntGross.FindStringSubmatch(desc); m != nil {
		gross, _ = strconv.Atoi(m[1])
	}
	punts.GrossYards += gross
	if gross > punts.Long {
		punts.Long = gross
	}

	net := gross
	if m := returnYards.FindStringSubmatch(desc); m != nil {
		ret, _ := strconv.Atoi(m[1])
		net -= ret
	}
	if strings.Contains(desc, "touchback") {
		punts.Touchbacks++
		net -= touchbackYards
	} else if downedInside20(desc, team, opponent) {
		punts.Inside20++
	}
	punts.NetYards += net
}

// downedInside20 resolves the final spot token of a punt description and
// checks whether the ball came to rest inside the receiving team's 20.
func downedInside20(desc, kicking, receiving string) bool {
	tokens := spotToken.FindAllString(strings.ToUpper(desc), -1)
	if len(tokens) == 0 {
		return false
	}
	last := strings.ReplaceAll(tokens[len(tokens)-1], " ", "")
	ytg, ok := YardsToGoal(last, kicking, receiving)
	return ok && ytg <= 20
}

func tallyReturn(returns *ReturnStats, play pbp.Play, highlightAt int) {
	returns.Count++

	yards := 0
	if m := returnYards.FindStringSubmatch(strings.ToLower(play.Description)); m != nil {
		yards, _ = strconv.Atoi(m[1])
	} else if play.HasYards() {
		yards = play.Gain()
	}

	returns.Yards += yards
	if yards > returns.Long {
		returns.Long = yards
	}
	if yards >= highlightAt {
		returns.Highlights = append(returns.Highlights, play.Description)
	}
}

func fieldGoalDistance(desc string) int {
	for _, re := range fieldGoalYardage {
		if m := re.FindStringSubmatch(desc); m != nil {
			distance, _ := strconv.Atoi(m[1])
			return distance
		}
	}
	return 0
}

func recoveredBy(desc, team string) bool {
	idx := strings.Index(desc, "recover")
	if idx < 0 {
		return false
	}
	return strings.Contains(strings.ToUpper(desc[idx:]), strings.ToUpper(team))
}

// specialTeamsTDScorer decides which team a special-teams touchdown belongs
// to. A team named in the text (outside of spot tokens) wins outright; after
// that the recovery clause decides; an ambiguous description credits the
// receiving team, which is the common case for return scores.
func specialTeamsTDScorer(desc, kicking, team, opponent string) string {
	receiving := otherTeam(kicking, team, opponent)
	stripped := spotToken.ReplaceAllString(strings.ToUpper(desc), " ")

	teamNamed := containsWord(stripped, strings.ToUpper(team))
	oppNamed := containsWord(stripped, strings.ToUpper(opponent))
	if teamNamed != oppNamed {
		if teamNamed {
			return team
		}
		return opponent
	}

	if idx := strings.Index(strings.ToLower(desc), "recover"); idx >= 0 {
		tail := strings.ToUpper(desc[idx:])
		if strings.Contains(tail, strings.ToUpper(kicking)) {
			return kicking
		}
		if strings.Contains(tail, strings.ToUpper(receiving)) {
			return receiving
		}
	}

	return receiving
}

func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// safeDiv divides with a zero check so empty games never fault.
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

var spotNumber = regexp.MustCompile(`\d+`)

// YardsToGoal resolves a raw spot token ("ALA15", "UGA40", "50") into yards
// from the goal line for the offense. The second return is false when the
// token carries no number at all.
//
// Resolution order: the literal midfield token, then the opponent's side of
// the field (number is already yards-to-goal), then the offense's own side
// (100 minus the number). Tokens naming neither team fall back to treating
// numbers <= 50 as the opponent's side; that heuristic can mis-resolve exotic
// formats near midfield and is kept as-is because downstream aggregates were
// tuned against it.
func YardsToGoal(spot, offense, opponent string) (int, bool) {
	token := strings.ToUpper(strings.TrimSpace(spot))
	if token == "" {
		return 0, false
	}
	if token == "50" {
		return 50, true
	}

	match := spotNumber.FindString(token)
	if match == "" {
		return 0, false
	}
	yards, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}

	if opponent != "" && strings.Contains(token, strings.ToUpper(opponent)) {
		return yards, true
	}
	if offense != "" && strings.Contains(token, strings.ToUpper(offense)) {
		return 100 - yards, true
	}

	if yards <= 50 {
		return yards, true
	}
	return 100 - yards, true
}

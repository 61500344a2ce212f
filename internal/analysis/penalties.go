package analysis

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fortuna/gridiron/internal/pbp"
)

// PenaltyRecord is one infraction pulled out of a play description.
type PenaltyRecord struct {
	Team     string `json:"team"`
	Type     string `json:"type"`
	Declined bool   `json:"declined"`
	Side     string `json:"side,omitempty"`
	Yards    int    `json:"yards"`
}

// PenaltyStats is the per-game penalty ledger for one team.
type PenaltyStats struct {
	Count    int             `json:"count"`
	Yards    int             `json:"yards"`
	Declined int             `json:"declined"`
	Records  []PenaltyRecord `json:"records"`
}

var (
	penaltyYards = regexp.MustCompile(`(\d+)\s*yard`)
	ocrNoise     = regexp.MustCompile(`^[A-Za-z]\d+[.,]?$`)
	digitsOnly   = regexp.MustCompile(`^\d+$`)
)

// ParsePenalties extracts zero or more penalty records from one play
// description. Everything after the first "penalty" is split on known team
// abbreviations (longest first, so "TENN" wins over "TEN") into alternating
// team / trailing-text pairs, each of which is classified independently.
// Unparseable text yields no records, never an error.
func ParsePenalties(desc, offense string, teams []string) []PenaltyRecord {
	upper := strings.ToUpper(desc)
	idx := strings.Index(upper, "PENALTY")
	if idx < 0 {
		return nil
	}
	tail := desc[idx+len("PENALTY"):]

	teamRe := teamSplitPattern(teams)
	if teamRe == nil {
		return nil
	}

	matches := teamRe.FindAllStringIndex(strings.ToUpper(tail), -1)
	var records []PenaltyRecord
	for i, m := range matches {
		team := strings.ToUpper(tail[m[0]:m[1]])
		end := len(tail)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		fragment := tail[m[1]:end]

		record, ok := classifyPenaltyFragment(team, fragment, offense)
		if ok {
			records = append(records, record)
		}
	}

	return records
}

// teamSplitPattern builds a word-boundary alternation of team abbreviations,
// longest first to avoid partial matches.
func teamSplitPattern(teams []string) *regexp.Regexp {
	var abbrs []string
	for _, t := range teams {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			abbrs = append(abbrs, regexp.QuoteMeta(t))
		}
	}
	if len(abbrs) == 0 {
		return nil
	}
	sort.Slice(abbrs, func(i, j int) bool { return len(abbrs[i]) > len(abbrs[j]) })
	return regexp.MustCompile(`\b(` + strings.Join(abbrs, "|") + `)\b`)
}

func classifyPenaltyFragment(team, fragment, offense string) (PenaltyRecord, bool) {
	// A fragment runs to the next team mention, which can drag in the next
	// "PENALTY" announcement or the "NO PLAY" trailer; neither is part of
	// this infraction.
	upper := strings.ToUpper(fragment)
	if idx := strings.Index(upper, "PENALTY"); idx >= 0 {
		fragment = fragment[:idx]
	}
	if idx := strings.Index(strings.ToUpper(fragment), "NO PLAY"); idx >= 0 {
		fragment = fragment[:idx]
	}

	words := strings.Fields(fragment)
	words = stripNoiseTokens(words)
	if len(strings.Join(words, " ")) <= 3 {
		return PenaltyRecord{}, false
	}

	record := PenaltyRecord{Team: team}

	declinedAt, numberAt := -1, -1
	for i, w := range words {
		lw := strings.ToLower(strings.Trim(w, ".,;:"))
		if declinedAt < 0 && lw == "declined" {
			declinedAt = i
		}
		if numberAt < 0 && digitsOnly.MatchString(strings.Trim(w, ".,;:")) {
			numberAt = i
		}
	}

	var labelWords []string
	switch {
	case declinedAt >= 0 && (numberAt < 0 || declinedAt < numberAt):
		record.Declined = true
		labelWords = words[:declinedAt]
	default:
		labelWords = labelUpToYardage(words)
	}

	// Offsetting fouls cancel; treat them as not enforced.
	var kept []string
	for _, w := range labelWords {
		if strings.EqualFold(strings.Trim(w, ".,;:"), "offsetting") {
			record.Declined = true
			continue
		}
		kept = append(kept, w)
	}
	labelWords = kept

	record.Type = strings.Trim(strings.Join(labelWords, " "), " .,;:")
	if len(record.Type) <= 3 {
		return PenaltyRecord{}, false
	}

	if m := penaltyYards.FindStringSubmatch(strings.ToLower(fragment)); m != nil {
		record.Yards, _ = strconv.Atoi(m[1])
	}

	if offense != "" {
		if strings.EqualFold(team, offense) {
			record.Side = "offense"
		} else {
			record.Side = "defense"
		}
	}

	if strings.Contains(strings.ToLower(record.Type), "holding") {
		record.Type = resolveHoldingLabel(record, fragment)
	}

	return record, true
}

// labelUpToYardage takes the words preceding the first parenthesis or the
// first standalone number that is followed by a "yards" token.
func labelUpToYardage(words []string) []string {
	for i, w := range words {
		if strings.HasPrefix(w, "(") {
			return words[:i]
		}
		if digitsOnly.MatchString(strings.Trim(w, ".,;:")) {
			if i+1 < len(words) && strings.HasPrefix(strings.ToLower(words[i+1]), "yard") {
				return words[:i]
			}
		}
	}
	return words
}

// stripNoiseTokens drops single-letter-plus-digits artifacts the OCR layer
// leaves behind (spot fragments like "A35").
func stripNoiseTokens(words []string) []string {
	var out []string
	for _, w := range words {
		if ocrNoise.MatchString(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// resolveHoldingLabel splits a bare "holding" call into its offensive
// (10-yard) and defensive (5-yard, possibly automatic first down) variants.
// Side attribution wins when known; yardage and AFD text break ties after
// that; a fully ambiguous call stays offensive holding.
func resolveHoldingLabel(record PenaltyRecord, fragment string) string {
	lower := strings.ToLower(fragment)
	switch record.Side {
	case "offense":
		return "Offensive Holding"
	case "defense":
		return "Defensive Holding"
	}
	if record.Yards == 5 || strings.Contains(lower, "automatic first down") || strings.Contains(lower, "1st down") {
		return "Defensive Holding"
	}
	return "Offensive Holding"
}

// ComputePenaltyStats folds per-play penalty parsing into one team's ledger.
// Count and yardage cover accepted penalties only; declined calls stay in the
// record list.
func ComputePenaltyStats(plays []pbp.Play, team string, teams []string) PenaltyStats {
	var stats PenaltyStats
	offenses := effectiveOffenses(plays)

	for i, play := range plays {
		for _, record := range ParsePenalties(play.Description, offenses[i], teams) {
			if !strings.EqualFold(record.Team, team) {
				continue
			}
			stats.Records = append(stats.Records, record)
			if record.Declined {
				stats.Declined++
				continue
			}
			stats.Count++
			stats.Yards += record.Yards
		}
	}

	return stats
}

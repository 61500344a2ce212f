package analysis

import (
	"regexp"
	"strings"

	"github.com/fortuna/gridiron/internal/pbp"
)

// Explosive-play thresholds in yards gained.
const (
	explosiveRushYards = 15
	explosivePassYards = 20
)

// ExplosivePlay is one qualifying long gain with the credited ball carrier
// when one could be extracted.
type ExplosivePlay struct {
	Description string `json:"description"`
	Yards       int    `json:"yards"`
	Type        string `json:"type"`
	Player      string `json:"player,omitempty"`
	Quarter     int    `json:"quarter"`
	Clock       string `json:"clock,omitempty"`
}

// ExplosiveStats is the explosive-play report for one team in one game.
type ExplosiveStats struct {
	Count   int             `json:"count"`
	Details []ExplosivePlay `json:"details"`
}

// Name shapes the PBP sources actually print: "Skattebo, Cam" and
// "#4 C.Skattebo" (with or without the jersey number). Evaluated in order,
// first match wins.
var nameMatchers = []*regexp.Regexp{
	regexp.MustCompile(`#\d+\s+[A-Z]\.\s?[A-Za-z'\-]{2,}`),
	regexp.MustCompile(`[A-Z][A-Za-z'\-]+,\s*[A-Z][A-Za-z'\-]+`),
	regexp.MustCompile(`[A-Z]\.\s?[A-Za-z'\-]{2,}`),
}

// Action words that sit where a name would and must never be credited as a
// ball carrier.
var nameBlacklist = map[string]bool{
	"ball": true, "pass": true, "rush": true, "run": true, "kick": true,
	"punt": true, "return": true, "penalty": true, "fumble": true,
	"complete": true, "incomplete": true, "middle": true, "left": true,
	"right": true, "end": true, "gain": true, "loss": true, "team": true,
	"touchdown": true, "yards": true, "yard": true, "the": true, "for": true,
	"no": true, "play": true, "down": true, "intercepted": true,
}

// ComputeExplosives flags long gains for the given team: rushes of 15+ yards
// and passes of 20+. Pass and rush are told apart by keyword; everything that
// does not read like a pass counts as a rush, matching how the source
// documents describe scrambles and sweeps.
func ComputeExplosives(plays []pbp.Play, team string) ExplosiveStats {
	var stats ExplosiveStats
	offenses := effectiveOffenses(plays)

	for i, play := range plays {
		if offenses[i] != team || play.IsNoPlay || !play.HasYards() {
			continue
		}

		desc := strings.ToUpper(play.Description)
		isPass := strings.Contains(desc, "PASS") || strings.Contains(desc, "COMPLETE") || strings.Contains(desc, "CAUGHT")

		threshold := explosiveRushYards
		playType := "rush"
		if isPass {
			threshold = explosivePassYards
			playType = "pass"
		}
		if play.Gain() < threshold {
			continue
		}

		stats.Count++
		stats.Details = append(stats.Details, ExplosivePlay{
			Description: play.Description,
			Yards:       play.Gain(),
			Type:        playType,
			Player:      extractBallCarrier(play.Description, playType),
			Quarter:     play.Quarter,
			Clock:       play.Clock,
		})
	}

	return stats
}

// extractBallCarrier pulls the credited player out of a play description.
// It returns "" when nothing name-shaped is found; it never guesses from
// jargon words.
func extractBallCarrier(desc, playType string) string {
	if playType == "pass" {
		// Receiver: the name-shaped token after "to".
		idx := strings.Index(strings.ToLower(desc), " to ")
		if idx < 0 {
			return ""
		}
		return firstName(desc[idx+4:])
	}

	// Rusher: the name-shaped token immediately preceding "rush"/"run".
	lower := strings.ToLower(desc)
	cut := strings.Index(lower, " rush")
	if cut < 0 {
		cut = strings.Index(lower, " run")
	}
	if cut < 0 {
		return ""
	}
	return lastName(desc[:cut])
}

// firstName finds the first name-shaped token in the text.
func firstName(text string) string {
	best := -1
	var found string
	for _, re := range nameMatchers {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if best < 0 || loc[0] < best {
			candidate := strings.TrimSpace(text[loc[0]:loc[1]])
			if !blacklisted(candidate) {
				best = loc[0]
				found = candidate
			}
		}
	}
	return found
}

// lastName finds the name-shaped token closest to the end of the text.
func lastName(text string) string {
	best := -1
	var found string
	for _, re := range nameMatchers {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			candidate := strings.TrimSpace(text[loc[0]:loc[1]])
			if blacklisted(candidate) {
				continue
			}
			if loc[1] > best {
				best = loc[1]
				found = candidate
			}
		}
	}
	return found
}

func blacklisted(candidate string) bool {
	for _, word := range strings.FieldsFunc(candidate, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.'
	}) {
		if nameBlacklist[strings.ToLower(word)] {
			return true
		}
	}
	return false
}

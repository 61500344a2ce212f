package pbp

import (
	"regexp"
	"strings"
)

// ConferenceTable maps power-conference names to canonical team slugs and
// resolves the alias soup that shows up in PBP documents ("Ole Miss",
// "Mississippi St", "WVU", ...). It is an explicit value rather than package
// state so callers can substitute their own membership for other seasons.
type ConferenceTable struct {
	Teams   map[string][]string
	Aliases map[string]string
}

// DefaultConferences returns the FBS power-conference membership used by the
// matchup analysis.
func DefaultConferences() *ConferenceTable {
	return &ConferenceTable{
		Teams: map[string][]string{
			"SEC": {
				"alabama", "arkansas", "auburn", "florida", "georgia",
				"kentucky", "lsu", "mississippi", "mississippi state",
				"missouri", "oklahoma", "south carolina", "tennessee",
				"texas", "texas a&m", "vanderbilt",
			},
			"Big 12": {
				"baylor", "tcu", "utah", "texas tech", "houston",
				"iowa state", "west virginia", "colorado", "arizona",
				"arizona state",
			},
			"Big Ten": {
				"illinois", "indiana", "iowa", "maryland", "michigan",
				"michigan state", "minnesota", "nebraska", "northwestern",
				"ohio state", "penn state", "purdue", "rutgers", "wisconsin",
				"ucla", "usc", "washington", "oregon",
			},
			"ACC": {
				"boston college", "clemson", "duke", "florida state",
				"georgia tech", "louisville", "miami", "nc state",
				"north carolina", "pittsburgh", "syracuse", "virginia",
				"virginia tech", "wake forest", "stanford", "cal",
			},
		},
		Aliases: map[string]string{
			"a&m":                  "texas a&m",
			"tamu":                 "texas a&m",
			"uga":                  "georgia",
			"ole miss":             "mississippi",
			"mississippi st":       "mississippi state",
			"arizona st":           "arizona state",
			"asu":                  "arizona state",
			"ariz st":              "arizona state",
			"ttu":                  "texas tech",
			"uh":                   "houston",
			"isu":                  "iowa state",
			"wvu":                  "west virginia",
			"colo":                 "colorado",
			"michigan st":          "michigan state",
			"ohio st":              "ohio state",
			"penn st":              "penn state",
			"florida st":           "florida state",
			"pitt":                 "pittsburgh",
			"north carolina state": "nc state",
			"louisiana state":      "lsu",
		},
	}
}

var teamNameCleaner = regexp.MustCompile(`[^a-z0-9&]+`)

// NormalizeTeamName lowercases a team name or abbreviation and collapses
// punctuation/whitespace so alias lookups are stable across source documents.
func NormalizeTeamName(name string) string {
	cleaned := teamNameCleaner.ReplaceAllString(strings.ToLower(name), " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// canonical resolves a name or abbreviation to a canonical slug, or "" when
// the team is unknown to the table.
func (ct *ConferenceTable) canonical(name string) string {
	slug := NormalizeTeamName(name)
	if slug == "" {
		return ""
	}
	if alias, ok := ct.Aliases[slug]; ok {
		slug = alias
	}
	for _, members := range ct.Teams {
		for _, member := range members {
			if member == slug {
				return slug
			}
		}
	}
	return ""
}

// ConferenceOf returns the conference a team belongs to, trying each supplied
// name/abbreviation in order. Empty string means no power conference matched.
func (ct *ConferenceTable) ConferenceOf(names ...string) string {
	for _, name := range names {
		slug := ct.canonical(name)
		if slug == "" {
			continue
		}
		for conf, members := range ct.Teams {
			for _, member := range members {
				if member == slug {
					return conf
				}
			}
		}
	}
	return ""
}

// SameConference reports whether two teams share a power conference.
func (ct *ConferenceTable) SameConference(a, b string) bool {
	confA := ct.ConferenceOf(a)
	return confA != "" && confA == ct.ConferenceOf(b)
}

// IsPower4 reports whether any of the supplied names resolves to a member of
// the four power conferences.
func (ct *ConferenceTable) IsPower4(names ...string) bool {
	return ct.ConferenceOf(names...) != ""
}

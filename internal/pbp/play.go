package pbp

// Play is one play as delivered by the upstream PDF extraction step.
// Fields the extractor could not recover are left absent: empty string for
// text fields, nil for Yards. Nothing in this package or in analysis ever
// rejects a play for having missing fields.
type Play struct {
	Offense      string `json:"offense,omitempty"`
	Description  string `json:"description"`
	Quarter      int    `json:"quarter"`
	Clock        string `json:"clock,omitempty"`
	DownDistance string `json:"down_distance,omitempty"`
	Spot         string `json:"spot,omitempty"`
	Yards        *int   `json:"yards,omitempty"`
	IsScoring    bool   `json:"is_scoring"`
	IsTurnover   bool   `json:"is_turnover"`
	IsNoPlay     bool   `json:"is_no_play"`
}

// HasYards reports whether the extractor recovered a yardage for this play.
func (p *Play) HasYards() bool {
	return p.Yards != nil
}

// Gain returns the recovered yardage, or 0 when absent.
func (p *Play) Gain() int {
	if p.Yards == nil {
		return 0
	}
	return *p.Yards
}

// GameInput is one parsed game as handed off by the extraction pipeline:
// the full ordered play sequence plus team identity and header metadata.
type GameInput struct {
	Season        string `json:"season,omitempty"`
	GameNumber    int    `json:"game_number,omitempty"`
	OurAbbr       string `json:"ours"`
	OpponentAbbr  string `json:"opponent_abbr"`
	OpponentName  string `json:"opponent,omitempty"`
	Date          string `json:"date,omitempty"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
	Plays         []Play `json:"plays"`
}

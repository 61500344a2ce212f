package analysis

import (
	"github.com/fortuna/gridiron/internal/pbp"
)

// GameMeta is the header information the extraction pipeline recovered for a
// game. Scores come from the score-by-quarters block upstream; this core only
// carries them through.
type GameMeta struct {
	GameNumber    int
	OpponentName  string
	Date          string
	PointsFor     int
	PointsAgainst int
}

// GameRecord is the complete per-team analytics record for one game. It is
// produced once per (game, team) call and handed to the downstream assembler;
// nothing in this package mutates it afterwards.
type GameRecord struct {
	GameNumber    int    `json:"game_number"`
	Team          string `json:"team"`
	Opponent      string `json:"opponent"`
	OpponentAbbr  string `json:"opponent_abbr"`
	Date          string `json:"date,omitempty"`
	Conference    bool   `json:"conference"`
	IsPower4      bool   `json:"is_power4"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
	TotalPlays    int    `json:"total_plays"`
	TotalYards    int    `json:"total_yards"`

	Explosives   ExplosiveStats    `json:"explosives"`
	Turnovers    TurnoverStats     `json:"turnovers"`
	Penalties    PenaltyStats      `json:"penalties"`
	Zones        ZoneSplits        `json:"zones"`
	FourthDowns  FourthDownStats   `json:"fourth_downs"`
	SpecialTeams SpecialTeamsStats `json:"special_teams"`
	TwoPoint     TwoPointStats     `json:"two_point"`
}

// Won reports whether the analyzed team won the game.
func (g *GameRecord) Won() bool {
	return g.PointsFor > g.PointsAgainst
}

// AnalyzeGame folds every analytic component over one team's ordered play
// sequence for one game. It is a pure function: each call builds its derived
// state from scratch and independent games may be analyzed concurrently by
// the caller.
func AnalyzeGame(plays []pbp.Play, team, opponent string, meta GameMeta, conferences *pbp.ConferenceTable) *GameRecord {
	record := &GameRecord{
		GameNumber:    meta.GameNumber,
		Team:          team,
		Opponent:      meta.OpponentName,
		OpponentAbbr:  opponent,
		Date:          meta.Date,
		PointsFor:     meta.PointsFor,
		PointsAgainst: meta.PointsAgainst,
	}
	if record.Opponent == "" {
		record.Opponent = opponent
	}

	if conferences != nil {
		record.Conference = conferences.SameConference(team, opponent) ||
			conferences.SameConference(team, meta.OpponentName)
		record.IsPower4 = conferences.IsPower4(opponent, meta.OpponentName)
	}

	offenses := effectiveOffenses(plays)
	for i, play := range plays {
		if offenses[i] != team || play.IsNoPlay {
			continue
		}
		record.TotalPlays++
		record.TotalYards += play.Gain()
	}

	record.Explosives = ComputeExplosives(plays, team)
	record.Turnovers = ComputeTurnoverStats(plays, team, opponent)
	record.Penalties = ComputePenaltyStats(plays, team, []string{team, opponent})
	record.Zones = ComputeZoneSplits(plays, team, opponent)
	record.FourthDowns = ComputeFourthDownStats(plays, team)
	record.SpecialTeams = ComputeSpecialTeams(plays, team, opponent)
	record.TwoPoint = ComputeTwoPointStats(plays, team, opponent)

	return record
}

// AnalyzeInput is a convenience wrapper over AnalyzeGame for one parsed game
// file.
func AnalyzeInput(input *pbp.GameInput, conferences *pbp.ConferenceTable) *GameRecord {
	return AnalyzeGame(input.Plays, input.OurAbbr, input.OpponentAbbr, GameMeta{
		GameNumber:    input.GameNumber,
		OpponentName:  input.OpponentName,
		Date:          input.Date,
		PointsFor:     input.PointsFor,
		PointsAgainst: input.PointsAgainst,
	}, conferences)
}

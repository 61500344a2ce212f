package analysis_test

import (
	"math"
	"testing"

	"github.com/fortuna/gridiron/internal/analysis"
	"github.com/fortuna/gridiron/internal/pbp"
)

func TestComputeSpecialTeams_Punts(t *testing.T) {
	plays := []pbp.Play{
		{Offense: "ASU", Description: "Carlson punt 45 yards to the TTU15, downed at the TTU15"},
		{Offense: "ASU", Description: "Carlson punt 50 yards, TOUCHBACK"},
		{Offense: "ASU", Description: "Carlson punt 40 yards to the TTU30, Brooks return 12 yards to the TTU42"},
	}

	stats := analysis.ComputeSpecialTeams(plays, "ASU", "TTU")
	punts := stats.Punts

	if punts.Count != 3 {
		t.Fatalf("count = %d, want 3", punts.Count)
	}
	if punts.GrossYards != 135 {
		t.Errorf("gross = %d, want 135", punts.GrossYards)
	}
	// 45 + (50-20 touchback) + (40-12 return) = 103
	if punts.NetYards != 103 {
		t.Errorf("net = %d, want 103", punts.NetYards)
	}
	if punts.Inside20 != 1 {
		t.Errorf("inside 20 = %d, want 1", punts.Inside20)
	}
	if punts.Touchbacks != 1 {
		t.Errorf("touchbacks = %d, want 1", punts.Touchbacks)
	}
	if punts.Long != 50 {
		t.Errorf("long = %d, want 50", punts.Long)
	}
	if math.Abs(punts.GrossAvg-45.0) > 0.001 {
		t.Errorf("gross avg = %f, want 45.0", punts.GrossAvg)
	}
}

func TestComputeSpecialTeams_FieldGoalYardageCascade(t *testing.T) {
	tests := []struct {
		name     string
		desc     string
		made     int
		wantLong int
	}{
		{"Yardage before the phrase", "Carney 42 yard field goal GOOD", 1, 42},
		{"Yardage after the phrase", "Carney field goal attempt from 49 yards GOOD", 1, 49},
		{"Fallback from-N pattern", "field goal by Carney from 33 yds is good", 1, 33},
		{"Miss records attempt only", "Carney 51 yard field goal NO GOOD, wide left", 0, 0},
		{"Blocked try is not made", "Carney field goal attempt from 40 yards BLOCKED", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plays := []pbp.Play{{Offense: "ASU", Description: tt.desc}}
			stats := analysis.ComputeSpecialTeams(plays, "ASU", "TTU")
			fgs := stats.FieldGoals

			if fgs.Attempts != 1 {
				t.Fatalf("attempts = %d, want 1", fgs.Attempts)
			}
			if fgs.Made != tt.made {
				t.Errorf("made = %d, want %d", fgs.Made, tt.made)
			}
			if fgs.Long != tt.wantLong {
				t.Errorf("long = %d, want %d", fgs.Long, tt.wantLong)
			}
		})
	}
}

func TestComputeSpecialTeams_Returns(t *testing.T) {
	plays := []pbp.Play{
		{Offense: "TTU", Description: "kickoff 65 yards, Raymond return 32 yards to the ASU37"},
		{Offense: "TTU", Description: "kickoff 60 yards, Raymond return 18 yards to the ASU23"},
		{Offense: "TTU", Description: "punt 38 yards, Martinez return 25 yards to the 50"},
		// Our own punt being returned must not count as our return.
		{Offense: "ASU", Description: "punt 40 yards, Brooks return 10 yards"},
	}

	stats := analysis.ComputeSpecialTeams(plays, "ASU", "TTU")

	if stats.KickReturns.Count != 2 || stats.KickReturns.Yards != 50 {
		t.Errorf("kick returns = %d for %d yards, want 2 for 50",
			stats.KickReturns.Count, stats.KickReturns.Yards)
	}
	if stats.KickReturns.Long != 32 {
		t.Errorf("kick return long = %d, want 32", stats.KickReturns.Long)
	}
	if len(stats.KickReturns.Highlights) != 1 {
		t.Errorf("kick return highlights = %d, want 1 (threshold 30)", len(stats.KickReturns.Highlights))
	}
	if stats.PuntReturns.Count != 1 || stats.PuntReturns.Yards != 25 {
		t.Errorf("punt returns = %d for %d yards, want 1 for 25",
			stats.PuntReturns.Count, stats.PuntReturns.Yards)
	}
	if len(stats.PuntReturns.Highlights) != 1 {
		t.Errorf("punt return highlights = %d, want 1 (threshold 20)", len(stats.PuntReturns.Highlights))
	}
}

func TestComputeSpecialTeams_OnsideAndBlocks(t *testing.T) {
	plays := []pbp.Play{
		{Offense: "ASU", Description: "Carney onside kickoff 12 yards, recovered by ASU at the 50"},
		{Offense: "ASU", Description: "Carney onside kickoff 9 yards, recovered by TTU"},
		{Offense: "TTU", Description: "punt BLOCKED by Jones, recovered at the TTU20"},
		{Offense: "ASU", Description: "field goal attempt from 35 yards BLOCKED"},
	}

	stats := analysis.ComputeSpecialTeams(plays, "ASU", "TTU")

	if stats.OnsideAttempts != 2 || stats.OnsideRecovered != 1 {
		t.Errorf("onside = %d/%d, want 2/1", stats.OnsideAttempts, stats.OnsideRecovered)
	}
	if stats.KicksBlockedBy != 1 {
		t.Errorf("kicks blocked by us = %d, want 1", stats.KicksBlockedBy)
	}
	if stats.KicksBlocked != 1 {
		t.Errorf("our kicks blocked = %d, want 1", stats.KicksBlocked)
	}
}

func TestComputeSpecialTeams_TouchdownAttribution(t *testing.T) {
	tests := []struct {
		name    string
		play    pbp.Play
		wantTDs int
	}{
		{
			"Named team wins",
			pbp.Play{Offense: "ASU", Description: "punt 40 yards, muffed, ASU recovers in the end zone, TOUCHDOWN ASU", IsScoring: true},
			1,
		},
		{
			"Return score credits receiving team",
			pbp.Play{Offense: "TTU", Description: "punt 44 yards, Martinez return 60 yards for a TOUCHDOWN", IsScoring: true},
			1,
		},
		{
			"Opponent return score is not ours",
			pbp.Play{Offense: "ASU", Description: "punt 41 yards, Brooks return 70 yards for a TOUCHDOWN", IsScoring: true},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := analysis.ComputeSpecialTeams([]pbp.Play{tt.play}, "ASU", "TTU")
			if stats.Touchdowns != tt.wantTDs {
				t.Errorf("special teams TDs = %d, want %d", stats.Touchdowns, tt.wantTDs)
			}
		})
	}
}

func TestComputeSpecialTeams_EmptyGame(t *testing.T) {
	stats := analysis.ComputeSpecialTeams(nil, "ASU", "TTU")
	if stats.Punts.GrossAvg != 0 || stats.KickReturns.Average != 0 {
		t.Errorf("averages over empty game must be 0, got %f / %f",
			stats.Punts.GrossAvg, stats.KickReturns.Average)
	}
}

func TestComputeSpecialTeams_NullifiedKickReturnIgnored(t *testing.T) {
	plays := []pbp.Play{
		{Offense: "TTU", Description: "kickoff 65 yards, Raymond return 40 yards, NO PLAY", IsNoPlay: true},
		{Offense: "TTU", Description: "kickoff 60 yards, Raymond return 18 yards to the ASU23"},
	}

	stats := analysis.ComputeSpecialTeams(plays, "ASU", "TTU")

	if stats.KickReturns.Count != 1 || stats.KickReturns.Yards != 18 {
		t.Errorf("kick returns = %d for %d yards, want 1 for 18",
			stats.KickReturns.Count, stats.KickReturns.Yards)
	}
	if len(stats.KickReturns.Highlights) != 0 {
		t.Errorf("highlights = %d, want 0 (nullified return must not count)", len(stats.KickReturns.Highlights))
	}
}

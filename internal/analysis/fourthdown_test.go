package analysis_test

import (
	"testing"

	"github.com/fortuna/gridiron/internal/analysis"
	"github.com/fortuna/gridiron/internal/pbp"
)

func TestComputeFourthDownStats(t *testing.T) {
	tests := []struct {
		name     string
		play     pbp.Play
		attempts int
		conv     int
	}{
		{
			"Gain covers the distance",
			pbp.Play{Offense: "ASU", DownDistance: "4-3", Description: "Skattebo, Cam rush for 3 yards", Yards: yards(3)},
			1, 1,
		},
		{
			"Gain comes up short",
			pbp.Play{Offense: "ASU", DownDistance: "4-3", Description: "Skattebo, Cam rush for 2 yards", Yards: yards(2)},
			1, 0,
		},
		{
			"First-down phrase converts without yardage",
			pbp.Play{Offense: "ASU", DownDistance: "4-2", Description: "pass complete, 1ST DOWN ASU"},
			1, 1,
		},
		{
			"Scoring play converts",
			pbp.Play{Offense: "ASU", DownDistance: "4-Goal", Description: "rush for 2 yards, TOUCHDOWN", Yards: yards(2), IsScoring: true},
			1, 1,
		},
		{
			"Goal distance without score does not convert on yardage",
			pbp.Play{Offense: "ASU", DownDistance: "4-Goal", Description: "rush for 8 yards", Yards: yards(8)},
			1, 0,
		},
		{
			"Punt is not a gamble",
			pbp.Play{Offense: "ASU", DownDistance: "4-8", Description: "Carlson punt 44 yards to the TTU20"},
			0, 0,
		},
		{
			"Field goal is not a gamble",
			pbp.Play{Offense: "ASU", DownDistance: "4-5", Description: "field goal attempt from 38 yards GOOD", IsScoring: true},
			0, 0,
		},
		{
			"No-play excluded",
			pbp.Play{Offense: "ASU", DownDistance: "4-1", Description: "rush for 3 yards. PENALTY ASU False Start. NO PLAY.", IsNoPlay: true},
			0, 0,
		},
		{
			"Penalty-only text excluded",
			pbp.Play{Offense: "ASU", DownDistance: "4-2", Description: "PENALTY TTU Offside 5 yards, rush attempt negated"},
			0, 0,
		},
		{
			"Not fourth down",
			pbp.Play{Offense: "ASU", DownDistance: "3-3", Description: "rush for 5 yards", Yards: yards(5)},
			0, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := analysis.ComputeFourthDownStats([]pbp.Play{tt.play}, "ASU")
			if stats.Attempts != tt.attempts || stats.Conversions != tt.conv {
				t.Errorf("got %d/%d, want %d/%d",
					stats.Attempts, stats.Conversions, tt.attempts, tt.conv)
			}
		})
	}
}

package analysis_test

import (
	"testing"

	"github.com/fortuna/gridiron/internal/analysis"
	"github.com/fortuna/gridiron/internal/pbp"
)

func TestComputeTurnoverStats_RecoveryEndsInFieldGoal(t *testing.T) {
	// Fumble by ASU at index 0; the next TTU play is at index 3 and the
	// possession ends in a made field goal.
	plays := []pbp.Play{
		{Offense: "ASU", Description: "rush, fumble recovered by TTU", IsTurnover: true},
		{Offense: "ASU", Description: "timeout ASU"},
		{Offense: "ASU", Description: "end of quarter"},
		{Offense: "TTU", Description: "rush for 4 yards"},
		{Offense: "TTU", Description: "field goal attempt from 35 yards GOOD", IsScoring: true},
		{Offense: "ASU", Description: "rush for 6 yards"},
	}

	stats := analysis.ComputeTurnoverStats(plays, "TTU", "ASU")

	if stats.Gained != 1 || stats.FumblesGained != 1 {
		t.Fatalf("gained = %d (fumbles %d), want 1/1", stats.Gained, stats.FumblesGained)
	}
	if stats.PointsOffFor != 3 {
		t.Errorf("points off turnovers for = %d, want 3", stats.PointsOffFor)
	}
	if len(stats.Drives) != 1 {
		t.Fatalf("expected 1 post-turnover drive, got %d", len(stats.Drives))
	}
	drive := stats.Drives[0]
	if drive.Result != analysis.ResultFG || drive.Points != 3 {
		t.Errorf("drive result = %q (%d pts), want FG (3 pts)", drive.Result, drive.Points)
	}
	if drive.LostBy != "ASU" || drive.RecoveredBy != "TTU" {
		t.Errorf("attribution = %s -> %s, want ASU -> TTU", drive.LostBy, drive.RecoveredBy)
	}
}

func TestComputeTurnoverStats_Symmetry(t *testing.T) {
	plays := []pbp.Play{
		{Offense: "ASU", Description: "pass intercepted by TTU", IsTurnover: true},
		{Offense: "TTU", Description: "rush for 3 yards"},
		{Offense: "TTU", Description: "rush, fumble recovered by ASU", IsTurnover: true},
		{Offense: "ASU", Description: "rush for 9 yards, TOUCHDOWN", IsScoring: true},
	}

	ours := analysis.ComputeTurnoverStats(plays, "ASU", "TTU")
	theirs := analysis.ComputeTurnoverStats(plays, "TTU", "ASU")

	if ours.Lost != theirs.Gained {
		t.Errorf("ASU lost %d but TTU gained %d", ours.Lost, theirs.Gained)
	}
	if ours.Gained != theirs.Lost {
		t.Errorf("ASU gained %d but TTU lost %d", ours.Gained, theirs.Lost)
	}

	turnoverPlays := 0
	for _, p := range plays {
		if p.IsTurnover {
			turnoverPlays++
		}
	}
	if ours.Lost+ours.Gained != turnoverPlays {
		t.Errorf("lost+gained = %d, want %d", ours.Lost+ours.Gained, turnoverPlays)
	}

	if ours.InterceptionsLost != 1 || ours.FumblesGained != 1 {
		t.Errorf("split = %d INT lost / %d FUM gained, want 1/1",
			ours.InterceptionsLost, ours.FumblesGained)
	}
	if ours.PointsOffFor != 6 {
		t.Errorf("points off turnovers for = %d, want 6 (TD, PAT excluded)", ours.PointsOffFor)
	}
}

func TestComputeTurnoverStats_FinalPlayTurnover(t *testing.T) {
	plays := []pbp.Play{
		{Offense: "ASU", Description: "rush for 5 yards"},
		{Offense: "ASU", Description: "pass intercepted as time expires", IsTurnover: true},
	}

	stats := analysis.ComputeTurnoverStats(plays, "TTU", "ASU")
	if len(stats.Drives) != 1 {
		t.Fatalf("expected the turnover recorded, got %d drives", len(stats.Drives))
	}
	if stats.Drives[0].Result != "" {
		t.Errorf("final-play turnover has result %q, want none", stats.Drives[0].Result)
	}
	if stats.PointsOffFor != 0 {
		t.Errorf("points off = %d, want 0", stats.PointsOffFor)
	}
}

func TestComputeTurnoverStats_UnknownOffenseStaysUnattributed(t *testing.T) {
	// A turnover on the opening play before any offense is recorded cannot
	// be charged to either side, and both ledgers must agree on that.
	plays := []pbp.Play{
		{Description: "muffed snap, fumble recovered", IsTurnover: true},
		{Offense: "TTU", Description: "rush for 3 yards"},
	}

	home := analysis.ComputeTurnoverStats(plays, "ASU", "TTU")
	away := analysis.ComputeTurnoverStats(plays, "TTU", "ASU")

	for name, stats := range map[string]analysis.TurnoverStats{"ASU": home, "TTU": away} {
		if stats.Lost != 0 || stats.Gained != 0 {
			t.Errorf("%s: lost/gained = %d/%d, want 0/0", name, stats.Lost, stats.Gained)
		}
	}
	if home.Lost != away.Gained || home.Gained != away.Lost {
		t.Errorf("ledgers disagree: ASU %d/%d vs TTU %d/%d",
			home.Lost, home.Gained, away.Lost, away.Gained)
	}

	if len(home.Drives) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(home.Drives))
	}
	drive := home.Drives[0]
	if drive.LostBy != "" || drive.RecoveredBy != "" {
		t.Errorf("attribution = %q -> %q, want unattributed", drive.LostBy, drive.RecoveredBy)
	}
	if drive.Kind != "fumble" {
		t.Errorf("kind = %q, want fumble", drive.Kind)
	}
}

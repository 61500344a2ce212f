package analysis_test

import (
	"testing"

	"github.com/fortuna/gridiron/internal/analysis"
	"github.com/fortuna/gridiron/internal/pbp"
)

func TestComputeTwoPointStats_KickoffEnforcementStands(t *testing.T) {
	// The conversion succeeded and the flag was unsportsmanlike conduct
	// enforced on the ensuing kickoff, so the NO PLAY marker does not erase
	// the points.
	plays := []pbp.Play{{
		Offense: "ASU",
		Description: "#15 K.Anderson pass attempt Successful. Arizona St. 21, Colorado 14. " +
			"PENALTY COLO UNS: Unsportsmanlike Conduct 15 yards from ASU35 to ASU50. NO PLAY.",
		IsNoPlay:  true,
		IsScoring: true,
		Quarter:   4,
	}}

	stats := analysis.ComputeTwoPointStats(plays, "ASU", "COLO")
	if stats.Attempts != 1 || stats.Conversions != 1 {
		t.Errorf("attempts/conversions = %d/%d, want 1/1", stats.Attempts, stats.Conversions)
	}
	if stats.PassAttempts != 1 || stats.PassConversions != 1 {
		t.Errorf("pass attempts/conversions = %d/%d, want 1/1", stats.PassAttempts, stats.PassConversions)
	}
}

func TestComputeTwoPointStats_OrdinaryNoPlayExcluded(t *testing.T) {
	plays := []pbp.Play{{
		Offense: "ASU",
		Description: "#15 W.Hammond pass attempt failed PENALTY ASU Holding 2 yards " +
			"from ASU03 to ASU01. NO PLAY.",
		IsNoPlay: true,
		Quarter:  4,
	}}

	stats := analysis.ComputeTwoPointStats(plays, "ASU", "TTU")
	if stats.Attempts != 0 || stats.Conversions != 0 {
		t.Errorf("attempts/conversions = %d/%d, want 0/0", stats.Attempts, stats.Conversions)
	}
}

func TestComputeTwoPointStats_RushAndOpponent(t *testing.T) {
	plays := []pbp.Play{
		{Offense: "ASU", Description: "Skattebo rush attempt successful", IsScoring: true},
		{Offense: "ASU", Description: "Hammond pass attempt failed"},
		{Offense: "TTU", Description: "Morton pass attempt successful", IsScoring: true},
		// A point-after kick is not a two-point try.
		{Offense: "ASU", Description: "Carney kick attempt good", IsScoring: true},
	}

	stats := analysis.ComputeTwoPointStats(plays, "ASU", "TTU")

	if stats.Attempts != 2 || stats.Conversions != 1 {
		t.Errorf("attempts/conversions = %d/%d, want 2/1", stats.Attempts, stats.Conversions)
	}
	if stats.RushAttempts != 1 || stats.RushConversions != 1 {
		t.Errorf("rush = %d/%d, want 1/1", stats.RushAttempts, stats.RushConversions)
	}
	if stats.PassAttempts != 1 || stats.PassConversions != 0 {
		t.Errorf("pass = %d/%d, want 1/0", stats.PassAttempts, stats.PassConversions)
	}
	if stats.OppAttempts != 1 || stats.OppConversions != 1 {
		t.Errorf("opponent = %d/%d, want 1/1", stats.OppAttempts, stats.OppConversions)
	}
	if len(stats.Details) != 2 {
		t.Errorf("details = %d, want 2", len(stats.Details))
	}
}

package analysis_test

import (
	"testing"

	"github.com/fortuna/gridiron/internal/analysis"
	"github.com/fortuna/gridiron/internal/pbp"
)

func play(offense, description string) pbp.Play {
	return pbp.Play{Offense: offense, Description: description}
}

func TestSegmentDrives_OffenseChange(t *testing.T) {
	plays := []pbp.Play{
		play("ASU", "rush for 5 yards"),
		play("ASU", "pass incomplete"),
		play("TTU", "rush for 2 yards"),
		play("ASU", "pass complete for 12 yards"),
	}

	drives := analysis.SegmentDrives(plays)
	if len(drives) != 3 {
		t.Fatalf("expected 3 drives, got %d", len(drives))
	}

	wantOffense := []string{"ASU", "TTU", "ASU"}
	wantPlays := []int{2, 1, 1}
	for i, drive := range drives {
		if drive.ID != i+1 {
			t.Errorf("drive %d has id %d, want %d", i, drive.ID, i+1)
		}
		if drive.Offense != wantOffense[i] {
			t.Errorf("drive %d offense = %q, want %q", i, drive.Offense, wantOffense[i])
		}
		if len(drive.Plays) != wantPlays[i] {
			t.Errorf("drive %d has %d plays, want %d", i, len(drive.Plays), wantPlays[i])
		}
	}
}

func TestSegmentDrives_MarkerOpensDrive(t *testing.T) {
	plays := []pbp.Play{
		play("ASU", "rush for 5 yards"),
		play("ASU", "ASU drive start at 12:30"),
		play("ASU", "pass complete for 8 yards"),
	}

	drives := analysis.SegmentDrives(plays)
	if len(drives) != 2 {
		t.Fatalf("expected marker to open a new drive, got %d drives", len(drives))
	}
	if len(drives[1].Plays) != 2 {
		t.Errorf("second drive has %d plays, want 2", len(drives[1].Plays))
	}
}

func TestSegmentDrives_MissingOffenseInherits(t *testing.T) {
	plays := []pbp.Play{
		play("ASU", "rush for 5 yards"),
		play("", "timeout"),
		play("ASU", "pass incomplete"),
	}

	drives := analysis.SegmentDrives(plays)
	if len(drives) != 1 {
		t.Fatalf("missing offense must not open a drive, got %d drives", len(drives))
	}
	if len(drives[0].Plays) != 3 {
		t.Errorf("drive has %d plays, want 3", len(drives[0].Plays))
	}
}

func TestSegmentDrives_EveryPlayAssigned(t *testing.T) {
	plays := []pbp.Play{
		play("ASU", "kickoff 65 yards"),
		play("TTU", "rush for 3 yards"),
		play("", "pass incomplete"),
		play("TTU", "punt 40 yards"),
		play("ASU", "rush for 7 yards"),
	}

	drives := analysis.SegmentDrives(plays)
	total := 0
	for _, drive := range drives {
		if len(drive.Plays) == 0 {
			t.Errorf("drive %d has zero plays", drive.ID)
		}
		total += len(drive.Plays)
	}
	if total != len(plays) {
		t.Errorf("drives cover %d plays, want %d", total, len(plays))
	}
}

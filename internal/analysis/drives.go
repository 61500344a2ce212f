package analysis

import (
	"strings"

	"github.com/fortuna/gridiron/internal/pbp"
)

// driveStartMarker is the phrase the PBP source prints at the top of a new
// possession when it bothers to print one at all.
const driveStartMarker = "drive start"

// Drive is a contiguous run of plays by one offense, numbered in discovery
// order starting at 1.
type Drive struct {
	ID      int
	Offense string
	Plays   []pbp.Play
}

// SegmentDrives walks the ordered play sequence and groups it into drives.
// A new drive opens on an explicit drive-start marker, on a change of the
// offense field, or on the first play. Plays with a missing offense inherit
// the current drive's offense rather than opening a new one.
func SegmentDrives(plays []pbp.Play) []Drive {
	var drives []Drive
	currentOffense := ""

	for _, play := range plays {
		offense := play.Offense
		marker := strings.Contains(strings.ToLower(play.Description), driveStartMarker)

		starts := len(drives) == 0 || marker
		if offense != "" && offense != currentOffense {
			starts = true
		}

		if starts {
			if offense == "" {
				offense = currentOffense
			}
			drives = append(drives, Drive{ID: len(drives) + 1, Offense: offense})
			currentOffense = offense
		}

		last := &drives[len(drives)-1]
		last.Plays = append(last.Plays, play)
	}

	return drives
}

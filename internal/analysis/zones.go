package analysis

import (
	"strings"

	"github.com/fortuna/gridiron/internal/pbp"
)

// Yards-to-goal bands. Membership nests: tight red implies red implies green.
const (
	greenZoneYards    = 30
	redZoneYards      = 20
	tightRedZoneYards = 10
)

// DriveResult classifies how a possession ended.
type DriveResult string

const (
	ResultTD       DriveResult = "TD"
	ResultFG       DriveResult = "FG"
	ResultTurnover DriveResult = "TURNOVER"
	ResultDowns    DriveResult = "DOWNS"
	ResultMissedFG DriveResult = "MISSED_FG"
	ResultNoScore  DriveResult = "NO_SCORE"
)

// ZoneCounts aggregates trips and outcomes for one field-position band.
// Failed is derived as trips minus scores, which keeps the nesting invariant
// (tight red <= red <= green) intact for every counter.
type ZoneCounts struct {
	Trips  int `json:"trips"`
	TDs    int `json:"tds"`
	FGs    int `json:"fgs"`
	Failed int `json:"failed"`
}

// RedZonePlay is one snap taken inside the 20, tagged with the band it was
// snapped in and how the drive it belonged to eventually ended.
type RedZonePlay struct {
	Description string      `json:"description"`
	Quarter     int         `json:"quarter"`
	Clock       string      `json:"clock,omitempty"`
	YardsToGoal int         `json:"yards_to_goal"`
	Zone        string      `json:"zone"`
	DriveID     int         `json:"drive_id"`
	DriveResult DriveResult `json:"drive_result"`
}

// ZoneSplits is the full scoring-zone report for one team in one game.
type ZoneSplits struct {
	Green    ZoneCounts    `json:"green"`
	Red      ZoneCounts    `json:"red"`
	TightRed ZoneCounts    `json:"tight_red"`
	Detail   []RedZonePlay `json:"red_zone_detail"`
}

// driveZoneState tracks one drive's zone membership and resolved outcome
// while the play walk is in progress.
type driveZoneState struct {
	enteredGreen    bool
	enteredRed      bool
	enteredTightRed bool
	outcome         DriveResult
	failure         DriveResult
}

func (d *driveZoneState) result() DriveResult {
	if d.outcome != "" {
		return d.outcome
	}
	if d.failure != "" {
		return d.failure
	}
	return ResultNoScore
}

// ComputeZoneSplits derives green/red/tight-red trip counts and outcomes for
// the given team. A drive "trips" into a band the first time any of its snaps
// resolves inside it; outcomes attribute cumulatively to every band the drive
// entered. The first qualifying score or failure on a drive wins and later
// events never overwrite it.
func ComputeZoneSplits(plays []pbp.Play, team, opponent string) ZoneSplits {
	var splits ZoneSplits
	drives := SegmentDrives(plays)

	type detailRef struct {
		play  RedZonePlay
		state *driveZoneState
	}
	var details []detailRef

	for i := range drives {
		drive := &drives[i]
		if drive.Offense != team {
			continue
		}

		state := &driveZoneState{}
		for _, play := range drive.Plays {
			desc := strings.ToLower(play.Description)
			if isZoneExemptPlay(desc) {
				continue
			}

			ytg, ok := YardsToGoal(play.Spot, team, opponent)
			if ok {
				if ytg <= greenZoneYards {
					state.enteredGreen = true
				}
				if ytg <= redZoneYards {
					state.enteredRed = true
				}
				if ytg <= tightRedZoneYards {
					state.enteredTightRed = true
				}

				if ytg <= redZoneYards {
					zone := "red"
					if ytg <= tightRedZoneYards {
						zone = "tight_red"
					}
					details = append(details, detailRef{
						play: RedZonePlay{
							Description: play.Description,
							Quarter:     play.Quarter,
							Clock:       play.Clock,
							YardsToGoal: ytg,
							Zone:        zone,
							DriveID:     drive.ID,
						},
						state: state,
					})
				}
			}

			scored := play.IsScoring || isMadeFieldGoal(desc)
			if scored && state.outcome == "" {
				if isMadeFieldGoal(desc) {
					state.outcome = ResultFG
				} else {
					state.outcome = ResultTD
				}
				continue
			}

			if state.outcome == "" && state.failure == "" {
				switch {
				case play.IsTurnover:
					state.failure = ResultTurnover
				case strings.Contains(desc, "turnover on downs"):
					state.failure = ResultDowns
				case isMissedFieldGoal(desc):
					state.failure = ResultMissedFG
				}
			}
		}

		if state.enteredGreen {
			splits.Green.Trips++
			tallyZoneOutcome(&splits.Green, state.outcome)
		}
		if state.enteredRed {
			splits.Red.Trips++
			tallyZoneOutcome(&splits.Red, state.outcome)
		}
		if state.enteredTightRed {
			splits.TightRed.Trips++
			tallyZoneOutcome(&splits.TightRed, state.outcome)
		}
	}

	splits.Green.Failed = splits.Green.Trips - splits.Green.TDs - splits.Green.FGs
	splits.Red.Failed = splits.Red.Trips - splits.Red.TDs - splits.Red.FGs
	splits.TightRed.Failed = splits.TightRed.Trips - splits.TightRed.TDs - splits.TightRed.FGs

	for _, ref := range details {
		ref.play.DriveResult = ref.state.result()
		splits.Detail = append(splits.Detail, ref.play)
	}

	return splits
}

func tallyZoneOutcome(counts *ZoneCounts, outcome DriveResult) {
	switch outcome {
	case ResultTD:
		counts.TDs++
	case ResultFG:
		counts.FGs++
	}
}

// isZoneExemptPlay filters snaps that follow an already-counted score
// (point-after and two-point tries) plus timeouts, none of which may open a
// new zone trip.
func isZoneExemptPlay(desc string) bool {
	if strings.Contains(desc, "timeout") {
		return true
	}
	for _, phrase := range []string{"kick attempt", "pass attempt", "rush attempt", "two-point", "two point"} {
		if strings.Contains(desc, phrase) {
			return true
		}
	}
	return false
}

func isFieldGoalAttempt(desc string) bool {
	return strings.Contains(desc, "field goal")
}

func isMadeFieldGoal(desc string) bool {
	if !isFieldGoalAttempt(desc) {
		return false
	}
	return strings.Contains(desc, "good") && !strings.Contains(desc, "no good")
}

func isMissedFieldGoal(desc string) bool {
	if !isFieldGoalAttempt(desc) {
		return false
	}
	for _, phrase := range []string{"no good", "missed", "blocked", "wide"} {
		if strings.Contains(desc, phrase) {
			return true
		}
	}
	return false
}

package analysis

import (
	"strings"

	"github.com/fortuna/gridiron/internal/pbp"
)

// PostTurnoverDrive records what the recovering team did with the ball after
// a takeaway. Result is empty when the turnover happened on the final play of
// the game and no ensuing possession exists.
type PostTurnoverDrive struct {
	LostBy      string      `json:"lost_by"`
	RecoveredBy string      `json:"recovered_by"`
	Kind        string      `json:"kind"`
	Description string      `json:"description"`
	Quarter     int         `json:"quarter"`
	Result      DriveResult `json:"result,omitempty"`
	Points      int         `json:"points"`
}

// TurnoverStats is the takeaway/giveaway ledger for one team in one game.
type TurnoverStats struct {
	Lost                int                 `json:"lost"`
	Gained              int                 `json:"gained"`
	InterceptionsLost   int                 `json:"interceptions_lost"`
	FumblesLost         int                 `json:"fumbles_lost"`
	InterceptionsGained int                 `json:"interceptions_gained"`
	FumblesGained       int                 `json:"fumbles_gained"`
	PointsOffFor        int                 `json:"points_off_turnovers_for"`
	PointsOffAgainst    int                 `json:"points_off_turnovers_against"`
	Drives              []PostTurnoverDrive `json:"post_turnover_drives"`
}

// ComputeTurnoverStats finds every turnover in the sequence and evaluates the
// ensuing possession: the first later play by the recovering team opens the
// post-turnover drive, which runs until possession changes again. A score on
// that drive credits 6 (TD, point-after excluded on purpose) or 3 (FG) to
// whichever side recovered.
func ComputeTurnoverStats(plays []pbp.Play, team, opponent string) TurnoverStats {
	var stats TurnoverStats
	offenses := effectiveOffenses(plays)

	for i, play := range plays {
		if !play.IsTurnover {
			continue
		}

		losing := offenses[i]
		kind := turnoverKind(play.Description)

		// No play before the turnover established possession, so neither
		// side can be charged. Keep the event in the ledger unattributed;
		// both teams' ledgers then agree on it.
		if losing == "" {
			stats.Drives = append(stats.Drives, PostTurnoverDrive{
				Kind:        kind,
				Description: play.Description,
				Quarter:     play.Quarter,
			})
			continue
		}

		recovering := otherTeam(losing, team, opponent)

		if losing == team {
			stats.Lost++
			if kind == "interception" {
				stats.InterceptionsLost++
			} else {
				stats.FumblesLost++
			}
		} else {
			stats.Gained++
			if kind == "interception" {
				stats.InterceptionsGained++
			} else {
				stats.FumblesGained++
			}
		}

		record := PostTurnoverDrive{
			LostBy:      losing,
			RecoveredBy: recovering,
			Kind:        kind,
			Description: play.Description,
			Quarter:     play.Quarter,
		}

		start := -1
		for j := i + 1; j < len(plays); j++ {
			if offenses[j] == recovering {
				start = j
				break
			}
		}

		if start >= 0 {
			record.Result = ResultNoScore
			for j := start; j < len(plays); j++ {
				if offenses[j] != recovering {
					break
				}
				if plays[j].IsScoring || isMadeFieldGoal(strings.ToLower(plays[j].Description)) {
					if isMadeFieldGoal(strings.ToLower(plays[j].Description)) {
						record.Result = ResultFG
						record.Points = 3
					} else {
						record.Result = ResultTD
						record.Points = 6
					}
					break
				}
			}

			if record.Points > 0 {
				if recovering == team {
					stats.PointsOffFor += record.Points
				} else {
					stats.PointsOffAgainst += record.Points
				}
			}
		}

		stats.Drives = append(stats.Drives, record)
	}

	return stats
}

// effectiveOffenses fills in absent offense fields by carrying the previous
// play's offense forward, mirroring drive segmentation.
func effectiveOffenses(plays []pbp.Play) []string {
	offenses := make([]string, len(plays))
	current := ""
	for i, play := range plays {
		if play.Offense != "" {
			current = play.Offense
		}
		offenses[i] = current
	}
	return offenses
}

func otherTeam(offense, team, opponent string) string {
	if offense == team {
		return opponent
	}
	return team
}

func turnoverKind(desc string) string {
	if strings.Contains(strings.ToLower(desc), "intercept") {
		return "interception"
	}
	return "fumble"
}

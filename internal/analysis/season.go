package analysis

import (
	"fmt"
	"math"
)

// SeasonAggregates is the summary record derived from a season's worth of
// GameRecords. Every division floors its denominator at 1 so an empty season
// yields zeros instead of NaN.
type SeasonAggregates struct {
	Games             int     `json:"games"`
	Record            string  `json:"record"`
	ConfRecord        string  `json:"conf_record"`
	PPG               float64 `json:"ppg"`
	OppPPG            float64 `json:"opp_ppg"`
	ExplosivesPerGame float64 `json:"explosives_per_game"`
	TurnoverMargin    int     `json:"turnover_margin"`
	PenaltiesPerGame  float64 `json:"penalties_per_game"`
	RedZoneTrips      int     `json:"red_zone_trips"`
	RedZoneTDs        int     `json:"red_zone_tds"`
	RedZoneFGs        int     `json:"red_zone_fgs"`
	RedZoneTDPct      float64 `json:"red_zone_td_pct"`
	FourthDownAtt     int     `json:"fourth_down_attempts"`
	FourthDownConv    int     `json:"fourth_down_conversions"`
	TwoPtAttempts     int     `json:"two_pt_attempts"`
	TwoPtConversions  int     `json:"two_pt_conversions"`
	TwoPtPct          float64 `json:"two_pt_pct"`
}

// AggregateSeason folds a list of per-game records into season totals and
// per-game averages.
func AggregateSeason(games []*GameRecord) SeasonAggregates {
	agg := SeasonAggregates{Games: len(games)}
	n := len(games)
	if n == 0 {
		n = 1
	}

	wins, confWins, confLosses := 0, 0, 0
	var pointsFor, pointsAgainst, explosives, penalties int
	var turnoversFor, turnoversLost int

	for _, g := range games {
		if g.Won() {
			wins++
		}
		if g.Conference {
			if g.Won() {
				confWins++
			} else {
				confLosses++
			}
		}
		pointsFor += g.PointsFor
		pointsAgainst += g.PointsAgainst
		explosives += g.Explosives.Count
		penalties += g.Penalties.Count
		turnoversFor += g.Turnovers.Gained
		turnoversLost += g.Turnovers.Lost
		agg.RedZoneTrips += g.Zones.Red.Trips
		agg.RedZoneTDs += g.Zones.Red.TDs
		agg.RedZoneFGs += g.Zones.Red.FGs
		agg.FourthDownAtt += g.FourthDowns.Attempts
		agg.FourthDownConv += g.FourthDowns.Conversions
		agg.TwoPtAttempts += g.TwoPoint.Attempts
		agg.TwoPtConversions += g.TwoPoint.Conversions
	}

	agg.Record = fmt.Sprintf("%d-%d", wins, len(games)-wins)
	agg.ConfRecord = fmt.Sprintf("%d-%d", confWins, confLosses)
	agg.PPG = round1(float64(pointsFor) / float64(n))
	agg.OppPPG = round1(float64(pointsAgainst) / float64(n))
	agg.ExplosivesPerGame = round1(float64(explosives) / float64(n))
	agg.TurnoverMargin = turnoversFor - turnoversLost
	agg.PenaltiesPerGame = round1(float64(penalties) / float64(n))

	trips := agg.RedZoneTrips
	if trips == 0 {
		trips = 1
	}
	agg.RedZoneTDPct = round1(float64(agg.RedZoneTDs) / float64(trips) * 100)

	attempts := agg.TwoPtAttempts
	if attempts == 0 {
		attempts = 1
	}
	agg.TwoPtPct = round1(float64(agg.TwoPtConversions) / float64(attempts) * 100)

	return agg
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

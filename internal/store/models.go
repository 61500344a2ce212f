package store

import (
	"database/sql"
	"time"
)

// GameRow is a persisted per-game analysis record. The scalar columns
// cover what list endpoints and season rollups need; the full component
// breakdown lives in the Analysis JSON payload.
type GameRow struct {
	ID            int            `json:"id" db:"id"`
	Season        string         `json:"season" db:"season"`
	Team          string         `json:"team" db:"team"`
	OpponentAbbr  string         `json:"opponent_abbr" db:"opponent_abbr"`
	Opponent      string         `json:"opponent" db:"opponent"`
	GameNumber    int            `json:"game_number" db:"game_number"`
	GameDate      sql.NullString `json:"game_date,omitempty" db:"game_date"`
	PointsFor     int            `json:"points_for" db:"points_for"`
	PointsAgainst int            `json:"points_against" db:"points_against"`
	Conference    bool           `json:"conference" db:"conference_game"`
	Power4        bool           `json:"power4" db:"power4"`
	TotalPlays    int            `json:"total_plays" db:"total_plays"`
	TotalYards    int            `json:"total_yards" db:"total_yards"`
	Analysis      string         `json:"analysis" db:"analysis"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// SeasonRow is a persisted season summary for a team. Summary holds the
// aggregate JSON payload recomputed whenever a game row changes.
type SeasonRow struct {
	Season    string    `json:"season" db:"season"`
	Team      string    `json:"team" db:"team"`
	Games     int       `json:"games" db:"games"`
	Record    string    `json:"record" db:"record"`
	Summary   string    `json:"summary" db:"summary"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// GameRepository handles per-game analysis rows
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `id, season, team, opponent_abbr, opponent, game_number, game_date,
	points_for, points_against, conference_game, power4, total_plays, total_yards,
	analysis, created_at, updated_at`

func scanGame(row interface{ Scan(...interface{}) error }) (*store.GameRow, error) {
	g := &store.GameRow{}
	err := row.Scan(
		&g.ID, &g.Season, &g.Team, &g.OpponentAbbr, &g.Opponent, &g.GameNumber, &g.GameDate,
		&g.PointsFor, &g.PointsAgainst, &g.Conference, &g.Power4, &g.TotalPlays, &g.TotalYards,
		&g.Analysis, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Upsert inserts or replaces the analysis row for (season, team, game_number)
func (r *GameRepository) Upsert(ctx context.Context, g *store.GameRow) error {
	query := `
		INSERT INTO game_analyses (season, team, opponent_abbr, opponent, game_number,
			game_date, points_for, points_against, conference_game, power4,
			total_plays, total_yards, analysis, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		ON CONFLICT (season, team, game_number) DO UPDATE SET
			opponent_abbr = EXCLUDED.opponent_abbr,
			opponent = EXCLUDED.opponent,
			game_date = EXCLUDED.game_date,
			points_for = EXCLUDED.points_for,
			points_against = EXCLUDED.points_against,
			conference_game = EXCLUDED.conference_game,
			power4 = EXCLUDED.power4,
			total_plays = EXCLUDED.total_plays,
			total_yards = EXCLUDED.total_yards,
			analysis = EXCLUDED.analysis,
			updated_at = NOW()
		RETURNING id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		g.Season, g.Team, g.OpponentAbbr, g.Opponent, g.GameNumber,
		g.GameDate, g.PointsFor, g.PointsAgainst, g.Conference, g.Power4,
		g.TotalPlays, g.TotalYards, g.Analysis,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("upserting game analysis: %w", err)
	}

	return nil
}

// GetByNumber finds a single game by season, team and game number
func (r *GameRepository) GetByNumber(ctx context.Context, season, team string, gameNumber int) (*store.GameRow, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM game_analyses
		WHERE season = $1 AND team = $2 AND game_number = $3
	`, gameColumns)

	g, err := scanGame(r.db.DB().QueryRowContext(ctx, query, season, team, gameNumber))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game %d not found for %s %s", gameNumber, team, season)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game analysis: %w", err)
	}

	return g, nil
}

// ListSeason returns all analyzed games for a team in schedule order
func (r *GameRepository) ListSeason(ctx context.Context, season, team string) ([]*store.GameRow, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM game_analyses
		WHERE season = $1 AND team = $2
		ORDER BY game_number
	`, gameColumns)

	rows, err := r.db.DB().QueryContext(ctx, query, season, team)
	if err != nil {
		return nil, fmt.Errorf("querying season games: %w", err)
	}
	defer rows.Close()

	var games []*store.GameRow
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning game row: %w", err)
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating game rows: %w", err)
	}

	return games, nil
}

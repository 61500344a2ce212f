package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// SeasonRepository handles season summary rows
type SeasonRepository struct {
	db *store.Database
}

// NewSeasonRepository creates a new season repository
func NewSeasonRepository(db *store.Database) *SeasonRepository {
	return &SeasonRepository{db: db}
}

// Upsert inserts or replaces the summary row for (season, team)
func (r *SeasonRepository) Upsert(ctx context.Context, s *store.SeasonRow) error {
	query := `
		INSERT INTO season_summaries (season, team, games, record, summary, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (season, team) DO UPDATE SET
			games = EXCLUDED.games,
			record = EXCLUDED.record,
			summary = EXCLUDED.summary,
			updated_at = NOW()
	`

	_, err := r.db.DB().ExecContext(ctx, query, s.Season, s.Team, s.Games, s.Record, s.Summary)
	if err != nil {
		return fmt.Errorf("upserting season summary: %w", err)
	}

	return nil
}

// Get returns the stored summary for a team's season
func (r *SeasonRepository) Get(ctx context.Context, season, team string) (*store.SeasonRow, error) {
	query := `
		SELECT season, team, games, record, summary, updated_at
		FROM season_summaries
		WHERE season = $1 AND team = $2
	`

	s := &store.SeasonRow{}
	err := r.db.DB().QueryRowContext(ctx, query, season, team).Scan(
		&s.Season, &s.Team, &s.Games, &s.Record, &s.Summary, &s.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("season summary not found for %s %s", team, season)
	}
	if err != nil {
		return nil, fmt.Errorf("querying season summary: %w", err)
	}

	return s, nil
}

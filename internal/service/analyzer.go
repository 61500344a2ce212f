package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/fortuna/gridiron/internal/analysis"
	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/pbp"
	"github.com/fortuna/gridiron/internal/publisher"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// AnalyzerService runs play-by-play analysis and keeps the store, cache and
// event streams consistent. Cache and publisher may be nil; persistence is
// required.
type AnalyzerService struct {
	db          *store.Database
	games       *repository.GameRepository
	seasons     *repository.SeasonRepository
	cache       *cache.RedisCache
	publisher   *publisher.RedisPublisher
	conferences *pbp.ConferenceTable
}

// NewAnalyzerService creates the analyzer service
func NewAnalyzerService(db *store.Database, rc *cache.RedisCache, pub *publisher.RedisPublisher) *AnalyzerService {
	return &AnalyzerService{
		db:          db,
		games:       repository.NewGameRepository(db),
		seasons:     repository.NewSeasonRepository(db),
		cache:       rc,
		publisher:   pub,
		conferences: pbp.DefaultConferences(),
	}
}

// IngestGame analyzes one game's plays, persists the record and recomputes
// the team's season summary.
func (s *AnalyzerService) IngestGame(ctx context.Context, season string, input *pbp.GameInput) (*analysis.GameRecord, error) {
	if input.OurAbbr == "" {
		return nil, fmt.Errorf("game input missing team abbreviation")
	}
	// Game number is part of the upsert key; a zero would make every
	// unnumbered ingest overwrite the same row.
	if input.GameNumber < 1 {
		return nil, fmt.Errorf("game input missing game number")
	}
	if season == "" {
		season = input.Season
	}
	if season == "" {
		return nil, fmt.Errorf("game input missing season")
	}

	record := analysis.AnalyzeInput(input, s.conferences)

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding game record: %w", err)
	}

	row := &store.GameRow{
		Season:        season,
		Team:          record.Team,
		OpponentAbbr:  record.OpponentAbbr,
		Opponent:      record.Opponent,
		GameNumber:    record.GameNumber,
		PointsFor:     record.PointsFor,
		PointsAgainst: record.PointsAgainst,
		Conference:    record.Conference,
		Power4:        record.IsPower4,
		TotalPlays:    record.TotalPlays,
		TotalYards:    record.TotalYards,
		Analysis:      string(payload),
	}
	if record.Date != "" {
		row.GameDate = sql.NullString{String: record.Date, Valid: true}
	}

	if err := s.games.Upsert(ctx, row); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetGame(ctx, season, record.Team, record.GameNumber, record); err != nil {
			log.Printf("[analyzer] cache write failed for game %d: %v", record.GameNumber, err)
		}
		if err := s.cache.InvalidateSeason(ctx, season, record.Team); err != nil {
			log.Printf("[analyzer] season cache invalidation failed: %v", err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishGameAnalyzed(ctx, season, record.Team, record.GameNumber, record); err != nil {
			log.Printf("[analyzer] publish failed for game %d: %v", record.GameNumber, err)
		}
	}

	if _, err := s.RecomputeSeason(ctx, season, record.Team); err != nil {
		return nil, fmt.Errorf("recomputing season summary: %w", err)
	}

	return record, nil
}

// Game returns the analyzed record for one game, cache first
func (s *AnalyzerService) Game(ctx context.Context, season, team string, gameNumber int) (*analysis.GameRecord, error) {
	if s.cache != nil {
		var record analysis.GameRecord
		err := s.cache.GetGame(ctx, season, team, gameNumber, &record)
		if err == nil {
			return &record, nil
		}
		if !cache.IsMiss(err) {
			log.Printf("[analyzer] cache read failed: %v", err)
		}
	}

	row, err := s.games.GetByNumber(ctx, season, team, gameNumber)
	if err != nil {
		return nil, err
	}

	record, err := decodeRecord(row)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetGame(ctx, season, team, gameNumber, record); err != nil {
			log.Printf("[analyzer] cache backfill failed: %v", err)
		}
	}

	return record, nil
}

// SeasonGames returns the stored game rows for a team's season
func (s *AnalyzerService) SeasonGames(ctx context.Context, season, team string) ([]*store.GameRow, error) {
	return s.games.ListSeason(ctx, season, team)
}

// SeasonSummary returns the aggregate summary for a team's season,
// cache first, recomputing from stored games when no summary row exists.
func (s *AnalyzerService) SeasonSummary(ctx context.Context, season, team string) (*analysis.SeasonAggregates, error) {
	if s.cache != nil {
		var agg analysis.SeasonAggregates
		err := s.cache.GetSeason(ctx, season, team, &agg)
		if err == nil {
			return &agg, nil
		}
		if !cache.IsMiss(err) {
			log.Printf("[analyzer] cache read failed: %v", err)
		}
	}

	row, err := s.seasons.Get(ctx, season, team)
	if err != nil {
		// No stored summary yet; build one from whatever games exist.
		return s.RecomputeSeason(ctx, season, team)
	}

	var agg analysis.SeasonAggregates
	if err := json.Unmarshal([]byte(row.Summary), &agg); err != nil {
		return nil, fmt.Errorf("decoding season summary: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetSeason(ctx, season, team, &agg); err != nil {
			log.Printf("[analyzer] cache backfill failed: %v", err)
		}
	}

	return &agg, nil
}

// RecomputeSeason rebuilds the season summary from stored game rows and
// persists it.
func (s *AnalyzerService) RecomputeSeason(ctx context.Context, season, team string) (*analysis.SeasonAggregates, error) {
	rows, err := s.games.ListSeason(ctx, season, team)
	if err != nil {
		return nil, err
	}

	records := make([]*analysis.GameRecord, 0, len(rows))
	for _, row := range rows {
		record, err := decodeRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	agg := analysis.AggregateSeason(records)

	payload, err := json.Marshal(agg)
	if err != nil {
		return nil, fmt.Errorf("encoding season summary: %w", err)
	}

	if err := s.seasons.Upsert(ctx, &store.SeasonRow{
		Season:  season,
		Team:    team,
		Games:   agg.Games,
		Record:  agg.Record,
		Summary: string(payload),
	}); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSeason(ctx, season, team, &agg); err != nil {
			log.Printf("[analyzer] cache write failed for season %s: %v", season, err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishSeasonUpdated(ctx, season, team, &agg); err != nil {
			log.Printf("[analyzer] season publish failed: %v", err)
		}
	}

	return &agg, nil
}

func decodeRecord(row *store.GameRow) (*analysis.GameRecord, error) {
	var record analysis.GameRecord
	if err := json.Unmarshal([]byte(row.Analysis), &record); err != nil {
		return nil, fmt.Errorf("decoding game %d analysis: %w", row.GameNumber, err)
	}
	return &record, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Database wraps the PostgreSQL connection used for analysis storage
type Database struct {
	conn *sql.DB
	dsn  string
}

// NewDatabase opens a PostgreSQL connection and verifies it
func NewDatabase(dsn string) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{
		conn: db,
		dsn:  dsn,
	}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries
func (db *Database) DB() *sql.DB {
	return db.conn
}

// migration pairs a version name with the SQL it applies. The schema is
// small enough that statements live inline rather than in .sql files.
type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "001_create_game_analyses",
		sql: `
			CREATE TABLE IF NOT EXISTS game_analyses (
				id              SERIAL PRIMARY KEY,
				season          VARCHAR(16) NOT NULL,
				team            VARCHAR(16) NOT NULL,
				opponent_abbr   VARCHAR(16) NOT NULL,
				opponent        VARCHAR(64) NOT NULL DEFAULT '',
				game_number     INT NOT NULL,
				game_date       VARCHAR(32),
				points_for      INT NOT NULL DEFAULT 0,
				points_against  INT NOT NULL DEFAULT 0,
				conference_game BOOLEAN NOT NULL DEFAULT FALSE,
				power4          BOOLEAN NOT NULL DEFAULT FALSE,
				total_plays     INT NOT NULL DEFAULT 0,
				total_yards     INT NOT NULL DEFAULT 0,
				analysis        JSONB NOT NULL,
				created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (season, team, game_number)
			)
		`,
	},
	{
		version: "002_create_season_summaries",
		sql: `
			CREATE TABLE IF NOT EXISTS season_summaries (
				season     VARCHAR(16) NOT NULL,
				team       VARCHAR(16) NOT NULL,
				games      INT NOT NULL DEFAULT 0,
				record     VARCHAR(16) NOT NULL DEFAULT '',
				summary    JSONB NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				PRIMARY KEY (season, team)
			)
		`,
	},
	{
		version: "003_index_game_analyses_season",
		sql: `
			CREATE INDEX IF NOT EXISTS idx_game_analyses_season_team
				ON game_analyses (season, team, game_number)
		`,
	},
}

// RunMigrations applies all pending schema migrations in order
func (db *Database) RunMigrations() error {
	log.Println("Running database migrations...")

	if err := db.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		if err := db.runMigration(m); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.version, err)
		}
	}

	log.Println("✓ All migrations completed successfully")

	return nil
}

// createMigrationsTable creates a table to track which migrations have been run
func (db *Database) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.conn.Exec(query)
	return err
}

// runMigration applies a single migration if it hasn't been applied yet
func (db *Database) runMigration(m migration) error {
	var exists bool
	err := db.conn.QueryRow("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", m.version).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		log.Printf("  ⊘ Skipping %s (already applied)", m.version)
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.sql); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES ($1)", m.version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("  ✓ Applied %s", m.version)
	return nil
}

// HealthCheck performs a health check on the database
func (db *Database) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return db.conn.PingContext(ctx)
}

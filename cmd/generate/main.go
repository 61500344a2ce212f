package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fortuna/gridiron/internal/analysis"
	"github.com/fortuna/gridiron/internal/pbp"
	"github.com/fortuna/gridiron/internal/service"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/urfave/cli/v2"
)

// seasonOutput is the file layout consumed by report tooling
type seasonOutput struct {
	Season  string                    `json:"season"`
	Team    string                    `json:"team"`
	Games   []*analysis.GameRecord    `json:"games"`
	Summary analysis.SeasonAggregates `json:"summary"`
}

func main() {
	app := &cli.App{
		Name:  "generate",
		Usage: "analyze a season of play-by-play game files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "directory of per-game JSON files, processed in filename order",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "season",
				Aliases: []string{"s"},
				Usage:   "season label (falls back to the value in the game files)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "season_stats.json",
				Usage:   "output file, or - for stdout",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "indent the output JSON",
			},
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "optionally persist results to this PostgreSQL DSN",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	inputs, err := loadGameFiles(c.String("input"))
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no game files found in %s", c.String("input"))
	}

	season := c.String("season")
	if season == "" {
		season = inputs[0].Season
	}

	conferences := pbp.DefaultConferences()

	records := make([]*analysis.GameRecord, 0, len(inputs))
	for i, input := range inputs {
		if input.GameNumber == 0 {
			input.GameNumber = i + 1
		}
		record := analysis.AnalyzeInput(input, conferences)
		records = append(records, record)
		log.Printf("[generate] ✓ game %d vs %s: %d plays, %d yards",
			record.GameNumber, record.Opponent, record.TotalPlays, record.TotalYards)
	}

	out := seasonOutput{
		Season:  season,
		Team:    records[0].Team,
		Games:   records,
		Summary: analysis.AggregateSeason(records),
	}

	if dsn := c.String("dsn"); dsn != "" {
		if err := persist(c.Context, dsn, season, inputs); err != nil {
			return err
		}
		log.Printf("[generate] ✓ persisted %d games", len(inputs))
	}

	return writeOutput(c.String("out"), out, c.Bool("pretty"))
}

// loadGameFiles reads every .json file in dir in filename order
func loadGameFiles(dir string) ([]*pbp.GameInput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	inputs := make([]*pbp.GameInput, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		input := &pbp.GameInput{}
		if err := json.Unmarshal(data, input); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		inputs = append(inputs, input)
	}

	return inputs, nil
}

func persist(ctx context.Context, dsn, season string, inputs []*pbp.GameInput) error {
	db, err := store.NewDatabase(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		return err
	}

	analyzer := service.NewAnalyzerService(db, nil, nil)
	for _, input := range inputs {
		if _, err := analyzer.IngestGame(ctx, season, input); err != nil {
			return fmt.Errorf("persisting game %d: %w", input.GameNumber, err)
		}
	}

	return nil
}

func writeOutput(path string, out seasonOutput, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Printf("[generate] ✓ wrote %s", path)
	return nil
}

// Copyright 2025 Warelogix
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	procfind "github.com/warelogix/procfind"
	"github.com/warelogix/procfind/health"
	"github.com/warelogix/procfind/ingestion"
	"github.com/warelogix/procfind/search"
	"github.com/urfave/cli/v2"
)

func main() {
	dbFlag := &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}

	app := &cli.App{
		Name:  "procfind",
		Usage: "Conversational lookup over the business process catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Seed the catalog from a JSON process list",
				Action: seedCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:     "source",
						Aliases:  []string{"s"},
						Usage:    "Path to the JSON source file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for concurrent batch upserts",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the catalog with a free-form query",
				ArgsUsage: "<query words>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Print stems and per-record scores",
					},
				},
			},
			{
				Name:      "get",
				Usage:     "Look up one record by its exact process code",
				ArgsUsage: "<process code>",
				Action:    getCommand,
				Flags:     []cli.Flag{dbFlag},
			},
			{
				Name:   "list",
				Usage:  "List all processes in catalog order",
				Action: listCommand,
				Flags:  []cli.Flag{dbFlag},
			},
			{
				Name:      "suggest",
				Usage:     "Store a user suggestion",
				ArgsUsage: "<suggestion text>",
				Action:    suggestCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.Int64Flag{
						Name:     "user-id",
						Usage:    "Submitting user id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Submitting user display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "handle",
						Usage: "Submitting user handle (optional)",
					},
				},
			},
			{
				Name:   "suggestions",
				Usage:  "List stored suggestions, newest first",
				Action: suggestionsCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Show only the N most recent suggestions",
					},
				},
			},
			{
				Name:   "health",
				Usage:  "Serve the liveness/readiness endpoints",
				Action: healthCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8000",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDatabase(c *cli.Context) (*procfind.Database, error) {
	db, err := procfind.NewDatabase(c.String("db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func seedCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	source, err := os.Open(c.String("source"))
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer source.Close()

	var opts []ingestion.Option
	if c.Int("pool-size") > 0 {
		opts = append(opts, ingestion.WithPoolSize(c.Int("pool-size")))
	}

	pipeline, err := db.NewIngestionPipeline(opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	report, err := pipeline.Seed(context.Background(), source)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Printf("Seeded %d records: %d added, %d updated, %d unchanged, %d skipped\n",
		report.Total(), report.Added, report.Updated, report.Unchanged, report.Skipped)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	var monitor search.SearchMonitor
	if c.Bool("debug") {
		monitor = &debugMonitor{out: os.Stderr}
	}

	results, err := searcher.SearchWithMonitor(context.Background(), query, monitor)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Printf("Nothing found for %q\n", query)
		return nil
	}

	fmt.Printf("Found %d processes\n", len(results))
	for i, record := range results {
		fmt.Printf("%d. %s - %s\n", i+1, record.ProcessID, record.ProcessName)
	}
	return nil
}

func getCommand(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("exactly one process code is required")
	}
	code := strings.ToUpper(strings.TrimSpace(c.Args().First()))

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	record, ok := db.GetProcessByID(context.Background(), code)
	if !ok {
		fmt.Printf("No process with code %s\n", code)
		return nil
	}

	fmt.Printf("%s - %s\n\n%s\n", record.ProcessID, record.ProcessName, record.Description)
	if record.Keywords != "" {
		fmt.Printf("\nKeywords: %s\n", record.Keywords)
	}
	return nil
}

func listCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	summaries := db.GetAllProcesses(context.Background())
	for _, summary := range summaries {
		fmt.Printf("%s - %s\n", summary.ProcessID, summary.ProcessName)
	}
	fmt.Printf("\n%d processes\n", len(summaries))
	return nil
}

func suggestCommand(c *cli.Context) error {
	text := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("suggestion text is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ok := db.SaveSuggestion(context.Background(), c.Int64("user-id"), c.String("name"), c.String("handle"), text)
	if !ok {
		return fmt.Errorf("suggestion was not saved")
	}
	fmt.Println("Suggestion saved")
	return nil
}

func suggestionsCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	suggestions := db.GetAllSuggestions(ctx)
	if limit := c.Int("limit"); limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	for _, s := range suggestions {
		handle := s.Handle
		if handle == "" {
			handle = "-"
		}
		fmt.Printf("#%d [%s] %s (@%s, id %d)\n  %s\n",
			s.Id, s.CreatedAt.Format("2006-01-02 15:04"), s.DisplayName, handle, s.UserID, s.Text)
	}
	fmt.Printf("\n%d suggestions\n", len(suggestions))
	return nil
}

func healthCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	server := health.NewServer(db.CatalogRepository(), slog.Default())
	return server.ListenAndServe(context.Background(), c.String("addr"))
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

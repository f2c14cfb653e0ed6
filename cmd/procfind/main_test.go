package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testSource = `[
	{"process_id": "B1.3", "process_name": "Приемка товара", "description": "Процесс приемки", "keywords": "приемка, поставка"},
	{"process_id": "B2", "process_name": "Хранение"}
]`

func testApp() *cli.App {
	dbFlag := &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Required: true,
	}
	return &cli.App{
		Name: "procfind",
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Action: seedCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Required: true},
					&cli.IntFlag{Name: "pool-size"},
				},
			},
			{
				Name:   "search",
				Action: searchCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.BoolFlag{Name: "debug"},
				},
			},
			{
				Name:   "get",
				Action: getCommand,
				Flags:  []cli.Flag{dbFlag},
			},
			{
				Name:   "list",
				Action: listCommand,
				Flags:  []cli.Flag{dbFlag},
			},
			{
				Name:   "suggest",
				Action: suggestCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.Int64Flag{Name: "user-id", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "handle"},
				},
			},
			{
				Name:   "suggestions",
				Action: suggestionsCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.IntFlag{Name: "limit"},
				},
			},
		},
	}
}

func writeTestSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "processes.json")
	require.NoError(t, os.WriteFile(path, []byte(testSource), 0644))
	return path
}

func TestSeedCommand(t *testing.T) {
	app := testApp()

	t.Run("db flag is required", func(t *testing.T) {
		err := app.Run([]string{"procfind", "seed", "--source", "/tmp/x.json"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("source flag is required", func(t *testing.T) {
		err := app.Run([]string{"procfind", "seed", "--db", t.TempDir()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source")
	})

	t.Run("missing source file", func(t *testing.T) {
		err := app.Run([]string{"procfind", "seed", "--db", t.TempDir(), "--source", "/nonexistent/file.json"})
		require.Error(t, err)
	})

	t.Run("seeds from a valid source", func(t *testing.T) {
		err := app.Run([]string{"procfind", "seed", "--db", t.TempDir(), "--source", writeTestSource(t)})
		require.NoError(t, err)
	})
}

func TestSearchCommand(t *testing.T) {
	app := testApp()
	dbPath := t.TempDir()

	require.NoError(t, app.Run([]string{"procfind", "seed", "--db", dbPath, "--source", writeTestSource(t)}))

	t.Run("query is required", func(t *testing.T) {
		err := app.Run([]string{"procfind", "search", "--db", dbPath})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})

	t.Run("finds seeded records", func(t *testing.T) {
		err := app.Run([]string{"procfind", "search", "--db", dbPath, "приемка"})
		require.NoError(t, err)
	})

	t.Run("debug flag", func(t *testing.T) {
		err := app.Run([]string{"procfind", "search", "--db", dbPath, "--debug", "приемка", "товара"})
		require.NoError(t, err)
	})
}

func TestGetCommand(t *testing.T) {
	app := testApp()
	dbPath := t.TempDir()

	require.NoError(t, app.Run([]string{"procfind", "seed", "--db", dbPath, "--source", writeTestSource(t)}))

	t.Run("exactly one code is required", func(t *testing.T) {
		err := app.Run([]string{"procfind", "get", "--db", dbPath})
		require.Error(t, err)
	})

	t.Run("existing code", func(t *testing.T) {
		err := app.Run([]string{"procfind", "get", "--db", dbPath, "b1.3"})
		require.NoError(t, err)
	})

	t.Run("missing code is not an error", func(t *testing.T) {
		err := app.Run([]string{"procfind", "get", "--db", dbPath, "B9.9"})
		require.NoError(t, err)
	})
}

func TestSuggestAndListCommands(t *testing.T) {
	app := testApp()
	dbPath := t.TempDir()

	require.NoError(t, app.Run([]string{"procfind", "seed", "--db", dbPath, "--source", writeTestSource(t)}))

	t.Run("suggestion text is required", func(t *testing.T) {
		err := app.Run([]string{"procfind", "suggest", "--db", dbPath, "--user-id", "42", "--name", "Ivan"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "text")
	})

	t.Run("stores a suggestion", func(t *testing.T) {
		err := app.Run([]string{"procfind", "suggest", "--db", dbPath, "--user-id", "42", "--name", "Ivan", "--handle", "ivanp", "Добавьте", "процесс", "возврата"})
		require.NoError(t, err)
	})

	t.Run("lists suggestions", func(t *testing.T) {
		err := app.Run([]string{"procfind", "suggestions", "--db", dbPath, "--limit", "5"})
		require.NoError(t, err)
	})

	t.Run("lists processes", func(t *testing.T) {
		err := app.Run([]string{"procfind", "list", "--db", dbPath})
		require.NoError(t, err)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "procfind",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "info"},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
			err := newApp().Run([]string{"procfind", "--log-level", level})
			assert.NoError(t, err, "level %q", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		err := newApp().Run([]string{"procfind", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

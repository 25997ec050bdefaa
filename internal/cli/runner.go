package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
	"github.com/idilsaglam/todo/internal/todo"
	"github.com/idilsaglam/todo/internal/tui"
	"github.com/idilsaglam/todo/internal/ui"
)

// ErrIndexOutOfRange is returned when a 1-based index does not name an item.
var ErrIndexOutOfRange = errors.New("index out of range")

// NewRoot builds the root command. With no subcommand it opens the TUI.
func NewRoot(version string, stdout, stderr io.Writer) *cli.Command {
	var (
		flags     = &Flags{}
		app       = &App{}
		logCloser func()
	)

	root := &cli.Command{
		Name:      "todo",
		Usage:     "A paginated, reorderable todo list",
		UsageText: "todo [global options] [command [command options]]",
		Description: `Run 'todo' with no arguments to open the interactive list.

The list is stored as JSON under the data directory, one file per storage key.`,
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("TODO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/todo.log)",
				Sources:     cli.EnvVars("TODO_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TODO_CONFIG"),
				Value:       config.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TODO_DATA_DIR"),
				Value:       config.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.BoolFlag{
				Name:        "ephemeral",
				Usage:       "keep the list in memory only; nothing is read or written",
				Destination: &flags.Ephemeral,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "disable colored output",
				Sources:     cli.EnvVars("TODO_NO_COLOR"),
				Destination: &flags.NoColor,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if flags.NoColor {
				ui.SetColorForcing(false, true)
			}

			logFile := flags.LogFile
			if logFile == "" && !flags.Ephemeral {
				logFile = filepath.Join(flags.DataDir, "todo.log")
			}
			logger, closer, err := logging.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			ui.SetTheme(cfg.Theme)

			var slot todo.Slot = jsonstore.NewDir(cfg.DataDir)
			if flags.Ephemeral {
				slot = jsonstore.NewMemory()
			}

			*app = App{
				Config: cfg,
				Store:  todo.New(slot, todo.WithKey(cfg.StorageKey)),
			}
			log.Debug().Str("data_dir", cfg.DataDir).Str("key", cfg.StorageKey).Int("items", app.Store.Len()).Msg("ready")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unknown command %q. Run 'todo --help' for usage", c.Args().First())
			}
			return tui.Run(app.Store, tui.Options{
				Theme:     app.Config.Theme,
				CharLimit: app.Config.CharLimit,
			})
		},
	}

	root = NewAddCmd(app).Register(root)
	root = NewLsCmd(app).Register(root)
	root = NewEditCmd(app).Register(root)
	root = NewDoneCmd(app).Register(root)
	root = NewRmCmd(app).Register(root)
	root = NewMvCmd(app).Register(root)

	return root
}

// Run executes the command line and returns the process exit code.
func Run(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	if err := NewRoot(version, stdout, stderr).Run(ctx, args); err != nil {
		ui.Fail(stderr, err.Error())
		return 1
	}
	return 0
}

// itemAt resolves a 1-based position over the whole list.
func itemAt(store *todo.Store, arg string) (string, int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", 0, fmt.Errorf("not a number: %s", arg)
	}
	items := store.Items()
	if n < 1 || n > len(items) {
		return "", 0, fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(items), n)
	}
	return items[n-1].ID, n, nil
}

// Package commands implements the CLI commands for ai-sync.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/beixiyo/ai-sync/cmd"
	"github.com/beixiyo/ai-sync/internal/config"
	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/logging"
	"github.com/beixiyo/ai-sync/internal/tool"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the -c/--config flag.
var configFile string

// Loaded by loadConfig before any command runs.
var (
	appConfig *config.Config
	registry  *tool.Registry
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file (default: ./ai-sync.yaml, then $XDG_CONFIG_HOME/ai-sync/)")

	addMigrateFlags(rootCmd)

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("ai-sync version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "ai-sync",
	Short: "Migrate AI coding assistant configurations between tools",
	Long: `ai-sync copies the commands, skills, rules, MCP servers, settings and
agents of a Claude-style source tree into the config locations of other
AI coding tools: Cursor, Claude, OpenCode, Gemini CLI, IFlow CLI, Codex
and CodeBuddy, plus any tool declared in the config file.

Run without arguments to start the interactive wizard. Running the root
command with flags is the same as "ai-sync migrate".`,
	Example: `  # Interactive wizard
  ai-sync

  # Migrate ~/.claude to Cursor and Gemini CLI
  ai-sync -t cursor,gemini

  # Migrate a project, overwriting existing files
  ai-sync -s ./my-app -t cursor -p -y

  See Also: ai-sync tools`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrate(cmd)
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence over AI_SYNC_DEBUG
		if v == 0 {
			v = logging.VerbosityFromEnv()
		}
		level = logging.LevelFromVerbosity(v)
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "use --log-format text or --log-format json")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}
	primaryHandler := logging.NewFormatHandler(format, cmd.ErrOrStderr(), opts)

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// loadConfig reads the user config and applies its tool overrides to a
// fresh registry.
func loadConfig() error {
	workDir, err := os.Getwd()
	if err != nil {
		return errors.NewSystemError(err, "cannot determine the working directory")
	}

	config.Init(workDir)
	cfg, err := config.Load(configFile, workDir)
	if err != nil {
		return errors.NewConfigError(err)
	}
	if used := config.Used(); used != "" {
		slog.Debug("loaded config", "path", used)
	}

	reg := tool.Default()
	if err := reg.ApplyOverrides(cfg.Tools); err != nil {
		return errors.NewConfigError(err)
	}

	appConfig = cfg
	registry = reg
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beixiyo/ai-sync/internal/cli/prompt"
	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/logging"
	"github.com/beixiyo/ai-sync/internal/migrate"
	"github.com/beixiyo/ai-sync/internal/paths"
	"github.com/beixiyo/ai-sync/internal/report"
	"github.com/beixiyo/ai-sync/internal/tool"
)

// migrateFlags holds the flags shared by the root and migrate commands.
type migrateFlags struct {
	source      string
	targets     []string
	project     bool
	projectDir  string
	yes         bool
	types       []string
	interactive bool
	output      string
}

var migrateOpts migrateFlags

// newPrompter is replaced in tests.
var newPrompter = prompt.NewPrompter

func init() {
	addMigrateFlags(migrateCmd)
	rootCmd.AddCommand(migrateCmd)
}

func addMigrateFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVarP(&migrateOpts.source, "source", "s", "",
		"source directory holding .claude (default: config, then home)")
	f.StringSliceVarP(&migrateOpts.targets, "target", "t", nil,
		"target tools, comma or space separated")
	f.BoolVarP(&migrateOpts.project, "project", "p", false,
		"write project config instead of global config")
	f.StringVarP(&migrateOpts.projectDir, "project-dir", "d", "",
		"project directory (default: working directory)")
	f.BoolVarP(&migrateOpts.yes, "yes", "y", false,
		"overwrite existing files")
	f.StringSliceVar(&migrateOpts.types, "types", nil,
		"configuration types: commands, skills, rules, mcp, settings, agents (default: all)")
	f.BoolVar(&migrateOpts.interactive, "interactive", false,
		"run the interactive wizard")
	f.StringVarP(&migrateOpts.output, "output", "o", "text",
		"report format: text, json")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate configurations to the target tools",
	Long: `Migrate commands, skills, rules, MCP servers, settings and agents from
the source tree to each target tool.

Existing files are kept unless --yes is given. MCP and settings documents
are deep-merged into existing ones; with --yes their top-level keys are
replaced instead.

The command exits non-zero when any file failed to migrate.`,
	Example: `  ai-sync migrate -t cursor,gemini
  ai-sync migrate -s ~/work -t "opencode codex" --types mcp,rules
  ai-sync migrate -t claude -p -d ./my-app -y`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrate(cmd)
	},
}

func runMigrate(cmd *cobra.Command) error {
	opts := migrateOpts
	logger := logging.FromContext(cmd.Context())

	format, err := report.ParseFormat(opts.output)
	if err != nil {
		return errors.NewUserError(err, "use --output text or --output json")
	}

	types, err := parseTypes(opts.types)
	if err != nil {
		return errors.NewUserError(err, "valid types: "+joinTypes(tool.AllTypes()))
	}

	targets := splitList(opts.targets)
	if len(targets) == 0 && opts.source == "" && !opts.interactive {
		targets = splitList(appConfig.Global.DefaultTargetTools)
		opts.interactive = len(targets) == 0
	}

	var req migrate.Request
	if opts.interactive {
		req, err = wizardRequest(opts)
	} else {
		req, err = flagRequest(opts, targets)
	}
	if err != nil {
		return err
	}
	req.Types = types

	logger.Debug("starting migration", "source", req.SourceDir, "tools", req.Tools,
		"project", req.Options.IsProject, "overwrite", req.Options.AutoOverwrite)

	rep, err := migrate.NewEngine(registry, logger).Run(req)
	if err != nil {
		if errors.Is(err, errors.ErrSourceNotFound) {
			return errors.NewUserError(err, "pass an existing directory with --source")
		}
		return errors.NewSystemError(err, "")
	}

	if err := report.NewReporter(cmd.OutOrStdout(), format).Report(rep); err != nil {
		return errors.NewSystemError(err, "")
	}

	if rep.Failed() {
		return errors.NewExitError(
			errors.Wrapf(errors.ErrMigrationFailed, "%d of %d units failed", rep.Error, rep.Total()),
			errors.ExitSystem)
	}
	return nil
}

// flagRequest builds a request from command line flags and config defaults.
func flagRequest(opts migrateFlags, targets []string) (migrate.Request, error) {
	if len(targets) == 0 {
		return migrate.Request{}, errors.NewUserError(
			errors.New("no target tools"),
			"pass --target, set global.default_target_tools, or run with --interactive")
	}

	source, err := resolveSource(opts.source)
	if err != nil {
		return migrate.Request{}, err
	}

	options := migrate.Options{
		IsProject:     opts.project,
		AutoOverwrite: opts.yes,
	}
	if opts.project {
		if options.ProjectDir, err = resolveProjectDir(opts.projectDir); err != nil {
			return migrate.Request{}, err
		}
	}

	return migrate.Request{SourceDir: source, Tools: targets, Options: options}, nil
}

// wizardRequest asks for the request interactively. Flags pre-fill the
// source directory.
func wizardRequest(opts migrateFlags) (migrate.Request, error) {
	source, err := resolveSource(opts.source)
	if err != nil {
		return migrate.Request{}, err
	}

	var options []prompt.Option
	for _, name := range registry.Names() {
		cfg, _ := registry.Lookup(name)
		label := name
		if cfg.Name != "" && cfg.Name != name {
			label = name + " (" + cfg.Name + ")"
		}
		options = append(options, prompt.Option{Value: name, Label: label})
	}

	answers, err := newPrompter().Wizard(prompt.WizardDefaults{
		SourceDir: source,
		Tools:     options,
	})
	if err != nil {
		if errors.Is(err, prompt.ErrSelectionCancelled) {
			return migrate.Request{}, errors.NewUserError(err, "")
		}
		return migrate.Request{}, errors.NewUserError(err, "run ai-sync --help for non-interactive usage")
	}

	if source, err = resolveSource(answers.SourceDir); err != nil {
		return migrate.Request{}, err
	}

	req := migrate.Request{
		SourceDir: source,
		Tools:     answers.Tools,
		Options: migrate.Options{
			IsProject:     answers.IsProject,
			AutoOverwrite: answers.AutoOverwrite,
		},
	}
	if answers.IsProject {
		if req.Options.ProjectDir, err = resolveProjectDir(answers.ProjectDir); err != nil {
			return migrate.Request{}, err
		}
	}
	return req, nil
}

func resolveSource(flag string) (string, error) {
	var (
		source string
		err    error
	)
	if flag != "" {
		source, err = paths.SourceDir(flag)
	} else {
		source, err = paths.DefaultSourceDir(appConfig.Global.DefaultSourceDir, appConfig.Global.DefaultConfigDir)
	}
	if err != nil {
		return "", errors.NewUserError(err, "pass a valid directory with --source")
	}
	return source, nil
}

func resolveProjectDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.NewSystemError(err, "pass --project-dir")
		}
		return wd, nil
	}
	abs, err := paths.Abs(dir)
	if err != nil {
		return "", errors.NewUserError(err, "pass a valid directory with --project-dir")
	}
	return abs, nil
}

// splitList splits every value on commas and whitespace, so both
// "-t a,b" and -t "a b" work. Names are lowercased to match tool and type
// identifiers.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.FieldsFunc(strings.ToLower(v), func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})...)
	}
	return out
}

func parseTypes(values []string) ([]tool.ConfigType, error) {
	var types []tool.ConfigType
	for _, v := range splitList(values) {
		t, err := tool.ParseConfigType(v)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func joinTypes(types []tool.ConfigType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

package migrate

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/logging"
	"github.com/beixiyo/ai-sync/internal/tool"
	"github.com/beixiyo/ai-sync/pkg/fileutil"
)

// Migrator migrates one configuration type for a set of tools.
type Migrator interface {
	Type() tool.ConfigType
	Migrate() Stats
}

// Config holds what every migrator is built with.
type Config struct {
	// Source is the source file or directory of the configuration type.
	Source   string
	Tools    []string
	Options  Options
	Registry *tool.Registry
	Logger   *slog.Logger
}

// New returns the migrator for t.
func New(t tool.ConfigType, cfg Config) (Migrator, error) {
	b := newBase(t, cfg)
	switch t {
	case tool.Commands:
		return &commandsMigrator{base: b}, nil
	case tool.Skills, tool.Agents:
		return &treeMigrator{base: b}, nil
	case tool.Rules:
		return &rulesMigrator{base: b}, nil
	case tool.MCP, tool.Settings:
		return &documentMigrator{base: b}, nil
	}
	return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown configuration type %q", t)
}

// toolFunc migrates the configuration type for one tool into target.
type toolFunc func(name string, tc *tool.TypeConfig, target string) (Stats, error)

type base struct {
	configType tool.ConfigType
	source     string
	tools      []string
	opts       Options
	registry   *tool.Registry
	logger     *slog.Logger
}

func newBase(t tool.ConfigType, cfg Config) *base {
	reg := cfg.Registry
	if reg == nil {
		reg = tool.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &base{
		configType: t,
		source:     cfg.Source,
		tools:      cfg.Tools,
		opts:       cfg.Options,
		registry:   reg,
		logger:     logger.With("type", string(t)),
	}
}

func (b *base) Type() tool.ConfigType {
	return b.configType
}

// run calls fn for every tool in order and folds the results. A tool whose
// config cannot be resolved, whose fn returns an error, or whose fn panics
// counts as one error tagged "<tool>:<type>".
func (b *base) run(fn toolFunc) Stats {
	var total Stats

	for _, name := range b.tools {
		stats, err := b.runTool(name, fn)
		total.Add(stats)

		logger := b.logger.With("tool", name)
		if err != nil {
			logger.Error("migration failed", "error", err)
			total.Fail(b.tag(name), err)
			continue
		}
		logger.Info("migrated",
			"success", stats.Success,
			"skipped", stats.Skipped,
			"errors", stats.Error,
		)
	}

	return total
}

func (b *base) runTool(name string, fn toolFunc) (stats Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("panic: %v", r)
		}
	}()

	cfg, ok := b.registry.Lookup(name)
	if !ok {
		return Stats{}, errors.Wrapf(errors.ErrUnknownTool, "%q", name)
	}
	tc := cfg.For(b.configType)
	if tc == nil {
		return Stats{}, errors.Wrapf(errors.ErrUnsupportedType, "%s has no %s config", name, b.configType)
	}

	target, err := b.registry.ResolveTarget(name, b.configType, b.opts.Scope())
	if err != nil {
		return Stats{}, err
	}
	if filepath.Clean(target) == filepath.Clean(b.source) || fileutil.SameFile(b.source, target) {
		b.logger.Warn("target is the source, skipping", "tool", name, "path", target)
		return Stats{Skipped: 1}, nil
	}

	return fn(name, tc, target)
}

func (b *base) tag(name string) string {
	return fmt.Sprintf("%s:%s", name, b.configType)
}

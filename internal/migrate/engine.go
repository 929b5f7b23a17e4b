package migrate

import (
	"log/slog"
	"path/filepath"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/logging"
	"github.com/beixiyo/ai-sync/internal/paths"
	"github.com/beixiyo/ai-sync/internal/tool"
	"github.com/beixiyo/ai-sync/pkg/fileutil"
)

// Request describes one migration run.
type Request struct {
	// SourceDir is the root of the source tree (the parent of .claude).
	SourceDir string

	// Tools are the target tool identifiers, in the order they are run.
	Tools []string

	// Types restricts the configuration types. Empty means all of them.
	Types []tool.ConfigType

	Options Options
}

// TypeReport is the outcome of one configuration type.
type TypeReport struct {
	Type   tool.ConfigType `json:"type"`
	Source string          `json:"source"`
	Tools  []string        `json:"tools"`
	Stats  Stats           `json:"stats"`
}

// Report is the outcome of a run.
type Report struct {
	SourceDir string       `json:"source_dir"`
	Tools     []string     `json:"tools"`
	Types     []TypeReport `json:"types"`
	Stats
}

// Failed reports whether any unit failed.
func (r *Report) Failed() bool {
	return r.Error > 0
}

// Engine runs the migrators of every configuration type.
type Engine struct {
	registry *tool.Registry
	logger   *slog.Logger
}

// NewEngine creates an engine over registry. A nil logger discards output.
func NewEngine(registry *tool.Registry, logger *slog.Logger) *Engine {
	if registry == nil {
		registry = tool.Default()
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Engine{registry: registry, logger: logger}
}

// SourcePath returns the source of t under sourceDir.
func SourcePath(t tool.ConfigType, sourceDir string) string {
	switch t {
	case tool.Commands:
		return filepath.Join(sourceDir, paths.CommandsSource)
	case tool.Skills:
		return filepath.Join(sourceDir, paths.SkillsSource)
	case tool.Rules:
		return paths.RuleSource(sourceDir)
	case tool.MCP:
		return filepath.Join(sourceDir, paths.MCPSourceFile)
	case tool.Settings:
		return filepath.Join(sourceDir, paths.SettingsSource)
	case tool.Agents:
		return filepath.Join(sourceDir, paths.AgentsSource)
	}
	return ""
}

// Run migrates every requested type. Tools that are unknown or do not
// support a type are logged and left out; types without a source are
// skipped.
func (e *Engine) Run(req Request) (*Report, error) {
	if req.SourceDir == "" {
		return nil, errors.Wrap(errors.ErrSourceNotFound, "no source directory")
	}
	if !fileutil.DirExists(req.SourceDir) {
		return nil, errors.Wrapf(errors.ErrSourceNotFound, "%s", req.SourceDir)
	}

	types := req.Types
	if len(types) == 0 {
		types = tool.AllTypes()
	}

	report := &Report{
		SourceDir: req.SourceDir,
		Tools:     e.knownTools(req.Tools),
	}

	for _, t := range types {
		tools := e.supporting(report.Tools, t)
		if len(tools) == 0 {
			continue
		}

		source := SourcePath(t, req.SourceDir)
		logger := e.logger.With("type", string(t))
		if !fileutil.Exists(source) {
			logger.Info("no source, skipping", "path", source)
			continue
		}

		m, err := New(t, Config{
			Source:   source,
			Tools:    tools,
			Options:  req.Options,
			Registry: e.registry,
			Logger:   e.logger,
		})
		if err != nil {
			return nil, err
		}

		logger.Info("migrating", "source", source, "tools", tools)
		stats := m.Migrate()

		report.Types = append(report.Types, TypeReport{
			Type:   t,
			Source: source,
			Tools:  tools,
			Stats:  stats,
		})
		report.Add(stats)
	}

	return report, nil
}

// knownTools drops and logs tools the registry does not know.
func (e *Engine) knownTools(names []string) []string {
	known := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := e.registry.Lookup(name); !ok {
			e.logger.Warn("unknown tool, skipping", "tool", name)
			continue
		}
		known = append(known, name)
	}
	return known
}

// supporting filters names to the tools that take part in t.
func (e *Engine) supporting(names []string, t tool.ConfigType) []string {
	var out []string
	for _, name := range names {
		if err := e.registry.Check(name, t); err != nil {
			e.logger.Warn("tool skipped", "tool", name, "type", string(t), "reason", err)
			continue
		}
		out = append(out, name)
	}
	return out
}

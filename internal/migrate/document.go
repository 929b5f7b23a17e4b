package migrate

import (
	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/mcp"
	"github.com/beixiyo/ai-sync/internal/tool"
	"github.com/beixiyo/ai-sync/pkg/deepmerge"
	"github.com/beixiyo/ai-sync/pkg/fileutil"
)

// documentMigrator merges a JSON source document (MCP servers or settings)
// into each tool's config file.
//
// The source is reshaped by the tool's MCP transform (MCP only), then
// merged into the existing target: top-level replace with AutoOverwrite,
// deep merge otherwise, so keys the source does not mention survive. The
// target is written in its own format (TOML for .toml, JSON otherwise) and
// the same document is written to every mirror path.
type documentMigrator struct {
	*base
}

func (m *documentMigrator) Migrate() Stats {
	if !fileutil.FileExists(m.source) {
		m.logger.Debug("no source document", "path", m.source)
		return Stats{}
	}

	source, err := fileutil.ReadJSON(m.source)
	if err != nil {
		var stats Stats
		stats.Fail(m.source, errors.Wrapf(err, "reading %s", m.source))
		return stats
	}

	if m.configType == tool.MCP {
		m.logServers(source)
	}

	return m.run(func(name string, tc *tool.TypeConfig, target string) (Stats, error) {
		return m.migrateTool(name, tc, target, source)
	})
}

func (m *documentMigrator) migrateTool(name string, tc *tool.TypeConfig, target string, source map[string]any) (Stats, error) {
	doc := source
	if m.configType == tool.MCP {
		fn, err := tool.LookupMCPTransform(tc.Transform)
		if err != nil {
			return Stats{}, err
		}
		doc = fn(source)
	}

	var stats Stats
	merged, err := m.mergeInto(target, doc)
	if err != nil {
		stats.Fail(target, err)
		return stats, nil
	}
	if err := fileutil.WriteDocument(target, merged); err != nil {
		stats.Fail(target, err)
		return stats, nil
	}
	m.logger.Debug("wrote document", "tool", name, "path", target)
	stats.Success++

	mirrors, err := m.registry.ResolveMirrors(name, m.configType, m.opts.Scope())
	if err != nil {
		return stats, err
	}
	for _, mirror := range mirrors {
		if err := fileutil.WriteDocument(mirror, merged); err != nil {
			stats.Fail(mirror, err)
			continue
		}
		m.logger.Debug("wrote mirror", "tool", name, "path", mirror)
	}

	return stats, nil
}

// mergeInto combines doc with the document already at target.
func (m *documentMigrator) mergeInto(target string, doc map[string]any) (map[string]any, error) {
	existing := map[string]any{}
	if fileutil.FileExists(target) {
		var err error
		existing, err = fileutil.ReadDocument(target)
		if err != nil {
			return nil, errors.Wrapf(err, "reading existing %s", target)
		}
	}

	if m.opts.AutoOverwrite {
		return deepmerge.Overlay(existing, doc), nil
	}
	return deepmerge.Merge(existing, doc), nil
}

func (m *documentMigrator) logServers(source map[string]any) {
	cfg := mcp.Parse(source)
	for _, name := range cfg.Names() {
		srv := cfg.Servers[name]
		switch srv.Kind {
		case mcp.KindLocal:
			m.logger.Debug("mcp server", "name", name, "kind", srv.Kind.String(),
				"command", srv.Local.Argv(), "env", srv.Local.Env)
		case mcp.KindRemote:
			m.logger.Debug("mcp server", "name", name, "kind", srv.Kind.String(),
				"url", srv.Remote.URL, "headers", srv.Remote.Headers)
		default:
			m.logger.Warn("mcp server has neither command nor url", "name", name)
		}
	}
}

package migrate

import (
	"path/filepath"

	"github.com/beixiyo/ai-sync/internal/convert"
	"github.com/beixiyo/ai-sync/internal/tool"
)

// commandsMigrator migrates a commands directory. A named transform runs
// per file; a toml-format tool gets every .md command converted to a
// .toml prompt; anything else is copied verbatim. Subdirectories keep
// their relative path in every mode.
type commandsMigrator struct {
	*base
}

func (m *commandsMigrator) Migrate() Stats {
	return m.run(m.migrateTool)
}

func (m *commandsMigrator) migrateTool(_ string, tc *tool.TypeConfig, target string) (Stats, error) {
	fn, err := transformFor(tc)
	if err != nil {
		return Stats{}, err
	}

	switch {
	case fn != nil:
		return m.transformTree(target, fn, true), nil
	case tc.Format == tool.FormatTOML:
		return m.tomlTree(target), nil
	default:
		return m.copyTree(target), nil
	}
}

// tomlTree converts every .md file under the source to TOML. Other files
// are not migrated.
func (m *commandsMigrator) tomlTree(target string) Stats {
	var stats Stats
	walkFiles(m.source, &stats, func(path, rel string) {
		if !isMarkdown(rel) {
			return
		}
		dst := filepath.Join(target, convert.TOMLFileName(rel))
		m.convertFile(&stats, path, dst, func(content string) (string, error) {
			return convert.MarkdownToTOML(content), nil
		})
	})
	return stats
}

package migrate

import "github.com/beixiyo/ai-sync/internal/tool"

// treeMigrator migrates skills and agents: a named transform applied to
// each Markdown file, or a verbatim directory copy.
type treeMigrator struct {
	*base
}

func (m *treeMigrator) Migrate() Stats {
	return m.run(m.migrateTool)
}

func (m *treeMigrator) migrateTool(_ string, tc *tool.TypeConfig, target string) (Stats, error) {
	fn, err := transformFor(tc)
	if err != nil {
		return Stats{}, err
	}
	if fn != nil {
		return m.transformTree(target, fn, true), nil
	}
	return m.copyTree(target), nil
}

package migrate

import (
	"os"
	"path/filepath"

	"github.com/beixiyo/ai-sync/internal/convert"
	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/paths"
	"github.com/beixiyo/ai-sync/internal/tool"
	"github.com/beixiyo/ai-sync/pkg/fileutil"
)

// rulesMigrator migrates a rule file or a rules directory.
//
// A single file is copied to the target file, or converted to
// <target>/<name>.mdc when the tool keeps mdc rules in a directory. A
// directory goes through the first that applies: the named custom merge,
// the MDC merge when the merge flag is set, the named per-file transform,
// a .md to .mdc conversion when a .claude tree feeds an mdc tool, or a
// verbatim copy.
type rulesMigrator struct {
	*base
}

func (m *rulesMigrator) Migrate() Stats {
	return m.run(m.migrateTool)
}

func (m *rulesMigrator) migrateTool(name string, tc *tool.TypeConfig, target string) (Stats, error) {
	info, err := os.Stat(m.source)
	if err != nil {
		var stats Stats
		stats.Fail(m.source, errors.Wrapf(err, "reading rules source %s", m.source))
		return stats, nil
	}

	if !info.IsDir() {
		return m.migrateFile(tc, target), nil
	}

	switch {
	case tc.CustomMerge != "":
		return m.customMerge(tc.CustomMerge, target)
	case tc.Merge:
		return m.mergeMDC(name, target), nil
	}

	fn, err := transformFor(tc)
	if err != nil {
		return Stats{}, err
	}

	switch {
	case fn != nil:
		return m.transformTree(target, fn, false), nil
	case tc.Format == tool.FormatMDC && paths.IsClaudeTree(m.source):
		return m.mdcTree(target), nil
	default:
		return m.copyTree(target), nil
	}
}

func (m *rulesMigrator) migrateFile(tc *tool.TypeConfig, target string) Stats {
	var stats Stats

	if tc.Format == tool.FormatMDC && isDirTarget(target) {
		base := filepath.Base(m.source)
		dst := filepath.Join(target, convert.MDCFileName(base))
		m.convertFile(&stats, m.source, dst, func(content string) (string, error) {
			return convert.MarkdownToMDC(content, base)
		})
		return stats
	}

	m.copyFile(&stats, m.source, target)
	return stats
}

// isDirTarget reports whether target names a directory: an existing one,
// or a path without an extension.
func isDirTarget(target string) bool {
	return fileutil.DirExists(target) || filepath.Ext(target) == ""
}

func (m *rulesMigrator) customMerge(strategy, target string) (Stats, error) {
	fn, err := tool.LookupMerge(strategy)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	if fileutil.Exists(target) && !m.opts.AutoOverwrite {
		m.logger.Debug("skipped existing file", "path", target)
		stats.Skipped++
		return stats, nil
	}
	if err := fn(m.source, target); err != nil {
		stats.Fail(target, err)
		return stats, nil
	}
	m.logger.Debug("merged rules", "strategy", strategy, "path", target)
	stats.Success++
	return stats, nil
}

func (m *rulesMigrator) mergeMDC(name, target string) Stats {
	var stats Stats

	content, files, err := convert.MergeMDC(m.source)
	if err != nil {
		stats.Fail(m.source, err)
		return stats
	}
	if len(files) == 0 {
		m.logger.Warn("no .mdc rules to merge", "tool", name, "source", m.source)
		return stats
	}

	r := fileutil.WriteFileSafe(target, []byte(content), m.opts.AutoOverwrite)
	switch {
	case r.Success:
		m.logger.Debug("merged rules", "files", len(files), "path", target)
	case r.Skipped:
		m.logger.Debug("skipped existing file", "path", target)
	}
	stats.Record(target, r)
	return stats
}

// mdcTree mirrors the source into target converting .md rules to .mdc.
// Other files are copied as is.
func (m *rulesMigrator) mdcTree(target string) Stats {
	var stats Stats
	walkFiles(m.source, &stats, func(path, rel string) {
		if !isMarkdown(rel) {
			m.copyFile(&stats, path, filepath.Join(target, rel))
			return
		}
		dst := filepath.Join(target, convert.MDCFileName(rel))
		m.convertFile(&stats, path, dst, func(content string) (string, error) {
			return convert.MarkdownToMDC(content, rel)
		})
	})
	return stats
}

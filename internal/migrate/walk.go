package migrate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/tool"
	"github.com/beixiyo/ai-sync/pkg/fileutil"
)

// walkFiles calls visit for every regular file under root in name order.
// rel is the path relative to root. Symlinks are followed and dangling
// ones ignored; any other stat failure is an error on that entry. A directory that cannot be read is one error in stats and
// its subtree is not entered.
func walkFiles(root string, stats *Stats, visit func(path, rel string)) {
	var walk func(dir, rel string)
	walk = func(dir, rel string) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			stats.Fail(dir, errors.Wrapf(err, "reading directory %s", dir))
			return
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			entryRel := filepath.Join(rel, entry.Name())

			info, err := os.Stat(path)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				stats.Fail(path, errors.Wrapf(err, "stating %s", path))
				continue
			}
			switch {
			case info.IsDir():
				walk(path, entryRel)
			case info.Mode().IsRegular():
				visit(path, entryRel)
			}
		}
	}
	walk(root, "")
}

func isMarkdown(name string) bool {
	return strings.HasSuffix(name, ".md")
}

// convertFile writes conv(content of src) to dst. An existing dst is
// skipped unless overwrite is set, and src itself always is; errors are
// attributed to src.
func (b *base) convertFile(stats *Stats, src, dst string, conv func(string) (string, error)) {
	if fileutil.SameFile(src, dst) || (fileutil.Exists(dst) && !b.opts.AutoOverwrite) {
		b.logger.Debug("skipped existing file", "path", dst)
		stats.Skipped++
		return
	}

	data, err := fileutil.ReadFileWithLimit(src)
	if err != nil {
		stats.Fail(src, errors.Wrapf(err, "reading %s", src))
		return
	}
	out, err := conv(string(data))
	if err != nil {
		stats.Fail(src, err)
		return
	}

	r := fileutil.WriteFileSafe(dst, []byte(out), true)
	if r.Success {
		b.logger.Debug("wrote file", "path", dst)
	}
	stats.Record(src, r)
}

// copyFile copies src to dst with the skip semantics of convertFile.
func (b *base) copyFile(stats *Stats, src, dst string) {
	r := fileutil.CopyFileSafe(src, dst, b.opts.AutoOverwrite)
	switch {
	case r.Success:
		b.logger.Debug("copied file", "path", dst)
	case r.Skipped:
		b.logger.Debug("skipped existing file", "path", dst)
	}
	stats.Record(src, r)
}

// transformTree applies fn to the files under the source directory and
// writes them to the same relative path under target. When markdownOnly is
// set only .md files are transformed and the rest are copied as is.
func (b *base) transformTree(target string, fn tool.ContentTransform, markdownOnly bool) Stats {
	var stats Stats
	walkFiles(b.source, &stats, func(path, rel string) {
		dst := filepath.Join(target, rel)
		if markdownOnly && !isMarkdown(rel) {
			b.copyFile(&stats, path, dst)
			return
		}
		b.convertFile(&stats, path, dst, func(content string) (string, error) {
			return fn(content, rel)
		})
	})
	return stats
}

// copyTree mirrors the source directory into target.
func (b *base) copyTree(target string) Stats {
	var stats Stats
	stats.AddCopy(fileutil.CopyDirectory(b.source, target, b.opts.AutoOverwrite))
	return stats
}

// transformFor resolves the content transform named by tc, or nil.
func transformFor(tc *tool.TypeConfig) (tool.ContentTransform, error) {
	if tc.Transform == "" {
		return nil, nil
	}
	return tool.LookupTransform(tc.Transform)
}

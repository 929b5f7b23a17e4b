package convert

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/pkg/frontmatter"
)

// MergeMDC reads every *.mdc file directly inside dir, sorted by name, and
// renders them as one Markdown document. Each file becomes a level-1
// heading (its description, or its name without extension) followed by
// the trimmed body; sections are separated by blank lines.
//
// The returned slice lists the merged file names. When it is empty the
// document is empty too and nothing should be written.
func MergeMDC(dir string) (string, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", nil, errors.Wrapf(err, "reading rules directory %s", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".mdc" {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	if len(files) == 0 {
		return "", nil, nil
	}

	sections := make([]string, 0, len(files))
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", nil, errors.Wrapf(err, "reading rule %s", name)
		}

		doc := frontmatter.Split(string(data))
		title := doc.String("description")
		if title == "" {
			title = strings.TrimSuffix(name, ".mdc")
		}

		sections = append(sections, "# "+title+"\n\n"+strings.TrimSpace(doc.Body))
	}

	return strings.Join(sections, "\n\n") + "\n", files, nil
}

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

type mdcMeta struct {
	Description string `yaml:"description"`
	AlwaysApply bool   `yaml:"alwaysApply"`
}

// MarkdownToMDC turns a Markdown rule into a Cursor MDC rule. Content that
// already opens with a frontmatter block is returned unchanged; otherwise
// a block is injected with a description derived from fileName
// ("codeStyle.md" becomes "code Style") and alwaysApply: true.
func MarkdownToMDC(content, fileName string) (string, error) {
	if frontmatter.Split(content).HasBlock {
		return content, nil
	}

	base := strings.TrimSuffix(filepath.Base(fileName), ".md")
	description := strings.TrimSpace(camelBoundary.ReplaceAllString(base, "$1 $2"))

	out, err := frontmatter.Format(mdcMeta{Description: description, AlwaysApply: true}, content)
	if err != nil {
		return "", errors.Wrapf(err, "converting %s to mdc", fileName)
	}
	return out, nil
}

// MDCFileName maps a Markdown rule file name to its MDC name.
func MDCFileName(name string) string {
	return strings.TrimSuffix(name, ".md") + ".mdc"
}

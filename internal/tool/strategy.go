package tool

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/beixiyo/ai-sync/internal/convert"
	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/mcp"
	"github.com/beixiyo/ai-sync/pkg/fileutil"
)

// ContentTransform rewrites one file. fileName is the path of the file
// relative to the migrated directory.
type ContentTransform func(content, fileName string) (string, error)

// MergeFunc merges a rules source directory into a single target file.
type MergeFunc func(sourceDir, targetFile string) error

// MCPTransform reshapes a parsed MCP source document.
type MCPTransform = mcp.Transform

// Strategy names registered by default.
const (
	TransformUniversalAgent = "universal-agent"
	TransformOpenCodeAgent  = "opencode-agent"
	TransformMarkdownToMDC  = "markdown-to-mdc"
	TransformPassthrough    = "passthrough"

	MCPTransformCodex       = "codex"
	MCPTransformOpenCode    = "opencode"
	MCPTransformGemini      = "gemini"
	MCPTransformPassthrough = "passthrough"

	MergeMDC = "mdc-merge"
)

var strategies = struct {
	sync.RWMutex
	content map[string]ContentTransform
	mcp     map[string]MCPTransform
	merge   map[string]MergeFunc
}{
	content: map[string]ContentTransform{
		TransformUniversalAgent: convert.UniversalAgent,
		TransformOpenCodeAgent:  convert.OpenCodeAgent,
		TransformMarkdownToMDC:  convert.MarkdownToMDC,
		TransformPassthrough:    func(content, _ string) (string, error) { return content, nil },
	},
	mcp: map[string]MCPTransform{
		MCPTransformCodex:       mcp.ToCodex,
		MCPTransformOpenCode:    mcp.ToOpenCode,
		MCPTransformGemini:      mcp.ToGemini,
		MCPTransformPassthrough: mcp.Passthrough,
	},
	merge: map[string]MergeFunc{
		MergeMDC: mergeMDCFile,
	},
}

// RegisterTransform adds or replaces a named content transform.
func RegisterTransform(name string, fn ContentTransform) {
	strategies.Lock()
	defer strategies.Unlock()
	strategies.content[name] = fn
}

// RegisterMCPTransform adds or replaces a named MCP document transform.
func RegisterMCPTransform(name string, fn MCPTransform) {
	strategies.Lock()
	defer strategies.Unlock()
	strategies.mcp[name] = fn
}

// RegisterMerge adds or replaces a named rules merge strategy.
func RegisterMerge(name string, fn MergeFunc) {
	strategies.Lock()
	defer strategies.Unlock()
	strategies.merge[name] = fn
}

// LookupTransform resolves a content transform by name.
func LookupTransform(name string) (ContentTransform, error) {
	strategies.RLock()
	defer strategies.RUnlock()
	fn, ok := strategies.content[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown transform %q", name)
	}
	return fn, nil
}

// LookupMCPTransform resolves an MCP transform by name. An empty name
// selects the pass-through shape.
func LookupMCPTransform(name string) (MCPTransform, error) {
	if name == "" {
		name = MCPTransformPassthrough
	}
	strategies.RLock()
	defer strategies.RUnlock()
	fn, ok := strategies.mcp[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown mcp transform %q", name)
	}
	return fn, nil
}

// LookupMerge resolves a rules merge strategy by name.
func LookupMerge(name string) (MergeFunc, error) {
	strategies.RLock()
	defer strategies.RUnlock()
	fn, ok := strategies.merge[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown merge strategy %q", name)
	}
	return fn, nil
}

// StrategyNames lists registered strategies by kind, sorted.
func StrategyNames() (content, mcpNames, merge []string) {
	strategies.RLock()
	defer strategies.RUnlock()
	return sortedKeys(strategies.content), sortedKeys(strategies.mcp), sortedKeys(strategies.merge)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mergeMDCFile writes the merged .mdc rules of sourceDir to targetFile.
// A directory without .mdc files leaves targetFile untouched.
func mergeMDCFile(sourceDir, targetFile string) error {
	content, files, err := convert.MergeMDC(sourceDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(targetFile), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", targetFile)
	}
	return fileutil.AtomicWriteFile(targetFile, []byte(content), 0o644)
}

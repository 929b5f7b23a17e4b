package tool

import (
	"encoding/json"
	"reflect"
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/paths"
	"github.com/beixiyo/ai-sync/pkg/deepmerge"
)

// Built-in tool identifiers, in display order.
const (
	Cursor    = "cursor"
	Claude    = "claude"
	CodeBuddy = "codebuddy"
	OpenCode  = "opencode"
	Gemini    = "gemini"
	IFlow     = "iflow"
	Codex     = "codex"
)

// builtins returns fresh copies of the compiled-in tool configs.
func builtins() map[string]*Config {
	return map[string]*Config{
		Cursor:    cursor(),
		Claude:    claude(),
		CodeBuddy: codebuddy(),
		OpenCode:  opencode(),
		Gemini:    gemini(),
		IFlow:     iflow(),
		Codex:     codex(),
	}
}

// BuiltinNames returns the built-in tool identifiers in display order.
func BuiltinNames() []string {
	return []string{Cursor, Claude, CodeBuddy, OpenCode, Gemini, IFlow, Codex}
}

// Registry maps tool identifiers to their configs.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Config
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Config)}
}

// Default creates a registry holding the built-in tools.
func Default() *Registry {
	r := NewRegistry()
	for name, cfg := range builtins() {
		r.tools[name] = cfg
	}
	return r
}

// Register adds or replaces a tool.
func (r *Registry) Register(name string, cfg *Config) error {
	if name == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "tool name is empty")
	}
	if cfg == nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "tool %q has no config", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[name] = cfg
	return nil
}

// Lookup returns the config of a tool.
func (r *Registry) Lookup(name string) (*Config, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.tools[name]
	return cfg, ok
}

// Supports reports whether the tool exists and lists t as supported.
func (r *Registry) Supports(name string, t ConfigType) bool {
	cfg, ok := r.Lookup(name)
	return ok && cfg.Supports(t)
}

// Check returns ErrUnknownTool or ErrUnsupportedType when the tool cannot
// take part in t.
func (r *Registry) Check(name string, t ConfigType) error {
	cfg, ok := r.Lookup(name)
	if !ok {
		return errors.Wrapf(errors.ErrUnknownTool, "%q", name)
	}
	if !cfg.Supports(t) {
		return errors.Wrapf(errors.ErrUnsupportedType, "%s does not support %s", name, t)
	}
	return nil
}

// Names returns the registered tools: built-ins in display order, then
// custom tools alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	builtin := make(map[string]bool)
	for _, name := range BuiltinNames() {
		builtin[name] = true
		if _, ok := r.tools[name]; ok {
			names = append(names, name)
		}
	}

	var custom []string
	for name := range r.tools {
		if !builtin[name] {
			custom = append(custom, name)
		}
	}
	sort.Strings(custom)

	return append(names, custom...)
}

// ResolveTarget returns the target path of t for a tool in the given scope.
//
// Global runs expand "~" in each Target candidate. Project runs use
// ProjectTarget when declared, otherwise Target with "~" replaced by the
// project directory. The first candidate that exists wins; when none
// exists the first candidate is returned.
func (r *Registry) ResolveTarget(name string, t ConfigType, scope Scope) (string, error) {
	tc, err := r.typeConfig(name, t)
	if err != nil {
		return "", err
	}

	candidates := scopePaths(tc.Target, tc.ProjectTarget, scope)
	if len(candidates) == 0 {
		return "", errors.Wrapf(errors.ErrInvalidConfig, "%s has no %s target", name, t)
	}
	return FirstExisting(candidates), nil
}

// ResolveMirrors returns the mirror paths of t for a tool in the given
// scope. Mirrors are not probed; every one is returned.
func (r *Registry) ResolveMirrors(name string, t ConfigType, scope Scope) ([]string, error) {
	tc, err := r.typeConfig(name, t)
	if err != nil {
		return nil, err
	}
	return scopePaths(tc.Mirror, nil, scope), nil
}

func (r *Registry) typeConfig(name string, t ConfigType) (*TypeConfig, error) {
	cfg, ok := r.Lookup(name)
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownTool, "%q", name)
	}
	tc := cfg.For(t)
	if tc == nil {
		return nil, errors.Wrapf(errors.ErrUnsupportedType, "%s has no %s config", name, t)
	}
	return tc, nil
}

func scopePaths(global, project Paths, scope Scope) Paths {
	out := make(Paths, 0, len(global))
	switch {
	case scope.IsProject && len(project) > 0:
		for _, p := range project {
			out = append(out, paths.ProjectPath(p, scope.ProjectDir))
		}
	case scope.IsProject:
		for _, p := range global {
			out = append(out, paths.ProjectPath(p, scope.ProjectDir))
		}
	default:
		for _, p := range global {
			out = append(out, paths.ExpandHome(p))
		}
	}
	return out
}

// ApplyOverrides deep-merges user supplied partial configs over the
// registered tools. overrides maps tool name to a partial config in the
// shape of [Config] (as decoded from YAML, JSON or TOML). Unknown tools
// are added as given; known tools are merged key by key, recursing into
// nested objects and replacing lists.
func (r *Registry) ApplyOverrides(overrides map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, raw := range overrides {
		patch, ok := deepmerge.AsMap(raw)
		if !ok {
			return errors.Wrapf(errors.ErrInvalidConfig, "tools.%s must be an object", name)
		}

		base := map[string]any{}
		if existing, ok := r.tools[name]; ok {
			m, err := toMap(existing)
			if err != nil {
				return errors.Wrapf(err, "encoding %s defaults", name)
			}
			base = m
		}

		cfg, err := decodeConfig(deepmerge.Merge(base, normalizeKeys(patch)))
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "tools.%s: %v", name, err)
		}
		r.tools[name] = cfg
	}

	return nil
}

// overrideAliases maps camelCase keys, and the lowercased form viper
// produces for them, to the snake_case keys Config uses.
var overrideAliases = map[string]string{
	"projectTarget": "project_target",
	"projecttarget": "project_target",
	"customMerge":   "custom_merge",
	"custommerge":   "custom_merge",
}

// normalizeKeys rewrites camelCase aliases at every level of m.
func normalizeKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if alias, ok := overrideAliases[k]; ok {
			k = alias
		}
		if nested, ok := deepmerge.AsMap(v); ok {
			v = normalizeKeys(nested)
		}
		out[k] = v
	}
	return out
}

func toMap(cfg *Config) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeConfig(m map[string]any) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       pathsHook,
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var pathsType = reflect.TypeOf(Paths{})

// pathsHook accepts a single string where a Paths list is expected.
func pathsHook(from, to reflect.Type, data any) (any, error) {
	if to != pathsType {
		return data, nil
	}
	if s, ok := data.(string); ok {
		if s == "" {
			return Paths{}, nil
		}
		return Paths{s}, nil
	}
	return data, nil
}
